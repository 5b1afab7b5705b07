package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
