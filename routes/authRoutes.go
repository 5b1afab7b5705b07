package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/controllers"
	"github.com/jawaharlalr/dpadmin/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.GET("/profile", middlewares.Authenticate(), controllers.GetProfile)
		auth.POST("/change-password", middlewares.Authenticate(), middlewares.RequireAdmin(), controllers.ChangePassword)
	}
}
