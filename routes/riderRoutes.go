package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/controllers"
	"github.com/jawaharlalr/dpadmin/middlewares"
)

func RiderRoutes(server *gin.Engine) {
	admin := server.Group("/rider", middlewares.Authenticate(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateRider)
		admin.GET("", controllers.GetRiders)
		admin.PUT("/:id", controllers.UpdateRider)
		admin.PATCH("/:id/status", controllers.ToggleRiderStatus)
		admin.DELETE("/:id", controllers.DeleteRider)
	}
}
