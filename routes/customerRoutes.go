package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/controllers"
	"github.com/jawaharlalr/dpadmin/middlewares"
)

func CustomerRoutes(server *gin.Engine) {
	admin := server.Group("/customer", middlewares.Authenticate(), middlewares.RequireAdmin())
	{
		admin.GET("", controllers.GetCustomers)
		admin.GET("/:id", controllers.GetCustomer)
	}
}
