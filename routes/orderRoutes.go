package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/controllers"
	"github.com/jawaharlalr/dpadmin/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	// Order placement is called by the companion app, everything else
	// is staff-only.
	server.POST("/order", controllers.CreateOrder)
	server.GET("/user/:userId/orders", controllers.GetOrderByCustomerId)

	admin := server.Group("/", middlewares.Authenticate(), middlewares.RequireAdmin())
	{
		admin.GET("/order", controllers.GetOrders)
		admin.GET("/order/:orderId", controllers.GetOrderById)
		admin.PATCH("/order/:orderId/status", controllers.UpdateOrderStatus)
		admin.PATCH("/order/:orderId/rider", controllers.AssignRider)
		admin.PATCH("/order/:orderId/payment", controllers.RecordPayment)
		admin.GET("/order-stats/active", controllers.GetActiveOrderCount)
	}
}
