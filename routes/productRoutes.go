package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/controllers"
	"github.com/jawaharlalr/dpadmin/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)

	admin := server.Group("/product", middlewares.Authenticate(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateProduct)
		admin.PUT("/:id", controllers.UpdateProduct)
		admin.DELETE("/:id", controllers.DeleteProduct)
		admin.PATCH("/:id/availability", controllers.ToggleProductAvailability)
		admin.PATCH("/:id/variants/:index/active", controllers.ToggleVariantActive)
		admin.POST("/:id/image", controllers.UploadProductImage)
	}
}
