package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/controllers"
	"github.com/jawaharlalr/dpadmin/middlewares"
)

func CategoryRoutes(server *gin.Engine) {
	server.GET("/category", controllers.GetCategories)

	admin := server.Group("/category", middlewares.Authenticate(), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateCategory)
		admin.PUT("/:id", controllers.UpdateCategory)
		admin.DELETE("/:id", controllers.DeleteCategory)
		admin.POST("/:id/image", controllers.UploadCategoryImage)
	}
}
