package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/controllers"
	"github.com/jawaharlalr/dpadmin/middlewares"
)

func SettingsRoutes(server *gin.Engine) {
	// The companion app reads these without a session.
	server.GET("/settings/shop-controls", controllers.GetShopControls)
	server.GET("/settings/home-screen", controllers.GetHomeScreen)
	server.GET("/settings/delivery-config", controllers.GetDeliveryConfig)

	admin := server.Group("/settings", middlewares.Authenticate(), middlewares.RequireAdmin())
	{
		admin.PATCH("/shop-controls", controllers.UpdateShopControls)
		admin.PUT("/home-screen", controllers.UpdateHomeScreen)
		admin.POST("/home-screen/banner-image", controllers.UploadBannerImage)
		admin.PUT("/delivery-config", controllers.UpdateDeliveryConfig)
	}
}
