package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/controllers"
	"github.com/jawaharlalr/dpadmin/middlewares"
)

func DashboardRoutes(server *gin.Engine) {
	admin := server.Group("/dashboard", middlewares.Authenticate(), middlewares.RequireAdmin())
	{
		admin.GET("/summary", controllers.GetDashboardSummary)
		admin.GET("/revenue", controllers.GetRevenueTimeline)
		admin.GET("/growth", controllers.GetYearlyGrowth)
		admin.GET("/categories", controllers.GetCategoryShare)
		admin.GET("/inventory", controllers.GetInventoryValuation)
	}
}
