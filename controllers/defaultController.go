package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the dpadmin API. This service powers the store's admin dashboard and companion app.

The following are the endpoints for this API:

AUTH
- POST "/auth/login" - Operator sign in
- GET "/auth/profile" - Current operator
- POST "/auth/change-password" - Rotate operator password

ORDER
- POST "/order" - Place a new order
- GET "/order" - List orders
- GET "/order/:orderId" - Get order by ID
- GET "/user/:userId/orders" - Orders for one customer
- PATCH "/order/:orderId/status" - Advance order status
- PATCH "/order/:orderId/rider" - Assign or change rider
- PATCH "/order/:orderId/payment" - Record counter payment
- GET "/order-stats/active" - Active order count

PRODUCT
- POST "/product" - Create product
- GET "/product" - List products
- GET "/product/:id" - Get product by ID
- PUT "/product/:id" - Update product and variants
- DELETE "/product/:id" - Delete product
- PATCH "/product/:id/availability" - Toggle availability
- PATCH "/product/:id/variants/:index/active" - Toggle variant
- POST "/product/:id/image" - Upload product image

CATEGORY
- POST "/category" | GET "/category" | PUT "/category/:id" | DELETE "/category/:id"
- POST "/category/:id/image" - Upload category image

RIDER
- POST "/rider" | GET "/rider" | PUT "/rider/:id" | DELETE "/rider/:id"
- PATCH "/rider/:id/status" - Toggle active/inactive

CUSTOMER
- GET "/customer" - List customers
- GET "/customer/:id" - Get customer by ID

DASHBOARD
- GET "/dashboard/summary" | "/dashboard/revenue" | "/dashboard/growth"
- GET "/dashboard/categories" | "/dashboard/inventory"

SETTINGS
- GET|PATCH "/settings/shop-controls"
- GET|PUT "/settings/home-screen"
- POST "/settings/home-screen/banner-image"
- GET|PUT "/settings/delivery-config"`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
