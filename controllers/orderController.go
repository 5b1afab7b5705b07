package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/jawaharlalr/dpadmin/initializers"
	"github.com/jawaharlalr/dpadmin/models"
	"github.com/jawaharlalr/dpadmin/utils"
	"gorm.io/gorm"
)

// notifyStatusChange pushes the new status to the configured push
// gateway so the companion app can refresh. Best effort: a missing
// gateway or a failed call never fails the order update.
func notifyStatusChange(order models.Order, status string) {
	gateway := os.Getenv("PUSH_GATEWAY_URL")
	if gateway == "" {
		return
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+os.Getenv("PUSH_GATEWAY_KEY")).
		SetBody(map[string]any{
			"userId":    order.UserID,
			"orderId":   order.OrderCode,
			"status":    status,
			"riderName": order.RiderName,
		}).
		Post(gateway)

	if err != nil {
		log.Printf("Push notification error for order %s: %v", order.OrderCode, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Push gateway returned %d for order %s", resp.StatusCode(), order.OrderCode)
	}
}

// sendOrderConfirmationEmail mails the customer their order reference.
func sendOrderConfirmationEmail(order models.Order) error {
	emailData := utils.EmailData{
		Name:      order.UserName,
		Message:   "Thank you for your order! We have started preparing it.",
		OrderCode: order.OrderCode,
		Total:     strconv.FormatFloat(order.TotalAmount, 'f', 2, 64),
		LogoURL:   os.Getenv("LOGO_URL"),
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(order.UserEmail, "Order Confirmation "+order.OrderCode, emailData, templatePath)
}

// CreateOrder is the customer-facing entry point. It writes the order
// and its line items in one transaction, derives the money fields from
// the items and leaves the order in the placed state.
func CreateOrder(ctx *gin.Context) {
	var orderInfo models.Order
	if err := ctx.ShouldBindJSON(&orderInfo); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(orderInfo.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order must contain at least one item")
		return
	}
	if orderInfo.DeliveryMethod != models.DeliveryMethodHome && orderInfo.DeliveryMethod != models.DeliveryMethodPickup {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown delivery method")
		return
	}

	controls := loadShopControls()
	if !controls.IsOpen {
		sendErrorResponse(ctx, http.StatusServiceUnavailable, "The shop is currently closed")
		return
	}
	if orderInfo.DeliveryMethod == models.DeliveryMethodHome && !controls.OnlineOrders {
		sendErrorResponse(ctx, http.StatusServiceUnavailable, "Online ordering is currently disabled")
		return
	}

	subtotal := 0.0
	for _, item := range orderInfo.Items {
		subtotal += item.Price * float64(item.Qty)
	}

	if orderInfo.DeliveryMethod == models.DeliveryMethodHome {
		if len(orderInfo.ShippingAddress) == 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Home delivery requires a shipping address")
			return
		}
		deliveryConfig := loadDeliveryConfig()
		if subtotal < deliveryConfig.MinOrderAmount {
			sendErrorResponse(ctx, http.StatusBadRequest, "Order subtotal is below the home delivery minimum")
			return
		}
	}

	orderCode, err := utils.GenerateOrderCode()
	if err != nil {
		log.Println("Order code generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	now := time.Now()
	order := models.Order{
		OrderCode:       orderCode,
		UserID:          orderInfo.UserID,
		UserName:        orderInfo.UserName,
		UserEmail:       orderInfo.UserEmail,
		UserPhone:       orderInfo.UserPhone,
		DeliveryMethod:  orderInfo.DeliveryMethod,
		ShippingAddress: orderInfo.ShippingAddress,
		Subtotal:        subtotal,
		DiscountAmount:  orderInfo.DiscountAmount,
		AppliedCode:     orderInfo.AppliedCode,
		TotalAmount:     subtotal - orderInfo.DiscountAmount,
		Status:          models.StatusPlaced,
		PlacedAt:        &now,
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to create order")
		return
	}

	for _, item := range orderInfo.Items {
		item.OrderID = int(order.ID)
		if item.Category == "" {
			item.Category = "Other"
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to create order items")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	if order.UserEmail != "" {
		if err := sendOrderConfirmationEmail(order); err != nil {
			log.Println("Error sending order confirmation email:", err)
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Order placed successfully.",
		"orderId":  order.OrderCode,
		"id":       order.ID,
		"subtotal": order.Subtotal,
		"total":    order.TotalAmount,
	})
}

func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("Items")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := ctx.Query("search"); search != "" {
		query = query.Where("order_code LIKE ?", "%"+search+"%")
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if status := ctx.Query("status"); status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("order_code LIKE ?", "%"+search+"%")
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func GetOrderByCustomerId(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	query := initializers.DB.Preload("Items").Where("user_id = ?", userId)
	if result := query.Order("created_at " + sortOrder).Find(&orders); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func findOrder(ctx *gin.Context) (models.Order, bool) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return models.Order{}, false
	}

	var order models.Order
	if err := initializers.DB.Preload("Items").First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return models.Order{}, false
	}
	return order, true
}

func GetOrderById(ctx *gin.Context) {
	order, ok := findOrder(ctx)
	if !ok {
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus moves an order along the lifecycle. Transitions
// out of a terminal state are rejected, as is entering
// out_for_delivery directly: that state is only reachable through
// rider assignment.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	order, ok := findOrder(ctx)
	if !ok {
		return
	}

	if orderStatusData.Status == models.StatusOutForDelivery {
		sendErrorResponse(ctx, http.StatusConflict, "Assign a rider to send the order out for delivery")
		return
	}

	if err := order.ValidateTransition(orderStatusData.Status); err != nil {
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
		return
	}

	if result := initializers.DB.Model(&order).Update("status", orderStatusData.Status); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	notifyStatusChange(order, orderStatusData.Status)

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"status":  orderStatusData.Status,
	})
}

// AssignRider writes the rider identity and the out_for_delivery
// status in a single update so the two can never diverge.
// Reassignment while already out for delivery overwrites the prior
// rider.
func AssignRider(ctx *gin.Context) {
	var payload struct {
		RiderId int `json:"riderId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	order, ok := findOrder(ctx)
	if !ok {
		return
	}

	var rider models.Rider
	if err := initializers.DB.First(&rider, payload.RiderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Rider not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch rider")
		}
		return
	}

	if err := order.ValidateRiderAssignment(rider); err != nil {
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
		return
	}

	updates := map[string]any{
		"status":      models.StatusOutForDelivery,
		"rider_id":    rider.ID,
		"rider_name":  rider.Name,
		"rider_phone": rider.Phone,
		"updated_at":  time.Now(),
	}
	if result := initializers.DB.Model(&order).Updates(updates); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to assign rider")
		return
	}

	order.RiderName = rider.Name
	notifyStatusChange(order, models.StatusOutForDelivery)

	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Rider assigned successfully.",
		"status":     models.StatusOutForDelivery,
		"riderId":    rider.ID,
		"riderName":  rider.Name,
		"riderPhone": rider.Phone,
	})
}

// RecordPayment marks a pickup order as paid over the counter.
// Calling it again with another method just overwrites the method.
func RecordPayment(ctx *gin.Context) {
	var payload struct {
		Method string `json:"method" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	order, ok := findOrder(ctx)
	if !ok {
		return
	}

	if err := order.ValidatePayment(payload.Method); err != nil {
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
		return
	}

	updates := map[string]any{
		"payment_status": models.PaymentStatusPaid,
		"payment_method": payload.Method,
		"paid_at":        time.Now(),
	}
	if result := initializers.DB.Model(&order).Updates(updates); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":       "Payment recorded successfully.",
		"paymentStatus": models.PaymentStatusPaid,
		"paymentMethod": payload.Method,
	})
}

// GetActiveOrderCount reports how many orders are still in the
// kitchen or in transit.
func GetActiveOrderCount(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status IN ?", []string{
			models.StatusPlaced,
			models.StatusProcessing,
			models.StatusPacked,
			models.StatusOutForDelivery,
		}).
		Count(&count)

	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count active orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"activeOrderCount": count})
}
