package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/initializers"
	"github.com/jawaharlalr/dpadmin/models"
	"gorm.io/gorm"
)

// Customer records are owned by the companion app; the dashboard only
// reads them.

func GetCustomers(ctx *gin.Context) {
	var customers []models.Customer

	query := initializers.DB.Order("created_at desc")
	if search := ctx.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}

	if result := query.Find(&customers); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch customers", result.Error)
		return
	}

	var count int64
	initializers.DB.Model(&models.Customer{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"customers": customers,
		"total":     count,
	})
}

func GetCustomer(ctx *gin.Context) {
	customerId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid customer ID", err)
		return
	}

	var customer models.Customer
	if err := initializers.DB.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Customer not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve customer", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, customer)
}
