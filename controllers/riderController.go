package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/initializers"
	"github.com/jawaharlalr/dpadmin/models"
	"gorm.io/gorm"
)

func CreateRider(ctx *gin.Context) {
	var rider models.Rider
	if err := ctx.ShouldBindJSON(&rider); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if rider.Status == "" {
		rider.Status = models.RiderStatusActive
	}
	if rider.Status != models.RiderStatusActive && rider.Status != models.RiderStatusInactive {
		respondWithError(ctx, http.StatusBadRequest, "Unknown rider status", nil)
		return
	}

	if err := initializers.DB.Create(&rider).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create rider", err)
		return
	}

	ctx.JSON(http.StatusCreated, rider)
}

// GetRiders lists the fleet. The order assignment flow calls it with
// status=active so staff are only offered riders who can actually
// take a delivery.
func GetRiders(ctx *gin.Context) {
	var riders []models.Rider

	query := initializers.DB.Order("name asc")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := ctx.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	if result := query.Find(&riders); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch riders", result.Error)
		return
	}

	var total, active int64
	initializers.DB.Model(&models.Rider{}).Count(&total)
	initializers.DB.Model(&models.Rider{}).Where("status = ?", models.RiderStatusActive).Count(&active)

	ctx.JSON(http.StatusOK, gin.H{
		"riders": riders,
		"stats": gin.H{
			"total":  total,
			"active": active,
		},
	})
}

func findRider(ctx *gin.Context) (models.Rider, bool) {
	riderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid rider ID", err)
		return models.Rider{}, false
	}

	var rider models.Rider
	if err := initializers.DB.First(&rider, riderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Rider not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve rider", err)
		}
		return models.Rider{}, false
	}
	return rider, true
}

func UpdateRider(ctx *gin.Context) {
	rider, ok := findRider(ctx)
	if !ok {
		return
	}

	var payload models.Rider
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updates := map[string]any{
		"name":  payload.Name,
		"phone": payload.Phone,
	}
	if payload.Status == models.RiderStatusActive || payload.Status == models.RiderStatusInactive {
		updates["status"] = payload.Status
	}
	if err := initializers.DB.Model(&rider).Updates(updates).Error; err != nil {
		log.Println(err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update rider", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Rider details updated"})
}

// ToggleRiderStatus flips a rider between active and inactive.
func ToggleRiderStatus(ctx *gin.Context) {
	rider, ok := findRider(ctx)
	if !ok {
		return
	}

	newStatus := models.RiderStatusActive
	if rider.Status == models.RiderStatusActive {
		newStatus = models.RiderStatusInactive
	}

	if err := initializers.DB.Model(&rider).Update("status", newStatus).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update status", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": newStatus})
}

func DeleteRider(ctx *gin.Context) {
	rider, ok := findRider(ctx)
	if !ok {
		return
	}

	if err := initializers.DB.Delete(&rider).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete rider", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Rider removed successfully"})
}
