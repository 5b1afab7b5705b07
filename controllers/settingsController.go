package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/initializers"
	"github.com/jawaharlalr/dpadmin/models"
	"github.com/jawaharlalr/dpadmin/utils"
	"gorm.io/gorm"
)

// The configuration documents are singletons: each loader returns the
// only row of its table, creating it with defaults on first use.

func loadShopControls() models.ShopControls {
	var controls models.ShopControls
	err := initializers.DB.First(&controls).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		controls = models.ShopControls{IsOpen: true, OnlineOrders: true}
		err = initializers.DB.Create(&controls).Error
	}
	if err != nil {
		log.Println("Shop controls load error:", err)
	}
	return controls
}

func loadHomeScreen() models.HomeScreen {
	var screen models.HomeScreen
	err := initializers.DB.First(&screen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		screen = models.HomeScreen{CategoryAlignment: models.CategoryAlignmentGrid}
		err = initializers.DB.Create(&screen).Error
	}
	if err != nil {
		log.Println("Home screen load error:", err)
	}
	return screen
}

func loadDeliveryConfig() models.DeliveryConfig {
	var config models.DeliveryConfig
	err := initializers.DB.First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		config = models.DeliveryConfig{MinOrderAmount: 99}
		err = initializers.DB.Create(&config).Error
	}
	if err != nil {
		log.Println("Delivery config load error:", err)
	}
	return config
}

func GetShopControls(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, loadShopControls())
}

// UpdateShopControls toggles the two switches independently; a body
// naming only one field leaves the other untouched.
func UpdateShopControls(ctx *gin.Context) {
	var payload struct {
		IsOpen       *bool `json:"isOpen"`
		OnlineOrders *bool `json:"onlineOrders"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if payload.IsOpen == nil && payload.OnlineOrders == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Nothing to update")
		return
	}

	controls := loadShopControls()
	updates := map[string]any{}
	if payload.IsOpen != nil {
		updates["is_open"] = *payload.IsOpen
	}
	if payload.OnlineOrders != nil {
		updates["online_orders"] = *payload.OnlineOrders
	}

	if err := initializers.DB.Model(&controls).Updates(updates).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update shop controls")
		return
	}

	ctx.JSON(http.StatusOK, loadShopControls())
}

// GetHomeScreen returns the home screen document. An unset category
// order falls back to the current category list.
func GetHomeScreen(ctx *gin.Context) {
	screen := loadHomeScreen()

	if len(screen.CategoryOrder) == 0 {
		var categories []models.Category
		if err := initializers.DB.Order("name asc").Find(&categories).Error; err == nil {
			names := make([]string, 0, len(categories))
			for _, c := range categories {
				names = append(names, c.Name)
			}
			if encoded, err := json.Marshal(names); err == nil {
				screen.CategoryOrder = encoded
			}
		}
	}

	ctx.JSON(http.StatusOK, screen)
}

// UpdateHomeScreen overwrites the whole document. The nested arrays
// have no partial-merge semantics: what the client sends is what is
// stored.
func UpdateHomeScreen(ctx *gin.Context) {
	var payload models.HomeScreen
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	switch payload.CategoryAlignment {
	case models.CategoryAlignmentGrid, models.CategoryAlignmentList, models.CategoryAlignmentScroll:
	case "":
		payload.CategoryAlignment = models.CategoryAlignmentGrid
	default:
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown category alignment")
		return
	}

	screen := loadHomeScreen()
	updates := map[string]any{
		"banners":            payload.Banners,
		"offers":             payload.Offers,
		"promotions":         payload.Promotions,
		"important_notes":    payload.ImportantNotes,
		"category_order":     payload.CategoryOrder,
		"category_alignment": payload.CategoryAlignment,
		"best_sellers":       payload.BestSellers,
	}
	if err := initializers.DB.Model(&screen).Updates(updates).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save home screen")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Home screen updated"})
}

// UploadBannerImage stores a banner or promotion image and returns
// its URL; the client embeds it in the next home screen save.
func UploadBannerImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	uploader, err := utils.GetUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	url, err := utils.UploadFile(uploader, "banners", file)
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": url})
}

func GetDeliveryConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, loadDeliveryConfig())
}

func UpdateDeliveryConfig(ctx *gin.Context) {
	var payload struct {
		MinOrderAmount *float64 `json:"minOrderAmount" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if *payload.MinOrderAmount < 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Minimum order amount must not be negative")
		return
	}

	config := loadDeliveryConfig()
	if err := initializers.DB.Model(&config).Update("min_order_amount", *payload.MinOrderAmount).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	ctx.JSON(http.StatusOK, loadDeliveryConfig())
}
