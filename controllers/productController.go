package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/initializers"
	"github.com/jawaharlalr/dpadmin/models"
	"github.com/jawaharlalr/dpadmin/utils"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// Product handlers
func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if product.Type == "" {
		product.Type = models.ProductTypeVeg
	}
	if err := models.ValidateVariants(product.Variants); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid variants", err)
		return
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func findProduct(ctx *gin.Context) (models.Product, bool) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return models.Product{}, false
	}

	var product models.Product
	if err := initializers.DB.Preload("Variants").First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return models.Product{}, false
	}
	return product, true
}

// UpdateProduct replaces the product fields and wholesale-replaces the
// variant list in one transaction. A save that would leave the
// product without variants is rejected.
func UpdateProduct(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}

	var payload models.Product
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := models.ValidateVariants(payload.Variants); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid variants", err)
		return
	}

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"name":         payload.Name,
			"category":     payload.Category,
			"type":         payload.Type,
			"is_available": payload.IsAvailable,
		}
		if payload.ImageUrl != "" {
			updates["image_url"] = payload.ImageUrl
		}
		if err := tx.Model(&product).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Variant{}).Error; err != nil {
			return err
		}
		for i := range payload.Variants {
			payload.Variants[i].ID = 0
			payload.Variants[i].ProductID = int(product.ID)
			if err := tx.Create(&payload.Variants[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	updated, ok := findProduct(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func UploadProductImage(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}

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

	url, err := utils.UploadFile(uploader, "products", file)
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	if err := initializers.DB.Model(&product).Update("image_url", url).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Image uploaded but not saved", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"url":     url,
	})
}

func GetProducts(ctx *gin.Context) {
	var products []models.Product

	// Add pagination
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset := (page - 1) * limit

	query := initializers.DB.Preload("Variants")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if category := ctx.Query("category"); category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	result := query.Limit(limit).Offset(offset).Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	activeOnly := ctx.Query("activeOnly") == "true"
	priceDisplays := make(map[uint]string, len(products))
	for _, p := range products {
		priceDisplays[p.ID] = models.PriceRange(p.Variants, activeOnly)
	}

	var count int64
	initializers.DB.Model(&models.Product{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"products":      products,
		"priceDisplays": priceDisplays,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetProduct(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"product":      product,
		"priceDisplay": models.PriceRange(product.Variants, false),
	})
}

func DeleteProduct(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}

	if err := initializers.DB.Select("Variants").Delete(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// ToggleProductAvailability flips the overall availability flag.
func ToggleProductAvailability(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}

	newValue := !product.IsAvailable
	if err := initializers.DB.Model(&product).Update("is_available", newValue).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update availability", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"isAvailable": newValue})
}

// ToggleVariantActive hides or shows one variant by its position in
// the product's variant list, keeping its price and stock history.
func ToggleVariantActive(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || index < 0 || index >= len(product.Variants) {
		respondWithError(ctx, http.StatusBadRequest, "Invalid variant index", err)
		return
	}

	variant := product.Variants[index]
	newValue := !variant.IsActive
	if err := initializers.DB.Model(&variant).Update("is_active", newValue).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update variant", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"index":    index,
		"isActive": newValue,
	})
}
