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

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func GetCategories(ctx *gin.Context) {
	var categories []models.Category

	query := initializers.DB.Order("name asc")
	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if result := query.Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func findCategory(ctx *gin.Context) (models.Category, bool) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return models.Category{}, false
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return models.Category{}, false
	}
	return category, true
}

func UpdateCategory(ctx *gin.Context) {
	category, ok := findCategory(ctx)
	if !ok {
		return
	}

	var payload models.Category
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updates := map[string]any{"name": payload.Name}
	if payload.ImageUrl != "" {
		updates["image_url"] = payload.ImageUrl
	}
	if err := initializers.DB.Model(&category).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update category", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory removes the category record only. Products keep the
// category name they already carry.
func DeleteCategory(ctx *gin.Context) {
	category, ok := findCategory(ctx)
	if !ok {
		return
	}

	if err := initializers.DB.Delete(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func UploadCategoryImage(ctx *gin.Context) {
	category, ok := findCategory(ctx)
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

	url, err := utils.UploadFile(uploader, "categories", file)
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	if err := initializers.DB.Model(&category).Update("image_url", url).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Image uploaded but not saved", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"url":     url,
	})
}
