package models

import "gorm.io/gorm"

// Category groups products by name. Products reference categories by
// that free-text name, so deleting a category does not cascade to the
// products that still carry it.
type Category struct {
	gorm.Model
	Name     string `json:"name" binding:"required"`
	ImageUrl string `json:"imageUrl"`
}
