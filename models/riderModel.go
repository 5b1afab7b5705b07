package models

import "gorm.io/gorm"

const (
	RiderStatusActive   = "active"
	RiderStatusInactive = "inactive"
)

// Rider is a delivery partner. Only active riders are offered for
// order assignment.
type Rider struct {
	gorm.Model
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Email  string `json:"email"`
	Status string `json:"status"`
}
