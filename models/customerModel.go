package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Customer is a registered user of the companion mobile app. The
// dashboard reads these records, it never creates or mutates them.
type Customer struct {
	gorm.Model
	AuthUID   string         `json:"authUid" gorm:"size:64;uniqueIndex"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Addresses datatypes.JSON `json:"addresses"`
}

// Address is one entry of a customer's saved address list, stored as
// a JSON column.
type Address struct {
	Type  string `json:"type"`
	Line1 string `json:"line1"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}
