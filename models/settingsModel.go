package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Singleton configuration documents. Each table holds exactly one
// row, created with defaults the first time it is read.

// ShopControls gates whether the storefront accepts any orders and
// whether online (delivery) ordering is enabled. The two switches are
// independent.
type ShopControls struct {
	gorm.Model
	IsOpen       bool `json:"isOpen"`
	OnlineOrders bool `json:"onlineOrders"`
}

const (
	CategoryAlignmentGrid   = "grid"
	CategoryAlignmentList   = "list"
	CategoryAlignmentScroll = "scroll"
)

// HomeScreen is the content document for the companion app's landing
// page. Saves overwrite the whole document; the nested arrays have no
// partial-merge semantics.
type HomeScreen struct {
	gorm.Model
	Banners           datatypes.JSON `json:"banners"`
	Offers            datatypes.JSON `json:"offers"`
	Promotions        datatypes.JSON `json:"promotions"`
	ImportantNotes    datatypes.JSON `json:"importantNotes"`
	CategoryOrder     datatypes.JSON `json:"categoryOrder"`
	CategoryAlignment string         `json:"categoryAlignment"`
	BestSellers       datatypes.JSON `json:"bestSellers"`
}

// Banner, Offer, Promotion and Note describe the JSON shapes inside
// HomeScreen. They are free-form on the wire; the server stores them
// verbatim.
type Banner struct {
	ID          int64  `json:"id"`
	ImageUrl    string `json:"imageUrl"`
	Order       int    `json:"order"`
	Duration    int    `json:"duration"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
}

type Offer struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Discount string `json:"discount"`
	MinOrder int    `json:"minOrder"`
}

type Promotion struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Emoji    string `json:"emoji"`
	Subtext  string `json:"subtext"`
	Deadline string `json:"deadline"`
	ImageUrl string `json:"imageUrl"`
}

type Note struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// DeliveryConfig holds the minimum subtotal required before home
// delivery is offered to customers. Enforcement happens at order
// creation.
type DeliveryConfig struct {
	gorm.Model
	MinOrderAmount float64 `json:"minOrderAmount"`
}
