package models

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	ProductTypeVeg    = "veg"
	ProductTypeNonVeg = "non-veg"
)

// VariantUnits is the set of measurement units a variant may use.
var VariantUnits = []string{"gms", "kg", "ml", "ltr", "pcs", "pc"}

// Variant is one purchasable size/price/stock combination of a
// product. IsActive hides a variant from the customer-facing catalog
// without deleting its stock and price record.
type Variant struct {
	gorm.Model
	ProductID int     `json:"productId"`
	Weight    float64 `json:"weight"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	IsActive  bool    `json:"isActive"`
}

type Product struct {
	gorm.Model
	Name        string    `json:"name" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Type        string    `json:"type"`
	IsAvailable bool      `json:"isAvailable"`
	ImageUrl    string    `json:"imageUrl"`
	Variants    []Variant `json:"variants" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ValidateVariants enforces the variant invariants before a save: a
// product always exposes at least one variant, units come from the
// fixed set, and the numeric fields are not negative.
func ValidateVariants(variants []Variant) error {
	if len(variants) == 0 {
		return fmt.Errorf("a product must have at least one variant")
	}
	for i, v := range variants {
		if !isVariantUnit(v.Unit) {
			return fmt.Errorf("variant %d: unknown unit %q", i, v.Unit)
		}
		if v.Weight < 0 || v.Price < 0 || v.Stock < 0 {
			return fmt.Errorf("variant %d: weight, price and stock must not be negative", i)
		}
	}
	return nil
}

func isVariantUnit(unit string) bool {
	for _, u := range VariantUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// PriceRange renders the catalog price display for a variant list.
// With activeOnly set, hidden variants are excluded; no eligible
// variants yields "Unavailable", a single price yields that value and
// differing prices yield a min-max range.
func PriceRange(variants []Variant, activeOnly bool) string {
	var min, max float64
	seen := false
	for _, v := range variants {
		if activeOnly && !v.IsActive {
			continue
		}
		if !seen {
			min, max = v.Price, v.Price
			seen = true
			continue
		}
		if v.Price < min {
			min = v.Price
		}
		if v.Price > max {
			max = v.Price
		}
	}
	if !seen {
		return "Unavailable"
	}
	if min == max {
		return fmt.Sprintf("₹%g", min)
	}
	return fmt.Sprintf("₹%g - ₹%g", min, max)
}

// TotalStock sums stock across every variant regardless of
// visibility.
func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}
