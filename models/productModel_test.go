package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVariants(t *testing.T) {
	valid := []Variant{{Weight: 250, Unit: "gms", Price: 120, Stock: 10, IsActive: true}}
	assert.NoError(t, ValidateVariants(valid))

	// A product must never end up without variants.
	assert.Error(t, ValidateVariants(nil))
	assert.Error(t, ValidateVariants([]Variant{}))

	assert.Error(t, ValidateVariants([]Variant{{Weight: 1, Unit: "dozen", Price: 10, Stock: 1}}))
	assert.Error(t, ValidateVariants([]Variant{{Weight: -1, Unit: "kg", Price: 10, Stock: 1}}))
	assert.Error(t, ValidateVariants([]Variant{{Weight: 1, Unit: "kg", Price: -10, Stock: 1}}))
	assert.Error(t, ValidateVariants([]Variant{{Weight: 1, Unit: "kg", Price: 10, Stock: -1}}))
}

func TestPriceRange(t *testing.T) {
	variants := []Variant{
		{Price: 100, IsActive: true},
		{Price: 250, IsActive: true},
		{Price: 400, IsActive: false},
	}

	assert.Equal(t, "₹100 - ₹400", PriceRange(variants, false))
	assert.Equal(t, "₹100 - ₹250", PriceRange(variants, true))

	single := []Variant{{Price: 120, IsActive: true}}
	assert.Equal(t, "₹120", PriceRange(single, true))

	hiddenOnly := []Variant{{Price: 120, IsActive: false}}
	assert.Equal(t, "Unavailable", PriceRange(hiddenOnly, true))
	assert.Equal(t, "₹120", PriceRange(hiddenOnly, false))

	assert.Equal(t, "Unavailable", PriceRange(nil, false))
}

func TestTotalStock(t *testing.T) {
	product := Product{Variants: []Variant{
		{Stock: 10, IsActive: true},
		{Stock: 5, IsActive: false},
	}}
	// Stock counts every variant regardless of visibility.
	assert.Equal(t, 15, product.TotalStock())
}
