package controllers

import (
	"testing"
	"time"

	"github.com/jawaharlalr/dpadmin/models"
	"github.com/stretchr/testify/assert"
)

func orderAt(status string, total float64, placed time.Time) models.Order {
	return models.Order{Status: status, TotalAmount: total, PlacedAt: &placed}
}

func bucketByName(buckets []RevenueBucket, name string) RevenueBucket {
	for _, b := range buckets {
		if b.Name == name {
			return b
		}
	}
	return RevenueBucket{}
}

func TestRevenueTimeline_MonthlyCountsDeliveredOnly(t *testing.T) {
	orders := []models.Order{
		orderAt(models.StatusDelivered, 500, time.Date(2025, time.March, 2, 14, 0, 0, 0, time.UTC)),
		orderAt(models.StatusPlaced, 300, time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)),
	}

	buckets := RevenueTimeline(orders, 2025, "")
	assert.Len(t, buckets, 12)

	march := bucketByName(buckets, "Mar")
	assert.Equal(t, 500.0, march.TotalEarnings)
	assert.Equal(t, 1, march.Orders)
}

func TestRevenueTimeline_PreSeedsEmptyMonths(t *testing.T) {
	buckets := RevenueTimeline(nil, 2025, "")
	assert.Len(t, buckets, 12)
	for i, b := range buckets {
		assert.Equal(t, monthNames[i], b.Name)
		assert.Zero(t, b.TotalEarnings)
		assert.Zero(t, b.Orders)
	}
}

func TestRevenueTimeline_DailyBuckets(t *testing.T) {
	orders := []models.Order{
		orderAt(models.StatusDelivered, 250, time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)),
		orderAt(models.StatusDelivered, 150, time.Date(2025, time.March, 2, 18, 0, 0, 0, time.UTC)),
		orderAt(models.StatusDelivered, 900, time.Date(2025, time.April, 2, 12, 0, 0, 0, time.UTC)),
	}

	buckets := RevenueTimeline(orders, 2025, "Mar")
	assert.Len(t, buckets, 31)
	assert.Equal(t, "Mar 01", buckets[0].Name)
	assert.Equal(t, "Mar 31", buckets[30].Name)

	second := bucketByName(buckets, "Mar 02")
	assert.Equal(t, 400.0, second.TotalEarnings)
	assert.Equal(t, 2, second.Orders)
}

func TestRevenueTimeline_FebruaryLength(t *testing.T) {
	assert.Len(t, RevenueTimeline(nil, 2024, "Feb"), 29)
	assert.Len(t, RevenueTimeline(nil, 2025, "Feb"), 28)
}

func TestRevenueTimeline_IgnoresOtherYears(t *testing.T) {
	orders := []models.Order{
		orderAt(models.StatusDelivered, 500, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)),
	}
	march := bucketByName(RevenueTimeline(orders, 2025, ""), "Mar")
	assert.Zero(t, march.TotalEarnings)
}

func TestRevenueTimeline_UnknownMonth(t *testing.T) {
	assert.Nil(t, RevenueTimeline(nil, 2025, "March"))
}

func TestTodayRevenue_MidnightBoundary(t *testing.T) {
	now := time.Date(2025, time.March, 5, 15, 30, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(models.StatusDelivered, 200, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)),
		orderAt(models.StatusDelivered, 150, time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)),
		orderAt(models.StatusDelivered, 999, time.Date(2025, time.March, 4, 23, 59, 59, 0, time.UTC)),
		orderAt(models.StatusPlaced, 50, time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)),
	}
	assert.Equal(t, 350.0, TodayRevenue(orders, now))
}

func TestCategoryShare(t *testing.T) {
	placed := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	delivered := models.Order{
		Status:   models.StatusDelivered,
		PlacedAt: &placed,
		Items: []models.OrderItem{
			{Category: "Snacks", Qty: 3},
			{Category: "Snacks", Qty: 2},
			{Category: "Sweets", Qty: 1},
		},
	}
	pending := models.Order{
		Status:   models.StatusPlaced,
		PlacedAt: &placed,
		Items:    []models.OrderItem{{Category: "Snacks", Qty: 7}},
	}

	totals := CategoryShare([]models.Order{delivered, pending}, true)
	assert.Equal(t, []CategoryTotal{
		{Name: "Snacks", Value: 5},
		{Name: "Sweets", Value: 1},
	}, totals)

	all := CategoryShare([]models.Order{delivered, pending}, false)
	assert.Equal(t, []CategoryTotal{
		{Name: "Snacks", Value: 12},
		{Name: "Sweets", Value: 1},
	}, all)
}

func TestCategoryShare_BlankCategoryFallsBackToOther(t *testing.T) {
	order := models.Order{
		Status: models.StatusDelivered,
		Items:  []models.OrderItem{{Category: "", Qty: 4}},
	}
	totals := CategoryShare([]models.Order{order}, true)
	assert.Equal(t, []CategoryTotal{{Name: "Other", Value: 4}}, totals)
}

func TestInventoryValuation(t *testing.T) {
	products := []models.Product{
		{Variants: []models.Variant{
			{Price: 100, Stock: 10, IsActive: true},
			{Price: 50, Stock: 4, IsActive: false},
		}},
		{Variants: []models.Variant{
			{Price: 20, Stock: 5, IsActive: true},
		}},
	}

	units, worth := InventoryValuation(products, false)
	assert.Equal(t, 19, units)
	assert.Equal(t, 1300.0, worth)

	units, worth = InventoryValuation(products, true)
	assert.Equal(t, 15, units)
	assert.Equal(t, 1100.0, worth)
}

func TestEffectiveTimeFeedsTimeline(t *testing.T) {
	// An order that never captured a placement time still lands in a
	// bucket via its record creation time.
	order := models.Order{Status: models.StatusDelivered, TotalAmount: 80}
	order.CreatedAt = time.Date(2025, time.June, 10, 11, 0, 0, 0, time.UTC)

	june := bucketByName(RevenueTimeline([]models.Order{order}, 2025, ""), "Jun")
	assert.Equal(t, 80.0, june.TotalEarnings)
	assert.Equal(t, 1, june.Orders)
}
