package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jawaharlalr/dpadmin/initializers"
	"github.com/jawaharlalr/dpadmin/models"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// RevenueBucket is one point on the revenue timeline: a month of the
// selected year, or a day of the selected month.
type RevenueBucket struct {
	Name          string  `json:"name"`
	TotalEarnings float64 `json:"totalEarnings"`
	Orders        int     `json:"orders"`
	sortIdx       int
}

// CategoryTotal is one slice of the category unit-share breakdown.
type CategoryTotal struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// isDelivered matches the status case-insensitively; only delivered
// orders count toward revenue.
func isDelivered(o models.Order) bool {
	return strings.EqualFold(o.Status, models.StatusDelivered)
}

// RevenueTimeline buckets delivered-order revenue for a year. With an
// empty month it returns twelve month buckets; with a month
// abbreviation it returns one bucket per day of that month. Buckets
// are pre-seeded so periods with no sales still appear, and the
// result is sorted chronologically.
func RevenueTimeline(orders []models.Order, year int, month string) []RevenueBucket {
	buckets := map[string]*RevenueBucket{}

	if month == "" {
		for idx, name := range monthNames {
			buckets[name] = &RevenueBucket{Name: name, sortIdx: idx}
		}
	} else {
		monthIdx := monthIndex(month)
		if monthIdx < 0 {
			return nil
		}
		days := daysInMonth(year, time.Month(monthIdx+1))
		for day := 1; day <= days; day++ {
			name := bucketDayName(month, day)
			buckets[name] = &RevenueBucket{Name: name, sortIdx: day}
		}
	}

	for _, order := range orders {
		if !isDelivered(order) {
			continue
		}
		date := order.EffectiveTime()
		if date.Year() != year {
			continue
		}
		var key string
		if month == "" {
			key = monthNames[int(date.Month())-1]
		} else {
			if monthNames[int(date.Month())-1] != month {
				continue
			}
			key = bucketDayName(month, date.Day())
		}
		if bucket, ok := buckets[key]; ok {
			bucket.TotalEarnings += order.TotalAmount
			bucket.Orders++
		}
	}

	out := make([]RevenueBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].sortIdx < out[j].sortIdx })
	return out
}

// MonthlyRevenue is the always-monthly yearly growth breakdown.
func MonthlyRevenue(orders []models.Order, year int) []RevenueBucket {
	return RevenueTimeline(orders, year, "")
}

// TodayRevenue sums delivered-order totals whose effective date falls
// on or after local midnight of now's day.
func TodayRevenue(orders []models.Order, now time.Time) float64 {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	total := 0.0
	for _, order := range orders {
		if isDelivered(order) && !order.EffectiveTime().Before(midnight) {
			total += order.TotalAmount
		}
	}
	return total
}

// CategoryShare sums line-item quantities by category. With
// deliveredOnly set, orders in any other status contribute nothing;
// without it every order counts, reproducing the permissive variant
// of the dashboard.
func CategoryShare(orders []models.Order, deliveredOnly bool) []CategoryTotal {
	totals := map[string]int{}
	for _, order := range orders {
		if deliveredOnly && !isDelivered(order) {
			continue
		}
		for _, item := range order.Items {
			category := item.Category
			if category == "" {
				category = "Other"
			}
			totals[category] += item.Qty
		}
	}

	out := make([]CategoryTotal, 0, len(totals))
	for name, value := range totals {
		out = append(out, CategoryTotal{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// InventoryValuation totals stock units and stock worth across the
// catalog. activeOnly restricts the sums to visible variants.
func InventoryValuation(products []models.Product, activeOnly bool) (units int, worth float64) {
	for _, product := range products {
		for _, v := range product.Variants {
			if activeOnly && !v.IsActive {
				continue
			}
			units += v.Stock
			worth += v.Price * float64(v.Stock)
		}
	}
	return units, worth
}

func monthIndex(month string) int {
	for idx, name := range monthNames {
		if name == month {
			return idx
		}
	}
	return -1
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func bucketDayName(month string, day int) string {
	return month + " " + zeroPad(day)
}

func zeroPad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func fetchAllOrders(ctx *gin.Context) ([]models.Order, bool) {
	var orders []models.Order
	if err := initializers.DB.Preload("Items").Find(&orders).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", err)
		return nil, false
	}
	return orders, true
}

func parseYear(ctx *gin.Context) int {
	year, err := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return time.Now().Year()
	}
	return year
}

// GetDashboardSummary collects the stat-card figures: revenue today
// and lifetime, active and completed order counts, customer and
// product counts, and the shop switches.
func GetDashboardSummary(ctx *gin.Context) {
	orders, ok := fetchAllOrders(ctx)
	if !ok {
		return
	}

	totalEarnings := 0.0
	activeOrders := 0
	completedOrders := 0
	for _, order := range orders {
		if isDelivered(order) {
			totalEarnings += order.TotalAmount
			completedOrders++
		}
		if models.IsActiveStatus(strings.ToLower(order.Status)) {
			activeOrders++
		}
	}

	var totalCustomers, totalProducts int64
	initializers.DB.Model(&models.Customer{}).Count(&totalCustomers)
	initializers.DB.Model(&models.Product{}).Count(&totalProducts)

	ctx.JSON(http.StatusOK, gin.H{
		"todayRevenue":    TodayRevenue(orders, time.Now()),
		"totalEarnings":   totalEarnings,
		"activeOrders":    activeOrders,
		"completedOrders": completedOrders,
		"totalCustomers":  totalCustomers,
		"totalProducts":   totalProducts,
		"shopControls":    loadShopControls(),
	})
}

// GetRevenueTimeline serves the waveform chart: monthly buckets for
// the year, or daily buckets when a month is selected.
func GetRevenueTimeline(ctx *gin.Context) {
	orders, ok := fetchAllOrders(ctx)
	if !ok {
		return
	}

	year := parseYear(ctx)
	month := ctx.Query("month")
	if month == "All" {
		month = ""
	}
	if month != "" && monthIndex(month) < 0 {
		respondWithError(ctx, http.StatusBadRequest, "Unknown month", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"year":    year,
		"month":   month,
		"buckets": RevenueTimeline(orders, year, month),
	})
}

// GetYearlyGrowth serves the bar chart: always-monthly buckets.
func GetYearlyGrowth(ctx *gin.Context) {
	orders, ok := fetchAllOrders(ctx)
	if !ok {
		return
	}

	year := parseYear(ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"year":    year,
		"buckets": MonthlyRevenue(orders, year),
	})
}

// GetCategoryShare serves the unit-share pie. delivered-only by
// default; allStatuses=true counts items from every order.
func GetCategoryShare(ctx *gin.Context) {
	orders, ok := fetchAllOrders(ctx)
	if !ok {
		return
	}

	deliveredOnly := ctx.Query("allStatuses") != "true"
	ctx.JSON(http.StatusOK, gin.H{
		"deliveredOnly": deliveredOnly,
		"categories":    CategoryShare(orders, deliveredOnly),
	})
}

// GetInventoryValuation serves total stock units and worth.
// activeOnly=true restricts to visible variants.
func GetInventoryValuation(ctx *gin.Context) {
	var products []models.Product
	if err := initializers.DB.Preload("Variants").Find(&products).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	activeOnly := ctx.Query("activeOnly") == "true"
	units, worth := InventoryValuation(products, activeOnly)

	ctx.JSON(http.StatusOK, gin.H{
		"activeOnly": activeOnly,
		"totalItems": len(products),
		"totalStock": units,
		"totalWorth": worth,
	})
}
