package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

func sale(date, product, customer, region string, qty int, price string) types.Transaction {
	return types.Transaction{
		TransactionID: "T001",
		Date:          date,
		ProductID:     "P101",
		ProductName:   product,
		Quantity:      qty,
		UnitPrice:     decimal.RequireFromString(price),
		CustomerID:    customer,
		Region:        region,
	}
}

func TestTotalRevenue(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-05", "Widget", "C001", "North", 10, "19.99"), // 199.90
		sale("2024-01-06", "Gadget", "C002", "South", 2, "100"),    // 200.00
	}

	assert.Equal(t, "399.9", TotalRevenue(input).String())
	assert.True(t, TotalRevenue(nil).IsZero())
}

func TestAverageOrderValue(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-05", "Widget", "C001", "North", 1, "100"),
		sale("2024-01-06", "Gadget", "C002", "South", 1, "50"),
	}

	assert.Equal(t, "75", AverageOrderValue(input).String())
	assert.True(t, AverageOrderValue(nil).IsZero())
}

func TestDateRange(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-08", "Widget", "C001", "North", 1, "10"),
		sale("2024-01-05", "Gadget", "C002", "South", 1, "10"),
		sale("2024-01-06", "Gizmo", "C003", "East", 1, "10"),
	}

	assert.Equal(t, "2024-01-05 to 2024-01-08", DateRange(input))
	assert.Equal(t, types.NoMatchValue, DateRange(nil))
}

func TestRegionPerformance(t *testing.T) {
	// North 400 (80%), South 100 (20%).
	input := []types.Transaction{
		sale("2024-01-05", "Widget", "C001", "South", 1, "100"),
		sale("2024-01-05", "Widget", "C002", "North", 1, "300"),
		sale("2024-01-06", "Gadget", "C003", "North", 1, "100"),
	}

	stats := RegionPerformance(input)

	require.Len(t, stats, 2)
	assert.Equal(t, "North", stats[0].Region)
	assert.Equal(t, "400", stats[0].TotalSales.String())
	assert.Equal(t, 2, stats[0].TransactionCount)
	assert.Equal(t, 80.0, stats[0].Percentage)
	assert.Equal(t, "South", stats[1].Region)
	assert.Equal(t, 20.0, stats[1].Percentage)
}

func TestRegionPerformance_PercentagesSumToHundred(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-05", "Widget", "C001", "North", 1, "33.33"),
		sale("2024-01-05", "Widget", "C002", "South", 1, "33.33"),
		sale("2024-01-05", "Widget", "C003", "East", 1, "33.34"),
	}

	var sum float64
	for _, s := range RegionPerformance(input) {
		assert.GreaterOrEqual(t, s.Percentage, 0.0)
		assert.LessOrEqual(t, s.Percentage, 100.0)
		sum += s.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.02)
}

func TestRegionPerformance_TiesKeepFirstSeenOrder(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-05", "Widget", "C001", "West", 1, "100"),
		sale("2024-01-05", "Widget", "C002", "East", 1, "100"),
	}

	stats := RegionPerformance(input)
	require.Len(t, stats, 2)
	assert.Equal(t, "West", stats[0].Region)
	assert.Equal(t, "East", stats[1].Region)
}

func TestRegionPerformance_Empty(t *testing.T) {
	assert.Empty(t, RegionPerformance(nil))
}

func TestTopProducts_RankedByQuantity(t *testing.T) {
	// Gadget sells 15 units of low value, Widget 3 units of high value.
	// Quantity is the ranking key, so Gadget comes first.
	input := []types.Transaction{
		sale("2024-01-05", "Widget", "C001", "North", 3, "500"),
		sale("2024-01-05", "Gadget", "C002", "North", 10, "1"),
		sale("2024-01-06", "Gadget", "C003", "South", 5, "1"),
	}

	stats := TopProducts(input, 5)

	require.Len(t, stats, 2)
	assert.Equal(t, "Gadget", stats[0].Name)
	assert.Equal(t, 15, stats[0].Quantity)
	assert.Equal(t, "15", stats[0].Revenue.String())
	assert.Equal(t, "Widget", stats[1].Name)
	assert.Equal(t, "1500", stats[1].Revenue.String())
}

func TestTopProducts_TruncatesToN(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-05", "A", "C001", "North", 5, "1"),
		sale("2024-01-05", "B", "C001", "North", 4, "1"),
		sale("2024-01-05", "C", "C001", "North", 3, "1"),
	}

	stats := TopProducts(input, 2)
	require.Len(t, stats, 2)
	assert.Equal(t, "A", stats[0].Name)
	assert.Equal(t, "B", stats[1].Name)
}

func TestTopProducts_TiesKeepFirstSeenOrder(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-05", "Zeta", "C001", "North", 5, "1"),
		sale("2024-01-05", "Alpha", "C001", "North", 5, "1"),
	}

	stats := TopProducts(input, 5)
	require.Len(t, stats, 2)
	assert.Equal(t, "Zeta", stats[0].Name)
	assert.Equal(t, "Alpha", stats[1].Name)
}

func TestLowPerformers(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-05", "Slow", "C001", "North", 2, "10"),
		sale("2024-01-05", "Fast", "C001", "North", 50, "10"),
		sale("2024-01-06", "Edge", "C001", "North", 5, "10"), // == threshold, not low
	}

	low := LowPerformers(input, DefaultLowPerformerMaxQty)
	require.Len(t, low, 1)
	assert.Equal(t, "Slow", low[0].Name)
}

func TestTopCustomers(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-05", "Widget", "C001", "North", 1, "100"),
		sale("2024-01-05", "Gadget", "C002", "South", 1, "500"),
		sale("2024-01-06", "Widget", "C001", "North", 1, "200"),
		sale("2024-01-07", "Widget", "C001", "North", 1, "100"), // repeat product
	}

	stats := TopCustomers(input, 5)

	require.Len(t, stats, 2)
	assert.Equal(t, "C002", stats[0].CustomerID)
	assert.Equal(t, "500", stats[0].TotalSpent.String())

	c1 := stats[1]
	assert.Equal(t, "C001", c1.CustomerID)
	assert.Equal(t, "400", c1.TotalSpent.String())
	assert.Equal(t, 3, c1.PurchaseCount)
	assert.Equal(t, "133.33", c1.AvgOrderValue.Round(2).String())
	// The repeated product appears once.
	assert.Equal(t, []string{"Widget"}, c1.Products)
}

func TestTopCustomers_TruncatesToN(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-05", "Widget", "C001", "North", 1, "300"),
		sale("2024-01-05", "Widget", "C002", "North", 1, "200"),
		sale("2024-01-05", "Widget", "C003", "North", 1, "100"),
	}

	stats := TopCustomers(input, 2)
	require.Len(t, stats, 2)
	assert.Equal(t, "C001", stats[0].CustomerID)
	assert.Equal(t, "C002", stats[1].CustomerID)
}

func TestDailyTrend(t *testing.T) {
	input := []types.Transaction{
		sale("2024-01-07", "Widget", "C001", "North", 1, "50"),
		sale("2024-01-05", "Widget", "C002", "North", 1, "100"),
		sale("2024-01-05", "Gadget", "C002", "South", 1, "25"), // same day, same customer
	}

	trend := DailyTrend(input)

	require.Len(t, trend, 2)
	assert.Equal(t, "2024-01-05", trend[0].Date)
	assert.Equal(t, "125", trend[0].Revenue.String())
	assert.Equal(t, 2, trend[0].TransactionCount)
	assert.Equal(t, 1, trend[0].UniqueCustomers)
	assert.Equal(t, "2024-01-07", trend[1].Date)
}

func TestBestSalesDay(t *testing.T) {
	trend := DailyTrend([]types.Transaction{
		sale("2024-01-05", "Widget", "C001", "North", 1, "100"),
		sale("2024-01-06", "Widget", "C002", "North", 1, "300"),
		sale("2024-01-07", "Widget", "C003", "North", 1, "300"), // tie, earlier day wins
	})

	best, ok := BestSalesDay(trend)
	require.True(t, ok)
	assert.Equal(t, "2024-01-06", best.Date)

	_, ok = BestSalesDay(nil)
	assert.False(t, ok)
}

func TestEnrichmentMetrics(t *testing.T) {
	enriched := []types.EnrichedTransaction{
		{Transaction: sale("2024-01-05", "Widget", "C001", "North", 1, "10"), APIMatch: true},
		{Transaction: sale("2024-01-05", "Gadget", "C002", "North", 1, "10"), APIMatch: false},
		{Transaction: sale("2024-01-06", "Gadget", "C003", "South", 1, "10"), APIMatch: false},
		{Transaction: sale("2024-01-06", "Gizmo", "C004", "South", 1, "10"), APIMatch: true},
	}

	summary := EnrichmentMetrics(enriched, 4)

	assert.Equal(t, 2, summary.MatchCount)
	assert.Equal(t, 50.0, summary.SuccessRate)
	// Unmatched names are deduplicated in first-seen order.
	assert.Equal(t, []string{"Gadget"}, summary.UnmatchedProducts)
}

func TestEnrichmentMetrics_Empty(t *testing.T) {
	summary := EnrichmentMetrics(nil, 0)
	assert.Zero(t, summary.MatchCount)
	assert.Zero(t, summary.SuccessRate)
	assert.Empty(t, summary.UnmatchedProducts)
}
