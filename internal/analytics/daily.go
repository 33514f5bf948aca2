// =============================================================================
// Sales Analytics System - Daily Sales Trend
// =============================================================================

package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

// DailyStat is the aggregate for one feed date.
type DailyStat struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
	UniqueCustomers  int
}

// DailyTrend groups transactions by date, in ascending (lexicographic ==
// chronological) date order.
func DailyTrend(transactions []types.Transaction) []DailyStat {
	index := make(map[string]int)
	customers := make(map[string]map[string]bool)
	var stats []DailyStat

	for _, t := range transactions {
		i, ok := index[t.Date]
		if !ok {
			i = len(stats)
			index[t.Date] = i
			customers[t.Date] = make(map[string]bool)
			stats = append(stats, DailyStat{Date: t.Date, Revenue: decimal.Zero})
		}
		stats[i].Revenue = stats[i].Revenue.Add(t.Amount())
		stats[i].TransactionCount++
		customers[t.Date][t.CustomerID] = true
	}

	for i := range stats {
		stats[i].UniqueCustomers = len(customers[stats[i].Date])
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})

	return stats
}

// BestSalesDay returns the day with the highest revenue. ok is false for an
// empty trend. The earliest such day wins a revenue tie.
func BestSalesDay(trend []DailyStat) (DailyStat, bool) {
	if len(trend) == 0 {
		return DailyStat{}, false
	}

	best := trend[0]
	for _, day := range trend[1:] {
		if day.Revenue.GreaterThan(best.Revenue) {
			best = day
		}
	}
	return best, true
}
