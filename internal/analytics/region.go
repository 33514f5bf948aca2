// =============================================================================
// Sales Analytics System - Region Performance
// =============================================================================

package analytics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

// RegionStat is the aggregate for one sales region.
type RegionStat struct {
	Region           string
	TotalSales       decimal.Decimal
	TransactionCount int

	// Percentage is this region's share of total revenue, rounded to two
	// decimal places. 0 when total revenue is 0.
	Percentage float64
}

// RegionPerformance groups transactions by region, sorted by total sales
// descending. Ties keep the order in which regions were first seen in the
// input.
func RegionPerformance(transactions []types.Transaction) []RegionStat {
	index := make(map[string]int)
	var stats []RegionStat

	for _, t := range transactions {
		i, ok := index[t.Region]
		if !ok {
			i = len(stats)
			index[t.Region] = i
			stats = append(stats, RegionStat{Region: t.Region, TotalSales: decimal.Zero})
		}
		stats[i].TotalSales = stats[i].TotalSales.Add(t.Amount())
		stats[i].TransactionCount++
	}

	total := TotalRevenue(transactions)
	if total.IsPositive() {
		totalF := total.InexactFloat64()
		for i := range stats {
			share := stats[i].TotalSales.InexactFloat64() / totalF * 100
			stats[i].Percentage = math.Round(share*100) / 100
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales.GreaterThan(stats[j].TotalSales)
	})

	return stats
}
