// =============================================================================
// Sales Analytics System - Product Rankings
// =============================================================================

package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

// ProductStat is the aggregate for one product name.
type ProductStat struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// TopProducts groups transactions by product name and returns the first n
// products ranked by total quantity sold, descending. Quantity is the
// ranking key throughout the system; revenue is reported alongside but
// never used for ordering. Ties keep first-seen order.
func TopProducts(transactions []types.Transaction, n int) []ProductStat {
	stats := productStats(transactions)

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Quantity > stats[j].Quantity
	})

	if n >= 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// LowPerformers returns the products whose total quantity sold is strictly
// below maxQty, in first-seen order.
func LowPerformers(transactions []types.Transaction, maxQty int) []ProductStat {
	var low []ProductStat
	for _, s := range productStats(transactions) {
		if s.Quantity < maxQty {
			low = append(low, s)
		}
	}
	return low
}

func productStats(transactions []types.Transaction) []ProductStat {
	index := make(map[string]int)
	var stats []ProductStat

	for _, t := range transactions {
		i, ok := index[t.ProductName]
		if !ok {
			i = len(stats)
			index[t.ProductName] = i
			stats = append(stats, ProductStat{Name: t.ProductName, Revenue: decimal.Zero})
		}
		stats[i].Quantity += t.Quantity
		stats[i].Revenue = stats[i].Revenue.Add(t.Amount())
	}

	return stats
}
