// =============================================================================
// Sales Analytics System - Customer Analysis
// =============================================================================

package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

// CustomerStat is the aggregate for one customer.
type CustomerStat struct {
	CustomerID    string
	TotalSpent    decimal.Decimal
	PurchaseCount int
	AvgOrderValue decimal.Decimal

	// Products are the distinct product names this customer bought, in
	// purchase order.
	Products []string
}

// TopCustomers groups transactions by customer and returns the first n
// customers ranked by total spend, descending. Ties keep first-seen order.
// A negative n returns all customers.
func TopCustomers(transactions []types.Transaction, n int) []CustomerStat {
	index := make(map[string]int)
	seenProduct := make(map[string]map[string]bool)
	var stats []CustomerStat

	for _, t := range transactions {
		i, ok := index[t.CustomerID]
		if !ok {
			i = len(stats)
			index[t.CustomerID] = i
			seenProduct[t.CustomerID] = make(map[string]bool)
			stats = append(stats, CustomerStat{CustomerID: t.CustomerID, TotalSpent: decimal.Zero})
		}
		stats[i].TotalSpent = stats[i].TotalSpent.Add(t.Amount())
		stats[i].PurchaseCount++
		if !seenProduct[t.CustomerID][t.ProductName] {
			seenProduct[t.CustomerID][t.ProductName] = true
			stats[i].Products = append(stats[i].Products, t.ProductName)
		}
	}

	for i := range stats {
		stats[i].AvgOrderValue = stats[i].TotalSpent.Div(decimal.NewFromInt(int64(stats[i].PurchaseCount)))
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpent.GreaterThan(stats[j].TotalSpent)
	})

	if n >= 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}
