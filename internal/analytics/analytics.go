// =============================================================================
// Sales Analytics System - Aggregation Engine
// =============================================================================
//
// This package computes the independent statistical views over the valid
// transaction set:
//   - overall summary (total revenue, average order value, date range)
//   - region-wise performance
//   - top-N products
//   - top-N customers
//   - daily sales trend
//   - enrichment success metrics
//
// DESIGN:
//   Every aggregation is a pure function of its input: a single fold over
//   the record slice into an explicit accumulator type, no package state,
//   repeatable across calls. Accumulators preserve first-seen key order so
//   that sort ties resolve deterministically (stable sort over discovery
//   order). All percentage and rate computations guard division by zero by
//   returning 0.
//
// =============================================================================

package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

// DefaultTopN is the default ranking depth for the product and customer
// tables.
const DefaultTopN = 5

// DefaultLowPerformerMaxQty is the default low-performance threshold: a
// product whose total quantity sold is strictly below this many units is
// reported as a low performer. Configurable; the default carries no deeper
// rationale than "fewer than a handful".
const DefaultLowPerformerMaxQty = 5

// TotalRevenue sums Quantity × UnitPrice over the transactions.
func TotalRevenue(transactions []types.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount())
	}
	return total
}

// AverageOrderValue returns total revenue divided by the transaction count,
// or 0 for an empty set.
func AverageOrderValue(transactions []types.Transaction) decimal.Decimal {
	if len(transactions) == 0 {
		return decimal.Zero
	}
	return TotalRevenue(transactions).Div(decimal.NewFromInt(int64(len(transactions))))
}

// DateRange returns "min to max" over the transaction dates, or "N/A" for an
// empty set. Lexicographic comparison equals chronological order for the
// feed's ISO-like dates.
func DateRange(transactions []types.Transaction) string {
	if len(transactions) == 0 {
		return types.NoMatchValue
	}

	min, max := transactions[0].Date, transactions[0].Date
	for _, t := range transactions[1:] {
		if t.Date < min {
			min = t.Date
		}
		if t.Date > max {
			max = t.Date
		}
	}
	return min + " to " + max
}
