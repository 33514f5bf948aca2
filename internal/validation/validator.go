// =============================================================================
// Sales Analytics System - Validation Engine
// =============================================================================
//
// This package applies the business validity rules to parsed transactions
// and then the optional user filters (region, amount bounds).
//
// VALIDATION STRATEGY:
//   1. Validity predicate: every field-format rule must hold. A record that
//      fails any clause is counted as invalid and is never evaluated against
//      the filters.
//   2. Filters, for records that passed validation, in order:
//      region equality first, then the minimum amount bound, then the
//      maximum amount bound. Each filter short-circuits: a record excluded
//      by the region filter is not checked against the amount bounds, and
//      each exclusion increments exactly one counter.
//
// ERROR HANDLING:
//   There is no error path. Invalidity and filtering are reflected only in
//   the Summary counters. Filter bounds are taken as given; supplying sane
//   bounds is the caller's responsibility.
//
// =============================================================================

package validation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

// =============================================================================
// OPTIONS AND SUMMARY
// =============================================================================

// Options holds the optional filters applied after validation.
type Options struct {
	// Region, when non-empty, keeps only transactions whose Region matches
	// exactly. Empty means no region filter.
	Region string

	// MinAmount, when non-nil, excludes transactions whose amount is
	// strictly below the bound.
	MinAmount *decimal.Decimal

	// MaxAmount, when non-nil, excludes transactions whose amount is
	// strictly above the bound.
	MaxAmount *decimal.Decimal
}

// Summary reports what happened to every input record.
//
// With no filters active, Valid + Invalid == TotalInput. With filters,
// the counters do not necessarily partition the input: the amount filters
// are only evaluated for records that passed the region filter.
type Summary struct {
	TotalInput       int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
}

// =============================================================================
// VALIDATION
// =============================================================================

// IsValid reports whether a transaction satisfies every field-format rule:
// TransactionID starts with "T", ProductID with "P", CustomerID with "C",
// Quantity > 0, UnitPrice > 0, Region non-empty.
func IsValid(t types.Transaction) bool {
	return hasPrefix(t.TransactionID, 'T') &&
		hasPrefix(t.ProductID, 'P') &&
		hasPrefix(t.CustomerID, 'C') &&
		t.Quantity > 0 &&
		t.UnitPrice.IsPositive() &&
		t.Region != ""
}

// ValidateAndFilter partitions parsed transactions into the valid set and
// the rejection counters.
//
// PARAMETERS:
//   - transactions: the parsed records, in feed order.
//   - opts: the optional filters.
//
// RETURNS:
//   - The valid (and unfiltered) transactions, in input order.
//   - The invalid count, also present in the summary.
//   - The full summary.
func ValidateAndFilter(transactions []types.Transaction, opts Options) ([]types.Transaction, int, Summary) {
	summary := Summary{TotalInput: len(transactions)}
	valid := make([]types.Transaction, 0, len(transactions))

	for _, t := range transactions {
		if !IsValid(t) {
			summary.Invalid++
			continue
		}

		// Region filter short-circuits before the amount bounds.
		if opts.Region != "" && t.Region != opts.Region {
			summary.FilteredByRegion++
			continue
		}

		amount := t.Amount()
		if opts.MinAmount != nil && amount.LessThan(*opts.MinAmount) {
			summary.FilteredByAmount++
			continue
		}
		if opts.MaxAmount != nil && amount.GreaterThan(*opts.MaxAmount) {
			summary.FilteredByAmount++
			continue
		}

		valid = append(valid, t)
	}

	summary.FinalCount = len(valid)
	return valid, summary.Invalid, summary
}

// =============================================================================
// FILTER PROMPT HELPERS
// =============================================================================
// These feed the interactive filter prompt: they describe what filter values
// make sense for the data set at hand.

// AvailableRegions returns the sorted distinct non-empty regions present in
// the parsed transactions.
func AvailableRegions(transactions []types.Transaction) []string {
	seen := make(map[string]bool)
	var regions []string

	for _, t := range transactions {
		if t.Region == "" || seen[t.Region] {
			continue
		}
		seen[t.Region] = true
		regions = append(regions, t.Region)
	}

	sort.Strings(regions)
	return regions
}

// AmountRange returns the minimum and maximum line amount across the parsed
// transactions. ok is false when there are no transactions.
func AmountRange(transactions []types.Transaction) (min, max decimal.Decimal, ok bool) {
	if len(transactions) == 0 {
		return decimal.Zero, decimal.Zero, false
	}

	min = transactions[0].Amount()
	max = min
	for _, t := range transactions[1:] {
		amount := t.Amount()
		if amount.LessThan(min) {
			min = amount
		}
		if amount.GreaterThan(max) {
			max = amount
		}
	}
	return min, max, true
}

func hasPrefix(s string, prefix byte) bool {
	return len(s) > 0 && s[0] == prefix
}
