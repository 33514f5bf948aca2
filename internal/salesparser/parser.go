// =============================================================================
// Sales Analytics System - Sales Feed Parser
// =============================================================================
//
// This package parses raw pipe-delimited sales feed lines into typed
// transaction records. The feed comes from a legacy export and is only
// loosely trustworthy:
//   - lines may have the wrong number of fields
//   - numeric fields may carry thousands-separator commas ("1,299.00")
//   - numeric fields may simply not be numeric
//
// PARSING POLICY:
//   A line either parses completely into a Transaction or it is dropped.
//   No partial record is ever emitted. The legacy system produces bad lines
//   routinely, so drops are silent and surfaced only as a count, never as
//   an error.
//
// =============================================================================

package salesparser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

// FieldCount is the exact number of pipe-delimited fields a feed line
// must have to be parseable.
const FieldCount = 8

// ParseLines parses raw feed lines into transactions, preserving input
// order. Header and blank lines are expected to be stripped by the reader
// before this is called.
//
// RETURNS:
//   - The parsed transactions, in original line order.
//   - The number of lines dropped (wrong field count or unparseable
//     numerics).
func ParseLines(lines []string) ([]types.Transaction, int) {
	transactions := make([]types.Transaction, 0, len(lines))
	dropped := 0

	for _, line := range lines {
		tx, err := ParseLine(line)
		if err != nil {
			dropped++
			continue
		}
		transactions = append(transactions, tx)
	}

	return transactions, dropped
}

// ParseLine parses a single feed line. The returned error exists so callers
// can count drops; it carries no per-line diagnostics beyond the cause,
// matching the feed's silent-discard contract.
func ParseLine(line string) (types.Transaction, error) {
	parts := strings.Split(line, "|")
	if len(parts) != FieldCount {
		return types.Transaction{}, fmt.Errorf("expected %d fields, got %d", FieldCount, len(parts))
	}

	// Thousands-separator commas appear in the product name and in the
	// numeric fields; strip them before parsing.
	productName := stripCommas(parts[3])

	quantity, err := strconv.Atoi(strings.TrimSpace(stripCommas(parts[4])))
	if err != nil {
		return types.Transaction{}, fmt.Errorf("quantity: %w", err)
	}

	unitPrice, err := decimal.NewFromString(strings.TrimSpace(stripCommas(parts[5])))
	if err != nil {
		return types.Transaction{}, fmt.Errorf("unit price: %w", err)
	}

	return types.Transaction{
		TransactionID: parts[0],
		Date:          parts[1],
		ProductID:     parts[2],
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    parts[6],
		Region:        parts[7],
	}, nil
}

// stripCommas removes all commas from a field value.
func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
