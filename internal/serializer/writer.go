// =============================================================================
// Sales Analytics System - Enriched Dataset Serializer
// =============================================================================
//
// This package writes the enriched record set back out in the same
// pipe-delimited format used for input, extended with the four enrichment
// columns. The file is a sibling artifact to the report, not an input to
// any other stage.
//
// ROUND-TRIP CONTRACT:
//   Re-parsing the output with the sales feed parser (ignoring the four
//   enrichment columns) reproduces the original valid transaction set
//   exactly, so UnitPrice and Quantity are serialized in their canonical
//   parseable forms.
//
// =============================================================================

package serializer

import (
	"strconv"
	"strings"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

// Header is the fixed 12-column header line.
const Header = "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region|API_Category|API_Brand|API_Rating|API_Match"

// Generate serializes the enriched records, one line each, in the order
// enrichment produced them. The caller writes the bytes to their
// destination.
func Generate(enriched []types.EnrichedTransaction) []byte {
	var b strings.Builder
	b.WriteString(Header + "\n")

	for _, e := range enriched {
		fields := []string{
			e.TransactionID,
			e.Date,
			e.ProductID,
			e.ProductName,
			strconv.Itoa(e.Quantity),
			e.UnitPrice.String(),
			defaultIfEmpty(e.CustomerID),
			defaultIfEmpty(e.Region),
			e.APICategory,
			e.APIBrand,
			strconv.FormatFloat(e.APIRating, 'g', -1, 64),
			strconv.FormatBool(e.APIMatch),
		}
		b.WriteString(strings.Join(fields, "|") + "\n")
	}

	return []byte(b.String())
}

func defaultIfEmpty(s string) string {
	if s == "" {
		return types.NoMatchValue
	}
	return s
}
