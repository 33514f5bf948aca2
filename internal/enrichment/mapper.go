// =============================================================================
// Sales Analytics System - Enrichment Mapper
// =============================================================================
//
// This package resolves each transaction's product reference against the
// catalog mapping and attaches the resulting metadata.
//
// RESOLUTION ALGORITHM (per transaction):
//   1. Extract the first run of digits from the ProductID ("P101" -> 101).
//      No digits means no match.
//   2. If the numeric id is a catalog key, use it directly.
//   3. Otherwise, if the catalog is non-empty, fall back to
//      id mod len(catalog); when that lands on 0, use the last catalog key
//      in insertion order instead.
//   4. Resolve the chosen id; on success populate the API fields and set
//      APIMatch, otherwise write the no-match defaults.
//
// The fallback is a heuristic, not a real lookup: the feed's product-id
// space (P101..) does not overlap the catalog's id space (1..100), and
// without the remapping no transaction would ever enrich. It is
// deterministic for a fixed catalog, which is all the reports rely on.
//
// =============================================================================

package enrichment

import (
	"regexp"
	"strconv"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/catalog"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

var digitRun = regexp.MustCompile(`\d+`)

// Enrich produces one EnrichedTransaction per input transaction, in input
// order. The input slice is not modified. An empty catalog is not an error:
// every record simply resolves to APIMatch=false.
func Enrich(transactions []types.Transaction, mapping *catalog.Mapping) []types.EnrichedTransaction {
	enriched := make([]types.EnrichedTransaction, 0, len(transactions))

	for _, t := range transactions {
		e := types.EnrichedTransaction{
			Transaction: t,
			APICategory: types.NoMatchValue,
			APIBrand:    types.NoMatchValue,
			APIRating:   0,
			APIMatch:    false,
		}

		if entry, ok := Resolve(t.ProductID, mapping); ok {
			e.APICategory = entry.Category
			e.APIBrand = entry.Brand
			e.APIRating = entry.Rating
			e.APIMatch = true
		}

		enriched = append(enriched, e)
	}

	return enriched
}

// Resolve maps a product reference to a catalog entry, applying the modulo
// fallback for ids outside the catalog's id space. ok is false when the
// reference carries no digits, the catalog is empty, or the resolved id is
// absent.
func Resolve(productID string, mapping *catalog.Mapping) (types.CatalogEntry, bool) {
	digits := digitRun.FindString(productID)
	if digits == "" {
		return types.CatalogEntry{}, false
	}

	rawID, err := strconv.Atoi(digits)
	if err != nil {
		// Digit run too long to represent; treat as unresolvable.
		return types.CatalogEntry{}, false
	}

	id := rawID
	if rawID != 0 && !mapping.Has(rawID) && mapping.Len() > 0 {
		id = rawID % mapping.Len()
		if id == 0 {
			// Zero is never a catalog id; wrap to the last key so the
			// fallback stays total over non-zero inputs.
			id, _ = mapping.LastID()
		}
	}

	return mapping.Get(id)
}
