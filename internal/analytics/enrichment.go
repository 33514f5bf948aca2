// =============================================================================
// Sales Analytics System - Enrichment Metrics
// =============================================================================

package analytics

import (
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

// EnrichmentSummary describes how much of the valid record set resolved
// against the product catalog.
type EnrichmentSummary struct {
	// MatchCount is the number of enriched records with APIMatch set.
	MatchCount int

	// SuccessRate is MatchCount / totalValid × 100, in [0, 100]; 0 when
	// there are no valid records (or the catalog was empty).
	SuccessRate float64

	// UnmatchedProducts are the distinct product names that failed to
	// resolve, in first-seen order.
	UnmatchedProducts []string
}

// EnrichmentMetrics computes the enrichment summary over the enriched set.
// totalValid is the size of the valid record set the enrichment ran on;
// it is the success-rate denominator.
func EnrichmentMetrics(enriched []types.EnrichedTransaction, totalValid int) EnrichmentSummary {
	summary := EnrichmentSummary{}
	seen := make(map[string]bool)

	for _, e := range enriched {
		if e.APIMatch {
			summary.MatchCount++
			continue
		}
		if !seen[e.ProductName] {
			seen[e.ProductName] = true
			summary.UnmatchedProducts = append(summary.UnmatchedProducts, e.ProductName)
		}
	}

	if totalValid > 0 {
		summary.SuccessRate = float64(summary.MatchCount) / float64(totalValid) * 100
	}

	return summary
}
