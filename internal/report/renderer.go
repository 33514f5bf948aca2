// =============================================================================
// Sales Analytics System - Report Renderer
// =============================================================================
//
// This package renders the aggregation outputs into the fixed-layout text
// report. Section order, column widths, the ₹ currency symbol and the
// decimal precision are a presentation contract: downstream consumers diff
// the report byte-for-byte, so the layout here is load-bearing even where
// the numbers are not.
//
// SECTION ORDER:
//   1. Header (title, generation timestamp, record count)
//   2. OVERALL SUMMARY
//   3. REGION-WISE PERFORMANCE
//   4. TOP N PRODUCTS
//   5. TOP N CUSTOMERS
//   6. DAILY SALES TREND
//   7. PRODUCT PERFORMANCE NOTES
//   8. API ENRICHMENT SUMMARY
//
// =============================================================================

package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/analytics"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
)

const (
	bannerWidth = 44
	currency    = "₹"
)

// Options controls the variable parts of the report.
type Options struct {
	// TopN is the ranking depth for the product and customer tables.
	TopN int

	// LowPerformerMaxQty is the low-performance quantity threshold.
	LowPerformerMaxQty int

	// Now supplies the generation timestamp. Injectable for tests.
	Now func() time.Time
}

// DefaultOptions returns the standard report options.
func DefaultOptions() Options {
	return Options{
		TopN:               analytics.DefaultTopN,
		LowPerformerMaxQty: analytics.DefaultLowPerformerMaxQty,
		Now:                time.Now,
	}
}

// Generate renders the full report document.
//
// PARAMETERS:
//   - valid: the valid transaction set all aggregations run on.
//   - enriched: the enriched set, consumed by the enrichment summary.
//   - opts: layout options; zero-value fields fall back to defaults.
//
// RETURNS:
//   - The report as a byte slice; the caller decides where it is written.
func Generate(valid []types.Transaction, enriched []types.EnrichedTransaction, opts Options) []byte {
	if opts.TopN == 0 {
		opts.TopN = analytics.DefaultTopN
	}
	if opts.LowPerformerMaxQty == 0 {
		opts.LowPerformerMaxQty = analytics.DefaultLowPerformerMaxQty
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var b strings.Builder

	writeHeader(&b, len(valid), opts.Now())
	writeOverallSummary(&b, valid)
	writeRegionPerformance(&b, valid)
	writeTopProducts(&b, valid, opts.TopN)
	writeTopCustomers(&b, valid, opts.TopN)
	writeDailyTrend(&b, valid)
	writePerformanceNotes(&b, valid, opts.LowPerformerMaxQty)
	writeEnrichmentSummary(&b, enriched, len(valid))

	return []byte(b.String())
}

// =============================================================================
// SECTIONS
// =============================================================================

func writeHeader(b *strings.Builder, recordCount int, now time.Time) {
	banner := strings.Repeat("=", bannerWidth)
	b.WriteString(banner + "\n")
	b.WriteString("SALES ANALYTICS REPORT\n")
	fmt.Fprintf(b, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "Records Processed: %d\n", recordCount)
	b.WriteString(banner + "\n\n")
}

func writeOverallSummary(b *strings.Builder, valid []types.Transaction) {
	writeSectionTitle(b, "OVERALL SUMMARY")

	fmt.Fprintf(b, "Total Revenue:        %s%s\n", currency, money(analytics.TotalRevenue(valid), 2))
	fmt.Fprintf(b, "Total Transactions:   %d\n", len(valid))
	fmt.Fprintf(b, "Average Order Value:  %s%s\n", currency, money(analytics.AverageOrderValue(valid), 2))
	fmt.Fprintf(b, "Date Range:           %s\n\n", analytics.DateRange(valid))
}

func writeRegionPerformance(b *strings.Builder, valid []types.Transaction) {
	writeSectionTitle(b, "REGION-WISE PERFORMANCE")

	fmt.Fprintf(b, "%-10s %-15s %-12s %-5s\n", "Region", "Sales", "% Total", "Count")
	for _, stat := range analytics.RegionPerformance(valid) {
		fmt.Fprintf(b, "%-10s %s%-14s %-11s%% %-5d\n",
			stat.Region,
			currency, money(stat.TotalSales, 0),
			percent(stat.Percentage),
			stat.TransactionCount,
		)
	}
	b.WriteString("\n")
}

func writeTopProducts(b *strings.Builder, valid []types.Transaction, n int) {
	writeSectionTitle(b, fmt.Sprintf("TOP %d PRODUCTS", n))

	fmt.Fprintf(b, "%-5s %-22s %-5s %-12s\n", "Rank", "Product Name", "Qty", "Revenue")
	for i, stat := range analytics.TopProducts(valid, n) {
		fmt.Fprintf(b, "%-5d %-22s %-5d %s%s\n",
			i+1,
			stat.Name,
			stat.Quantity,
			currency, money(stat.Revenue, 0),
		)
	}
	b.WriteString("\n")
}

func writeTopCustomers(b *strings.Builder, valid []types.Transaction, n int) {
	writeSectionTitle(b, fmt.Sprintf("TOP %d CUSTOMERS", n))

	fmt.Fprintf(b, "%-5s %-14s %-7s %-14s\n", "Rank", "Customer ID", "Orders", "Total Spent")
	for i, stat := range analytics.TopCustomers(valid, n) {
		fmt.Fprintf(b, "%-5d %-14s %-7d %s%s\n",
			i+1,
			stat.CustomerID,
			stat.PurchaseCount,
			currency, money(stat.TotalSpent, 2),
		)
	}
	b.WriteString("\n")
}

func writeDailyTrend(b *strings.Builder, valid []types.Transaction) {
	writeSectionTitle(b, "DAILY SALES TREND")

	fmt.Fprintf(b, "%-12s %-15s %-6s %-9s\n", "Date", "Revenue", "Txns", "Customers")
	for _, day := range analytics.DailyTrend(valid) {
		fmt.Fprintf(b, "%-12s %s%-14s %-6d %-9d\n",
			day.Date,
			currency, money(day.Revenue, 2),
			day.TransactionCount,
			day.UniqueCustomers,
		)
	}
	b.WriteString("\n")
}

func writePerformanceNotes(b *strings.Builder, valid []types.Transaction, maxQty int) {
	writeSectionTitle(b, "PRODUCT PERFORMANCE NOTES")

	if best, ok := analytics.BestSalesDay(analytics.DailyTrend(valid)); ok {
		fmt.Fprintf(b, "Best Sales Day:  %s (%s%s)\n", best.Date, currency, money(best.Revenue, 2))
	} else {
		fmt.Fprintf(b, "Best Sales Day:  %s\n", types.NoMatchValue)
	}

	low := analytics.LowPerformers(valid, maxQty)
	if len(low) == 0 {
		fmt.Fprintf(b, "Low Performers (< %d units sold): none\n\n", maxQty)
		return
	}

	fmt.Fprintf(b, "Low Performers (< %d units sold):\n", maxQty)
	for _, stat := range low {
		fmt.Fprintf(b, "  - %s (%d units)\n", stat.Name, stat.Quantity)
	}
	b.WriteString("\n")
}

func writeEnrichmentSummary(b *strings.Builder, enriched []types.EnrichedTransaction, totalValid int) {
	writeSectionTitle(b, "API ENRICHMENT SUMMARY")

	summary := analytics.EnrichmentMetrics(enriched, totalValid)
	fmt.Fprintf(b, "Total products enriched: %d\n", summary.MatchCount)
	fmt.Fprintf(b, "Success rate:            %.1f%%\n", summary.SuccessRate)

	if len(summary.UnmatchedProducts) == 0 {
		b.WriteString("Unmatched products:      none\n")
		return
	}

	b.WriteString("Unmatched products:\n")
	for _, name := range summary.UnmatchedProducts {
		fmt.Fprintf(b, "  - %s\n", name)
	}
}

func writeSectionTitle(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", bannerWidth) + "\n")
}

// =============================================================================
// NUMBER FORMATTING
// =============================================================================

// money renders a decimal with comma thousands grouping and the given number
// of decimal places, e.g. 1234567.5 -> "1,234,567.50".
func money(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	grouped := groupThousands(intPart)
	if negative {
		grouped = "-" + grouped
	}
	return grouped + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// percent renders a two-decimal-rounded share the way the legacy report did:
// shortest form, but always with at least one decimal ("80.0", "33.33").
func percent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
