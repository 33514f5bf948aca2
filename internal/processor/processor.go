// =============================================================================
// Sales Analytics System - Run Orchestrator
// =============================================================================
//
// This package runs the full analytics pipeline for one sales feed:
//
//   1. Read the feed (text with encoding fallback, or XLSX)
//   2. Parse raw lines into transactions
//   3. Validate and filter
//   4. Fetch the product catalog
//   5. Enrich the valid set
//   6. Save the enriched dataset
//   7. Generate and save the report
//   8. Archive the input feed (optional)
//
// The run is a single linear pass - no shared mutable state, no
// concurrency. Recoverable conditions (malformed lines, invalid records,
// catalog failures) are absorbed into Stats counters; only unreadable input
// or a failed write aborts the run. No atomic-write guarantee is made for
// the output files of an aborted run.
//
// =============================================================================

package processor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/catalog"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/config"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/enrichment"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/report"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/salesparser"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/serializer"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/types"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/validation"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/xlsxfeed"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/pkg/utils"
)

// Fetcher supplies the product catalog. Satisfied by catalog.Client;
// tests substitute their own.
type Fetcher interface {
	FetchAllProducts() []catalog.Product
}

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// Stats counts what happened during a run.
type Stats struct {
	LinesRead        int
	Parsed           int
	Dropped          int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	Valid            int
	CatalogProducts  int
	Matched          int
	SuccessRate      float64
	Duration         time.Duration
}

// Result is the outcome of a single run.
type Result struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	// InputFile is the feed that was processed.
	InputFile string

	// ReportFile and EnrichedFile are the written artifacts; empty on
	// failure or dry runs.
	ReportFile   string
	EnrichedFile string

	// ArchivedTo is where the input feed was moved, when archival ran.
	ArchivedTo string

	Success bool
	Error   error
	Stats   Stats
}

// RunOptions are per-invocation switches.
type RunOptions struct {
	// SkipEnrichment skips the catalog fetch; every record then carries
	// the no-match defaults.
	SkipEnrichment bool

	// DryRun executes the full pipeline but writes no files and archives
	// nothing.
	DryRun bool
}

// =============================================================================
// PROCESSOR
// =============================================================================

// Processor executes pipeline runs for one configuration.
type Processor struct {
	cfg     *config.Config
	fetcher Fetcher
	logger  zerolog.Logger

	// Progress receives the user-facing step output. Defaults to
	// io.Discard; the CLI points it at stdout.
	Progress io.Writer

	// Now supplies the report generation timestamp. Injectable for
	// byte-comparison tests.
	Now func() time.Time
}

// New creates a Processor.
func New(cfg *config.Config, fetcher Fetcher, logger zerolog.Logger) *Processor {
	return &Processor{
		cfg:      cfg,
		fetcher:  fetcher,
		logger:   logger,
		Progress: io.Discard,
		Now:      time.Now,
	}
}

// Run executes the pipeline once.
func (p *Processor) Run(opts RunOptions) Result {
	start := time.Now()
	result := Result{
		RunID:     uuid.NewString(),
		InputFile: p.cfg.InputFile,
	}
	log := p.logger.With().Str("run_id", result.RunID).Logger()

	fail := func(err error) Result {
		result.Error = err
		result.Stats.Duration = time.Since(start)
		log.Error().Err(err).Msg("run aborted")
		return result
	}

	// Step 1: read the feed.
	p.step(1, "Reading sales data...")
	lines, err := readFeed(p.cfg.InputFile)
	if err != nil {
		return fail(err)
	}
	if len(lines) == 0 {
		return fail(fmt.Errorf("sales feed %s contains no data rows", p.cfg.InputFile))
	}
	result.Stats.LinesRead = len(lines)
	p.stepDone("Read %d lines", len(lines))

	// Step 2: parse.
	p.step(2, "Parsing and cleaning data...")
	parsed, dropped := salesparser.ParseLines(lines)
	result.Stats.Parsed = len(parsed)
	result.Stats.Dropped = dropped
	p.stepDone("Parsed %d records (%d dropped)", len(parsed), dropped)

	// Step 3: validate and filter.
	p.step(3, "Validating transactions...")
	valid, invalidCount, summary := validation.ValidateAndFilter(parsed, p.filterOptions())
	result.Stats.Invalid = invalidCount
	result.Stats.FilteredByRegion = summary.FilteredByRegion
	result.Stats.FilteredByAmount = summary.FilteredByAmount
	result.Stats.Valid = summary.FinalCount
	p.stepDone("Valid: %d | Invalid: %d", summary.FinalCount, invalidCount)
	log.Debug().
		Int("total_input", summary.TotalInput).
		Int("invalid", summary.Invalid).
		Int("filtered_by_region", summary.FilteredByRegion).
		Int("filtered_by_amount", summary.FilteredByAmount).
		Msg("validation summary")

	// Step 4: fetch the catalog.
	p.step(4, "Fetching product data from API...")
	var products []catalog.Product
	if opts.SkipEnrichment {
		p.stepDone("Skipped (enrichment disabled)")
	} else {
		products = p.fetcher.FetchAllProducts()
		p.stepDone("Fetched %d products", len(products))
	}
	mapping := catalog.BuildMapping(products)
	result.Stats.CatalogProducts = mapping.Len()

	// Step 5: enrich.
	p.step(5, "Enriching sales data...")
	enriched := enrichment.Enrich(valid, mapping)
	metrics := countMatches(enriched)
	result.Stats.Matched = metrics
	if len(valid) > 0 {
		result.Stats.SuccessRate = float64(metrics) / float64(len(valid)) * 100
	}
	p.stepDone("Enriched %d/%d transactions (%.1f%%)", metrics, len(valid), result.Stats.SuccessRate)

	// Step 6: save the enriched dataset.
	p.step(6, "Saving enriched data...")
	fm := utils.NewFileManager(p.cfg.OutputDir, p.cfg.InputArchiveDir, p.cfg.ArchiveOnSuccess)
	if !opts.DryRun {
		// The output directory may not exist yet when the configuration
		// came from defaults rather than a loaded file.
		if err := fm.EnsureDirectories(); err != nil {
			return fail(err)
		}
	}
	enrichedName := utils.GenerateOutputFileName(p.cfg.EnrichedFileFormat, nil)
	enrichedPath := filepath.Join(p.cfg.OutputDir, enrichedName)
	if opts.DryRun {
		p.stepDone("Dry run, not writing %s", enrichedPath)
	} else {
		if err := os.WriteFile(enrichedPath, serializer.Generate(enriched), 0644); err != nil {
			return fail(fmt.Errorf("failed to save enriched data: %w", err))
		}
		result.EnrichedFile = enrichedPath
		p.stepDone("Saved to: %s", enrichedPath)
	}

	// Step 7: generate the report.
	p.step(7, "Generating report...")
	reportBytes := report.Generate(valid, enriched, report.Options{
		TopN:               p.cfg.Report.TopN,
		LowPerformerMaxQty: p.cfg.Report.LowPerformerMaxQty,
		Now:                p.Now,
	})
	reportName := utils.GenerateOutputFileName(p.cfg.ReportFileFormat, nil)
	reportPath := filepath.Join(p.cfg.OutputDir, reportName)
	if opts.DryRun {
		p.stepDone("Dry run, not writing %s", reportPath)
	} else {
		if err := os.WriteFile(reportPath, reportBytes, 0644); err != nil {
			return fail(fmt.Errorf("failed to save report: %w", err))
		}
		result.ReportFile = reportPath
		p.stepDone("Report saved to: %s", reportPath)
	}

	// Step 8: archive the input feed.
	p.step(8, "Finishing up...")
	if p.cfg.ArchiveOnSuccess && !opts.DryRun {
		archived, err := fm.ArchiveInputFile(p.cfg.InputFile)
		if err != nil {
			return fail(err)
		}
		result.ArchivedTo = archived
		p.stepDone("Input archived to: %s", archived)
	} else {
		p.stepDone("Process complete")
	}

	result.Success = true
	result.Stats.Duration = time.Since(start)
	log.Info().
		Int("valid", result.Stats.Valid).
		Int("matched", result.Stats.Matched).
		Dur("duration", result.Stats.Duration).
		Msg("run complete")
	return result
}

// =============================================================================
// HELPERS
// =============================================================================

const totalSteps = 8

func (p *Processor) step(n int, msg string) {
	fmt.Fprintf(p.Progress, "[%d/%d] %s\n", n, totalSteps, msg)
}

func (p *Processor) stepDone(format string, args ...interface{}) {
	fmt.Fprintf(p.Progress, "✓ "+format+"\n", args...)
}

// filterOptions converts the configured filters into validation options.
func (p *Processor) filterOptions() validation.Options {
	opts := validation.Options{Region: p.cfg.Filters.Region}
	if p.cfg.Filters.MinAmount != nil {
		min := decimal.NewFromFloat(*p.cfg.Filters.MinAmount)
		opts.MinAmount = &min
	}
	if p.cfg.Filters.MaxAmount != nil {
		max := decimal.NewFromFloat(*p.cfg.Filters.MaxAmount)
		opts.MaxAmount = &max
	}
	return opts
}

// readFeed picks the reader by extension: XLSX workbooks go through the
// workbook reader, everything else through the text reader with encoding
// fallback.
func readFeed(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsxfeed.ReadSalesData(path)
	}
	return utils.ReadSalesData(path)
}

// countMatches counts the enriched records that resolved against the
// catalog.
func countMatches(enriched []types.EnrichedTransaction) int {
	matched := 0
	for _, e := range enriched {
		if e.APIMatch {
			matched++
		}
	}
	return matched
}
