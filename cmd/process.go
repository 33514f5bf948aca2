// =============================================================================
// Sales Analytics System - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the full analytics
// pipeline for one sales feed.
//
// COMMAND USAGE:
//   salesanalytics process [flags]
//
// FLAGS:
//   --input            : Sales feed to process (overrides the config)
//   --region           : Keep only transactions from this region
//   --min-amount       : Exclude transactions below this amount
//   --max-amount       : Exclude transactions above this amount
//   --top              : Ranking depth for the product/customer tables
//   --skip-enrichment  : Skip the catalog fetch entirely
//   --dry-run          : Run the pipeline without writing output files
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/catalog"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/config"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/logger"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/processor"
)

var (
	inputFile      string
	filterRegion   string
	minAmount      float64
	maxAmount      float64
	topN           int
	skipEnrichment bool
	dryRun         bool
)

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a sales feed and generate the analytics report",
	Long: `The process command reads the configured sales feed, validates and
optionally filters the transactions, enriches them against the remote
product catalog, writes the enriched dataset, and generates the analytics
report.

Recoverable problems (malformed lines, invalid records, an unreachable
catalog) never abort the run; they are reflected in the run summary. Only
an unreadable feed or a failed output write aborts.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd)
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&inputFile, "input", "", "Sales feed to process (overrides the config)")
	processCmd.Flags().StringVar(&filterRegion, "region", "", "Keep only transactions from this region")
	processCmd.Flags().Float64Var(&minAmount, "min-amount", 0, "Exclude transactions with amount strictly below this bound")
	processCmd.Flags().Float64Var(&maxAmount, "max-amount", 0, "Exclude transactions with amount strictly above this bound")
	processCmd.Flags().IntVar(&topN, "top", 0, "Ranking depth for the product/customer tables (overrides the config)")
	processCmd.Flags().BoolVar(&skipEnrichment, "skip-enrichment", false, "Skip the catalog fetch; records carry no-match defaults")
	processCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the pipeline without writing output files")
}

// runProcess loads the configuration, applies flag overrides and executes
// one pipeline run.
func runProcess(cmd *cobra.Command) error {
	fmt.Println("========================================")
	fmt.Println("SALES ANALYTICS SYSTEM")
	fmt.Println("========================================")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyProcessOverrides(cmd, cfg)

	level := logger.ParseLevel(cfg.LogLevel)
	if verbose {
		level = logger.ParseLevel("debug")
	}
	log := logger.New(level)

	client := catalog.NewClient(
		cfg.Catalog.BaseURL,
		cfg.Catalog.Limit,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
		log,
	)

	proc := processor.New(cfg, client, log)
	proc.Progress = os.Stdout

	result := proc.Run(processor.RunOptions{
		SkipEnrichment: skipEnrichment,
		DryRun:         dryRun,
	})

	if !result.Success {
		fmt.Println("\n✗ The run did not complete.")
		return result.Error
	}

	fmt.Println("\n=== Run Complete ===")
	fmt.Printf("Lines read:      %d\n", result.Stats.LinesRead)
	fmt.Printf("Parsed:          %d (%d dropped)\n", result.Stats.Parsed, result.Stats.Dropped)
	fmt.Printf("Valid:           %d (%d invalid)\n", result.Stats.Valid, result.Stats.Invalid)
	if result.Stats.FilteredByRegion > 0 || result.Stats.FilteredByAmount > 0 {
		fmt.Printf("Filtered:        %d by region, %d by amount\n",
			result.Stats.FilteredByRegion, result.Stats.FilteredByAmount)
	}
	fmt.Printf("Enriched:        %d/%d (%.1f%%)\n",
		result.Stats.Matched, result.Stats.Valid, result.Stats.SuccessRate)
	fmt.Printf("Time elapsed:    %s\n", result.Stats.Duration.Round(time.Millisecond))
	return nil
}

// applyProcessOverrides copies set flags over the loaded configuration.
func applyProcessOverrides(cmd *cobra.Command, cfg *config.Config) {
	if inputFile != "" {
		cfg.InputFile = inputFile
	}
	if filterRegion != "" {
		cfg.Filters.Region = filterRegion
	}
	// Zero is a legitimate bound, so presence is flag-change based.
	if cmd.Flags().Changed("min-amount") {
		v := minAmount
		cfg.Filters.MinAmount = &v
	}
	if cmd.Flags().Changed("max-amount") {
		v := maxAmount
		cfg.Filters.MaxAmount = &v
	}
	if topN > 0 {
		cfg.Report.TopN = topN
	}
}
