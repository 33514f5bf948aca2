// =============================================================================
// Sales Analytics System - Filters Command
// =============================================================================
//
// This file defines the 'filters' command, which shows the filter values
// that make sense for a given feed (the distinct regions, and the line
// amount range). It replaces the legacy interactive filter prompt: instead
// of being asked mid-run, the user inspects the feed first and then passes
// --region / --min-amount / --max-amount to 'process'.
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/config"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/salesparser"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/internal/validation"
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/pkg/utils"
)

var filtersInputFile string

// filtersCmd represents the 'filters' command.
var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the filter options available for a sales feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilters()
	},
}

func init() {
	rootCmd.AddCommand(filtersCmd)

	filtersCmd.Flags().StringVar(&filtersInputFile, "input", "", "Sales feed to inspect (overrides the config)")
}

func runFilters() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if filtersInputFile != "" {
		cfg.InputFile = filtersInputFile
	}

	lines, err := utils.ReadSalesData(cfg.InputFile)
	if err != nil {
		return err
	}
	parsed, _ := salesparser.ParseLines(lines)

	fmt.Println("Filter Options Available:")
	fmt.Printf("Regions: %s\n", strings.Join(validation.AvailableRegions(parsed), ", "))

	if min, max, ok := validation.AmountRange(parsed); ok {
		fmt.Printf("Amount Range: ₹%s - ₹%s\n", min.StringFixed(0), max.StringFixed(0))
	} else {
		fmt.Println("Amount Range: no parseable transactions")
	}
	return nil
}
