// =============================================================================
// Sales Analytics System - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (salesanalytics)
//   ├── processCmd (salesanalytics process)
//   ├── filtersCmd (salesanalytics filters)
//   └── versionCmd (salesanalytics version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug-level structured logging.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "salesanalytics",
	Short: "Sales Analytics System - turn a raw sales feed into an enriched dataset and report",

	Long: `Sales Analytics System ingests a pipe-delimited (or XLSX) sales
transaction feed, validates and optionally filters it, enriches each record
with product metadata from a remote catalog, and produces a fixed-format
analytics report plus a persisted enriched dataset.

Example Usage:
  salesanalytics process                       # Process the configured feed
  salesanalytics process --input feed.txt      # Process a specific feed
  salesanalytics process --region North        # Keep only one region
  salesanalytics filters --input feed.txt      # Show available filter values`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}
