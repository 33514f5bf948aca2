// =============================================================================
// Sales Analytics System - Configuration Module
// =============================================================================
//
// This package loads and manages the application configuration from a single
// YAML file. Defaults are applied in code after parsing, so a minimal (or
// absent) config file still yields a fully usable configuration, and the
// output directory is created on load.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// FILE SETTINGS
	// =========================================================================

	// InputFile is the sales feed to process. Both the pipe-delimited
	// text format and XLSX workbooks are accepted; the reader is chosen
	// by extension.
	// Default: "data/sales_data.txt"
	InputFile string `yaml:"input_file"`

	// OutputDir is the directory where the report and the enriched
	// dataset are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is the directory where processed feeds are moved
	// when ArchiveOnSuccess is set.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// ArchiveOnSuccess moves the input feed to the archive directory
	// after a fully successful run.
	// Default: false
	ArchiveOnSuccess bool `yaml:"archive_on_success"`

	// ReportFileFormat is the report file name. Supports {uuid} and
	// {timestamp} placeholders.
	// Default: "sales_report.txt"
	ReportFileFormat string `yaml:"report_file_format"`

	// EnrichedFileFormat is the enriched dataset file name. Supports the
	// same placeholders.
	// Default: "enriched_sales_data.txt"
	EnrichedFileFormat string `yaml:"enriched_file_format"`

	// =========================================================================
	// CATALOG SETTINGS
	// =========================================================================

	Catalog CatalogSettings `yaml:"catalog"`

	// =========================================================================
	// FILTER SETTINGS
	// =========================================================================

	Filters FilterSettings `yaml:"filters"`

	// =========================================================================
	// REPORT SETTINGS
	// =========================================================================

	Report ReportSettings `yaml:"report"`

	// LogLevel controls structured-log verbosity.
	// Valid values: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// CatalogSettings configures the remote product catalog collaborator.
type CatalogSettings struct {
	// BaseURL is the catalog service base URL.
	// Default: "https://dummyjson.com"
	BaseURL string `yaml:"base_url"`

	// Limit is the page size requested from the service.
	// Default: 100
	Limit int `yaml:"limit"`

	// TimeoutSeconds bounds the single catalog request. A failed or
	// timed-out fetch degrades to zero enrichment coverage; it is never
	// retried.
	// Default: 10
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// FilterSettings configures the optional validation-stage filters.
// Absent values mean "no filter".
type FilterSettings struct {
	// Region keeps only transactions from this region (exact match).
	Region string `yaml:"region"`

	// MinAmount excludes transactions with amount strictly below it.
	MinAmount *float64 `yaml:"min_amount"`

	// MaxAmount excludes transactions with amount strictly above it.
	MaxAmount *float64 `yaml:"max_amount"`
}

// ReportSettings configures the report layout parameters.
type ReportSettings struct {
	// TopN is the ranking depth for the product and customer tables.
	// Default: 5
	TopN int `yaml:"top_n"`

	// LowPerformerMaxQty is the quantity threshold below which a product
	// is listed as a low performer.
	// Default: 5
	LowPerformerMaxQty int `yaml:"low_performer_max_qty"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file and applies defaults. A
// missing file is not an error: the defaults are returned, matching the
// zero-setup happy path.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// The defaults still go through validation so the output
			// directory exists for the zero-setup happy path.
			cfg := Default()
			if err := validate(cfg); err != nil {
				return nil, fmt.Errorf("invalid configuration: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = "data/sales_data.txt"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.InputArchiveDir == "" {
		cfg.InputArchiveDir = "./input_archive"
	}
	if cfg.ReportFileFormat == "" {
		cfg.ReportFileFormat = "sales_report.txt"
	}
	if cfg.EnrichedFileFormat == "" {
		cfg.EnrichedFileFormat = "enriched_sales_data.txt"
	}
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = "https://dummyjson.com"
	}
	if cfg.Catalog.Limit == 0 {
		cfg.Catalog.Limit = 100
	}
	if cfg.Catalog.TimeoutSeconds == 0 {
		cfg.Catalog.TimeoutSeconds = 10
	}
	if cfg.Report.TopN == 0 {
		cfg.Report.TopN = 5
	}
	if cfg.Report.LowPerformerMaxQty == 0 {
		cfg.Report.LowPerformerMaxQty = 5
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks the configuration and creates the output directory.
func validate(cfg *Config) error {
	if cfg.Catalog.Limit < 0 {
		return fmt.Errorf("catalog limit must not be negative")
	}
	if cfg.Report.TopN < 0 {
		return fmt.Errorf("report top_n must not be negative")
	}

	if _, err := os.Stat(cfg.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
		}
	}

	return nil
}
