// =============================================================================
// Sales Analytics System - Main Entry Point
// =============================================================================
//
// USAGE:
//   salesanalytics process    - Run the analytics pipeline on the sales feed
//   salesanalytics filters    - Show filter options for a feed
//   salesanalytics version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : Core pipeline logic (not for external import)
//   - pkg/        : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/Prady0301/BITSOM-BA-DM2729294-Sales-Analytics-System/cmd"
)

func main() {
	cmd.Execute()
}
