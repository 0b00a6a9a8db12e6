// =============================================================================
// Sales Reporting Engine - Main Entry Point
// =============================================================================
//
// This is the main entry point for the sales reporting CLI. It initializes
// the Cobra CLI framework and delegates command execution to the cmd
// package.
//
// USAGE:
//   salesreport generate   - Generate the multi-sheet sales report
//   salesreport validate   - Validate the source workbook without writing
//   salesreport version    - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core business logic (not for external import)
//   - pkg/       : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/salesdesk/salesreport/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
