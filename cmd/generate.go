// =============================================================================
// Sales Reporting Engine - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which runs the full reporting
// pipeline: load the sales workbook, aggregate, render, save.
//
// COMMAND USAGE:
//   salesreport generate [input.xlsx] [output.xlsx] [flags]
//
// ARGUMENTS:
//   Both positional arguments are optional. The input defaults to the
//   configured source workbook; the output defaults to a timestamped file
//   name in the configured report directory.
//
// FLAGS:
//   --backup : Snapshot the input workbook into the backup directory
//              before reading it.
//
// The pipeline's progress callback drives a terminal progress bar; the bar
// is presentation only, the run succeeds or fails identically without it.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/salesdesk/salesreport/internal/report"
	"github.com/salesdesk/salesreport/pkg/utils"
)

// backupInput snapshots the input workbook before the run.
var backupInput bool

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate [input.xlsx] [output.xlsx]",
	Short: "Generate the multi-sheet sales report",
	Long: `The generate command reads the sales data workbook, normalizes and
aggregates it, and writes the report workbook:

  Özet Dashboard            - global CPI metrics and per-salesperson totals
  CPI Faturalanan Raporu    - invoiced pivot, totals and chart
  CPI Faturalanmayan Raporu - not-invoiced pivot, totals and chart
  CPI Kazanılan Raporu      - forecast-won pivot, totals and chart
  Detay Veri                - the full normalized row table

Cells that cannot be parsed (bad dates, malformed amounts) are treated as
missing and never abort the run; a missing required column does.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args)
	},
}

// =============================================================================
// MAIN GENERATION FUNCTION
// =============================================================================

// runGenerate resolves the input/output paths and runs the pipeline with a
// progress bar attached.
func runGenerate(args []string) error {
	inputPath := cfg.InputFile
	if len(args) > 0 {
		inputPath = args[0]
	}

	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	} else {
		if err := utils.EnsureDir(cfg.ReportDir); err != nil {
			return err
		}
		name := utils.ExpandNamePattern(cfg.OutputNamePattern, time.Now())
		outputPath = filepath.Join(cfg.ReportDir, name)
	}

	if backupInput {
		backupPath, err := utils.BackupCopy(inputPath, cfg.BackupDir)
		if err != nil {
			return fmt.Errorf("failed to back up input: %w", err)
		}
		fmt.Printf("Yedek oluşturuldu: %s\n", backupPath)
	}

	bar := newProgressBar()
	progress := func(fraction float64, message string) {
		bar.Describe(message)
		_ = bar.Set(int(fraction * 100))
	}

	if err := report.Generate(inputPath, outputPath, progress); err != nil {
		return err
	}

	_ = bar.Finish()
	fmt.Printf("\nRapor kaydedildi: %s\n", outputPath)
	return nil
}

// newProgressBar builds the terminal progress bar fed by the pipeline's
// progress callback.
func newProgressBar() *progressbar.ProgressBar {
	return progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Rapor hazırlanıyor..."),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(
		&backupInput,
		"backup",
		false,
		"Snapshot the input workbook into the backup directory before reading",
	)
}
