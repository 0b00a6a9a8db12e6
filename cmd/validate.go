// =============================================================================
// Sales Reporting Engine - Validate Command
// =============================================================================
//
// This file defines the 'validate' command: a loader-only dry run. It reads
// and normalizes the workbook exactly like 'generate' but writes nothing,
// reporting the row count and, per column, how many cells degraded to a
// missing value. Because per-cell coercion failures are silent by design,
// this is the operator's way to see them.
//
// COMMAND USAGE:
//   salesreport validate [input.xlsx]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salesdesk/salesreport/internal/aggregate"
	"github.com/salesdesk/salesreport/internal/dataset"
)

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate [input.xlsx]",
	Short: "Validate the sales workbook without generating a report",
	Long: `The validate command loads the sales data workbook through the same
loader the generate command uses, then reports what it found: the record
count, the segment sizes, and for each date and monetary column the number
of cells that could not be parsed and were treated as missing.

A missing required column fails validation with the full list of missing
columns.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := cfg.InputFile
		if len(args) > 0 {
			inputPath = args[0]
		}
		return runValidate(inputPath)
	},
}

// =============================================================================
// VALIDATION REPORT
// =============================================================================

// runValidate loads the workbook and prints the normalization report.
func runValidate(inputPath string) error {
	table, err := dataset.Load(inputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Dosya: %s\n", inputPath)
	fmt.Printf("Toplam kayıt sayısı: %d\n", table.Len())
	fmt.Printf("Faturalanan: %d, Faturalanmayan: %d, Kazanılan: %d\n",
		len(table.Invoiced()), len(table.NotInvoiced()), len(table.ForecastWon()))

	gaps := countGaps(table)
	clean := true
	for _, column := range append(append([]string{}, dataset.DateColumns...), dataset.CurrencyColumns...) {
		if gaps[column] > 0 {
			fmt.Printf("  %-20s %d eksik değer\n", column, gaps[column])
			clean = false
		}
	}
	if clean {
		fmt.Println("Tüm değerler başarıyla ayrıştırıldı.")
	}

	if monthly := aggregate.MonthlyTotals(table.Rows, aggregate.CPI); len(monthly) > 0 {
		fmt.Println("Aylık CPI toplamları:")
		for _, entry := range monthly {
			fmt.Printf("  %-15s %.2f\n", entry.MonthYear, entry.Total)
		}
	}
	return nil
}

// countGaps counts missing values per normalized column.
func countGaps(table *dataset.Table) map[string]int {
	gaps := make(map[string]int)
	for i := range table.Rows {
		row := &table.Rows[i]

		dates := map[string]dataset.Date{
			dataset.ColDateOfRequest:  row.RequestDate,
			dataset.ColDateOfIssue:    row.IssueDate,
			dataset.ColDateOfDelivery: row.DeliveryDate,
		}
		for column, d := range dates {
			if !d.Valid {
				gaps[column]++
			}
		}

		amounts := map[string]dataset.Money{
			dataset.ColAmount:         row.Amount,
			dataset.ColTotalDiscount:  row.TotalDiscount,
			dataset.ColCPI:            row.CPI,
			dataset.ColCPS:            row.CPS,
			dataset.ColInvoicedAmount: row.InvoicedAmount,
		}
		for column, m := range amounts {
			if !m.Valid {
				gaps[column]++
			}
		}
	}
	return gaps
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(validateCmd)
}
