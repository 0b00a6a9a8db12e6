// =============================================================================
// Sales Reporting Engine - Report Generator
// =============================================================================
//
// This is the pipeline orchestrator: load & validate the source workbook,
// compute the aggregates, render the sheets, attach the charts, save.
//
// PROGRESS REPORTING:
//   Six sequential stages, each reported as (stage/6, message) through an
//   optional callback. The callback is best-effort: a nil callback is fine,
//   and correctness never depends on it being called. It is invoked
//   synchronously on the calling goroutine, so a UI embedding the pipeline
//   in a worker thread must marshal the pair onto its own event loop rather
//   than mutate foreground state from the callback.
//
// FAILURE BEHAVIOUR:
//   Errors from loading, aggregation or rendering propagate to the caller
//   with context; there are no retries. If saving fails midway the partial
//   output file is left in place.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/salesdesk/salesreport/internal/aggregate"
	"github.com/salesdesk/salesreport/internal/dataset"
	"github.com/salesdesk/salesreport/internal/locale"
)

// ProgressFunc receives pipeline progress: a fraction in (0, 1] that never
// decreases, and a human-readable message. May be nil.
type ProgressFunc func(fraction float64, message string)

// totalStages is the number of progress stages the pipeline reports.
const totalStages = 6

// Generate runs the full reporting pipeline: it reads the sales workbook at
// inputPath and writes the multi-sheet report to outputPath. progress may
// be nil.
func Generate(inputPath, outputPath string, progress ProgressFunc) error {
	report := func(stage int, message string) {
		logrus.WithField("stage", stage).Info(message)
		if progress != nil {
			progress(float64(stage)/totalStages, message)
		}
	}

	// Stage 1: load & validate.
	report(1, "Veri okunuyor...")
	table, err := dataset.Load(inputPath)
	if err != nil {
		return err
	}

	// Stage 2: record count.
	report(2, fmt.Sprintf("Toplam kayıt sayısı: %d", table.Len()))

	// Row subsets and their aggregates. All derived from the same loaded
	// table; no aggregate feeds into another.
	invoiced := table.Invoiced()
	notInvoiced := table.NotInvoiced()
	won := table.ForecastWon()

	segments := []struct {
		sheet  string
		pivot  *aggregate.Pivot
		totals []aggregate.SalespersonTotal
	}{
		{locale.SheetInvoiced, aggregate.PivotMonthSalesperson(invoiced, aggregate.CPI), aggregate.SalespersonTotals(invoiced, aggregate.CPI)},
		{locale.SheetNotInvoiced, aggregate.PivotMonthSalesperson(notInvoiced, aggregate.CPI), aggregate.SalespersonTotals(notInvoiced, aggregate.CPI)},
		{locale.SheetWon, aggregate.PivotMonthSalesperson(won, aggregate.CPI), aggregate.SalespersonTotals(won, aggregate.CPI)},
	}

	summary := aggregate.Summarize(table)
	salespeople := aggregate.SalespersonTotals(table.Rows, aggregate.CPI)

	// Stage 3: build the sheets.
	report(3, "Excel sayfaları hazırlanıyor...")

	f := excelize.NewFile()
	defer f.Close()

	// The summary dashboard takes over the default sheet so it comes first.
	if err := f.SetSheetName("Sheet1", locale.SheetSummary); err != nil {
		return fmt.Errorf("failed to initialise workbook: %w", err)
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return fmt.Errorf("failed to register styles: %w", err)
	}

	if err := writeSummarySheet(f, styles, summary, salespeople); err != nil {
		return fmt.Errorf("failed to build sheet %s: %w", locale.SheetSummary, err)
	}
	for _, segment := range segments {
		if err := writeSegmentSheet(f, styles, segment.sheet, segment.pivot, segment.totals); err != nil {
			return fmt.Errorf("failed to build sheet %s: %w", segment.sheet, err)
		}
	}
	if err := writeDetailSheet(f, styles, table); err != nil {
		return fmt.Errorf("failed to build sheet %s: %w", locale.SheetDetail, err)
	}

	// Stage 4: charts. excelize attaches charts to the in-memory workbook,
	// so the whole model is serialized in one save below — a crash can only
	// lose the file wholesale, never leave a chartless half-state.
	report(4, "Grafikler ekleniyor...")
	for _, segment := range segments {
		if err := attachChart(f, segment.sheet, segment.pivot); err != nil {
			return fmt.Errorf("failed to attach chart on %s: %w", segment.sheet, err)
		}
	}

	// Stage 5: finalize.
	report(5, "Rapor oluşturuldu.")
	if err := f.SaveAs(outputPath); err != nil {
		return &WriteError{Path: outputPath, Err: err}
	}

	// Stage 6: done.
	report(6, fmt.Sprintf("Rapor kaydedildi: %s", outputPath))

	logrus.WithFields(logrus.Fields{
		"records":      table.Len(),
		"invoiced":     len(invoiced),
		"not_invoiced": len(notInvoiced),
		"forecast_won": len(won),
	}).Info("report generated")

	return nil
}
