package report

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/salesdesk/salesreport/internal/dataset"
	"github.com/salesdesk/salesreport/internal/locale"
)

// =============================================================================
// FIXTURES
// =============================================================================

// fixtureRow is one raw workbook row keyed by column header.
type fixtureRow map[string]interface{}

// baseRow returns a complete raw row; callers override what they need.
func baseRow() fixtureRow {
	return fixtureRow{
		dataset.ColDateOfRequest:  "01.01.2024",
		dataset.ColDateOfIssue:    "15.01.2024",
		dataset.ColDateOfDelivery: "01.03.2024",
		dataset.ColSalesMan:       "Fatih Aykut",
		dataset.ColCustomerName:   "Acme A.Ş.",
		dataset.ColCustomerDONo:   "DO-1",
		dataset.ColDefinition:     "Servis",
		dataset.ColSalesTicketRef: "ST-1",
		dataset.ColSONo:           "SO-1",
		dataset.ColPONo:           "PO-1",
		dataset.ColAmount:         1000.0,
		dataset.ColTotalDiscount:  0.0,
		dataset.ColCPI:            800.0,
		dataset.ColCPS:            200.0,
		dataset.ColQIForecast:     "NO",
		dataset.ColDeliveryNote:   "",
		dataset.ColInvoiced:       "no",
		dataset.ColInvoicedAmount: "",
	}
}

// writeInput writes a source workbook with the given rows and the given
// header (defaults to the full required column list when nil).
func writeInput(t *testing.T, header []string, rows []fixtureRow) string {
	t.Helper()
	if header == nil {
		header = dataset.RequiredColumns
	}

	f := excelize.NewFile()
	defer f.Close()

	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headerCells))

	for i, row := range rows {
		cells := make([]interface{}, len(header))
		for j, column := range header {
			cells[j] = row[column]
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", anchor, &cells))
	}

	path := filepath.Join(t.TempDir(), "sales_data_master.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// threeRowFixture is the canonical end-to-end scenario: one invoiced row
// (CPI 800), one open row (CPI 500) and one forecast-won row without a CPI
// value.
func threeRowFixture(t *testing.T) string {
	invoiced := baseRow()
	invoiced[dataset.ColInvoiced] = "yes"
	invoiced[dataset.ColInvoicedAmount] = 800.0

	open := baseRow()
	open[dataset.ColDateOfIssue] = "20.02.2024"
	open[dataset.ColSalesMan] = "Ridvan Yasar"
	open[dataset.ColAmount] = 500.0
	open[dataset.ColCPS] = 0.0
	open[dataset.ColCPI] = 500.0

	won := baseRow()
	won[dataset.ColDateOfIssue] = "10.03.2024"
	won[dataset.ColSalesMan] = "Rami Sakin"
	won[dataset.ColQIForecast] = "YES"
	won[dataset.ColAmount] = ""
	won[dataset.ColCPI] = ""
	won[dataset.ColCPS] = ""

	return writeInput(t, nil, []fixtureRow{invoiced, open, won})
}

func cellFloat(t *testing.T, f *excelize.File, sheet, cell string) float64 {
	t.Helper()
	raw, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	v, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err, "cell %s!%s = %q", sheet, cell, raw)
	return v
}

// =============================================================================
// END-TO-END
// =============================================================================

func TestGenerateEndToEnd(t *testing.T) {
	inputPath := threeRowFixture(t)
	outputPath := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, Generate(inputPath, outputPath, nil))

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		locale.SheetSummary,
		locale.SheetInvoiced,
		locale.SheetNotInvoiced,
		locale.SheetWon,
		locale.SheetDetail,
	}, f.GetSheetList())

	// Summary dashboard metrics.
	assert.InDelta(t, 1300, cellFloat(t, f, locale.SheetSummary, "B2"), 1e-9, "total CPI")
	assert.InDelta(t, 800, cellFloat(t, f, locale.SheetSummary, "B3"), 1e-9, "invoiced CPI")
	assert.InDelta(t, 500, cellFloat(t, f, locale.SheetSummary, "B4"), 1e-9, "not-invoiced CPI")
	assert.InDelta(t, 0, cellFloat(t, f, locale.SheetSummary, "B5"), 1e-9, "won CPI is the sum of QI Forecast=YES rows")
	assert.InDelta(t, 3, cellFloat(t, f, locale.SheetSummary, "B6"), 1e-9, "distinct salespeople")

	// Three active months -> average is total/3.
	assert.InDelta(t, 1300.0/3.0, cellFloat(t, f, locale.SheetSummary, "B7"), 1e-9)

	// Invoiced segment pivot: single month, single salesperson.
	monthYear, err := f.GetCellValue(locale.SheetInvoiced, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024 Ocak", monthYear)
	assert.InDelta(t, 800, cellFloat(t, f, locale.SheetInvoiced, "B2"), 1e-9)
}

func TestGenerateProgressStages(t *testing.T) {
	inputPath := threeRowFixture(t)
	outputPath := filepath.Join(t.TempDir(), "report.xlsx")

	type call struct {
		fraction float64
		message  string
	}
	var calls []call
	require.NoError(t, Generate(inputPath, outputPath, func(fraction float64, message string) {
		calls = append(calls, call{fraction, message})
	}))

	require.Len(t, calls, totalStages)
	for i, c := range calls {
		assert.NotEmpty(t, c.message)
		if i > 0 {
			assert.GreaterOrEqual(t, c.fraction, calls[i-1].fraction, "fractions are monotonic non-decreasing")
		}
	}
	assert.InDelta(t, 1.0/totalStages, calls[0].fraction, 1e-9)
	assert.InDelta(t, 1.0, calls[len(calls)-1].fraction, 1e-9)
	assert.Contains(t, calls[1].message, "3", "stage two reports the record count")
	assert.Contains(t, calls[len(calls)-1].message, outputPath)
}

func TestGenerateMissingColumnProducesNoOutput(t *testing.T) {
	var header []string
	for _, column := range dataset.RequiredColumns {
		if column != dataset.ColAmount {
			header = append(header, column)
		}
	}
	inputPath := writeInput(t, header, []fixtureRow{baseRow()})
	outputPath := filepath.Join(t.TempDir(), "report.xlsx")

	err := Generate(inputPath, outputPath, nil)
	require.Error(t, err)

	var validationErr *dataset.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), dataset.ColAmount)

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr), "a validation failure must not leave an output file")
}

func TestGenerateInputNotFound(t *testing.T) {
	err := Generate(filepath.Join(t.TempDir(), "missing.xlsx"), filepath.Join(t.TempDir(), "out.xlsx"), nil)
	assert.ErrorIs(t, err, dataset.ErrInputNotFound)
}

// =============================================================================
// ROUND TRIP
// =============================================================================

// Normalizing already-normalized data is a no-op: re-loading the detail
// sheet of a generated report yields the same values as the original load.
func TestGenerateDetailSheetRoundTrips(t *testing.T) {
	inputPath := threeRowFixture(t)
	outputPath := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, Generate(inputPath, outputPath, nil))

	original, err := dataset.Load(inputPath)
	require.NoError(t, err)

	reloaded, err := dataset.Load(extractDetailSheet(t, outputPath))
	require.NoError(t, err)

	require.Equal(t, original.Len(), reloaded.Len())
	for i := range original.Rows {
		want, got := original.Rows[i], reloaded.Rows[i]

		assert.Equal(t, want.IssueDate, got.IssueDate, "row %d", i)
		assert.Equal(t, want.SalesMan, got.SalesMan, "row %d", i)
		assert.Equal(t, want.Amount.Valid, got.Amount.Valid, "row %d", i)
		assert.InDelta(t, want.Amount.Value, got.Amount.Value, 1e-9, "row %d", i)
		assert.Equal(t, want.CPI.Valid, got.CPI.Valid, "row %d", i)
		assert.InDelta(t, want.CPI.Value, got.CPI.Value, 1e-9, "row %d", i)
		assert.Equal(t, want.Invoiced, got.Invoiced, "row %d", i)
		assert.Equal(t, want.QIForecast, got.QIForecast, "row %d", i)
		assert.Equal(t, want.MonthYear, got.MonthYear, "row %d", i)
	}
}

// extractDetailSheet copies the report's detail sheet into a fresh
// single-sheet workbook so the loader (which reads the first sheet) can
// consume it.
func extractDetailSheet(t *testing.T, reportPath string) string {
	t.Helper()

	f, err := excelize.OpenFile(reportPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(locale.SheetDetail)
	require.NoError(t, err)

	out := excelize.NewFile()
	defer out.Close()
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, value := range row {
			cells[j] = value
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, out.SetSheetRow("Sheet1", anchor, &cells))
	}

	path := filepath.Join(t.TempDir(), "detail.xlsx")
	require.NoError(t, out.SaveAs(path))
	return path
}
