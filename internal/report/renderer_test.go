package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/salesdesk/salesreport/internal/aggregate"
	"github.com/salesdesk/salesreport/internal/dataset"
)

func newTestWorkbook(t *testing.T) (*excelize.File, *styleSet) {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	styles, err := newStyleSet(f)
	require.NoError(t, err)
	return f, styles
}

func TestWriteTableAtOffset(t *testing.T) {
	f, styles := newTestWorkbook(t)

	endRow, err := writeTable(f, styles, "Sheet1", 3, 2,
		[]string{"Ad", "Tutar"},
		[][]interface{}{
			{"A", 10.0},
			{"B", 20.0},
		})
	require.NoError(t, err)
	assert.Equal(t, 5, endRow)

	header, err := f.GetCellValue("Sheet1", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Ad", header)

	value, err := f.GetCellValue("Sheet1", "C5")
	require.NoError(t, err)
	assert.Equal(t, "20", value)

	// The offset leaves the rows above untouched.
	blank, err := f.GetCellValue("Sheet1", "B2")
	require.NoError(t, err)
	assert.Empty(t, blank)
}

func TestWriteSegmentSheetStacksTables(t *testing.T) {
	f, styles := newTestWorkbook(t)

	pivot := &aggregate.Pivot{
		MonthYears: []string{"2024 Ocak", "2024 Şubat"},
		SalesMen:   []string{"A"},
		Cells:      [][]float64{{100}, {200}},
	}
	totals := []aggregate.SalespersonTotal{{SalesMan: "A", Total: 300}}

	require.NoError(t, writeSegmentSheet(f, styles, "Segment", pivot, totals))

	// Pivot occupies rows 1-3; the totals table starts after the gap.
	label, err := f.GetCellValue("Segment", "A1")
	require.NoError(t, err)
	assert.Equal(t, "MonthYear", label)

	totalsHeader, err := f.GetCellValue("Segment", "A6")
	require.NoError(t, err)
	assert.Equal(t, dataset.ColSalesMan, totalsHeader)

	totalsValue, err := f.GetCellValue("Segment", "B7")
	require.NoError(t, err)
	assert.Equal(t, "300", totalsValue)
}

func TestAttachChartSkipsEmptyPivot(t *testing.T) {
	f, _ := newTestWorkbook(t)

	empty := &aggregate.Pivot{}
	assert.NoError(t, attachChart(f, "Sheet1", empty), "an empty pivot skips chart creation instead of failing")
}

func TestAttachChartWithSeries(t *testing.T) {
	f, styles := newTestWorkbook(t)

	pivot := &aggregate.Pivot{
		MonthYears: []string{"2024 Ocak", "2024 Şubat"},
		SalesMen:   []string{"A", "B", "C"},
		Cells:      [][]float64{{1, 2, 3}, {4, 5, 6}},
	}
	require.NoError(t, writeSegmentSheet(f, styles, "Segment", pivot, nil))
	assert.NoError(t, attachChart(f, "Segment", pivot))
}

func TestDetailRowRendersGapsAsBlank(t *testing.T) {
	row := &dataset.Row{
		SalesMan: "A",
		Amount:   dataset.Money{Value: 100, Valid: true},
	}

	cells := detailRow(row)
	require.Len(t, cells, len(dataset.RequiredColumns)+4)

	assert.Nil(t, cells[0], "missing request date is a blank cell")
	assert.Nil(t, cells[12], "missing CPI is a blank cell")
	assert.Equal(t, 100.0, cells[10])
	assert.Equal(t, "NO", cells[16])
	assert.Nil(t, cells[len(cells)-1], "missing MonthYear stays blank")
}
