// =============================================================================
// Sales Reporting Engine - Report Renderer
// =============================================================================
//
// This module lays the computed tables out on the report workbook's sheets
// and attaches charts to the segment report sheets.
//
// LAYOUT:
//   Tables are written as header + body grids at a (row, col) offset. When
//   two tables share a sheet the second one starts below the first with a
//   fixed gap, so nothing is overwritten. Each region gets the header fill,
//   borders and label alignment from styles.go.
//
// CHARTS:
//   Each segment sheet whose pivot has at least one salesperson column gets
//   a chart anchored at H2: a line chart for up to two salesperson series,
//   a clustered column chart beyond that. Series values reference the
//   pivot's numeric columns (header row included as series title) and
//   categories reference the MonthYear label column. An empty pivot gets no
//   chart.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/salesdesk/salesreport/internal/aggregate"
	"github.com/salesdesk/salesreport/internal/dataset"
	"github.com/salesdesk/salesreport/internal/locale"
)

// tableGap is the number of blank rows between stacked tables on a sheet.
const tableGap = 2

// chartAnchor is the cell the segment charts are anchored at.
const chartAnchor = "H2"

// dateFormat renders dates the same way the data-entry tool writes them,
// so the detail sheet can be re-loaded losslessly.
const dateFormat = "02.01.2006"

// =============================================================================
// TABLE WRITER
// =============================================================================

// writeTable writes a header+body grid to a sheet with its top-left corner
// at (startRow, startCol), both 1-based, then styles the region. It returns
// the last row written.
func writeTable(f *excelize.File, styles *styleSet, sheet string, startRow, startCol int, header []string, body [][]interface{}) (int, error) {
	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}

	anchor, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return 0, err
	}
	if err := f.SetSheetRow(sheet, anchor, &headerCells); err != nil {
		return 0, err
	}

	for i, row := range body {
		anchor, err := excelize.CoordinatesToCellName(startCol, startRow+1+i)
		if err != nil {
			return 0, err
		}
		if err := f.SetSheetRow(sheet, anchor, &row); err != nil {
			return 0, err
		}
	}

	endRow := startRow + len(body)
	endCol := startCol + len(header) - 1
	if err := styles.apply(f, sheet, startRow, startCol, endRow, endCol); err != nil {
		return 0, err
	}
	return endRow, nil
}

// =============================================================================
// SHEET BUILDERS
// =============================================================================

// writeSummarySheet writes the dashboard: the global metrics table followed
// by the per-salesperson CPI totals.
func writeSummarySheet(f *excelize.File, styles *styleSet, summary aggregate.Summary, totals []aggregate.SalespersonTotal) error {
	sheet := locale.SheetSummary
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	metrics := [][]interface{}{
		{"Toplam CPI", summary.TotalCPI},
		{"Faturalanan CPI", summary.InvoicedCPI},
		{"Faturalanmayan CPI", summary.NotInvoicedCPI},
		{"Kazanılan CPI", summary.WonCPI},
		{"Satış Elemanı Sayısı", summary.SalespersonCount},
		{"Aylık Ortalama CPI", summary.MonthlyAverageCPI},
	}

	endRow, err := writeTable(f, styles, sheet, 1, 1, []string{"Metrik", "Değer"}, metrics)
	if err != nil {
		return err
	}

	_, err = writeTable(f, styles, sheet, endRow+tableGap+1, 1,
		[]string{dataset.ColSalesMan, dataset.ColCPI}, salespersonBody(totals))
	return err
}

// writeSegmentSheet writes one "<Segment> Raporu" sheet: the month x
// salesperson pivot with the salesperson totals table below it. It returns
// the pivot so the chart pass can reference its dimensions.
func writeSegmentSheet(f *excelize.File, styles *styleSet, sheet string, pivot *aggregate.Pivot, totals []aggregate.SalespersonTotal) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := append([]string{"MonthYear"}, pivot.SalesMen...)
	body := make([][]interface{}, len(pivot.MonthYears))
	for i, monthYear := range pivot.MonthYears {
		row := make([]interface{}, 1+len(pivot.SalesMen))
		row[0] = monthYear
		for j, v := range pivot.Cells[i] {
			row[1+j] = v
		}
		body[i] = row
	}

	endRow, err := writeTable(f, styles, sheet, 1, 1, header, body)
	if err != nil {
		return err
	}

	_, err = writeTable(f, styles, sheet, endRow+tableGap+1, 1,
		[]string{dataset.ColSalesMan, dataset.ColCPI}, salespersonBody(totals))
	return err
}

func salespersonBody(totals []aggregate.SalespersonTotal) [][]interface{} {
	body := make([][]interface{}, len(totals))
	for i, t := range totals {
		body[i] = []interface{}{t.SalesMan, t.Total}
	}
	return body
}

// writeDetailSheet writes the entire normalized table verbatim, including
// the derived calendar columns, to the detail sheet. Missing dates and
// amounts are left as blank cells so a reload reproduces the same gaps.
func writeDetailSheet(f *excelize.File, styles *styleSet, table *dataset.Table) error {
	sheet := locale.SheetDetail
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := append(append([]string{}, dataset.RequiredColumns...),
		"Year", "MonthNumber", "MonthName", "MonthYear")

	body := make([][]interface{}, len(table.Rows))
	for i := range table.Rows {
		body[i] = detailRow(&table.Rows[i])
	}

	_, err := writeTable(f, styles, sheet, 1, 1, header, body)
	return err
}

// detailRow flattens a Row into cells in RequiredColumns order, followed by
// the derived attributes.
func detailRow(r *dataset.Row) []interface{} {
	invoiced := "NO"
	if r.Invoiced {
		invoiced = "YES"
	}

	cells := []interface{}{
		detailDate(r.RequestDate),
		detailDate(r.IssueDate),
		detailDate(r.DeliveryDate),
		r.SalesMan,
		r.CustomerName,
		r.CustomerDONo,
		r.Definition,
		r.SalesTicketRef,
		r.SONo,
		r.PONo,
		detailMoney(r.Amount),
		detailMoney(r.TotalDiscount),
		detailMoney(r.CPI),
		detailMoney(r.CPS),
		r.QIForecast,
		r.DeliveryNote,
		invoiced,
		detailMoney(r.InvoicedAmount),
	}

	if r.HasMonth() {
		return append(cells, r.Year, r.MonthNumber, r.MonthName, r.MonthYear)
	}
	return append(cells, nil, nil, nil, nil)
}

func detailDate(d dataset.Date) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Time.Format(dateFormat)
}

func detailMoney(m dataset.Money) interface{} {
	if !m.Valid {
		return nil
	}
	return m.Value
}

// =============================================================================
// CHARTS
// =============================================================================

// attachChart adds the segment chart for a pivot sheet. A pivot with no
// salesperson columns is skipped. Up to two salesperson series get a line
// chart; more get a clustered column chart.
func attachChart(f *excelize.File, sheet string, pivot *aggregate.Pivot) error {
	if len(pivot.SalesMen) == 0 {
		return nil
	}

	chartType := excelize.Line
	if pivot.ColumnCount() > 3 {
		chartType = excelize.Col
	}

	lastRow := pivot.RowCount()
	series := make([]excelize.ChartSeries, 0, len(pivot.SalesMen))
	for j := range pivot.SalesMen {
		column, err := excelize.ColumnNumberToName(2 + j)
		if err != nil {
			return err
		}
		series = append(series, excelize.ChartSeries{
			// Header cell of the salesperson column names the series.
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, column),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, lastRow),
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, column, column, lastRow),
		})
	}

	chart := &excelize.Chart{
		Type:   chartType,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: locale.ChartTitle(sheet)}},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Ay"}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "CPI"}}},
		Legend: excelize.ChartLegend{Position: "right"},
		Dimension: excelize.ChartDimension{
			Width:  640,
			Height: 360,
		},
	}

	return f.AddChart(sheet, chartAnchor, chart)
}
