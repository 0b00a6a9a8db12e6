// =============================================================================
// Sales Reporting Engine - Aggregation Engine
// =============================================================================
//
// Pure, side-effect-free aggregations over a normalized row set. Each
// operation takes a row subset (all / invoiced / not invoiced / forecast
// won — selected by the caller) and a value selector that picks the
// monetary column to sum.
//
// MISSING VALUE SEMANTICS:
//   - A missing monetary value contributes zero to every sum.
//   - A row without month attributes is excluded from month-keyed grouping
//     (it has no key to group under) but still counts for salesperson
//     totals and the global summary.
//
// ORDERING:
//   - Monthly totals and pivot rows are sorted by (Year, MonthNumber), true
//     chronological order. Sorting the display label lexically would
//     misorder across year boundaries and across Turkish month names.
//   - Salesperson totals are sorted descending by total with a stable sort,
//     so ties keep their first-appearance order.
//
// =============================================================================

package aggregate

import (
	"sort"

	"github.com/salesdesk/salesreport/internal/dataset"
	"github.com/salesdesk/salesreport/internal/locale"
)

// =============================================================================
// VALUE SELECTORS
// =============================================================================

// ValueFunc picks the monetary field an aggregation sums over.
type ValueFunc func(*dataset.Row) dataset.Money

// Standard selectors for the report's value columns.
var (
	CPI            ValueFunc = func(r *dataset.Row) dataset.Money { return r.CPI }
	CPS            ValueFunc = func(r *dataset.Row) dataset.Money { return r.CPS }
	Amount         ValueFunc = func(r *dataset.Row) dataset.Money { return r.Amount }
	InvoicedAmount ValueFunc = func(r *dataset.Row) dataset.Money { return r.InvoicedAmount }
)

// Sum totals the selected value over rows; missing values count as zero.
func Sum(rows []dataset.Row, value ValueFunc) float64 {
	var total float64
	for i := range rows {
		if m := value(&rows[i]); m.Valid {
			total += m.Value
		}
	}
	return total
}

// =============================================================================
// MONTHLY TOTALS
// =============================================================================

// MonthlyTotal is the summed value of one calendar month.
type MonthlyTotal struct {
	Year        int
	MonthNumber int
	MonthName   string
	MonthYear   string
	Total       float64
}

// MonthlyTotals groups rows by calendar month and sums the selected value.
// Rows without month attributes are dropped. The result is sorted ascending
// by (Year, MonthNumber).
func MonthlyTotals(rows []dataset.Row, value ValueFunc) []MonthlyTotal {
	totals := make(map[string]*MonthlyTotal)
	order := make([]string, 0)

	for i := range rows {
		row := &rows[i]
		if !row.HasMonth() {
			continue
		}
		entry, ok := totals[row.MonthYear]
		if !ok {
			entry = &MonthlyTotal{
				Year:        row.Year,
				MonthNumber: row.MonthNumber,
				MonthName:   row.MonthName,
				MonthYear:   row.MonthYear,
			}
			totals[row.MonthYear] = entry
			order = append(order, row.MonthYear)
		}
		if m := value(row); m.Valid {
			entry.Total += m.Value
		}
	}

	result := make([]MonthlyTotal, 0, len(order))
	for _, key := range order {
		result = append(result, *totals[key])
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].MonthNumber < result[j].MonthNumber
	})
	return result
}

// =============================================================================
// SALESPERSON TOTALS
// =============================================================================

// SalespersonTotal is the summed value of one salesperson.
type SalespersonTotal struct {
	SalesMan string
	Total    float64
}

// SalespersonTotals groups rows by salesperson and sums the selected value,
// sorted descending by total. The sort is stable: equal totals keep the
// order in which the salespeople first appear in the input.
func SalespersonTotals(rows []dataset.Row, value ValueFunc) []SalespersonTotal {
	totals := make(map[string]int) // salesperson -> index into result
	var result []SalespersonTotal

	for i := range rows {
		row := &rows[i]
		idx, ok := totals[row.SalesMan]
		if !ok {
			idx = len(result)
			totals[row.SalesMan] = idx
			result = append(result, SalespersonTotal{SalesMan: row.SalesMan})
		}
		if m := value(row); m.Valid {
			result[idx].Total += m.Value
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}

// =============================================================================
// MONTH x SALESPERSON PIVOT
// =============================================================================

// Pivot is a MonthYear x salesperson cross-tabulation. Rows are in
// chronological order; columns are salespeople in first-appearance order.
// Every cell is populated: combinations absent from the input are 0.0.
type Pivot struct {
	// MonthYears labels the pivot rows, chronologically ordered.
	MonthYears []string

	// SalesMen labels the pivot value columns.
	SalesMen []string

	// Cells[i][j] is the summed value for MonthYears[i] x SalesMen[j].
	Cells [][]float64
}

// ColumnCount returns the total column count of the rendered pivot table:
// the label column plus one column per salesperson.
func (p *Pivot) ColumnCount() int {
	return 1 + len(p.SalesMen)
}

// RowCount returns the rendered row count including the header row.
func (p *Pivot) RowCount() int {
	return 1 + len(p.MonthYears)
}

// PivotMonthSalesperson cross-tabulates MonthYear against salesperson,
// summing the selected value. Rows without month attributes are dropped.
// Pivot rows are sorted chronologically by parsing the MonthYear label back
// into (year, month) — the inverse of label construction.
func PivotMonthSalesperson(rows []dataset.Row, value ValueFunc) *Pivot {
	cells := make(map[string]map[string]float64)
	var monthYears, salesMen []string
	seenMonth := make(map[string]bool)
	seenSales := make(map[string]bool)

	for i := range rows {
		row := &rows[i]
		if !row.HasMonth() {
			continue
		}
		if !seenMonth[row.MonthYear] {
			seenMonth[row.MonthYear] = true
			monthYears = append(monthYears, row.MonthYear)
			cells[row.MonthYear] = make(map[string]float64)
		}
		if !seenSales[row.SalesMan] {
			seenSales[row.SalesMan] = true
			salesMen = append(salesMen, row.SalesMan)
		}
		if m := value(row); m.Valid {
			cells[row.MonthYear][row.SalesMan] += m.Value
		}
	}

	sort.Slice(monthYears, func(i, j int) bool {
		yi, mi := locale.ParseMonthYear(monthYears[i])
		yj, mj := locale.ParseMonthYear(monthYears[j])
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})

	pivot := &Pivot{MonthYears: monthYears, SalesMen: salesMen}
	pivot.Cells = make([][]float64, len(monthYears))
	for i, monthYear := range monthYears {
		pivot.Cells[i] = make([]float64, len(salesMen))
		for j, salesMan := range salesMen {
			pivot.Cells[i][j] = cells[monthYear][salesMan]
		}
	}
	return pivot
}

// =============================================================================
// GLOBAL SUMMARY
// =============================================================================

// Summary holds the dashboard's global CPI metrics.
type Summary struct {
	TotalCPI       float64
	InvoicedCPI    float64
	NotInvoicedCPI float64
	WonCPI         float64

	// SalespersonCount is the number of distinct salesperson names.
	SalespersonCount int

	// ActiveMonths is the number of distinct non-missing MonthYear labels.
	ActiveMonths int

	// MonthlyAverageCPI is TotalCPI / ActiveMonths, or 0 when no row has a
	// usable issue date (no division by zero).
	MonthlyAverageCPI float64
}

// Summarize computes the global dashboard metrics for a table.
func Summarize(table *dataset.Table) Summary {
	s := Summary{
		TotalCPI:       Sum(table.Rows, CPI),
		InvoicedCPI:    Sum(table.Invoiced(), CPI),
		NotInvoicedCPI: Sum(table.NotInvoiced(), CPI),
		WonCPI:         Sum(table.ForecastWon(), CPI),
	}

	salespeople := make(map[string]bool)
	months := make(map[string]bool)
	for i := range table.Rows {
		row := &table.Rows[i]
		if row.SalesMan != "" {
			salespeople[row.SalesMan] = true
		}
		if row.HasMonth() {
			months[row.MonthYear] = true
		}
	}
	s.SalespersonCount = len(salespeople)
	s.ActiveMonths = len(months)
	if s.ActiveMonths > 0 {
		s.MonthlyAverageCPI = s.TotalCPI / float64(s.ActiveMonths)
	}

	return s
}
