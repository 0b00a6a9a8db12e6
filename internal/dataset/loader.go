// =============================================================================
// Sales Reporting Engine - Workbook Loader
// =============================================================================
//
// This module reads the source sales workbook, validates its header row and
// normalizes every cell into the typed Row model.
//
// LOADING PIPELINE:
//   1. Stat the file (ErrInputNotFound before any parsing).
//   2. Open with excelize and read the first sheet (ReadError on failure).
//   3. Map headers to column indices, order-independent.
//   4. Verify every required column is present (ValidationError lists all
//      missing columns; nothing partial is produced).
//   5. Normalize each data row: dates, currency, discount fraction,
//      uppercase-trimmed forecast flag, boolean invoiced flag.
//   6. Derive Year / MonthNumber / MonthName / MonthYear from the issue
//      date. Rows without a usable issue date get empty derived attributes
//      and drop out of month-keyed aggregation naturally.
//
// The whole file is read into memory within this single call; no handle is
// held open afterwards.
//
// =============================================================================

package dataset

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/salesdesk/salesreport/internal/locale"
	"github.com/salesdesk/salesreport/internal/normalize"
)

// Load reads, validates and normalizes the sales workbook at path.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, ErrInputNotFound
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, &ReadError{Path: path, Err: errNoSheets}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &ValidationError{MissingColumns: RequiredColumns}
	}

	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	table := &Table{SourcePath: path, Rows: make([]Row, 0, len(rows)-1)}
	for i := 1; i < len(rows); i++ {
		if isBlankRow(rows[i]) {
			continue
		}
		table.Rows = append(table.Rows, normalizeRow(rows[i], columns, i+1))
	}

	return table, nil
}

// errNoSheets is the ReadError cause for a workbook with no sheets.
var errNoSheets = &sheetError{}

type sheetError struct{}

func (*sheetError) Error() string { return "workbook has no sheets" }

// =============================================================================
// HEADER MAPPING
// =============================================================================

// mapHeader resolves the required column headers to their indices. Header
// matching is exact after trimming; column order does not matter and extra
// columns are ignored.
func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}

	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingColumns: missing}
	}

	return columns, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// ROW NORMALIZATION
// =============================================================================

// normalizeRow converts one raw spreadsheet row into a typed Row.
// rowNumber is the 1-based workbook row, used only for debug logging of
// coercion fallbacks.
func normalizeRow(raw []string, columns map[string]int, rowNumber int) Row {
	cell := func(column string) string {
		idx := columns[column]
		if idx < len(raw) {
			return strings.TrimSpace(raw[idx])
		}
		return ""
	}

	date := func(column string) Date {
		value := cell(column)
		t, ok := normalize.Date(value)
		if !ok && value != "" {
			logrus.WithFields(logrus.Fields{"row": rowNumber, "column": column, "value": value}).
				Debug("unparseable date, treated as missing")
		}
		return Date{Time: t, Valid: ok}
	}

	money := func(column string) Money {
		value := cell(column)
		v, ok := normalize.Currency(value)
		if !ok && value != "" {
			logrus.WithFields(logrus.Fields{"row": rowNumber, "column": column, "value": value}).
				Debug("unparseable amount, treated as missing")
		}
		return Money{Value: v, Valid: ok}
	}

	row := Row{
		RequestDate:  date(ColDateOfRequest),
		IssueDate:    date(ColDateOfIssue),
		DeliveryDate: date(ColDateOfDelivery),

		SalesMan:       cell(ColSalesMan),
		CustomerName:   cell(ColCustomerName),
		CustomerDONo:   cell(ColCustomerDONo),
		Definition:     cell(ColDefinition),
		SalesTicketRef: cell(ColSalesTicketRef),
		SONo:           cell(ColSONo),
		PONo:           cell(ColPONo),

		Amount:         money(ColAmount),
		TotalDiscount:  normalizeDiscount(cell(ColTotalDiscount)),
		CPI:            money(ColCPI),
		CPS:            money(ColCPS),
		InvoicedAmount: money(ColInvoicedAmount),

		QIForecast:   strings.ToUpper(cell(ColQIForecast)),
		DeliveryNote: cell(ColDeliveryNote),
		Invoiced:     normalize.Bool(cell(ColInvoiced)),
	}

	if row.IssueDate.Valid {
		row.Year = row.IssueDate.Time.Year()
		row.MonthNumber = int(row.IssueDate.Time.Month())
		row.MonthName = locale.MonthName(row.MonthNumber)
		row.MonthYear = locale.MonthYearLabel(row.Year, row.MonthNumber)
	}

	return row
}

// normalizeDiscount parses the Total Discount column into a fraction
// clamped into [0, 1]. Legacy files store the discount as a whole-number
// percentage (e.g. 15 for 15%); the percentage normalizer handles that
// threshold.
func normalizeDiscount(value string) Money {
	v, ok := normalize.Percent(value)
	if !ok {
		return Money{}
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return Money{Value: v, Valid: true}
}
