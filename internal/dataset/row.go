// =============================================================================
// Sales Reporting Engine - Row Model
// =============================================================================
//
// This file defines the in-memory representation of one sales transaction
// and the table of all transactions loaded from the source workbook.
//
// MISSING VALUES:
//   Dates and monetary fields carry an explicit validity flag instead of a
//   magic value. A cell that failed normalization is "missing": it is
//   excluded from group-by keys and contributes zero to sums, but the row
//   itself is always retained.
//
// =============================================================================

package dataset

import (
	"time"

	"github.com/salesdesk/salesreport/internal/locale"
)

// =============================================================================
// COLUMN NAMES
// =============================================================================

// Source workbook column headers. The header row must contain every one of
// these (order-independent); extra columns are ignored.
const (
	ColDateOfRequest  = "Date of Request"
	ColDateOfIssue    = "Date of Issue"
	ColDateOfDelivery = "Date of Delivery"
	ColSalesMan       = "Sales Man"
	ColCustomerName   = "Customer Name"
	ColCustomerDONo   = "Customer DO No"
	ColDefinition     = "Definition"
	ColSalesTicketRef = "Sales Ticket Reference"
	ColSONo           = "SO No"
	ColPONo           = "PO No"
	ColAmount         = "Amount"
	ColTotalDiscount  = "Total Discount"
	ColCPI            = "CPI"
	ColCPS            = "CPS"
	ColQIForecast     = "QI Forecast"
	ColDeliveryNote   = "Delivery Note"
	ColInvoiced       = "Invoiced"
	ColInvoicedAmount = "Invoiced Amount"
)

// RequiredColumns is the fixed list of headers the loader validates against.
var RequiredColumns = []string{
	ColDateOfRequest,
	ColDateOfIssue,
	ColDateOfDelivery,
	ColSalesMan,
	ColCustomerName,
	ColCustomerDONo,
	ColDefinition,
	ColSalesTicketRef,
	ColSONo,
	ColPONo,
	ColAmount,
	ColTotalDiscount,
	ColCPI,
	ColCPS,
	ColQIForecast,
	ColDeliveryNote,
	ColInvoiced,
	ColInvoicedAmount,
}

// DateColumns are normalized with the date normalizer.
var DateColumns = []string{ColDateOfRequest, ColDateOfIssue, ColDateOfDelivery}

// CurrencyColumns are normalized with the currency normalizer.
var CurrencyColumns = []string{ColAmount, ColTotalDiscount, ColCPI, ColCPS, ColInvoicedAmount}

// =============================================================================
// TYPED CELL VALUES
// =============================================================================

// Money is a monetary cell: a parsed amount plus a validity flag.
// Valid == false means the source cell was empty or unparseable.
type Money struct {
	Value float64
	Valid bool
}

// Date is a calendar-date cell with an explicit missing state.
type Date struct {
	Time  time.Time
	Valid bool
}

// =============================================================================
// ROW
// =============================================================================

// Row is one sales transaction, normalized.
type Row struct {
	// Calendar dates.
	RequestDate  Date
	IssueDate    Date
	DeliveryDate Date

	// Free-text identity and reference fields (kept verbatim, trimmed).
	SalesMan       string
	CustomerName   string
	CustomerDONo   string
	Definition     string
	SalesTicketRef string
	SONo           string
	PONo           string

	// Monetary fields. TotalDiscount is a fraction in [0, 1] after
	// normalization (see normalizeDiscount).
	Amount         Money
	TotalDiscount  Money
	CPI            Money
	CPS            Money
	InvoicedAmount Money

	// QIForecast is uppercase-trimmed; "YES" marks a won opportunity.
	QIForecast string

	DeliveryNote string

	// Invoiced is the normalized boolean flag.
	Invoiced bool

	// Derived calendar attributes, computed from IssueDate at load time.
	// When IssueDate is missing all four are zero values and the row is
	// excluded from month-keyed aggregation.
	Year        int
	MonthNumber int
	MonthName   string
	MonthYear   string
}

// HasMonth reports whether the row carries usable month attributes.
func (r *Row) HasMonth() bool {
	return r.MonthYear != ""
}

// =============================================================================
// TABLE
// =============================================================================

// Table is the full normalized dataset of one report run.
type Table struct {
	Rows []Row

	// SourcePath is the workbook the table was loaded from.
	SourcePath string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Invoiced returns the rows with Invoiced == true.
func (t *Table) Invoiced() []Row {
	return t.filter(func(r *Row) bool { return r.Invoiced })
}

// NotInvoiced returns the rows with Invoiced == false.
func (t *Table) NotInvoiced() []Row {
	return t.filter(func(r *Row) bool { return !r.Invoiced })
}

// ForecastWon returns the rows whose QI Forecast equals the won token.
// The column is already uppercased, so this is an exact match.
func (t *Table) ForecastWon() []Row {
	return t.filter(func(r *Row) bool { return r.QIForecast == locale.ForecastWonToken })
}

func (t *Table) filter(keep func(*Row) bool) []Row {
	var rows []Row
	for i := range t.Rows {
		if keep(&t.Rows[i]) {
			rows = append(rows, t.Rows[i])
		}
	}
	return rows
}

// =============================================================================
// CPI FORMULAS
// =============================================================================
//
// Two CPI formulas exist in the wild: the data-entry tool computes
// Amount - CPS, while an older report variant used Amount * (1 - discount).
// The stored CPI column is authoritative for reporting; these helpers exist
// so integrations can state (and test) which formula produced their data.

// CPIFromCost computes the net invoice-relevant amount as Amount - CPS.
// A missing CPS counts as zero; a missing Amount yields a missing result.
func CPIFromCost(amount, cps Money) Money {
	if !amount.Valid {
		return Money{}
	}
	cost := 0.0
	if cps.Valid {
		cost = cps.Value
	}
	return Money{Value: amount.Value - cost, Valid: true}
}

// CPIFromDiscount computes the net amount as Amount * (1 - discount), the
// legacy variant. A missing discount counts as zero.
func CPIFromDiscount(amount, discount Money) Money {
	if !amount.Valid {
		return Money{}
	}
	d := 0.0
	if discount.Valid {
		d = discount.Value
	}
	return Money{Value: amount.Value * (1 - d), Valid: true}
}
