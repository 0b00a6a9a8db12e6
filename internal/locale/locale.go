// =============================================================================
// Sales Reporting Engine - Locale Definitions
// =============================================================================
//
// This module centralises the Turkish locale conventions used throughout the
// reporting pipeline:
//   - Month names (the source workbook and the report are both Turkish)
//   - MonthYear grouping labels ("2024 Aralık") and their inverse parse
//   - The affirmative token set for boolean-like cells
//   - Currency symbols that appear in monetary cells
//   - Report sheet names and chart title substitution
//
// Keeping these in one place means the normalizers, the aggregation engine
// and the renderer never disagree about what a month is called.
//
// =============================================================================

package locale

import (
	"strconv"
	"strings"
)

// =============================================================================
// MONTH NAMES
// =============================================================================

// MonthNames maps month numbers (1-12) to Turkish month names.
// These appear in the MonthName derived column and inside MonthYear labels.
var MonthNames = map[int]string{
	1:  "Ocak",
	2:  "Şubat",
	3:  "Mart",
	4:  "Nisan",
	5:  "Mayıs",
	6:  "Haziran",
	7:  "Temmuz",
	8:  "Ağustos",
	9:  "Eylül",
	10: "Ekim",
	11: "Kasım",
	12: "Aralık",
}

// MonthName returns the Turkish name for a month number, or "" when the
// number is outside 1-12.
func MonthName(month int) string {
	return MonthNames[month]
}

// monthNumbers is the inverse of MonthNames, built once at package init.
var monthNumbers = func() map[string]int {
	m := make(map[string]int, len(MonthNames))
	for number, name := range MonthNames {
		m[name] = number
	}
	return m
}()

// MonthNumber returns the month number (1-12) for a Turkish month name,
// or 0 when the name is not recognised.
func MonthNumber(name string) int {
	return monthNumbers[name]
}

// =============================================================================
// MONTH-YEAR LABELS
// =============================================================================

// MonthYearLabel builds the grouping/display label for a year and month,
// e.g. MonthYearLabel(2024, 12) == "2024 Aralık".
func MonthYearLabel(year, month int) string {
	name := MonthName(month)
	if name == "" {
		return ""
	}
	return strconv.Itoa(year) + " " + name
}

// ParseMonthYear recovers (year, month) from a MonthYear label. It is the
// inverse of MonthYearLabel and is used to sort pivot rows chronologically
// rather than lexically. Unrecognised labels return (0, 0).
func ParseMonthYear(label string) (year, month int) {
	yearStr, name, found := strings.Cut(label, " ")
	if !found {
		return 0, 0
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0
	}
	return year, MonthNumber(name)
}

// =============================================================================
// VALUE TOKENS
// =============================================================================

// AffirmativeTokens are the lowercase words treated as "true" by the boolean
// normalizer. "evet" is Turkish for yes; "invoiced" appears in legacy data
// where the Invoiced column doubled as a status field.
var AffirmativeTokens = map[string]bool{
	"yes":      true,
	"evet":     true,
	"true":     true,
	"1":        true,
	"y":        true,
	"invoiced": true,
}

// CurrencySymbols are stripped from monetary cells before numeric parsing.
var CurrencySymbols = []string{"€", "TL"}

// ForecastWonToken is the (already uppercased) QI Forecast value that marks
// a sales opportunity as won.
const ForecastWonToken = "YES"

// =============================================================================
// REPORT SHEET NAMES
// =============================================================================

// Sheet names of the generated report workbook.
const (
	SheetSummary     = "Özet Dashboard"
	SheetInvoiced    = "CPI Faturalanan Raporu"
	SheetNotInvoiced = "CPI Faturalanmayan Raporu"
	SheetWon         = "CPI Kazanılan Raporu"
	SheetDetail      = "Detay Veri"
)

// ChartTitle derives a chart title from a report sheet name by replacing the
// trailing "Raporu" (report) with "Grafiği" (chart).
func ChartTitle(sheetName string) string {
	return strings.Replace(sheetName, "Raporu", "Grafiği", 1)
}
