// =============================================================================
// Sales Reporting Engine - Value Normalizers
// =============================================================================
//
// This module converts raw spreadsheet cell values into canonical typed
// values. The source workbook is maintained by hand in a data-entry tool, so
// cells arrive in whatever shape the operator typed:
//   - Dates:      "31.12.2024", "31-12-2024", "2024-12-31", "31/12/2024",
//                 or excelize's rendering of a native date cell
//   - Currency:   "€ 1.234,56", "1.234,56 TL", plain numbers
//   - Percentage: "%50,0", "0,5", 50, 0.5
//   - Boolean:    "yes", "EVET", "true", "1", "Invoiced", blanks
//
// NORMALIZATION CONTRACT:
//   Every function here is pure and never returns an error. A value that
//   cannot be parsed degrades to the missing sentinel (ok == false) so that
//   one bad cell never aborts a report run. Aggregation treats missing
//   values as zero-contribution and missing keys as excluded from grouping.
//
// =============================================================================

package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/salesdesk/salesreport/internal/locale"
)

// =============================================================================
// DATE NORMALIZER
// =============================================================================

// dateFormats are tried in order; the first that parses wins. Day-first
// formats come first because the workbook is Turkish.
var dateFormats = []string{
	"02.01.2006",
	"02-01-2006",
	"2006-01-02",
	"02/01/2006",
}

// lenientDateFormats is the day-first fallback for cells typed without
// leading zeros or with a time component (excelize renders native date
// cells using the workbook's number format).
var lenientDateFormats = []string{
	"2.1.2006",
	"2-1-2006",
	"2/1/2006",
	"2.1.06",
	"2/1/06",
	"02.01.2006 15:04:05",
	"1/2/06 15:04",
	"01-02-06",
	"Jan 2, 2006",
	"2 Jan 2006",
	"2006-01-02T15:04:05Z07:00",
}

// Date parses a raw date cell. The second return value is false when the
// cell is empty or cannot be interpreted as a calendar date; callers must
// treat that as an explicit missing date, never substitute a default.
// Any time-of-day component is discarded.
func Date(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, false
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return truncateToDay(t), true
		}
	}

	// Lenient day-first fallback for everything the strict formats miss.
	for _, format := range lenientDateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return truncateToDay(t), true
		}
	}

	return time.Time{}, false
}

// truncateToDay drops the time-of-day component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// CURRENCY NORMALIZER
// =============================================================================

// Currency parses a monetary cell such as "€ 1.234,56" into 1234.56.
//
// ALGORITHM:
//   1. Strip currency symbols (€, TL) and whitespace.
//   2. Remove '.' thousands separators.
//   3. Replace the ',' decimal separator with '.'.
//   4. Parse as float64.
//
// Plain numeric cells (excelize returns them as "1234.56") contain neither
// symbols nor commas and pass straight through step 4. Unparseable cells
// return ok == false. Negative values are passed through as parsed; the
// pipeline does not reject credit-note style input.
func Currency(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}

	// A bare float (no Turkish formatting) is the common case for cells the
	// data-entry tool wrote as numbers. A dot-only string like "1.234" is
	// ambiguous between a plain decimal and Turkish digit grouping; numeric
	// cells win because that is what the workbook actually contains.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}

	return parseFloat(stripNumericNoise(s))
}

// stripNumericNoise removes currency symbols, whitespace and Turkish digit
// grouping, leaving a string strconv can parse.
func stripNumericNoise(s string) string {
	for _, symbol := range locale.CurrencySymbols {
		s = strings.ReplaceAll(s, symbol, "")
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return s
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// =============================================================================
// PERCENTAGE NORMALIZER
// =============================================================================

// Percent parses a percentage cell into a fraction. Values already in
// [0, 1] are treated as fractions; values above 1 are whole-number
// percentages and are divided by 100. Strings undergo the same symbol and
// separator stripping as currency, plus '%' removal, before the threshold
// check. "%50,0" -> 0.5, "0,2" -> 0.2, 75 -> 0.75.
func Percent(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}

	var v float64
	var ok bool
	if parsed, err := strconv.ParseFloat(s, 64); err == nil {
		v, ok = parsed, true
	} else {
		v, ok = parseFloat(stripNumericNoise(strings.ReplaceAll(s, "%", "")))
	}
	if !ok {
		return 0, false
	}

	if v > 1 {
		return v / 100, true
	}
	return v, true
}

// =============================================================================
// BOOLEAN NORMALIZER
// =============================================================================

// Bool interprets a boolean-like cell. Membership in the affirmative token
// set (case-insensitive) means true; anything else, including an empty
// cell, means false.
func Bool(cell string) bool {
	return locale.AffirmativeTokens[strings.ToLower(strings.TrimSpace(cell))]
}
