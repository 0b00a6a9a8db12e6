// =============================================================================
// Sales Reporting Engine - Loader Error Kinds
// =============================================================================
//
// Fatal error kinds surfaced by the loader. Per-cell coercion failures are
// intentionally NOT errors: the normalizers degrade bad cells to missing
// values so one mistyped date never aborts a report run.
//
// =============================================================================

package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInputNotFound is returned when the input path does not exist. It is
// surfaced before any parsing is attempted.
var ErrInputNotFound = errors.New("input file not found")

// ReadError wraps a failure to parse an existing file as a spreadsheet
// (corrupt file, wrong format, unreadable archive).
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read workbook %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when the workbook parses but the header row
// is missing one or more required columns. The message enumerates every
// missing column, not just the first, so the operator can fix the file in
// one pass.
type ValidationError struct {
	MissingColumns []string
}

func (e *ValidationError) Error() string {
	return "missing required columns: " + strings.Join(e.MissingColumns, ", ")
}
