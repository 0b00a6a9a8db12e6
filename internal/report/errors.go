// =============================================================================
// Sales Reporting Engine - Renderer Error Kinds
// =============================================================================

package report

import "fmt"

// WriteError wraps a failure to create or save the report workbook
// (permissions, full disk, locked file). It is fatal; any partially
// written file state is left in place, not cleaned up.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
