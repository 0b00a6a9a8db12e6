// =============================================================================
// Sales Reporting Engine - Table Styling
// =============================================================================
//
// Visual formatting for the rectangular table regions the renderer writes:
//   - Header row: solid dark-blue fill, bold white text, centered
//   - Every cell: thin light-grey border
//   - Body rows, leftmost column: left-aligned (labels read better ragged)
//
// Style IDs are created once per workbook and reused for every region.
//
// =============================================================================

package report

import "github.com/xuri/excelize/v2"

// Table colours, matching the original report's palette.
const (
	headerFillColor = "1F4E78"
	headerFontColor = "FFFFFF"
	borderColor     = "D9D9D9"
)

// styleSet holds the workbook-scoped style IDs for table regions.
type styleSet struct {
	header   int
	body     int
	bodyLeft int
}

// newStyleSet registers the table styles on a workbook.
func newStyleSet(f *excelize.File) (*styleSet, error) {
	thinBorders := []excelize.Border{
		{Type: "top", Style: 1, Color: borderColor},
		{Type: "bottom", Style: 1, Color: borderColor},
		{Type: "left", Style: 1, Color: borderColor},
		{Type: "right", Style: 1, Color: borderColor},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders,
	})
	if err != nil {
		return nil, err
	}

	body, err := f.NewStyle(&excelize.Style{
		Border: thinBorders,
	})
	if err != nil {
		return nil, err
	}

	bodyLeft, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left"},
		Border:    thinBorders,
	})
	if err != nil {
		return nil, err
	}

	return &styleSet{header: header, body: body, bodyLeft: bodyLeft}, nil
}

// apply styles a table region: startRow/startCol/endRow/endCol are 1-based
// inclusive workbook coordinates, startRow being the header row.
func (s *styleSet) apply(f *excelize.File, sheet string, startRow, startCol, endRow, endCol int) error {
	headerStart, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return err
	}
	headerEnd, err := excelize.CoordinatesToCellName(endCol, startRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, headerStart, headerEnd, s.header); err != nil {
		return err
	}

	if endRow == startRow {
		return nil
	}

	bodyStart, err := excelize.CoordinatesToCellName(startCol, startRow+1)
	if err != nil {
		return err
	}
	bodyEnd, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, bodyStart, bodyEnd, s.body); err != nil {
		return err
	}

	// Left-align the label column of the body.
	labelEnd, err := excelize.CoordinatesToCellName(startCol, endRow)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, bodyStart, labelEnd, s.bodyLeft)
}
