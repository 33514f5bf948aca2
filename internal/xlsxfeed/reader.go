// =============================================================================
// Sales Analytics System - XLSX Feed Reader
// =============================================================================
//
// Some departments export the sales feed as an XLSX workbook instead of the
// pipe-delimited text file. This package reads the first sheet of such a
// workbook and converts its rows into the same raw pipe-joined lines the
// text reader produces, so the downstream parser handles both formats
// identically - including dropping rows with the wrong column count.
//
// =============================================================================

package xlsxfeed

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadSalesData reads an XLSX sales feed and returns its data rows as raw
// pipe-joined lines, header row excluded, empty rows skipped.
func ReadSalesData(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	headerWidth := 0
	if len(rows) > 0 {
		// First row is the column header; it also defines the sheet's
		// column count.
		headerWidth = len(rows[0])
		rows = rows[1:]
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		if isRowEmpty(row) {
			continue
		}
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.TrimSpace(cell)
		}
		// GetRows omits trailing empty cells, so a row with an empty last
		// column would come back short. Pad to the header width so such a
		// row keeps its field count and fails validation, not parsing.
		for len(cells) < headerWidth {
			cells = append(cells, "")
		}
		lines = append(lines, strings.Join(cells, "|"))
	}

	return lines, nil
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
