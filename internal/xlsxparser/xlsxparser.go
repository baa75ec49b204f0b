// Package xlsxparser normalizes spreadsheet input into the CSV text
// the conversion pipeline consumes. Only the first sheet is read.
// Deduplication fingerprints are taken over the normalized CSV bytes,
// so the same sheet content always maps to the same fingerprint.
package xlsxparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// IsXLSX reports whether path looks like a spreadsheet by extension.
func IsXLSX(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".xlsx" || ext == ".xlsm"
}

// ToCSV reads the first sheet of a workbook and renders it as CSV
// text. Rows shorter than the header are padded with empty cells,
// since excelize trims trailing empties and the pipeline expects
// rectangular input. Rows wider than the header are rejected: a cell
// beyond the last header column is data the pipeline would otherwise
// silently drop.
func ToCSV(path string) ([]byte, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	width := len(rows[0])
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for i, row := range rows {
		if len(row) > width {
			return nil, fmt.Errorf("sheet %s row %d has %d cells, header has %d", sheet, i+1, len(row), width)
		}
		record := make([]string, width)
		copy(record, row)
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("rendering sheet %s: %w", sheet, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("rendering sheet %s: %w", sheet, err)
	}
	return buf.Bytes(), nil
}
