// Package tabular splits raw delimited text into a header and ordered
// data rows. It checks the header against the expected column schema
// but performs no semantic validation.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"csvraw/internal/models"
	"csvraw/internal/rawerror"
)

// Table is the parsed shape of one input file.
type Table struct {
	Header []string
	Rows   []models.RawRow
}

// Parse splits raw CSV text into a header row and data rows, each
// zipped positionally against the header. It fails with FormatError if
// fewer than two rows are present, if any row is ragged, or if the
// header does not match the expected schema (extra lists additional
// permitted columns beyond the base set).
func Parse(data []byte, extra []string) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &rawerror.FormatError{Reason: "input is empty"}
		}
		return nil, &rawerror.FormatError{Reason: err.Error()}
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := checkSchema(header, extra); err != nil {
		return nil, err
	}

	var rows []models.RawRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// encoding/csv reports ragged rows as ErrFieldCount.
			return nil, &rawerror.FormatError{Reason: err.Error()}
		}
		row := make(models.RawRow, len(header))
		for i, name := range header {
			row[name] = record[i]
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, &rawerror.FormatError{Reason: "no data rows after header"}
	}

	return &Table{Header: header, Rows: rows}, nil
}

// checkSchema verifies the header names against the expected set
// before any zipping happens, so a misaligned export fails fast
// instead of silently producing empty fields.
func checkSchema(header []string, extra []string) error {
	allowed := models.InputColumns(extra)
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if !allowed[name] {
			return &rawerror.FormatError{Reason: fmt.Sprintf("unexpected column %q", name)}
		}
		if seen[name] {
			return &rawerror.FormatError{Reason: fmt.Sprintf("duplicate column %q", name)}
		}
		seen[name] = true
	}
	for _, name := range models.RequiredInputColumns {
		if !seen[name] {
			return &rawerror.FormatError{Reason: fmt.Sprintf("missing column %q", name)}
		}
	}
	return nil
}
