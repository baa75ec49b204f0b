// Package batch validates batch-level invariants across the parsed
// rows of one input file.
package batch

import (
	"strings"

	"csvraw/internal/dateutils"
	"csvraw/internal/models"
	"csvraw/internal/rawerror"
	"csvraw/internal/tabular"
)

// IssueDate establishes the batch's canonical issue date from the
// first data row and asserts that every later row with a non-empty
// date shares it. A settlement batch represents a single value date;
// mixed dates indicate an upstream export error and reject the whole
// batch before any output is produced.
//
// Rows with an empty date field are treated as implicitly matching.
func IssueDate(t *tabular.Table) (string, error) {
	first := strings.TrimSpace(t.Rows[0][models.FieldDt])
	if first == "" {
		return "", &rawerror.MissingFieldError{Row: 1, Field: models.FieldDt}
	}

	issueDate, err := dateutils.NormalizeDayFirst(first)
	if err != nil {
		return "", &rawerror.DateFormatError{Row: 1, Field: models.FieldDt, Value: first}
	}

	for i, row := range t.Rows {
		value := strings.TrimSpace(row[models.FieldDt])
		if value == "" {
			continue
		}
		normalized, err := dateutils.NormalizeDayFirst(value)
		if err != nil {
			return "", &rawerror.DateFormatError{Row: i + 1, Field: models.FieldDt, Value: value}
		}
		if normalized != issueDate {
			return "", &rawerror.DateMismatchError{
				Row:      i + 1,
				Expected: issueDate,
				Actual:   normalized,
			}
		}
	}

	return issueDate, nil
}
