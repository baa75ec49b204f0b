// Package rawerror defines the typed errors the conversion pipeline
// reports. Every error is request-scoped: it aborts the whole batch
// before a sequence id is consumed and carries enough context (row
// number, field, offending value) for the caller to fix the input and
// resubmit.
package rawerror

import "fmt"

// FormatError reports structurally invalid input: too few rows,
// ragged columns, or a header outside the expected schema.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid input format: %s", e.Reason)
}

// MissingFieldError reports a required field absent from the row that
// needs it. Row is the 1-based data row number.
type MissingFieldError struct {
	Row   int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("row %d: missing required field %s", e.Row, e.Field)
}

// DateFormatError reports a date field that is present but
// unparseable.
type DateFormatError struct {
	Row   int
	Field string
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("row %d: invalid %s date: '%s'", e.Row, e.Field, e.Value)
}

// DateMismatchError reports a row whose date disagrees with the
// batch's established issue date.
type DateMismatchError struct {
	Row      int
	Expected string
	Actual   string
}

func (e *DateMismatchError) Error() string {
	return fmt.Sprintf("row %d: date %s does not match batch date %s",
		e.Row, e.Actual, e.Expected)
}

// InvalidCounterpartyError reports a counter-party identifier that is
// missing or not exactly 16 characters.
type InvalidCounterpartyError struct {
	Row   int
	Value string
}

func (e *InvalidCounterpartyError) Error() string {
	return fmt.Sprintf("row %d: invalid CtrPty '%s': must be exactly 16 characters",
		e.Row, e.Value)
}

// NumericFormatError reports a quantity or consideration amount that
// is not parseable as a number.
type NumericFormatError struct {
	Row   int
	Field string
	Value string
}

func (e *NumericFormatError) Error() string {
	return fmt.Sprintf("row %d: invalid %s: '%s' is not a number",
		e.Row, e.Field, e.Value)
}
