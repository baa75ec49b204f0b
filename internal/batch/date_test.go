package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvraw/internal/rawerror"
	"csvraw/internal/tabular"
)

func parseTable(t *testing.T, input string) *tabular.Table {
	t.Helper()
	table, err := tabular.Parse([]byte(input), nil)
	require.NoError(t, err)
	return table
}

func TestIssueDate(t *testing.T) {
	table := parseTable(t, "Dt,CtrPty\n01/02/2024,a\n1-2-2024,b\n2024-02-01,c\n")

	issueDate, err := IssueDate(table)
	require.NoError(t, err)
	assert.Equal(t, "01022024", issueDate)
}

func TestIssueDateEmptyLaterRowsMatch(t *testing.T) {
	// An empty date on a later row is treated as implicitly matching:
	// the upstream export omits the date on continuation rows.
	table := parseTable(t, "Dt,CtrPty\n01/02/2024,a\n,b\n")

	issueDate, err := IssueDate(table)
	require.NoError(t, err)
	assert.Equal(t, "01022024", issueDate)
}

func TestIssueDateFirstRowMissing(t *testing.T) {
	table := parseTable(t, "Dt,CtrPty\n,a\n01/02/2024,b\n")

	_, err := IssueDate(table)
	require.Error(t, err)
	var missingErr *rawerror.MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, 1, missingErr.Row)
	assert.Equal(t, "Dt", missingErr.Field)
}

func TestIssueDateUnparseable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		row   int
	}{
		{"First row", "Dt,CtrPty\nnot-a-date,a\n", 1},
		{"Later row", "Dt,CtrPty\n01/02/2024,a\nnot-a-date,b\n", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := IssueDate(parseTable(t, tc.input))
			require.Error(t, err)
			var dateErr *rawerror.DateFormatError
			require.ErrorAs(t, err, &dateErr)
			assert.Equal(t, tc.row, dateErr.Row)
		})
	}
}

func TestIssueDateMismatch(t *testing.T) {
	table := parseTable(t, "Dt,CtrPty\n01/02/2024,a\n03/02/2024,b\n")

	_, err := IssueDate(table)
	require.Error(t, err)
	var mismatchErr *rawerror.DateMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	assert.Equal(t, 2, mismatchErr.Row)
	assert.Equal(t, "01022024", mismatchErr.Expected)
	assert.Equal(t, "03022024", mismatchErr.Actual)
}
