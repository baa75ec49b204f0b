package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvraw/internal/models"
	"csvraw/internal/rawerror"
)

const (
	nsdlCtrPty = "INXXXXXXXXXXXXXX" // 16 chars, NSDL prefix
	cdslCtrPty = "1234567890123456" // 16 chars, no NSDL prefix
)

func TestNormalizeNSDL(t *testing.T) {
	c := New(models.DefaultBeneficiary)

	rec, err := c.Normalize(models.RawRow{
		models.FieldDt:       "01/01/2025",
		models.FieldCtrPty:   nsdlCtrPty,
		models.FieldQty:      "100",
		models.FieldConamt:   "500.5",
		models.FieldChqrefno: "7",
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, models.VariantNSDL, rec.Variant)
	assert.Equal(t, models.TypeCodeNSDL, rec.Get(models.FieldTp))
	assert.Equal(t, "01012025", rec.Get(models.FieldDt))
	assert.Equal(t, "01012025", rec.Get(models.FieldXferdt))
	assert.Equal(t, "INXXXXXX", rec.Get(models.FieldBrkr))
	assert.Equal(t, "XXXXXXXX", rec.Get(models.FieldClnt))
	assert.Equal(t, "100.000", rec.Get(models.FieldQty))
	assert.Equal(t, "500.50", rec.Get(models.FieldConamt))
	assert.Equal(t, "00000007", rec.Get(models.FieldChqrefno))
	assert.Equal(t, models.DefaultBeneficiary, rec.Get(models.FieldBnfcry))

	// The whole identifier is dropped from NSDL output.
	assert.Equal(t, "", rec.Get(models.FieldCtrPty))
}

func TestNormalizeCDSL(t *testing.T) {
	c := New(models.DefaultBeneficiary)

	rec, err := c.Normalize(models.RawRow{
		models.FieldDt:     "01/01/2025",
		models.FieldCtrPty: cdslCtrPty,
		// Stale split fields from upstream must not leak through.
		models.FieldBrkr: "stale000",
		models.FieldClnt: "stale111",
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, models.VariantCDSL, rec.Variant)
	assert.Equal(t, models.TypeCodeCDSL, rec.Get(models.FieldTp))
	assert.Equal(t, cdslCtrPty, rec.Get(models.FieldCtrPty))
	assert.Equal(t, "", rec.Get(models.FieldBrkr))
	assert.Equal(t, "", rec.Get(models.FieldClnt))
}

func TestNormalizeCounterpartyLength(t *testing.T) {
	c := New(models.DefaultBeneficiary)

	tests := []struct {
		name   string
		ctrPty string
	}{
		{"Too short", "INXXXXXXXXXXXXX"},   // 15
		{"Too long", "INXXXXXXXXXXXXXXX"},  // 17
		{"Too short CDSL", "12345678901234"},
		{"Missing", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Normalize(models.RawRow{
				models.FieldDt:     "01/01/2025",
				models.FieldCtrPty: tc.ctrPty,
			}, 3)
			require.Error(t, err)
			var ctrErr *rawerror.InvalidCounterpartyError
			require.ErrorAs(t, err, &ctrErr)
			assert.Equal(t, 3, ctrErr.Row)
			assert.Equal(t, tc.ctrPty, ctrErr.Value)
		})
	}
}

func TestNormalizeCounterpartyCountsCharacters(t *testing.T) {
	c := New(models.DefaultBeneficiary)

	// 16 characters but more than 16 bytes: length is judged on
	// characters.
	rec, err := c.Normalize(models.RawRow{
		models.FieldCtrPty: "123456789012345é",
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, models.VariantCDSL, rec.Variant)
	assert.Equal(t, "123456789012345é", rec.Get(models.FieldCtrPty))
}

func TestNormalizeNumericErrors(t *testing.T) {
	c := New(models.DefaultBeneficiary)

	tests := []struct {
		name  string
		row   models.RawRow
		field string
	}{
		{
			"Bad quantity",
			models.RawRow{models.FieldCtrPty: cdslCtrPty, models.FieldQty: "12x"},
			models.FieldQty,
		},
		{
			"Bad consideration",
			models.RawRow{models.FieldCtrPty: cdslCtrPty, models.FieldConamt: "abc"},
			models.FieldConamt,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Normalize(tc.row, 2)
			require.Error(t, err)
			var numErr *rawerror.NumericFormatError
			require.ErrorAs(t, err, &numErr)
			assert.Equal(t, tc.field, numErr.Field)
			assert.Equal(t, 2, numErr.Row)
		})
	}
}

func TestNormalizeEmptyAmountsStayEmpty(t *testing.T) {
	c := New(models.DefaultBeneficiary)

	rec, err := c.Normalize(models.RawRow{models.FieldCtrPty: cdslCtrPty}, 1)
	require.NoError(t, err)
	assert.Equal(t, "", rec.Get(models.FieldQty))
	assert.Equal(t, "", rec.Get(models.FieldConamt))
	assert.Equal(t, "00000000", rec.Get(models.FieldChqrefno))
}

func TestNormalizeDateError(t *testing.T) {
	c := New(models.DefaultBeneficiary)

	_, err := c.Normalize(models.RawRow{
		models.FieldDt:     "99/99/9999",
		models.FieldCtrPty: cdslCtrPty,
	}, 4)
	require.Error(t, err)
	var dateErr *rawerror.DateFormatError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, 4, dateErr.Row)
}

func TestNormalizeQuantityThousandsSeparator(t *testing.T) {
	c := New(models.DefaultBeneficiary)

	rec, err := c.Normalize(models.RawRow{
		models.FieldCtrPty: cdslCtrPty,
		models.FieldQty:    "1,234.5",
		models.FieldConamt: "999",
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, "1234.500", rec.Get(models.FieldQty))
	assert.Equal(t, "999.00", rec.Get(models.FieldConamt))
}
