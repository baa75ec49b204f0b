// Package classifier normalizes one parsed input row into a canonical
// record: it determines the depository variant from the counter-party
// identifier, derives the dependent fields and canonicalizes numeric
// and date values. Any failure rejects the whole batch.
package classifier

import (
	"strings"

	"csvraw/internal/amountutils"
	"csvraw/internal/dateutils"
	"csvraw/internal/models"
	"csvraw/internal/rawerror"
)

// Classifier holds the constant field set applied to every record.
type Classifier struct {
	constants map[string]string
}

// New creates a classifier using the given beneficiary code for the
// constant field set.
func New(beneficiary string) *Classifier {
	return &Classifier{constants: models.ConstantFields(beneficiary)}
}

// Normalize converts one raw row into a canonical record. rowNum is
// the 1-based data row number, used only in error context.
func (c *Classifier) Normalize(row models.RawRow, rowNum int) (models.CanonicalRecord, error) {
	b := models.NewRecordBuilder().
		ApplyConstants(c.constants).
		ApplyRow(row)

	// Normalize Dt and force Xferdt = Dt: the transfer date always
	// equals the transaction date.
	if dt := b.Get(models.FieldDt); dt != "" {
		normalized, err := dateutils.NormalizeDayFirst(dt)
		if err != nil {
			return models.CanonicalRecord{}, &rawerror.DateFormatError{
				Row: rowNum, Field: models.FieldDt, Value: dt,
			}
		}
		b.Set(models.FieldDt, normalized)
	}
	b.Set(models.FieldXferdt, b.Get(models.FieldDt))

	// The length contract counts characters, not bytes.
	ctrPty := b.Get(models.FieldCtrPty)
	ctrPtyRunes := []rune(ctrPty)
	if len(ctrPtyRunes) != models.CounterpartyLength {
		return models.CanonicalRecord{}, &rawerror.InvalidCounterpartyError{
			Row: rowNum, Value: ctrPty,
		}
	}

	variant := models.VariantCDSL
	if strings.HasPrefix(ctrPty, models.NSDLPrefix) {
		variant = models.VariantNSDL
	}

	switch variant {
	case models.VariantNSDL:
		// Split the identifier: first half broker, second half
		// client. The whole identifier is never rendered for NSDL.
		half := models.CounterpartyLength / 2
		b.Set(models.FieldBrkr, string(ctrPtyRunes[:half]))
		b.Set(models.FieldClnt, string(ctrPtyRunes[half:]))
		b.Drop(models.FieldCtrPty)
	case models.VariantCDSL:
		// Keep the identifier whole and clear any broker/client
		// values that leaked in from upstream data.
		b.Drop(models.FieldBrkr)
		b.Drop(models.FieldClnt)
	}

	// Classification always wins for the type code.
	if variant == models.VariantNSDL {
		b.Set(models.FieldTp, models.TypeCodeNSDL)
	} else {
		b.Set(models.FieldTp, models.TypeCodeCDSL)
	}

	qty, err := amountutils.CanonicalFixed(b.Get(models.FieldQty), 3)
	if err != nil {
		return models.CanonicalRecord{}, &rawerror.NumericFormatError{
			Row: rowNum, Field: models.FieldQty, Value: b.Get(models.FieldQty),
		}
	}
	b.Set(models.FieldQty, qty)

	conamt, err := amountutils.CanonicalFixed(b.Get(models.FieldConamt), 2)
	if err != nil {
		return models.CanonicalRecord{}, &rawerror.NumericFormatError{
			Row: rowNum, Field: models.FieldConamt, Value: b.Get(models.FieldConamt),
		}
	}
	b.Set(models.FieldConamt, conamt)

	b.Set(models.FieldChqrefno, padReference(b.Get(models.FieldChqrefno)))

	return b.Build(variant), nil
}

// padReference left-pads a cheque/reference number with zeros to 8
// characters; an empty reference becomes "00000000".
func padReference(ref string) string {
	ref = strings.TrimSpace(ref)
	if len(ref) >= models.ReferenceLength {
		return ref
	}
	return strings.Repeat("0", models.ReferenceLength-len(ref)) + ref
}
