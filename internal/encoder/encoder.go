// Package encoder renders canonical records into RAW instruction
// lines.
package encoder

import (
	"strings"

	"csvraw/internal/models"
)

// EncodeLine renders one record through its variant's ordered tag
// template: an open tag, the canonical value and a close tag per
// field, concatenated with no separators. Fields outside the template
// are never emitted, which is what enforces the schema-per-variant.
//
// Values are written verbatim, with no escaping. The depository
// format predates any XML framing and its field values never contain
// markup characters; anything that does would be rejected upstream.
//
// This is a pure, total function: a well-formed record never fails.
func EncodeLine(rec models.CanonicalRecord) string {
	var b strings.Builder
	for _, tag := range models.TagOrder(rec.Variant) {
		b.WriteByte('<')
		b.WriteString(tag)
		b.WriteByte('>')
		b.WriteString(rec.Get(tag))
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteByte('>')
	}
	return b.String()
}
