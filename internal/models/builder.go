package models

import "strings"

// RecordBuilder assembles a CanonicalRecord in explicit, ordered
// phases: constants first, then per-row fields, then the values the
// classifier derives. Later phases override earlier ones, so the
// classification always wins for fields like Tp.
type RecordBuilder struct {
	fields map[string]string
}

// NewRecordBuilder creates an empty builder.
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{fields: make(map[string]string)}
}

// ApplyConstants copies the fixed constant field set into the record.
// This is the first construction phase.
func (b *RecordBuilder) ApplyConstants(constants map[string]string) *RecordBuilder {
	for k, v := range constants {
		b.fields[k] = v
	}
	return b
}

// ApplyRow copies the parsed input row into the record, trimming
// surrounding whitespace from every value. This is the second
// construction phase.
func (b *RecordBuilder) ApplyRow(row RawRow) *RecordBuilder {
	for k, v := range row {
		b.fields[k] = strings.TrimSpace(v)
	}
	return b
}

// Set stores a derived field value, overriding any earlier phase.
func (b *RecordBuilder) Set(name, value string) {
	b.fields[name] = value
}

// Get returns the current value of a field, or "" if unset.
func (b *RecordBuilder) Get(name string) string {
	return b.fields[name]
}

// Drop removes a field so a stale upstream value cannot leak into the
// encoded output.
func (b *RecordBuilder) Drop(name string) {
	delete(b.fields, name)
}

// Build finalizes the record for the given variant. Every field named
// by the variant's tag order is guaranteed present, defaulting to the
// empty string.
func (b *RecordBuilder) Build(variant DepositoryVariant) CanonicalRecord {
	fields := make(map[string]string, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	for _, tag := range TagOrder(variant) {
		if _, ok := fields[tag]; !ok {
			fields[tag] = ""
		}
	}
	return CanonicalRecord{Variant: variant, Fields: fields}
}
