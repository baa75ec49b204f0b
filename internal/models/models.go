// Package models defines the data types shared by the RAW conversion
// pipeline: raw input rows, canonical records, batch identity and the
// final output artifact.
package models

import (
	"fmt"
	"strings"
)

// DepositoryVariant selects which depository a settlement instruction
// targets. It is determined once per row from the counter-party
// identifier and is immutable after classification.
type DepositoryVariant string

const (
	VariantNSDL DepositoryVariant = "NSDL"
	VariantCDSL DepositoryVariant = "CDSL"
)

// RawRow is one parsed input line: column name to string value, as
// zipped against the header. It carries no business meaning.
type RawRow map[string]string

// CanonicalRecord is the normalized field set of one instruction after
// classification. All values are pre-formatted strings so encoding
// reproduces them exactly; every field named by the variant's tag
// order is present (possibly empty).
type CanonicalRecord struct {
	Variant DepositoryVariant
	Fields  map[string]string
}

// Get returns the canonical value of a field, or the empty string if
// it is absent.
func (r CanonicalRecord) Get(name string) string {
	return r.Fields[name]
}

// BatchIdentity names one accepted batch: it is shared by the RAW
// header and the output filename.
type BatchIdentity struct {
	SequenceID string // 5-digit, daily-rolling
	IssueDate  string // ddmmyyyy transaction date
	RowCount   string // 6-digit zero-padded
}

// NewBatchIdentity renders the numeric parts into their fixed widths.
func NewBatchIdentity(sequenceID, rowCount int, issueDate string) BatchIdentity {
	return BatchIdentity{
		SequenceID: fmt.Sprintf("%05d", sequenceID),
		IssueDate:  issueDate,
		RowCount:   fmt.Sprintf("%06d", rowCount),
	}
}

// ContentFingerprint is the hex digest of the raw input bytes of a
// batch, used as the deduplication key.
type ContentFingerprint string

// OutputArtifact is the final RAW product: immutable once built,
// addressable by filename and by fingerprint.
type OutputArtifact struct {
	Filename string
	Header   string
	Lines    []string
}

// Content renders the artifact body: header and body lines, each
// newline-terminated, with a final trailing empty line.
func (a *OutputArtifact) Content() string {
	var b strings.Builder
	b.WriteString(a.Header)
	b.WriteByte('\n')
	for _, line := range a.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseArtifact reconstructs an artifact from stored content. The
// first line is the header; the remainder are body lines.
func ParseArtifact(filename, content string) *OutputArtifact {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	artifact := &OutputArtifact{Filename: filename}
	if len(lines) > 0 {
		artifact.Header = lines[0]
		artifact.Lines = lines[1:]
	}
	return artifact
}

// CounterState is the persisted state of the sequence allocator. The
// id resets to 1 whenever the stored date differs from the current
// date.
type CounterState struct {
	LastID   int    `json:"last_id"`
	LastDate string `json:"last_date"`
}
