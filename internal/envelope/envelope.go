// Package envelope assembles encoded instruction lines into the final
// RAW artifact: fixed-prefix header, body lines and the derived
// filename.
package envelope

import (
	"fmt"

	"csvraw/internal/models"
)

// Builder holds the installation constants that parameterize every
// envelope.
type Builder struct {
	headerPrefix string
	beneficiary  string
}

// NewBuilder creates an envelope builder.
func NewBuilder(headerPrefix, beneficiary string) *Builder {
	return &Builder{headerPrefix: headerPrefix, beneficiary: beneficiary}
}

// Build assembles the output artifact. creationDate is the ddmmyyyy
// date the artifact is produced, which names the file; the identity's
// issue date (the transaction date) goes into the header. The two are
// distinct on purpose.
func (b *Builder) Build(lines []string, identity models.BatchIdentity, creationDate string) *models.OutputArtifact {
	header := fmt.Sprintf("%s %s%s%s",
		b.headerPrefix, identity.RowCount, identity.SequenceID, identity.IssueDate)

	filename := fmt.Sprintf("%s%s.%s.%s",
		models.FilenamePrefix, b.beneficiary, creationDate, identity.SequenceID)

	body := make([]string, len(lines))
	copy(body, lines)

	return &models.OutputArtifact{
		Filename: filename,
		Header:   header,
		Lines:    body,
	}
}
