// Package converter orchestrates the RAW conversion pipeline:
// fingerprint and dedup lookup, tabular parsing, batch date
// validation, per-row classification and encoding, sequence
// allocation, envelope assembly and persistence.
package converter

import (
	"context"
	"time"

	"csvraw/internal/batch"
	"csvraw/internal/classifier"
	"csvraw/internal/dedup"
	"csvraw/internal/encoder"
	"csvraw/internal/envelope"
	"csvraw/internal/logging"
	"csvraw/internal/models"
	"csvraw/internal/sequence"
	"csvraw/internal/store"
	"csvraw/internal/tabular"
)

// Sink persists the produced artifact and the input it came from.
type Sink interface {
	SaveArtifact(artifact *models.OutputArtifact, rawInput []byte, identity models.BatchIdentity, fp models.ContentFingerprint) error
}

// Converter runs the pipeline. The phases up to sequence allocation
// are stateless and side-effect-free, so any error aborts the batch
// with no sequence id consumed and nothing written.
type Converter struct {
	classifier   *classifier.Classifier
	envelope     *envelope.Builder
	allocator    *sequence.Allocator
	index        dedup.Index // nil: deduplication disabled
	sink         Sink        // nil: nothing persisted (validate-only)
	extraColumns []string
	logger       logging.Logger
	now          func() time.Time
}

// Options configures a Converter.
type Options struct {
	Beneficiary  string
	HeaderPrefix string
	Allocator    *sequence.Allocator
	Index        dedup.Index
	Sink         Sink
	ExtraColumns []string
	Logger       logging.Logger
}

// Result is the outcome of one conversion call.
type Result struct {
	Artifact *models.OutputArtifact
	Identity models.BatchIdentity
	Records  []models.CanonicalRecord

	// Duplicate is true when the input matched a previously produced
	// batch; Artifact is then the stored artifact, unchanged, and no
	// sequence id was consumed.
	Duplicate bool
}

// New creates a Converter.
func New(opts Options) *Converter {
	return &Converter{
		classifier:   classifier.New(opts.Beneficiary),
		envelope:     envelope.NewBuilder(opts.HeaderPrefix, opts.Beneficiary),
		allocator:    opts.Allocator,
		index:        opts.Index,
		sink:         opts.Sink,
		extraColumns: opts.ExtraColumns,
		logger:       opts.Logger,
		now:          time.Now,
	}
}

// WithClock overrides the converter's notion of the current time.
func (c *Converter) WithClock(now func() time.Time) *Converter {
	c.now = now
	return c
}

// Convert runs the full pipeline over one raw input batch.
func (c *Converter) Convert(ctx context.Context, raw []byte) (*Result, error) {
	fp := dedup.Fingerprint(raw)

	if c.index != nil {
		artifact, ok, err := c.index.Lookup(ctx, fp)
		if err != nil {
			c.logger.WithError(err).Warn("dedup index unavailable, proceeding without deduplication")
		} else if ok {
			c.logger.Info("duplicate batch, returning stored artifact",
				logging.Field{Key: "filename", Value: artifact.Filename})
			return &Result{Artifact: artifact, Duplicate: true}, nil
		}
	}

	records, lines, issueDate, err := c.encode(raw)
	if err != nil {
		return nil, err
	}

	id, err := c.allocator.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	identity := models.NewBatchIdentity(id, len(lines), issueDate)

	creationDate := c.now().Format("02012006")
	artifact := c.envelope.Build(lines, identity, creationDate)

	if c.sink != nil {
		if err := c.sink.SaveArtifact(artifact, raw, identity, fp); err != nil {
			return nil, err
		}
	}

	if c.index != nil {
		if err := c.index.Record(ctx, fp, artifact); err != nil {
			c.logger.WithError(err).Warn("failed to record batch in dedup index")
		}
	}

	c.logger.Info("batch converted",
		logging.Field{Key: "filename", Value: artifact.Filename},
		logging.Field{Key: "rows", Value: len(lines)})
	return &Result{Artifact: artifact, Identity: identity, Records: records}, nil
}

// Validate runs parsing, date validation and classification without
// allocating a sequence id or writing anything.
func (c *Converter) Validate(raw []byte) (*Result, error) {
	records, _, issueDate, err := c.encode(raw)
	if err != nil {
		return nil, err
	}
	return &Result{
		Identity: models.BatchIdentity{IssueDate: issueDate},
		Records:  records,
	}, nil
}

// encode is the stateless front half of the pipeline: raw bytes to
// canonical records and encoded lines.
func (c *Converter) encode(raw []byte) ([]models.CanonicalRecord, []string, string, error) {
	table, err := tabular.Parse(raw, c.extraColumns)
	if err != nil {
		return nil, nil, "", err
	}

	issueDate, err := batch.IssueDate(table)
	if err != nil {
		return nil, nil, "", err
	}

	records := make([]models.CanonicalRecord, 0, len(table.Rows))
	lines := make([]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		rec, err := c.classifier.Normalize(row, i+1)
		if err != nil {
			return nil, nil, "", err
		}
		records = append(records, rec)
		lines = append(lines, encoder.EncodeLine(rec))
	}
	return records, lines, issueDate, nil
}

// assert FileStore satisfies Sink
var _ Sink = (*store.FileStore)(nil)
