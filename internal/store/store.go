// Package store durably persists produced RAW artifacts and the
// original inputs they were built from, keyed by sequence id, and
// keeps a YAML manifest of every produced batch as an audit record.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"csvraw/internal/fileutils"
	"csvraw/internal/logging"
	"csvraw/internal/models"
)

const (
	rawDir       = "raw"
	csvDir       = "csv"
	manifestFile = "manifest.yaml"
)

// ManifestEntry records one produced batch.
type ManifestEntry struct {
	Filename    string `yaml:"filename"`
	Fingerprint string `yaml:"fingerprint"`
	SequenceID  string `yaml:"sequence_id"`
	IssueDate   string `yaml:"issue_date"`
	CreatedAt   string `yaml:"created_at"`
}

// FileStore is the filesystem artifact sink: artifacts under raw/,
// original inputs under csv/, the manifest at the root of the data
// directory. Writes go through temp-then-rename.
type FileStore struct {
	dir    string
	logger logging.Logger
	now    func() time.Time
}

// NewFileStore creates a store rooted at dir.
func NewFileStore(dir string, logger logging.Logger) *FileStore {
	return &FileStore{dir: dir, logger: logger, now: time.Now}
}

// SaveArtifact persists the artifact and the raw input it was built
// from, then appends a manifest entry. The input is stored under the
// sequence id so the pair can be retrieved later.
func (s *FileStore) SaveArtifact(artifact *models.OutputArtifact, rawInput []byte, identity models.BatchIdentity, fp models.ContentFingerprint) error {
	inputPath := filepath.Join(s.dir, csvDir, identity.SequenceID+".csv")
	if err := fileutils.WriteFileAtomic(inputPath, rawInput, models.PermissionDataFile); err != nil {
		return fmt.Errorf("storing input: %w", err)
	}

	artifactPath := filepath.Join(s.dir, rawDir, artifact.Filename)
	if err := fileutils.WriteFileAtomic(artifactPath, []byte(artifact.Content()), models.PermissionDataFile); err != nil {
		return fmt.Errorf("storing artifact: %w", err)
	}

	entry := ManifestEntry{
		Filename:    artifact.Filename,
		Fingerprint: string(fp),
		SequenceID:  identity.SequenceID,
		IssueDate:   identity.IssueDate,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
	}
	if err := s.appendManifest(entry); err != nil {
		// The artifact itself is durable; a manifest failure only
		// degrades the audit trail.
		s.logger.WithError(err).Warn("failed to update manifest")
	}

	s.logger.Info("artifact stored",
		logging.Field{Key: "filename", Value: artifact.Filename},
		logging.Field{Key: "sequence_id", Value: identity.SequenceID})
	return nil
}

// LoadArtifact re-reads a previously produced artifact by filename.
func (s *FileStore) LoadArtifact(filename string) (*models.OutputArtifact, error) {
	data, err := fileutils.ReadFile(filepath.Join(s.dir, rawDir, filename))
	if err != nil {
		return nil, fmt.Errorf("loading artifact %s: %w", filename, err)
	}
	return models.ParseArtifact(filename, string(data)), nil
}

// Manifest returns all recorded entries, oldest first. A missing
// manifest is an empty history, not an error.
func (s *FileStore) Manifest() ([]ManifestEntry, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, manifestFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var entries []ManifestEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return entries, nil
}

func (s *FileStore) appendManifest(entry ManifestEntry) error {
	entries, err := s.Manifest()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return fileutils.WriteFileAtomic(filepath.Join(s.dir, manifestFile), data, models.PermissionDataFile)
}
