package dedup

import (
	"context"
	"sync"

	"csvraw/internal/models"
)

// Index maps content fingerprints to previously produced artifacts.
// Lookup and Record form a check-then-act pair; two identical batches
// racing past a miss may both be processed, which is acceptable.
type Index interface {
	// Lookup returns the artifact previously recorded for fp, if any.
	Lookup(ctx context.Context, fp models.ContentFingerprint) (*models.OutputArtifact, bool, error)

	// Record stores the fingerprint-to-artifact mapping after a batch
	// has been produced.
	Record(ctx context.Context, fp models.ContentFingerprint, artifact *models.OutputArtifact) error
}

// MemoryIndex is an in-process Index, used in tests and as a
// degraded-mode stand-in when no database is available.
type MemoryIndex struct {
	mu      sync.RWMutex
	entries map[models.ContentFingerprint]*models.OutputArtifact
}

// NewMemoryIndex creates an empty in-memory index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{entries: make(map[models.ContentFingerprint]*models.OutputArtifact)}
}

func (m *MemoryIndex) Lookup(ctx context.Context, fp models.ContentFingerprint) (*models.OutputArtifact, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	artifact, ok := m.entries[fp]
	return artifact, ok, nil
}

func (m *MemoryIndex) Record(ctx context.Context, fp models.ContentFingerprint, artifact *models.OutputArtifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[fp] = artifact
	return nil
}
