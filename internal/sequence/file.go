package sequence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"csvraw/internal/fileutils"
	"csvraw/internal/models"
)

// FileStore is the fallback counter backend: a JSON file guarded by a
// mutex, written via temp-then-rename. It applies the same
// reset/increment semantics as the primary store but is only atomic
// within one process.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed counter store at path. The file
// is created on first allocation.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Next performs one allocation under the store's lock.
func (s *FileStore) Next(ctx context.Context, today string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, found, err := s.read()
	if err != nil {
		return 0, err
	}

	state = advance(state, found, today)

	data, err := json.Marshal(state)
	if err != nil {
		return 0, fmt.Errorf("counter file: %w", err)
	}
	if err := fileutils.WriteFileAtomic(s.path, data, 0644); err != nil {
		return 0, fmt.Errorf("counter file: %w", err)
	}
	return state.LastID, nil
}

func (s *FileStore) read() (models.CounterState, bool, error) {
	var state models.CounterState
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return state, false, nil
	}
	if err != nil {
		return state, false, fmt.Errorf("counter file: %w", err)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return state, false, fmt.Errorf("counter file: %w", err)
	}
	return state, true, nil
}
