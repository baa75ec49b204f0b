package dedup

import (
	"context"
	"fmt"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"csvraw/internal/models"
)

// SQLiteIndex persists the dedup index in the shared SQLite database.
type SQLiteIndex struct {
	pool *sqlitex.Pool
	now  func() time.Time
}

// NewSQLiteIndex creates an index over an open pool.
func NewSQLiteIndex(pool *sqlitex.Pool) *SQLiteIndex {
	return &SQLiteIndex{pool: pool, now: time.Now}
}

func (s *SQLiteIndex) Lookup(ctx context.Context, fp models.ContentFingerprint) (*models.OutputArtifact, bool, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("dedup: %w", err)
	}
	defer s.pool.Put(conn)

	var artifact *models.OutputArtifact
	err = sqlitex.Execute(conn,
		"SELECT filename, content FROM file_hashes WHERE file_hash = ?",
		&sqlitex.ExecOptions{
			Args: []any{string(fp)},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				artifact = models.ParseArtifact(stmt.ColumnText(0), stmt.ColumnText(1))
				return nil
			},
		})
	if err != nil {
		return nil, false, fmt.Errorf("dedup: lookup: %w", err)
	}
	return artifact, artifact != nil, nil
}

func (s *SQLiteIndex) Record(ctx context.Context, fp models.ContentFingerprint, artifact *models.OutputArtifact) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("dedup: %w", err)
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn,
		`INSERT INTO file_hashes (file_hash, filename, content, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (file_hash) DO NOTHING`,
		&sqlitex.ExecOptions{Args: []any{
			string(fp), artifact.Filename, artifact.Content(),
			s.now().UTC().Format(time.RFC3339),
		}})
	if err != nil {
		return fmt.Errorf("dedup: record: %w", err)
	}
	return nil
}
