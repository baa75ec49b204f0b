// Package sqlitedb opens the SQLite database shared by the sequence
// counter and the deduplication index. Unavailability of this database
// never fails a conversion: the counter falls back to a file-based
// backend and deduplication degrades to a no-op.
package sqlitedb

import (
	"fmt"
	"path/filepath"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"csvraw/internal/fileutils"
)

const schema = `
CREATE TABLE IF NOT EXISTS file_counter (
	id        INTEGER PRIMARY KEY CHECK (id = 1),
	last_id   INTEGER NOT NULL,
	last_date TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS file_hashes (
	file_hash  TEXT PRIMARY KEY,
	filename   TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// Open creates a connection pool for the database at path, creating
// the file and schema as needed. Use ":memory:" with pool size 1 for
// tests.
func Open(path string, poolSize int) (*sqlitex.Pool, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlitedb: path is required")
	}
	if poolSize <= 0 {
		poolSize = 4
	}
	if path != ":memory:" {
		if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("sqlitedb: %w", err)
		}
	}

	pool, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize: poolSize,
		PrepareConn: func(conn *sqlite.Conn) error {
			return prepareConnection(conn)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sqlitedb: opening %s: %w", path, err)
	}
	return pool, nil
}

// prepareConnection applies standard pragmas and creates the schema.
// Runs once per pooled connection, on first use.
func prepareConnection(conn *sqlite.Conn) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("sqlitedb: %s: %w", pragma, err)
		}
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("sqlitedb: creating schema: %w", err)
	}
	return nil
}
