package sequence

import (
	"context"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"csvraw/internal/models"
)

// SQLiteStore persists counter state in the shared SQLite database.
// Each allocation is one BEGIN IMMEDIATE transaction, so concurrent
// callers (including other processes) never observe the same id for
// the same day.
type SQLiteStore struct {
	pool *sqlitex.Pool
}

// NewSQLiteStore creates a counter store over an open pool.
func NewSQLiteStore(pool *sqlitex.Pool) *SQLiteStore {
	return &SQLiteStore{pool: pool}
}

// Next performs one atomic read-modify-write of the counter row.
func (s *SQLiteStore) Next(ctx context.Context, today string) (id int, err error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return 0, fmt.Errorf("counter: %w", err)
	}
	defer s.pool.Put(conn)

	if err := sqlitex.ExecuteTransient(conn, "BEGIN IMMEDIATE", nil); err != nil {
		return 0, fmt.Errorf("counter: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = sqlitex.ExecuteTransient(conn, "ROLLBACK", nil)
		}
	}()

	var state models.CounterState
	found := false
	err = sqlitex.Execute(conn,
		"SELECT last_id, last_date FROM file_counter WHERE id = 1",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				state.LastID = int(stmt.ColumnInt64(0))
				state.LastDate = stmt.ColumnText(1)
				found = true
				return nil
			},
		})
	if err != nil {
		return 0, fmt.Errorf("counter: read: %w", err)
	}

	state = advance(state, found, today)

	err = sqlitex.Execute(conn,
		`INSERT INTO file_counter (id, last_id, last_date) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET last_id = excluded.last_id, last_date = excluded.last_date`,
		&sqlitex.ExecOptions{Args: []any{state.LastID, state.LastDate}})
	if err != nil {
		return 0, fmt.Errorf("counter: write: %w", err)
	}

	if err = sqlitex.ExecuteTransient(conn, "COMMIT", nil); err != nil {
		return 0, fmt.Errorf("counter: commit: %w", err)
	}
	return state.LastID, nil
}

// advance applies the daily-rolling rule shared by every backend.
func advance(state models.CounterState, found bool, today string) models.CounterState {
	if !found || state.LastDate != today {
		return models.CounterState{LastID: 1, LastDate: today}
	}
	return models.CounterState{LastID: state.LastID + 1, LastDate: today}
}
