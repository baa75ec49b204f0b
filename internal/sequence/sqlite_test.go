package sequence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvraw/internal/sqlitedb"
)

func TestSQLiteStoreDailyRolling(t *testing.T) {
	pool, err := sqlitedb.Open(filepath.Join(t.TempDir(), "counter.db"), 1)
	require.NoError(t, err)
	defer pool.Close()

	store := NewSQLiteStore(pool)
	ctx := context.Background()

	id, err := store.Next(ctx, "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = store.Next(ctx, "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	id, err = store.Next(ctx, "2025-01-02")
	require.NoError(t, err)
	assert.Equal(t, 1, id, "counter must reset on a date change")
}

func TestSQLiteStoreConcurrentAllocations(t *testing.T) {
	// Pool size above 1 so allocations genuinely contend; BEGIN
	// IMMEDIATE plus the busy timeout must serialize them.
	pool, err := sqlitedb.Open(filepath.Join(t.TempDir(), "counter.db"), 4)
	require.NoError(t, err)
	defer pool.Close()

	assertUniqueAllocations(t, NewSQLiteStore(pool), 20)
}

func TestSQLiteStateOutlivesPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.db")
	ctx := context.Background()

	pool, err := sqlitedb.Open(path, 1)
	require.NoError(t, err)
	store := NewSQLiteStore(pool)

	_, err = store.Next(ctx, "2025-01-01")
	require.NoError(t, err)
	_, err = store.Next(ctx, "2025-01-01")
	require.NoError(t, err)
	require.NoError(t, pool.Close())

	// A fresh pool over the same file continues the sequence.
	pool, err = sqlitedb.Open(path, 1)
	require.NoError(t, err)
	defer pool.Close()

	id, err := NewSQLiteStore(pool).Next(ctx, "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}
