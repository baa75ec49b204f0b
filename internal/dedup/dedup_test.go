package dedup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvraw/internal/models"
)

func TestFingerprintDeterministic(t *testing.T) {
	input := []byte("Dt,CtrPty\n01/01/2025,INXXXXXXXXXXXXXX\n")

	assert.Equal(t, Fingerprint(input), Fingerprint(input))
	// SHA-256 hex digest.
	assert.Len(t, string(Fingerprint(input)), 64)
}

func TestFingerprintSensitiveToBytes(t *testing.T) {
	a := Fingerprint([]byte("Dt,CtrPty\n01/01/2025,INXXXXXXXXXXXXXX\n"))
	b := Fingerprint([]byte("Dt,CtrPty\n01/01/2025,INXXXXXXXXXXXXXX"))

	// Byte-level identity, not semantic identity: a missing trailing
	// newline is a different batch.
	assert.NotEqual(t, a, b)
}

func TestMemoryIndexLookupAndRecord(t *testing.T) {
	idx := NewMemoryIndex()
	ctx := context.Background()
	fp := Fingerprint([]byte("input"))

	_, found, err := idx.Lookup(ctx, fp)
	require.NoError(t, err)
	assert.False(t, found)

	artifact := &models.OutputArtifact{
		Filename: "181207650000865934.01012025.00001",
		Header:   "076500DPADM 0000010000101012025",
		Lines:    []string{"<Tp>4</Tp>"},
	}
	require.NoError(t, idx.Record(ctx, fp, artifact))

	got, found, err := idx.Lookup(ctx, fp)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, artifact, got)

	// An unrelated fingerprint still misses.
	_, found, err = idx.Lookup(ctx, Fingerprint([]byte("other")))
	require.NoError(t, err)
	assert.False(t, found)
}
