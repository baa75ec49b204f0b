// Package dedup detects resubmission of identical batches. The
// fingerprint of the exact raw input bytes keys an index of previously
// produced artifacts; a hit short-circuits the whole pipeline. The
// index is a best-effort optimization: when it is unavailable the
// conversion proceeds without deduplication.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"

	"csvraw/internal/models"
)

// Fingerprint computes the SHA-256 hex digest of the raw input bytes.
// Byte-identical input always yields the identical fingerprint.
func Fingerprint(raw []byte) models.ContentFingerprint {
	sum := sha256.Sum256(raw)
	return models.ContentFingerprint(hex.EncodeToString(sum[:]))
}
