package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// SeriesFingerprint identifies one loaded snapshot series. A zoom window is a
// pair of indices into a specific series; when the fingerprint changes the
// window is meaningless and must be discarded.
type SeriesFingerprint Hash

func (f SeriesFingerprint) String() string { return Hash(f).String() }

// ComputeSeriesFingerprint hashes the identity of a loaded series: its scope
// keys plus the bounds that change whenever a different result set is loaded.
func ComputeSeriesFingerprint(product ProductCode, location LocationID, warehouse WarehouseCode, length int, first, last Timestamp) SeriesFingerprint {
	parts := []string{
		product.String(),
		location.String(),
		warehouse.String(),
		fmt.Sprintf("%d", length),
		first.String(),
		last.String(),
	}
	return SeriesFingerprint(NewHash([]byte(strings.Join(parts, "|"))))
}
