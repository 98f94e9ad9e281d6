package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey builds the cache key for a rendered artifact: the hash of the
// DOT source scoped by output format, so the same graph rendered to SVG and
// PNG occupies two entries.
func ArtifactKey(dot string, format string) string {
	return fmt.Sprintf("artifact:%s:%s", format, Hash([]byte(dot)))
}
