package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashParts hashes a sequence of values via their JSON encoding.
// Used to derive one content hash from edges plus options.
func HashParts(parts ...any) string {
	data, _ := json.Marshal(parts)
	return Hash(data)
}
