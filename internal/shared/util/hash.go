package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum256Hex returns the hex-encoded SHA-256 of data, used as an upload checksum.
func Sum256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
