package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns the hex SHA-256 of data
func HashContent(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ShortHash is the first 12 hex digits of HashContent, for display
func ShortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12]
}
