package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// digest streams the JSON encoding of v into SHA-256. Render parameters are
// plain structs, so encoding cannot fail in practice; if it does the key
// degrades to the hash of whatever was written.
func digest(v any) string {
	h := sha256.New()
	_ = json.NewEncoder(h).Encode(v)
	return hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
