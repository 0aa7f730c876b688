package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for the underlying byte store. Implementations
// must be safe under concurrent access; volume-bounded eviction on overflow
// is the store's own concern.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates the content-addressed cache key: SHA-256 over the
// lowercase-trimmed input text, so lookups are case and edge-whitespace
// insensitive.
func Key(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}
