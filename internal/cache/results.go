package cache

import (
	"encoding/json"
	"time"

	"github.com/ppiankov/veridex/internal/model"
)

// timeNow is injectable for expiry tests
var timeNow = time.Now

// ResultCache stores verification results keyed by the content hash of the
// normalized input text. TTL is measured from write time only; reads never
// refresh it.
type ResultCache struct {
	store Cache
	ttl   time.Duration
}

// resultEntry is the persisted record: the full result plus write timestamp
type resultEntry struct {
	Result    model.VerificationResult `json:"result"`
	CreatedAt time.Time                `json:"created_at"`
}

// NewResultCache creates a result cache over the given byte store
func NewResultCache(store Cache, ttl time.Duration) *ResultCache {
	return &ResultCache{store: store, ttl: ttl}
}

// Get returns the cached result for the text, if present and fresh.
// Stale entries are deleted on the spot; corrupted entries are a miss.
func (c *ResultCache) Get(text string) (*model.VerificationResult, bool) {
	key := Key(text)

	data, found := c.store.Get(key)
	if !found {
		return nil, false
	}

	var entry resultEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = c.store.Delete(key)
		return nil, false
	}

	if timeNow().Sub(entry.CreatedAt) > c.ttl {
		_ = c.store.Delete(key)
		return nil, false
	}

	return &entry.Result, true
}

// Set stores a result for the text, overwriting any previous entry and
// timestamping it at write time.
func (c *ResultCache) Set(text string, result model.VerificationResult) error {
	entry := resultEntry{
		Result:    result,
		CreatedAt: timeNow(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return c.store.Set(Key(text), data, c.ttl)
}

// Clear drops every cached result
func (c *ResultCache) Clear() error {
	return c.store.Clear()
}

// TTL returns the configured entry lifetime
func (c *ResultCache) TTL() time.Duration {
	return c.ttl
}
