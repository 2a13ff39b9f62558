package cache

import (
	"time"
)

// CacheService caches serialized listing responses keyed by the submitted
// URL, so repeat submits of the same listing are served without refetching
// the portal. Entries expire; nothing is persisted.
type CacheService interface {
	// Get retrieves a value from the cache
	Get(key string) ([]byte, error)

	// Set stores a value in the cache with an expiration time
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(key string) error
}
