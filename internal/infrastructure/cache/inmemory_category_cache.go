package cache

import (
	"context"
	"sync"
	"time"

	appaggregation "github.com/storefront/backend/internal/application/aggregation"
)

// InMemoryCategoryCache is a process-local category cache for single
// instance deployments and tests.
type InMemoryCategoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryCacheEntry
	now     func() time.Time
}

type memoryCacheEntry struct {
	values    []string
	expiresAt time.Time
}

// NewInMemoryCategoryCache creates an in-memory category cache
func NewInMemoryCategoryCache(ttl time.Duration) *InMemoryCategoryCache {
	return &InMemoryCategoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryCacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached values for key, or a miss when absent or expired
func (c *InMemoryCategoryCache) Get(_ context.Context, key string) ([]string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	values := make([]string, len(entry.values))
	copy(values, entry.values)
	return values, true
}

// Set stores values under key with the configured TTL
func (c *InMemoryCategoryCache) Set(_ context.Context, key string, values []string) {
	stored := make([]string, len(values))
	copy(stored, values)

	c.mu.Lock()
	c.entries[key] = memoryCacheEntry{
		values:    stored,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Ensure InMemoryCategoryCache implements the aggregator's cache port
var _ appaggregation.CategoryCache = (*InMemoryCategoryCache)(nil)
