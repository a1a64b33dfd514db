package stores

import (
	"context"
	"sync"
)

// InMemoryStatsCache is a map-backed StatsCache for tests and standalone
// deployments.
type InMemoryStatsCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewInMemoryStatsCache creates a new empty in-memory cache.
func NewInMemoryStatsCache() *InMemoryStatsCache {
	return &InMemoryStatsCache{
		entries: make(map[string][]byte),
	}
}

func (c *InMemoryStatsCache) Set(ctx context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cp
	return nil
}

func (c *InMemoryStatsCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}
