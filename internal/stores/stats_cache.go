package stores

import (
	"context"
	"errors"
)

var (
	// ErrCacheMiss signals a key that has not been published yet. It is a
	// normal, expected state before the first rebuild pass, not a failure.
	ErrCacheMiss = errors.New("cache entry not found")
)

// StatsCache is the key-value store the cache publisher writes rollup
// results into and the read path serves from. Entirely derived state: it is
// safe to rebuild all keys from scratch at any time. No TTL semantics;
// staleness is managed purely by rebuild cadence.
//
//go:generate mockgen -source=stats_cache.go -destination=./mocks/stats_cache_mock.go -package=mocks
type StatsCache interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
