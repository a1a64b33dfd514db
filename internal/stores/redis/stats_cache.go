package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/CarbonROM/tribble-tracker/internal/shared/configs"
	"github.com/CarbonROM/tribble-tracker/internal/shared/loggers"
	"github.com/CarbonROM/tribble-tracker/internal/stores"

	"github.com/redis/go-redis/v9"
)

// keyPrefix matches the namespace earlier deployments stored cache entries
// under, so a rebuilt service keeps serving an existing Redis database.
const keyPrefix = "cache/"

// StatsCache is the redis-backed statistics cache.
type StatsCache struct {
	client *redis.Client
	logger loggers.Logger
}

// NewStatsCache connects to Redis and verifies connectivity.
func NewStatsCache(ctx context.Context, cfg configs.RedisConfig, logger loggers.Logger) (*StatsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info().
		Str("addr", cfg.Addr).
		Int("db", cfg.DB).
		Msg("connected to Redis")

	return &StatsCache{client: client, logger: logger}, nil
}

func (c *StatsCache) Set(ctx context.Context, key string, value []byte) error {
	// No expiry: entries stay until the next rebuild overwrites them.
	if err := c.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %q: %w", key, err)
	}
	return nil
}

func (c *StatsCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, stores.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache key %q: %w", key, err)
	}
	return value, nil
}

// Close closes the Redis connection.
func (c *StatsCache) Close() error {
	if c.client != nil {
		c.logger.Info().Msg("Redis connection closed")
		return c.client.Close()
	}
	return nil
}

// Health checks if Redis is reachable.
func (c *StatsCache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
