package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appaggregation "github.com/storefront/backend/internal/application/aggregation"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// RedisCategoryCache caches upstream category lists in Redis. It is suitable
// for distributed deployments where multiple instances share the cache.
// All operations fail soft: a Redis error degrades to a cache miss.
type RedisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCategoryCache connects to Redis and returns a category cache
func NewRedisCategoryCache(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisCategoryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCategoryCacheWithClient(client, ttl, logger), nil
}

// NewRedisCategoryCacheWithClient creates a cache over an existing client.
// Useful for testing or when sharing a client across components.
func NewRedisCategoryCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCategoryCache {
	return &RedisCategoryCache{
		client: client,
		ttl:    ttl,
		logger: logger.Named("category-cache"),
	}
}

// Get returns the cached values for key, or a miss on absence or error
func (c *RedisCategoryCache) Get(ctx context.Context, key string) ([]string, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var values []string
	if err := json.Unmarshal(payload, &values); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return values, true
}

// Set stores values under key with the configured TTL
func (c *RedisCategoryCache) Set(ctx context.Context, key string, values []string) {
	payload, err := json.Marshal(values)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisCategoryCache) Close() error {
	return c.client.Close()
}

// Ensure RedisCategoryCache implements the aggregator's cache port
var _ appaggregation.CategoryCache = (*RedisCategoryCache)(nil)
