// Package cache is a small optional read-through cache in front of the
// persistence backend. It is wired only when a redis address is configured;
// every method degrades to a miss or a no-op when redis is unreachable, so
// a broken cache never breaks a request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/campuslink/campuslink/internal/pkg/logger"
)

// DefaultTTL bounds how stale a cached listing may get.
const DefaultTTL = 5 * time.Minute

// Cache reads and writes JSON-encoded values under namespaced keys.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Config carries the redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

type redisCache struct {
	client *redis.Client
}

// NewRedis connects to redis and verifies the connection with a ping.
func NewRedis(ctx context.Context, cfg Config) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info().Str("addr", cfg.Addr).Msg("Redis cache connected")
	return &redisCache{client: client}, nil
}

// GetJSON loads and decodes the value under key. A missing key is a miss,
// not an error.
func (c *redisCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("failed to decode cached value: %w", err)
	}
	return true, nil
}

// SetJSON encodes and stores the value under key with the given TTL.
func (c *redisCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for cache: %w", err)
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes the given keys. Missing keys are ignored.
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

type noopCache struct{}

// Noop returns a cache that always misses. Used when redis is not configured.
func Noop() Cache {
	return noopCache{}
}

func (noopCache) GetJSON(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopCache) SetJSON(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (noopCache) Delete(context.Context, ...string) error { return nil }
