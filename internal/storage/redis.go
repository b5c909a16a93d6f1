package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis server. Records are plain string values
// with no TTL; this is durable app state, not a cache.
type Redis struct {
	client *redis.Client
}

// ConnectRedis parses redisURL, creates a client, and verifies connectivity
// with a ping. Callers own the returned store and should Close it on
// shutdown.
func ConnectRedis(ctx context.Context, redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("storage.ConnectRedis: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("storage.ConnectRedis: ping: %w", err)
	}

	return &Redis{client: client}, nil
}

// NewRedis wraps an existing client. Used by tests that run against
// miniredis.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Load returns the blob stored under key. A redis.Nil reply means the key is
// absent, not an error.
func (r *Redis) Load(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("storage.Redis.Load %q: %w", key, err)
	}
	return val, true, nil
}

// Save writes value under key with no expiry.
func (r *Redis) Save(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage.Redis.Save %q: %w", key, err)
	}
	return nil
}

// Remove deletes the record under key. Deleting an absent key is a no-op.
func (r *Redis) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("storage.Redis.Remove %q: %w", key, err)
	}
	return nil
}

// Ping verifies the server is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("storage.Redis.Ping: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error { return r.client.Close() }

var _ Store = (*Redis)(nil)
