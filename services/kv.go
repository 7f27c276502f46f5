package services

import (
	"context"
	"time"

	"plumtrips-backend/database"
)

// KV is the minimal store the draft and profile caches need; Redis in
// production, a map in tests.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// redisKV adapts the shared Redis client to KV. A nil client misses on
// every read and drops every write.
type redisKV struct{}

func (redisKV) Get(ctx context.Context, key string) (string, error) {
	if database.Redis == nil {
		return "", nil
	}
	return database.Redis.Get(ctx, key).Result()
}

func (redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if database.Redis == nil {
		return nil
	}
	return database.Redis.Set(ctx, key, value, ttl).Err()
}

func (redisKV) Del(ctx context.Context, key string) error {
	if database.Redis == nil {
		return nil
	}
	return database.Redis.Del(ctx, key).Err()
}
