package service

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

type Deduplicator interface {
	// FirstSeen records key for ttl and reports whether it was new.
	FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Forget drops key so the next FirstSeen reports it as new.
	Forget(ctx context.Context, key string) error
}

type RedisDeduplicator struct {
	client *redis.Client
	prefix string
}

func NewRedisDeduplicator(client *redis.Client) *RedisDeduplicator {
	return &RedisDeduplicator{client: client, prefix: "gamemart:alert:"}
}

func (rd *RedisDeduplicator) FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := rd.client.SetNX(ctx, rd.prefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

func (rd *RedisDeduplicator) Forget(ctx context.Context, key string) error {
	if err := rd.client.Del(ctx, rd.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// MemoryDeduplicator keeps keys in process memory. It is the fallback when
// no redis address is configured.
type MemoryDeduplicator struct {
	*cache.Cache
}

func NewMemoryDeduplicator() *MemoryDeduplicator {
	return &MemoryDeduplicator{Cache: cache.New(alertDedupTTL, 10*time.Minute)}
}

func (md *MemoryDeduplicator) FirstSeen(_ context.Context, key string, ttl time.Duration) (bool, error) {
	return md.Add(key, struct{}{}, ttl) == nil, nil
}

func (md *MemoryDeduplicator) Forget(_ context.Context, key string) error {
	md.Delete(key)
	return nil
}
