package repository

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"

	redisapp "portfolio/internal/storage/redis"
)

// MemoryPreloadCache keeps loaded URLs for the lifetime of the process.
type MemoryPreloadCache struct {
	c *cache.Cache
}

func NewMemoryPreloadCache() *MemoryPreloadCache {
	return &MemoryPreloadCache{c: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryPreloadCache) Has(_ context.Context, url string) (bool, error) {
	_, ok := m.c.Get(url)
	return ok, nil
}

func (m *MemoryPreloadCache) MarkLoaded(_ context.Context, url string) error {
	m.c.Set(url, struct{}{}, cache.NoExpiration)
	return nil
}

// Len reports how many URLs are remembered.
func (m *MemoryPreloadCache) Len() int {
	return m.c.ItemCount()
}

// RedisPreloadCache shares loaded URLs between instances.
type RedisPreloadCache struct {
	Client *redisapp.Client
}

func NewRedisPreloadCache(client *redisapp.Client) *RedisPreloadCache {
	return &RedisPreloadCache{Client: client}
}

func (r *RedisPreloadCache) Has(ctx context.Context, url string) (bool, error) {
	const op = "repository.RedisPreloadCache.Has"

	n, err := r.Client.Exists(ctx, preloadKey(url)).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n > 0, nil
}

func (r *RedisPreloadCache) MarkLoaded(ctx context.Context, url string) error {
	const op = "repository.RedisPreloadCache.MarkLoaded"

	if err := r.Client.Set(ctx, preloadKey(url), "1", 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func preloadKey(url string) string {
	return "preload:" + url
}
