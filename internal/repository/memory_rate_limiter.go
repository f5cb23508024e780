package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryRateLimiter is the in-process counter used when no redis address is
// configured. Quotas are per instance, not shared across replicas.
type MemoryRateLimiter struct {
	cache *cache.Cache
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (r *MemoryRateLimiter) Count(_ context.Context, key string) (int64, error) {
	val, found := r.cache.Get(key)
	if !found {
		return 0, nil
	}

	count, ok := val.(int64)
	if !ok {
		return 0, nil
	}

	return count, nil
}

func (r *MemoryRateLimiter) Hit(_ context.Context, key string, window time.Duration) (int64, error) {
	if err := r.cache.Add(key, int64(1), window); err == nil {
		return 1, nil
	}

	count, err := r.cache.IncrementInt64(key, 1)
	if err != nil {
		// lost the race with expiry; start a fresh window
		r.cache.Set(key, int64(1), window)
		return 1, nil
	}

	return count, nil
}
