package repository

import (
	"context"
	"errors"
	"time"

	redisapp "pro_portfolio/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter keeps fixed-window counters in a shared redis instance so
// the quota holds across replicas.
type RedisRateLimiter struct {
	Client *redisapp.Client
}

func NewRedisRateLimiter(client *redisapp.Client) *RedisRateLimiter {
	return &RedisRateLimiter{Client: client}
}

func (r *RedisRateLimiter) Count(ctx context.Context, key string) (int64, error) {
	val, err := r.Client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

func (r *RedisRateLimiter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	ok, err := r.Client.SetNX(ctx, key, 1, window).Result()
	if err != nil {
		return 0, err
	}
	if ok {
		return 1, nil
	}

	count, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	ttl, err := r.Client.TTL(ctx, key).Result()
	if err != nil {
		return count, err
	}

	// The key expired between SETNX and INCR, so INCR recreated it without
	// an expiry. Start a fresh window instead of leaving an immortal counter.
	if ttl < 0 {
		if err := r.Client.Set(ctx, key, 1, window).Err(); err != nil {
			return count, err
		}
		return 1, nil
	}

	return count, nil
}
