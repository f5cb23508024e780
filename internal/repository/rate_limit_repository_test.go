package repository_test

import (
	"context"
	"testing"
	"time"

	"pro_portfolio/internal/repository"
	redisapp "pro_portfolio/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupLimiter() (*repository.RedisRateLimiter, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return repository.NewRedisRateLimiter(&redisapp.Client{Client: db}), mock
}

const testKey = "contact:rate:203.0.113.7"

func TestRedisRateLimiter_Count(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key counts as zero", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectGet(testKey).RedisNil()

		count, err := limiter.Count(ctx, testKey)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("existing key", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectGet(testKey).SetVal("4")

		count, err := limiter.Count(ctx, testKey)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("redis error", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectGet(testKey).SetErr(redis.ErrClosed)

		_, err := limiter.Count(ctx, testKey)
		assert.ErrorIs(t, err, redis.ErrClosed)
	})
}

func TestRedisRateLimiter_Hit(t *testing.T) {
	ctx := context.Background()
	window := time.Hour

	t.Run("first hit starts the window", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectSetNX(testKey, 1, window).SetVal(true)

		count, err := limiter.Hit(ctx, testKey, window)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("subsequent hit increments", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectSetNX(testKey, 1, window).SetVal(false)
		mock.ExpectIncr(testKey).SetVal(3)
		mock.ExpectTTL(testKey).SetVal(30 * time.Minute)

		count, err := limiter.Hit(ctx, testKey, window)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expiry lost between check and increment resets window", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectSetNX(testKey, 1, window).SetVal(false)
		mock.ExpectIncr(testKey).SetVal(1)
		mock.ExpectTTL(testKey).SetVal(-1)
		mock.ExpectSet(testKey, 1, window).SetVal("OK")

		count, err := limiter.Hit(ctx, testKey, window)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error on increment", func(t *testing.T) {
		limiter, mock := setupLimiter()
		mock.ExpectSetNX(testKey, 1, window).SetVal(false)
		mock.ExpectIncr(testKey).SetErr(redis.ErrClosed)

		_, err := limiter.Hit(ctx, testKey, window)
		assert.ErrorIs(t, err, redis.ErrClosed)
	})
}
