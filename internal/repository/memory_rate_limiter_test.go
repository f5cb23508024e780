package repository_test

import (
	"context"
	"testing"
	"time"

	"pro_portfolio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_CountAndHit(t *testing.T) {
	ctx := context.Background()
	limiter := repository.NewMemoryRateLimiter()

	count, err := limiter.Count(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for want := int64(1); want <= 5; want++ {
		got, err := limiter.Hit(ctx, "k", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	count, err = limiter.Count(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestMemoryRateLimiter_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	limiter := repository.NewMemoryRateLimiter()

	_, err := limiter.Hit(ctx, "a", time.Hour)
	require.NoError(t, err)

	count, err := limiter.Count(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMemoryRateLimiter_WindowExpiry(t *testing.T) {
	ctx := context.Background()
	limiter := repository.NewMemoryRateLimiter()

	_, err := limiter.Hit(ctx, "k", 20*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	// the old window is gone; the next hit starts a fresh one
	got, err := limiter.Hit(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
