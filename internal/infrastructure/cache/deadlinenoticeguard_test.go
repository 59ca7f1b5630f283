package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestDeadlineNoticeGuard_BuildKey(t *testing.T) {
	g := NewDeadlineNoticeGuard(nil, time.Hour)
	day := time.Date(2024, 3, 10, 23, 15, 0, 0, time.UTC)

	assert.Equal(t, "deadline_notice:2:9:2024-03-10", g.buildKey(2, 9, day))
}

func TestDeadlineNoticeGuard_TryAcquire(t *testing.T) {
	client, mr := setupTestRedis(t)
	g := NewDeadlineNoticeGuard(client, 36*time.Hour)
	ctx := context.Background()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	ok, err := g.TryAcquire(ctx, 2, 9, day)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.TryAcquire(ctx, 2, 9, day)
	require.NoError(t, err)
	assert.False(t, ok, "same reminder on the same day must not be claimed twice")

	ok, err = g.TryAcquire(ctx, 2, 10, day)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.TryAcquire(ctx, 2, 9, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 36*time.Hour, mr.TTL("deadline_notice:2:9:2024-03-10"))
}

func TestDeadlineNoticeGuard_ExpiresAfterTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	g := NewDeadlineNoticeGuard(client, time.Hour)
	ctx := context.Background()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	ok, err := g.TryAcquire(ctx, 1, 1, day)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Hour)

	ok, err = g.TryAcquire(ctx, 1, 1, day)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeadlineNoticeGuard_Release(t *testing.T) {
	client, _ := setupTestRedis(t)
	g := NewDeadlineNoticeGuard(client, time.Hour)
	ctx := context.Background()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := g.TryAcquire(ctx, 1, 1, day)
	require.NoError(t, err)
	require.NoError(t, g.Release(ctx, 1, 1, day))

	ok, err := g.TryAcquire(ctx, 1, 1, day)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeadlineNoticeGuard_RedisDown(t *testing.T) {
	client, mr := setupTestRedis(t)
	g := NewDeadlineNoticeGuard(client, time.Hour)
	mr.Close()

	_, err := g.TryAcquire(context.Background(), 1, 1, time.Now())
	assert.Error(t, err)
}
