package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/traffic_ops_console/internal/models"
)

func newTestCache(t *testing.T) (*RedisSnapshotCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSnapshotCache(client), mr
}

func TestRedisSnapshotCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	snap, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRedisSnapshotCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	want := &models.KPISnapshot{
		AvgSpeed:        42.5,
		IncidentsToday:  3,
		CongestionLevel: 61,
		CamerasOnline:   3,
		CamerasTotal:    4,
	}
	require.NoError(t, c.Set(ctx, want))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRedisSnapshotCache_ServesAfterStoreFailure(t *testing.T) {
	// The cache must keep serving the last written snapshot; overwrite
	// and read back to confirm only the newest survives.
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &models.KPISnapshot{AvgSpeed: 10}))
	require.NoError(t, c.Set(ctx, &models.KPISnapshot{AvgSpeed: 20}))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 20.0, got.AvgSpeed)
}

func TestRedisSnapshotCache_RedisDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	_, err := c.Get(context.Background())
	assert.Error(t, err)
}

func TestNoopSnapshotCache(t *testing.T) {
	ctx := context.Background()
	var c NoopSnapshotCache

	require.NoError(t, c.Set(ctx, &models.KPISnapshot{AvgSpeed: 99}))
	snap, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
}
