// Package cache keeps the last good KPI snapshot in Redis so the dashboard
// can keep showing numbers while the store is unreachable.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/traffic_ops_console/internal/models"
)

const (
	kpiSnapshotKey = "kpi:snapshot"
	kpiSnapshotTTL = 24 * time.Hour
)

// SnapshotCache stores and recalls the most recent KPI snapshot.
type SnapshotCache interface {
	// Get returns the cached snapshot, or (nil, nil) on a miss.
	Get(ctx context.Context) (*models.KPISnapshot, error)
	Set(ctx context.Context, snap *models.KPISnapshot) error
}

// RedisSnapshotCache implements SnapshotCache on a Redis client.
type RedisSnapshotCache struct {
	redisClient *redis.Client
}

func NewRedisSnapshotCache(client *redis.Client) *RedisSnapshotCache {
	return &RedisSnapshotCache{redisClient: client}
}

func (c *RedisSnapshotCache) Get(ctx context.Context) (*models.KPISnapshot, error) {
	val, err := c.redisClient.Get(ctx, kpiSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get kpi snapshot from cache: %w", err)
	}

	snap := &models.KPISnapshot{}
	if err := json.Unmarshal(val, snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kpi snapshot from cache: %w", err)
	}
	return snap, nil
}

func (c *RedisSnapshotCache) Set(ctx context.Context, snap *models.KPISnapshot) error {
	val, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal kpi snapshot for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, kpiSnapshotKey, val, kpiSnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to set kpi snapshot in cache: %w", err)
	}
	return nil
}

// NoopSnapshotCache is used when Redis is not configured: always misses,
// never fails.
type NoopSnapshotCache struct{}

func (NoopSnapshotCache) Get(ctx context.Context) (*models.KPISnapshot, error) { return nil, nil }

func (NoopSnapshotCache) Set(ctx context.Context, snap *models.KPISnapshot) error { return nil }
