package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const opTimeout = 500 * time.Millisecond

// RedisAvailabilityCache degrades to misses when Redis is unreachable.
type RedisAvailabilityCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisAvailabilityCache(client *redis.Client, logger *slog.Logger) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, logger: logger}
}

var _ shared.AvailabilityCache = (*RedisAvailabilityCache)(nil)

func (c *RedisAvailabilityCache) Get(ctx context.Context, resourceID uuid.UUID, date slot.Date) ([]slot.Occupied, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	key := availabilityKey(resourceID, date)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("availability cache get failed", "key", key, "error", err)
		}
		return nil, false
	}

	var entries []occupiedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		c.logger.Warn("availability cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return fromEntries(resourceID, date, entries)
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, resourceID uuid.UUID, date slot.Date, occupied []slot.Occupied, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, err := json.Marshal(toEntries(occupied))
	if err != nil {
		return
	}
	key := availabilityKey(resourceID, date)
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Warn("availability cache set failed", "key", key, "error", err)
	}
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, resourceID uuid.UUID, date slot.Date) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	key := availabilityKey(resourceID, date)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("availability cache invalidate failed", "key", key, "error", err)
	}
}
