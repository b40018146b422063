package cache

import (
	"context"
	"sync"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type memoryEntry struct {
	entries   []occupiedEntry
	expiresAt time.Time
}

// MemoryAvailabilityCache is the single-process fallback when no Redis
// address is configured.
type MemoryAvailabilityCache struct {
	mu    sync.Mutex
	clk   clock.Clock
	items map[string]memoryEntry
}

func NewMemoryAvailabilityCache(clk clock.Clock) *MemoryAvailabilityCache {
	return &MemoryAvailabilityCache{clk: clk, items: make(map[string]memoryEntry)}
}

var _ shared.AvailabilityCache = (*MemoryAvailabilityCache)(nil)

func (c *MemoryAvailabilityCache) Get(_ context.Context, resourceID uuid.UUID, date slot.Date) ([]slot.Occupied, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := availabilityKey(resourceID, date)
	item, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !c.clk.Now().Before(item.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return fromEntries(resourceID, date, item.entries)
}

func (c *MemoryAvailabilityCache) Set(_ context.Context, resourceID uuid.UUID, date slot.Date, occupied []slot.Occupied, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[availabilityKey(resourceID, date)] = memoryEntry{
		entries:   toEntries(occupied),
		expiresAt: c.clk.Now().Add(ttl),
	}
}

func (c *MemoryAvailabilityCache) Invalidate(_ context.Context, resourceID uuid.UUID, date slot.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, availabilityKey(resourceID, date))
}
