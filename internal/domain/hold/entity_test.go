//go:build unit

package hold_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlot(t *testing.T) slot.Slot {
	t.Helper()
	iv, err := slot.ParseInterval("10:00", "11:00")
	require.NoError(t, err)
	return slot.New(uuid.New(), "2025-11-01", iv)
}

func TestNewHold(t *testing.T) {
	now := time.Date(2025, 10, 30, 12, 0, 0, 0, time.UTC)

	t.Run("ttl boundary", func(t *testing.T) {
		h, err := hold.NewHold(testSlot(t), "sess-1", hold.KindCustomer, hold.CustomerSnapshot{}, "AB12CD", now, 15*time.Minute)
		require.NoError(t, err)

		assert.Equal(t, now.Add(15*time.Minute), h.ExpiresAt())
		assert.False(t, h.IsExpired(now.Add(15*time.Minute-time.Nanosecond)))
		assert.True(t, h.IsExpired(now.Add(15*time.Minute)))
		assert.ErrorIs(t, h.EnsureLive(now.Add(time.Hour)), hold.ErrHoldExpired)
		assert.NotEqual(t, uuid.Nil, h.ID())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := hold.NewHold(testSlot(t), "  ", hold.KindCustomer, hold.CustomerSnapshot{}, "AB12CD", now, time.Minute)
		assert.ErrorIs(t, err, hold.ErrEmptySession)

		_, err = hold.NewHold(testSlot(t), "sess", hold.KindCustomer, hold.CustomerSnapshot{}, "AB12CD", now, 0)
		assert.ErrorIs(t, err, hold.ErrNonPositiveTTL)

		_, err = hold.NewHold(testSlot(t), "sess", hold.KindCustomer, hold.CustomerSnapshot{}, "", now, time.Minute)
		assert.ErrorIs(t, err, hold.ErrEmptyReservation)
	})

	t.Run("ownership", func(t *testing.T) {
		h, err := hold.NewHold(testSlot(t), "sess-1", hold.KindCustomer, hold.CustomerSnapshot{}, "AB12CD", now, time.Minute)
		require.NoError(t, err)
		assert.True(t, h.OwnedBy(" sess-1 "))
		assert.False(t, h.OwnedBy("sess-2"))
	})
}

func TestPolicy(t *testing.T) {
	p := hold.DefaultPolicy()
	assert.Equal(t, 15*time.Minute, p.TTL(hold.KindCustomer))
	assert.Equal(t, 3*time.Minute, p.TTL(hold.KindProbe))
}
