//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/slot"
	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/memstore"
	sharedmock "court-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// CreateHold Tests
// =============================================================================

func TestHoldUseCase_CreateHold(t *testing.T) {
	ctx := context.Background()

	t.Run("success: prices the interval and sets the customer ttl", func(t *testing.T) {
		f := newFixture(t)
		req := f.holdRequest("10:00", "11:30")

		res, err := f.holds().CreateHold(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(30000), res.TotalPrice)
		assert.Equal(t, int64(30000), res.AmountDue)
		assert.Equal(t, testNow.Add(15*time.Minute), res.ExpiresAt)
		assert.Len(t, res.ReservationCode, 6)
		require.Len(t, f.store.Holds(), 1)
		assert.Equal(t, "session-1", f.store.Holds()[0].SessionID())
	})

	t.Run("success: half payment charges half online", func(t *testing.T) {
		f := newFixture(t)
		req := f.holdRequest("10:00", "11:00")
		req.PaidPercentage = 50

		res, err := f.holds().CreateHold(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(20000), res.TotalPrice)
		assert.Equal(t, int64(10000), res.AmountDue)
	})

	t.Run("success: adjacent intervals do not conflict", func(t *testing.T) {
		f := newFixture(t)
		uc := f.holds()

		_, err := uc.CreateHold(ctx, f.holdRequest("10:00", "11:00"))
		require.NoError(t, err)
		_, err = uc.CreateHold(ctx, f.holdRequest("11:00", "12:00"))
		require.NoError(t, err)
		_, err = uc.CreateHold(ctx, f.holdRequest("09:00", "10:00"))
		require.NoError(t, err)

		assert.Len(t, f.store.Holds(), 3)
	})

	t.Run("success: another court at the same time is free", func(t *testing.T) {
		f := newFixture(t)
		uc := f.holds()
		other := f.addCourt()

		_, err := uc.CreateHold(ctx, f.holdRequest("10:00", "11:00"))
		require.NoError(t, err)

		req := f.holdRequest("10:00", "11:00")
		req.ResourceID = other
		_, err = uc.CreateHold(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("success: an expired hold no longer blocks the slot", func(t *testing.T) {
		f := newFixture(t)
		uc := f.holds()

		_, err := uc.CreateHold(ctx, f.holdRequest("10:00", "11:00"))
		require.NoError(t, err)

		f.clock.Add(15 * time.Minute)
		req := f.holdRequest("10:30", "11:30")
		req.SessionID = "session-2"
		_, err = uc.CreateHold(ctx, req)

		require.NoError(t, err)
		holds := f.store.Holds()
		require.Len(t, holds, 1)
		assert.Equal(t, "session-2", holds[0].SessionID())
	})

	t.Run("error: overlapping hold conflicts", func(t *testing.T) {
		testCases := []struct {
			name       string
			start, end string
		}{
			{"same interval", "10:00", "11:00"},
			{"starts inside", "10:30", "11:30"},
			{"ends inside", "09:30", "10:30"},
			{"contains", "09:00", "12:00"},
			{"contained", "10:15", "10:45"},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				uc := f.holds()
				_, err := uc.CreateHold(ctx, f.holdRequest("10:00", "11:00"))
				require.NoError(t, err)

				_, err = uc.CreateHold(ctx, f.holdRequest(tc.start, tc.end))

				assert.ErrorIs(t, err, commands.ErrSlotConflict)
				assert.Len(t, f.store.Holds(), 1)
			})
		}
	})

	t.Run("error: active reservation blocks the slot", func(t *testing.T) {
		f := newFixture(t)
		h := builder.NewHoldBuilder().WithSlot(f.venue.CourtID, "2025-03-10", "10:00", "11:00").BuildDomain()
		res, err := reservationFromHold(h, f)
		require.NoError(t, err)
		f.store.PutReservation(res)

		_, err = f.holds().CreateHold(ctx, f.holdRequest("10:30", "11:30"))

		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("error: validation failures", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*commands.CreateHoldRequest)
		}{
			{"paid percentage 70", func(r *commands.CreateHoldRequest) { r.PaidPercentage = 70 }},
			{"empty customer name", func(r *commands.CreateHoldRequest) { r.Customer.Name = "  " }},
			{"empty session", func(r *commands.CreateHoldRequest) { r.SessionID = "" }},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				req := f.holdRequest("10:00", "11:00")
				tc.mutate(&req)

				_, err := f.holds().CreateHold(ctx, req)

				assert.True(t, errs.Is(err, commands.ErrDomainValidation), "got %v", err)
				assert.Empty(t, f.store.Holds())
			})
		}
	})

	t.Run("error: unknown court", func(t *testing.T) {
		f := newFixture(t)
		req := f.holdRequest("10:00", "11:00")
		req.ResourceID = uuid.New()

		_, err := f.holds().CreateHold(ctx, req)

		assert.ErrorIs(t, err, commands.ErrResourceNotFound)
	})

	t.Run("error: storage failure rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.store.FailOn(memstore.OpCreateHold, errors.New("disk full"))

		_, err := f.holds().CreateHold(ctx, f.holdRequest("10:00", "11:00"))

		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), "got %v", err)
		assert.Empty(t, f.store.Holds())
	})
}

func TestHoldUseCase_CreateHold_Concurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := f.holds()

	const attempts = 25
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		conflicts atomic.Int32
		start     = make(chan struct{})
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := f.holdRequest("18:00", "19:30")
			req.SessionID = fmt.Sprintf("session-%d", i)
			<-start
			_, err := uc.CreateHold(ctx, req)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, commands.ErrSlotConflict):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(attempts-1), conflicts.Load())
	assert.Len(t, f.store.Holds(), 1)
}

// =============================================================================
// ReleaseHold Tests
// =============================================================================

func TestHoldUseCase_ReleaseHold(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner releases and the slot is free again", func(t *testing.T) {
		f := newFixture(t)
		uc := f.holds()
		res, err := uc.CreateHold(ctx, f.holdRequest("10:00", "11:00"))
		require.NoError(t, err)

		require.NoError(t, uc.ReleaseHold(ctx, res.HoldID, "session-1"))

		assert.Empty(t, f.store.Holds())
		_, err = uc.CreateHold(ctx, f.holdRequest("10:00", "11:00"))
		assert.NoError(t, err)
	})

	t.Run("success: releasing an unknown hold is a no-op", func(t *testing.T) {
		f := newFixture(t)
		assert.NoError(t, f.holds().ReleaseHold(ctx, uuid.New(), "session-1"))
	})

	t.Run("error: another session cannot release", func(t *testing.T) {
		f := newFixture(t)
		uc := f.holds()
		res, err := uc.CreateHold(ctx, f.holdRequest("10:00", "11:00"))
		require.NoError(t, err)

		err = uc.ReleaseHold(ctx, res.HoldID, "intruder")

		assert.ErrorIs(t, err, commands.ErrHoldNotOwned)
		assert.Len(t, f.store.Holds(), 1)
	})
}

// =============================================================================
// ExpireStaleHolds Tests
// =============================================================================

func TestHoldUseCase_ExpireStaleHolds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := f.holds()

	_, err := uc.CreateHold(ctx, f.holdRequest("10:00", "11:00"))
	require.NoError(t, err)
	f.clock.Add(10 * time.Minute)
	_, err = uc.CreateHold(ctx, f.holdRequest("12:00", "13:00"))
	require.NoError(t, err)

	swept, err := uc.ExpireStaleHolds(ctx, testNow.Add(14*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, swept)

	swept, err = uc.ExpireStaleHolds(ctx, testNow.Add(15*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	remaining := f.store.Holds()
	require.Len(t, remaining, 1)
	assert.Equal(t, "12:00", remaining[0].Slot().Interval.Start.String())
}

// =============================================================================
// ProbeHolds Tests
// =============================================================================

func TestHoldUseCase_ProbeHolds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := f.holds()
	second := f.addCourt()
	unknown := uuid.New()

	_, err := uc.CreateHold(ctx, f.holdRequest("20:00", "21:00"))
	require.NoError(t, err)

	date, _ := slot.ParseDate("2025-03-10")
	interval, _ := slot.ParseInterval("20:00", "21:00")
	res, err := uc.ProbeHolds(ctx, commands.ProbeHoldsRequest{
		ResourceIDs: []uuid.UUID{f.venue.CourtID, second, unknown},
		Date:        date,
		Interval:    interval,
		SessionID:   "admin:probe",
		Actor:       f.manager(),
	})

	require.NoError(t, err)
	require.Len(t, res.Held, 1)
	assert.Equal(t, testNow.Add(3*time.Minute), res.Held[0].ExpiresAt)
	assert.ElementsMatch(t, []commands.ProbeSkip{
		{ResourceID: f.venue.CourtID, Reason: "occupied"},
		{ResourceID: unknown, Reason: "not_found"},
	}, res.Skipped)

	var probes int
	for _, h := range f.store.Holds() {
		if h.Kind() == hold.KindProbe {
			probes++
			assert.Equal(t, second, h.Slot().ResourceID)
		}
	}
	assert.Equal(t, 1, probes)
}

func TestHoldUseCase_ProbeHolds_ComplexScope(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	foreign := builder.NewVenueBuilder()
	f.store.AddComplex(foreign.BuildComplex())
	f.store.AddCourt(foreign.BuildCourt())

	date, _ := slot.ParseDate("2025-03-10")
	interval, _ := slot.ParseInterval("20:00", "21:00")
	req := commands.ProbeHoldsRequest{
		ResourceIDs: []uuid.UUID{f.venue.CourtID, foreign.CourtID},
		Date:        date,
		Interval:    interval,
		SessionID:   "admin:probe",
		Actor:       f.manager(),
	}

	t.Run("manager only probes courts of its own complex", func(t *testing.T) {
		res, err := f.holds().ProbeHolds(ctx, req)

		require.NoError(t, err)
		require.Len(t, res.Held, 1)
		assert.Equal(t, []commands.ProbeSkip{{ResourceID: foreign.CourtID, Reason: "forbidden"}}, res.Skipped)
		for _, h := range f.store.Holds() {
			assert.Equal(t, f.venue.CourtID, h.Slot().ResourceID)
		}
	})

	t.Run("super admin probes any complex", func(t *testing.T) {
		req := req
		req.ResourceIDs = []uuid.UUID{foreign.CourtID}
		req.Actor = user.NewActor(uuid.New(), user.RoleSuperAdmin, nil)

		res, err := f.holds().ProbeHolds(ctx, req)

		require.NoError(t, err)
		assert.Len(t, res.Held, 1)
		assert.Empty(t, res.Skipped)
	})
}

func TestHoldUseCase_InvalidatesAvailabilityCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	cache := sharedmock.NewMockAvailabilityCache(ctrl)
	uc := commands.NewHoldUseCase(f.store, cache, hold.DefaultPolicy(), f.clock)

	req := f.holdRequest("10:00", "11:00")
	cache.EXPECT().Invalidate(gomock.Any(), f.venue.CourtID, req.Date).Times(2)

	res, err := uc.CreateHold(ctx, req)
	require.NoError(t, err)
	require.NoError(t, uc.ReleaseHold(ctx, res.HoldID, ""))
}

func TestHoldUseCase_NilCache(t *testing.T) {
	f := newFixture(t)
	uc := commands.NewHoldUseCase(f.store, nil, hold.DefaultPolicy(), f.clock)

	_, err := uc.CreateHold(context.Background(), f.holdRequest("10:00", "11:00"))

	assert.NoError(t, err)
}
