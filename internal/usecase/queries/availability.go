package queries

import (
	"context"
	"sort"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxAvailabilityTTL = 30 * time.Second

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, resourceID uuid.UUID, date slot.Date) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow   shared.UnitOfWork
	cache shared.AvailabilityCache
	clock clock.Clock
}

func NewAvailabilityQueries(uow shared.UnitOfWork, cache shared.AvailabilityCache, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, cache: cache, clock: clk}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, resourceID uuid.UUID, date slot.Date) (*AvailabilityView, error) {
	if q.cache != nil {
		if occupied, ok := q.cache.Get(ctx, resourceID, date); ok {
			return toAvailabilityView(resourceID, date, occupied, true), nil
		}
	}

	now := q.clock.Now()
	var (
		occupied []slot.Occupied
		ttl      = maxAvailabilityTTL
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		holds, err := tx.Holds().ListLive(ctx, tx.DB(), resourceID, date, now)
		if err != nil {
			return err
		}
		reservations, err := tx.Reservations().ListActive(ctx, tx.DB(), resourceID, date)
		if err != nil {
			return err
		}
		for _, h := range holds {
			occupied = append(occupied, h.Occupied())
			// an entry must not outlive the first hold it reports
			if left := h.ExpiresAt().Sub(now); left < ttl {
				ttl = left
			}
		}
		for _, r := range reservations {
			occupied = append(occupied, r.Occupied())
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	sort.Slice(occupied, func(i, j int) bool {
		return occupied[i].Interval.Start < occupied[j].Interval.Start
	})
	if q.cache != nil && ttl > 0 {
		q.cache.Set(ctx, resourceID, date, occupied, ttl)
	}
	return toAvailabilityView(resourceID, date, occupied, false), nil
}

func toAvailabilityView(resourceID uuid.UUID, date slot.Date, occupied []slot.Occupied, cached bool) *AvailabilityView {
	view := &AvailabilityView{
		ResourceID: resourceID,
		Date:       date.String(),
		Occupied:   make([]OccupiedInterval, 0, len(occupied)),
		Cached:     cached,
	}
	for _, o := range occupied {
		view.Occupied = append(view.Occupied, OccupiedInterval{
			StartTime: o.Interval.Start.String(),
			EndTime:   o.Interval.End.String(),
		})
	}
	return view
}
