package queries

import (
	"context"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHoldNotFound            = errs.New("hold not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type HoldQueries interface {
	GetHold(ctx context.Context, id uuid.UUID) (*HoldView, error)
}

type holdQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHoldQueries(uow shared.UnitOfWork, clk clock.Clock) HoldQueries {
	return &holdQueriesImpl{uow: uow, clock: clk}
}

func (q *holdQueriesImpl) GetHold(ctx context.Context, id uuid.UUID) (*HoldView, error) {
	var h *hold.Hold
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		h, err = tx.Holds().FindByID(ctx, tx.DB(), id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHoldNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toHoldView(h, q.clock), nil
}

func toHoldView(h *hold.Hold, clk clock.Clock) *HoldView {
	s := h.Slot()
	snap := h.Snapshot()
	return &HoldView{
		ID:              h.ID(),
		ResourceID:      s.ResourceID,
		Date:            s.Date.String(),
		StartTime:       s.Interval.Start.String(),
		EndTime:         s.Interval.End.String(),
		Kind:            string(h.Kind()),
		ReservationCode: h.ReservationCode(),
		TotalPrice:      snap.TotalPrice,
		PaidPercentage:  snap.PaidPercentage,
		AmountDue:       pricing.OnlineAmount(snap.TotalPrice, snap.PaidPercentage),
		ExpiresAt:       h.ExpiresAt(),
		Expired:         h.IsExpired(clk.Now()),
	}
}
