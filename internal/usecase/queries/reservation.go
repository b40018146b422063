package queries

import (
	"context"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationQueries interface {
	GetByCode(ctx context.Context, code reservation.Code) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

func (q *reservationQueriesImpl) GetByCode(ctx context.Context, code reservation.Code) (*ReservationView, error) {
	var res *reservation.Reservation
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().FindByCode(ctx, tx.DB(), code)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return toReservationView(res), nil
}

func toReservationView(r *reservation.Reservation) *ReservationView {
	s := r.Slot()
	c := r.Customer()
	split := r.Split()
	commission := r.Commission()
	return &ReservationView{
		ID:             r.ID(),
		Code:           r.Code().String(),
		ResourceID:     s.ResourceID,
		Date:           s.Date.String(),
		StartTime:      s.Interval.Start.String(),
		EndTime:        s.Interval.End.String(),
		CustomerName:   c.Name,
		CustomerEmail:  c.Email,
		TotalPrice:     r.TotalPrice(),
		PaidPercentage: r.PaidPercentage(),
		PaidOnline:     split.PaidOnline,
		PendingAtVenue: split.PendingAtVenue,
		Origin:         string(r.Origin()),
		Commission:     commission.Net,
		CommissionVAT:  commission.VAT,
		Status:         r.Status().String(),
		PaymentStatus:  r.PaymentStatus().String(),
		CreatedAt:      r.CreatedAt(),
	}
}
