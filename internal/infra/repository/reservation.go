package repository

import (
	"context"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Reservations, error)
	ReservationCodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
	ListActiveReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsParams) ([]sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationQueries
}

func NewReservationRepository(queries ReservationQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, db sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, db, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByCode(ctx context.Context, db sqlc.DBTX, code reservation.Code) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByCode(ctx, db, code.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

// CodeExists checks both reservations and live holds so a code is never
// handed out twice.
func (r *ReservationRepository) CodeExists(ctx context.Context, db sqlc.DBTX, code reservation.Code) (bool, error) {
	exists, err := r.queries.ReservationCodeExists(ctx, db, code.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation code", err)
	}
	return exists, nil
}

func (r *ReservationRepository) ListActive(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID, date slot.Date) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListActiveReservations(ctx, db, sqlc.ListActiveReservationsParams{
		ResourceID: resourceID,
		Date:       converter.DateToPg(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, db sqlc.DBTX, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, db, sqlc.UpdateReservationStatusParams{
		ID:            res.ID(),
		Status:        res.Status().String(),
		PaymentStatus: res.PaymentStatus().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
