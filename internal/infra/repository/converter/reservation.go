package converter

import (
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/reservation"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	s := r.Slot()
	start, end := IntervalToPg(s.Interval)
	customer := r.Customer()
	commission := r.Commission()

	return sqlc.CreateReservationParams{
		ID:             r.ID(),
		Code:           r.Code().String(),
		ResourceID:     s.ResourceID,
		Date:           DateToPg(s.Date),
		StartTime:      start,
		EndTime:        end,
		CustomerName:   customer.Name,
		CustomerEmail:  customer.Email,
		CustomerPhone:  customer.Phone,
		NationalID:     customer.NationalID,
		TotalPrice:     r.TotalPrice(),
		PaidPercentage: int32(r.PaidPercentage()), // #nosec G115 -- 50 or 100
		Origin:         string(r.Origin()),
		Commission:     commission.Net,
		CommissionVat:  commission.VAT,
		DiscountCode:   r.DiscountCode(),
		Status:         r.Status().String(),
		PaymentStatus:  r.PaymentStatus().String(),
		CreatedBy:      pgconv.UUIDPtrToPgtype(r.CreatedBy()),
	}
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	s, err := SlotFromPg(row.ResourceID, row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return nil, err
	}
	params := reservation.Params{
		Code: reservation.Code(row.Code),
		Slot: s,
		Customer: reservation.Customer{
			Name:       row.CustomerName,
			Email:      row.CustomerEmail,
			Phone:      row.CustomerPhone,
			NationalID: row.NationalID,
		},
		TotalPrice:     row.TotalPrice,
		PaidPercentage: int(row.PaidPercentage),
		Origin:         pricing.Origin(row.Origin),
		Commission: pricing.Commission{
			Net:   row.Commission,
			VAT:   row.CommissionVat,
			Total: row.Commission + row.CommissionVat,
		},
		DiscountCode: row.DiscountCode,
		CreatedBy:    pgconv.UUIDPtrFromPgtype(row.CreatedBy),
	}
	return reservation.ReconstructReservation(
		row.ID,
		params,
		reservation.Status(row.Status),
		reservation.PaymentStatus(row.PaymentStatus),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
