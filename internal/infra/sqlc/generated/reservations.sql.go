package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (
    id, code, resource_id, date, start_time, end_time,
    customer_name, customer_email, customer_phone, national_id,
    total_price, paid_percentage, origin, commission, commission_vat, discount_code,
    status, payment_status, created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
`

type CreateReservationParams struct {
	ID             uuid.UUID   `json:"id"`
	Code           string      `json:"code"`
	ResourceID     uuid.UUID   `json:"resource_id"`
	Date           pgtype.Date `json:"date"`
	StartTime      pgtype.Time `json:"start_time"`
	EndTime        pgtype.Time `json:"end_time"`
	CustomerName   string      `json:"customer_name"`
	CustomerEmail  string      `json:"customer_email"`
	CustomerPhone  string      `json:"customer_phone"`
	NationalID     string      `json:"national_id"`
	TotalPrice     int64       `json:"total_price"`
	PaidPercentage int32       `json:"paid_percentage"`
	Origin         string      `json:"origin"`
	Commission     int64       `json:"commission"`
	CommissionVat  int64       `json:"commission_vat"`
	DiscountCode   string      `json:"discount_code"`
	Status         string      `json:"status"`
	PaymentStatus  string      `json:"payment_status"`
	CreatedBy      pgtype.UUID `json:"created_by"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.Code,
		arg.ResourceID,
		arg.Date,
		arg.StartTime,
		arg.EndTime,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.CustomerPhone,
		arg.NationalID,
		arg.TotalPrice,
		arg.PaidPercentage,
		arg.Origin,
		arg.Commission,
		arg.CommissionVat,
		arg.DiscountCode,
		arg.Status,
		arg.PaymentStatus,
		arg.CreatedBy,
	)
	return err
}

const getReservationByCode = `-- name: GetReservationByCode :one
SELECT id, code, resource_id, date, start_time, end_time,
       customer_name, customer_email, customer_phone, national_id,
       total_price, paid_percentage, origin, commission, commission_vat, discount_code,
       status, payment_status, created_by, created_at, updated_at
FROM reservations
WHERE code = $1
`

func (q *Queries) GetReservationByCode(ctx context.Context, db DBTX, code string) (Reservations, error) {
	row := db.QueryRow(ctx, getReservationByCode, code)
	var i Reservations
	err := row.Scan(reservationFields(&i)...)
	return i, err
}

const reservationCodeExists = `-- name: ReservationCodeExists :one
SELECT EXISTS (SELECT 1 FROM reservations r WHERE r.code = $1)
    OR EXISTS (SELECT 1 FROM temporary_holds h WHERE h.reservation_code = $1)
`

func (q *Queries) ReservationCodeExists(ctx context.Context, db DBTX, code string) (bool, error) {
	row := db.QueryRow(ctx, reservationCodeExists, code)
	var column_1 bool
	err := row.Scan(&column_1)
	return column_1, err
}

const listActiveReservations = `-- name: ListActiveReservations :many
SELECT id, code, resource_id, date, start_time, end_time,
       customer_name, customer_email, customer_phone, national_id,
       total_price, paid_percentage, origin, commission, commission_vat, discount_code,
       status, payment_status, created_by, created_at, updated_at
FROM reservations
WHERE resource_id = $1 AND date = $2 AND status <> 'cancelled'
ORDER BY start_time
`

type ListActiveReservationsParams struct {
	ResourceID uuid.UUID   `json:"resource_id"`
	Date       pgtype.Date `json:"date"`
}

func (q *Queries) ListActiveReservations(ctx context.Context, db DBTX, arg ListActiveReservationsParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listActiveReservations, arg.ResourceID, arg.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reservations
	for rows.Next() {
		var i Reservations
		if err := rows.Scan(reservationFields(&i)...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateReservationStatus = `-- name: UpdateReservationStatus :execrows
UPDATE reservations
SET status = $2, payment_status = $3, updated_at = now()
WHERE id = $1
`

type UpdateReservationStatusParams struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
}

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status, arg.PaymentStatus)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func reservationFields(i *Reservations) []any {
	return []any{
		&i.ID,
		&i.Code,
		&i.ResourceID,
		&i.Date,
		&i.StartTime,
		&i.EndTime,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.CustomerPhone,
		&i.NationalID,
		&i.TotalPrice,
		&i.PaidPercentage,
		&i.Origin,
		&i.Commission,
		&i.CommissionVat,
		&i.DiscountCode,
		&i.Status,
		&i.PaymentStatus,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}
