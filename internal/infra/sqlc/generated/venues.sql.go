package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const getCourt = `-- name: GetCourt :one
SELECT id, complex_id, name, price_per_hour, created_at, updated_at
FROM courts
WHERE id = $1
`

func (q *Queries) GetCourt(ctx context.Context, db DBTX, id uuid.UUID) (Courts, error) {
	row := db.QueryRow(ctx, getCourt, id)
	var i Courts
	err := row.Scan(
		&i.ID,
		&i.ComplexID,
		&i.Name,
		&i.PricePerHour,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getComplex = `-- name: GetComplex :one
SELECT id, name, commission_start_date, created_at, updated_at
FROM complexes
WHERE id = $1
`

func (q *Queries) GetComplex(ctx context.Context, db DBTX, id uuid.UUID) (Complexes, error) {
	row := db.QueryRow(ctx, getComplex, id)
	var i Complexes
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CommissionStartDate,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
