package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const lockSlot = `-- name: LockSlot :exec
SELECT pg_advisory_xact_lock(hashtext($1::text))
`

func (q *Queries) LockSlot(ctx context.Context, db DBTX, dollar_1 string) error {
	_, err := db.Exec(ctx, lockSlot, dollar_1)
	return err
}

const createHold = `-- name: CreateHold :exec
INSERT INTO temporary_holds (
    id, resource_id, date, start_time, end_time, session_id, kind, customer, reservation_code, expires_at, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

type CreateHoldParams struct {
	ID              uuid.UUID          `json:"id"`
	ResourceID      uuid.UUID          `json:"resource_id"`
	Date            pgtype.Date        `json:"date"`
	StartTime       pgtype.Time        `json:"start_time"`
	EndTime         pgtype.Time        `json:"end_time"`
	SessionID       string             `json:"session_id"`
	Kind            string             `json:"kind"`
	Customer        []byte             `json:"customer"`
	ReservationCode string             `json:"reservation_code"`
	ExpiresAt       pgtype.Timestamptz `json:"expires_at"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateHold(ctx context.Context, db DBTX, arg CreateHoldParams) error {
	_, err := db.Exec(ctx, createHold,
		arg.ID,
		arg.ResourceID,
		arg.Date,
		arg.StartTime,
		arg.EndTime,
		arg.SessionID,
		arg.Kind,
		arg.Customer,
		arg.ReservationCode,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	return err
}

const getHold = `-- name: GetHold :one
SELECT id, resource_id, date, start_time, end_time, session_id, kind, customer, reservation_code, expires_at, created_at
FROM temporary_holds
WHERE id = $1
`

func (q *Queries) GetHold(ctx context.Context, db DBTX, id uuid.UUID) (TemporaryHolds, error) {
	row := db.QueryRow(ctx, getHold, id)
	var i TemporaryHolds
	err := row.Scan(
		&i.ID,
		&i.ResourceID,
		&i.Date,
		&i.StartTime,
		&i.EndTime,
		&i.SessionID,
		&i.Kind,
		&i.Customer,
		&i.ReservationCode,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const listLiveHolds = `-- name: ListLiveHolds :many
SELECT id, resource_id, date, start_time, end_time, session_id, kind, customer, reservation_code, expires_at, created_at
FROM temporary_holds
WHERE resource_id = $1 AND date = $2 AND expires_at > $3
ORDER BY start_time
`

type ListLiveHoldsParams struct {
	ResourceID uuid.UUID          `json:"resource_id"`
	Date       pgtype.Date        `json:"date"`
	ExpiresAt  pgtype.Timestamptz `json:"expires_at"`
}

func (q *Queries) ListLiveHolds(ctx context.Context, db DBTX, arg ListLiveHoldsParams) ([]TemporaryHolds, error) {
	rows, err := db.Query(ctx, listLiveHolds, arg.ResourceID, arg.Date, arg.ExpiresAt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TemporaryHolds
	for rows.Next() {
		var i TemporaryHolds
		if err := rows.Scan(
			&i.ID,
			&i.ResourceID,
			&i.Date,
			&i.StartTime,
			&i.EndTime,
			&i.SessionID,
			&i.Kind,
			&i.Customer,
			&i.ReservationCode,
			&i.ExpiresAt,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteHold = `-- name: DeleteHold :execrows
DELETE FROM temporary_holds WHERE id = $1
`

func (q *Queries) DeleteHold(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteHold, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteExpiredHolds = `-- name: DeleteExpiredHolds :many
DELETE FROM temporary_holds
WHERE expires_at <= $1
RETURNING resource_id, date, start_time, end_time
`

type DeletedHoldRow struct {
	ResourceID uuid.UUID   `json:"resource_id"`
	Date       pgtype.Date `json:"date"`
	StartTime  pgtype.Time `json:"start_time"`
	EndTime    pgtype.Time `json:"end_time"`
}

func (q *Queries) DeleteExpiredHolds(ctx context.Context, db DBTX, expiresAt pgtype.Timestamptz) ([]DeletedHoldRow, error) {
	rows, err := db.Query(ctx, deleteExpiredHolds, expiresAt)
	if err != nil {
		return nil, err
	}
	return scanDeletedHoldRows(rows)
}

const deleteExpiredHoldsInPartition = `-- name: DeleteExpiredHoldsInPartition :many
DELETE FROM temporary_holds
WHERE expires_at <= $1 AND resource_id = $2 AND date = $3
RETURNING resource_id, date, start_time, end_time
`

type DeleteExpiredHoldsInPartitionParams struct {
	ExpiresAt  pgtype.Timestamptz `json:"expires_at"`
	ResourceID uuid.UUID          `json:"resource_id"`
	Date       pgtype.Date        `json:"date"`
}

func (q *Queries) DeleteExpiredHoldsInPartition(ctx context.Context, db DBTX, arg DeleteExpiredHoldsInPartitionParams) ([]DeletedHoldRow, error) {
	rows, err := db.Query(ctx, deleteExpiredHoldsInPartition, arg.ExpiresAt, arg.ResourceID, arg.Date)
	if err != nil {
		return nil, err
	}
	return scanDeletedHoldRows(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

func scanDeletedHoldRows(rows rowScanner) ([]DeletedHoldRow, error) {
	defer rows.Close()
	var items []DeletedHoldRow
	for rows.Next() {
		var i DeletedHoldRow
		if err := rows.Scan(&i.ResourceID, &i.Date, &i.StartTime, &i.EndTime); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
