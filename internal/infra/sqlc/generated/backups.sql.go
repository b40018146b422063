package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPaymentBackup = `-- name: CreatePaymentBackup :exec
INSERT INTO payment_failure_backups (
    id, hold_id, token, reservation_code, amount, state, stage, error_message,
    customer, resource_id, date, start_time, end_time, reservation_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`

type CreatePaymentBackupParams struct {
	ID              uuid.UUID   `json:"id"`
	HoldID          uuid.UUID   `json:"hold_id"`
	Token           string      `json:"token"`
	ReservationCode string      `json:"reservation_code"`
	Amount          int64       `json:"amount"`
	State           string      `json:"state"`
	Stage           string      `json:"stage"`
	ErrorMessage    string      `json:"error_message"`
	Customer        []byte      `json:"customer"`
	ResourceID      uuid.UUID   `json:"resource_id"`
	Date            pgtype.Date `json:"date"`
	StartTime       pgtype.Time `json:"start_time"`
	EndTime         pgtype.Time `json:"end_time"`
	ReservationID   pgtype.UUID `json:"reservation_id"`
}

func (q *Queries) CreatePaymentBackup(ctx context.Context, db DBTX, arg CreatePaymentBackupParams) error {
	_, err := db.Exec(ctx, createPaymentBackup,
		arg.ID,
		arg.HoldID,
		arg.Token,
		arg.ReservationCode,
		arg.Amount,
		arg.State,
		arg.Stage,
		arg.ErrorMessage,
		arg.Customer,
		arg.ResourceID,
		arg.Date,
		arg.StartTime,
		arg.EndTime,
		arg.ReservationID,
	)
	return err
}

const getPaymentBackupByHoldID = `-- name: GetPaymentBackupByHoldID :one
SELECT id, hold_id, token, reservation_code, amount, state, stage, error_message,
       customer, resource_id, date, start_time, end_time, reservation_id, created_at, updated_at
FROM payment_failure_backups
WHERE hold_id = $1
`

func (q *Queries) GetPaymentBackupByHoldID(ctx context.Context, db DBTX, holdID uuid.UUID) (PaymentFailureBackups, error) {
	row := db.QueryRow(ctx, getPaymentBackupByHoldID, holdID)
	var i PaymentFailureBackups
	err := row.Scan(backupFields(&i)...)
	return i, err
}

const updatePaymentBackup = `-- name: UpdatePaymentBackup :execrows
UPDATE payment_failure_backups
SET token = $2, amount = $3, state = $4, stage = $5, error_message = $6, reservation_id = $7, updated_at = now()
WHERE id = $1
`

type UpdatePaymentBackupParams struct {
	ID            uuid.UUID   `json:"id"`
	Token         string      `json:"token"`
	Amount        int64       `json:"amount"`
	State         string      `json:"state"`
	Stage         string      `json:"stage"`
	ErrorMessage  string      `json:"error_message"`
	ReservationID pgtype.UUID `json:"reservation_id"`
}

func (q *Queries) UpdatePaymentBackup(ctx context.Context, db DBTX, arg UpdatePaymentBackupParams) (int64, error) {
	result, err := db.Exec(ctx, updatePaymentBackup,
		arg.ID,
		arg.Token,
		arg.Amount,
		arg.State,
		arg.Stage,
		arg.ErrorMessage,
		arg.ReservationID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listUnresolvedPaymentBackups = `-- name: ListUnresolvedPaymentBackups :many
SELECT id, hold_id, token, reservation_code, amount, state, stage, error_message,
       customer, resource_id, date, start_time, end_time, reservation_id, created_at, updated_at
FROM payment_failure_backups
WHERE state <> 'success'
ORDER BY created_at
LIMIT $1
`

func (q *Queries) ListUnresolvedPaymentBackups(ctx context.Context, db DBTX, limit int32) ([]PaymentFailureBackups, error) {
	rows, err := db.Query(ctx, listUnresolvedPaymentBackups, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PaymentFailureBackups
	for rows.Next() {
		var i PaymentFailureBackups
		if err := rows.Scan(backupFields(&i)...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func backupFields(i *PaymentFailureBackups) []any {
	return []any{
		&i.ID,
		&i.HoldID,
		&i.Token,
		&i.ReservationCode,
		&i.Amount,
		&i.State,
		&i.Stage,
		&i.ErrorMessage,
		&i.Customer,
		&i.ResourceID,
		&i.Date,
		&i.StartTime,
		&i.EndTime,
		&i.ReservationID,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}
