package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPaymentTransaction = `-- name: CreatePaymentTransaction :exec
INSERT INTO payment_transactions (
    token, order_id, session_id, amount, status, hold_id, reservation_code
) VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreatePaymentTransactionParams struct {
	Token           string    `json:"token"`
	OrderID         string    `json:"order_id"`
	SessionID       string    `json:"session_id"`
	Amount          int64     `json:"amount"`
	Status          string    `json:"status"`
	HoldID          uuid.UUID `json:"hold_id"`
	ReservationCode string    `json:"reservation_code"`
}

func (q *Queries) CreatePaymentTransaction(ctx context.Context, db DBTX, arg CreatePaymentTransactionParams) error {
	_, err := db.Exec(ctx, createPaymentTransaction,
		arg.Token,
		arg.OrderID,
		arg.SessionID,
		arg.Amount,
		arg.Status,
		arg.HoldID,
		arg.ReservationCode,
	)
	return err
}

const getPaymentTransactionByToken = `-- name: GetPaymentTransactionByToken :one
SELECT token, order_id, session_id, amount, status, hold_id, reservation_code,
       authorization_code, payment_type_code, response_code, installments_number,
       transaction_date, created_at, updated_at
FROM payment_transactions
WHERE token = $1
`

func (q *Queries) GetPaymentTransactionByToken(ctx context.Context, db DBTX, token string) (PaymentTransactions, error) {
	row := db.QueryRow(ctx, getPaymentTransactionByToken, token)
	var i PaymentTransactions
	err := row.Scan(
		&i.Token,
		&i.OrderID,
		&i.SessionID,
		&i.Amount,
		&i.Status,
		&i.HoldID,
		&i.ReservationCode,
		&i.AuthorizationCode,
		&i.PaymentTypeCode,
		&i.ResponseCode,
		&i.InstallmentsNumber,
		&i.TransactionDate,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updatePaymentTransactionStatus = `-- name: UpdatePaymentTransactionStatus :execrows
UPDATE payment_transactions
SET status = $2,
    authorization_code = $3,
    payment_type_code = $4,
    response_code = $5,
    installments_number = $6,
    transaction_date = $7,
    updated_at = now()
WHERE token = $1 AND status = $8
`

type UpdatePaymentTransactionStatusParams struct {
	Token              string             `json:"token"`
	Status             string             `json:"status"`
	AuthorizationCode  string             `json:"authorization_code"`
	PaymentTypeCode    string             `json:"payment_type_code"`
	ResponseCode       int32              `json:"response_code"`
	InstallmentsNumber int32              `json:"installments_number"`
	TransactionDate    pgtype.Timestamptz `json:"transaction_date"`
	Status_2           string             `json:"status_2"`
}

func (q *Queries) UpdatePaymentTransactionStatus(ctx context.Context, db DBTX, arg UpdatePaymentTransactionStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updatePaymentTransactionStatus,
		arg.Token,
		arg.Status,
		arg.AuthorizationCode,
		arg.PaymentTypeCode,
		arg.ResponseCode,
		arg.InstallmentsNumber,
		arg.TransactionDate,
		arg.Status_2,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
