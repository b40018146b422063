package repository

import (
	"context"

	"court-booking/internal/domain/payment"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
)

type PaymentQueries interface {
	CreatePaymentTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentTransactionParams) error
	GetPaymentTransactionByToken(ctx context.Context, db sqlc.DBTX, token string) (sqlc.PaymentTransactions, error)
	UpdatePaymentTransactionStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentTransactionStatusParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentQueries
}

func NewPaymentRepository(queries PaymentQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Create(ctx context.Context, db sqlc.DBTX, t *payment.Transaction) error {
	if err := r.queries.CreatePaymentTransaction(ctx, db, converter.TransactionToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create payment transaction", err)
	}
	return nil
}

func (r *PaymentRepository) FindByToken(ctx context.Context, db sqlc.DBTX, token string) (*payment.Transaction, error) {
	row, err := r.queries.GetPaymentTransactionByToken(ctx, db, token)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment transaction", err)
	}
	return converter.TransactionFromRow(row), nil
}

// UpdateStatus reports KindConflict when another request moved the
// transaction away from the expected status first.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, db sqlc.DBTX, t *payment.Transaction, from payment.Status) error {
	affected, err := r.queries.UpdatePaymentTransactionStatus(ctx, db, converter.TransactionToUpdateParams(t, from))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment transaction", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment transaction is no longer "+string(from), nil, infra.KindConflict)
	}
	return nil
}
