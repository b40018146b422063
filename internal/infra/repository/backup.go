package repository

import (
	"context"

	"court-booking/internal/domain/payment"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

const maxBackupPage = 500

type BackupQueries interface {
	CreatePaymentBackup(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentBackupParams) error
	GetPaymentBackupByHoldID(ctx context.Context, db sqlc.DBTX, holdID uuid.UUID) (sqlc.PaymentFailureBackups, error)
	UpdatePaymentBackup(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentBackupParams) (int64, error)
	ListUnresolvedPaymentBackups(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.PaymentFailureBackups, error)
}

type BackupRepository struct {
	queries BackupQueries
}

func NewBackupRepository(queries BackupQueries) *BackupRepository {
	return &BackupRepository{queries: queries}
}

func (r *BackupRepository) Create(ctx context.Context, db sqlc.DBTX, b *payment.FailureBackup) error {
	params, err := converter.BackupToCreateParams(b)
	if err != nil {
		return infra.WrapRepoErr("failed to convert payment backup", err, infra.KindDBFailure)
	}
	if err := r.queries.CreatePaymentBackup(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to create payment backup", err)
	}
	return nil
}

func (r *BackupRepository) FindByHoldID(ctx context.Context, db sqlc.DBTX, holdID uuid.UUID) (*payment.FailureBackup, error) {
	row, err := r.queries.GetPaymentBackupByHoldID(ctx, db, holdID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment backup", err)
	}
	b, err := converter.BackupFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment backup", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BackupRepository) Update(ctx context.Context, db sqlc.DBTX, b *payment.FailureBackup) error {
	affected, err := r.queries.UpdatePaymentBackup(ctx, db, converter.BackupToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment backup", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment backup not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BackupRepository) ListUnresolved(ctx context.Context, db sqlc.DBTX, limit int) ([]*payment.FailureBackup, error) {
	if limit <= 0 || limit > maxBackupPage {
		limit = maxBackupPage
	}
	rows, err := r.queries.ListUnresolvedPaymentBackups(ctx, db, int32(limit)) // #nosec G115 -- bounded above
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment backups", err)
	}

	out := make([]*payment.FailureBackup, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BackupFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert payment backup", err, infra.KindDBFailure)
		}
		out = append(out, b)
	}
	return out, nil
}
