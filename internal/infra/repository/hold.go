package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HoldQueries interface {
	LockSlot(ctx context.Context, db sqlc.DBTX, key string) error
	CreateHold(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHoldParams) error
	GetHold(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.TemporaryHolds, error)
	ListLiveHolds(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLiveHoldsParams) ([]sqlc.TemporaryHolds, error)
	DeleteHold(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteExpiredHolds(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) ([]sqlc.DeletedHoldRow, error)
	DeleteExpiredHoldsInPartition(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteExpiredHoldsInPartitionParams) ([]sqlc.DeletedHoldRow, error)
}

type HoldRepository struct {
	queries HoldQueries
}

func NewHoldRepository(queries HoldQueries) *HoldRepository {
	return &HoldRepository{queries: queries}
}

func (r *HoldRepository) LockSlot(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID, date slot.Date) error {
	key := slot.Slot{ResourceID: resourceID, Date: date}.LockKey()
	if err := r.queries.LockSlot(ctx, db, key); err != nil {
		return infra.WrapRepoErr("failed to lock slot partition", err)
	}
	return nil
}

func (r *HoldRepository) Create(ctx context.Context, db sqlc.DBTX, h *hold.Hold) error {
	params, err := converter.HoldToCreateParams(h)
	if err != nil {
		return infra.WrapRepoErr("failed to convert hold", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateHold(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to create hold", err)
	}
	return nil
}

func (r *HoldRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*hold.Hold, error) {
	row, err := r.queries.GetHold(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hold", err)
	}
	h, err := converter.HoldFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert hold", err, infra.KindDBFailure)
	}
	return h, nil
}

func (r *HoldRepository) ListLive(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID, date slot.Date, now time.Time) ([]*hold.Hold, error) {
	rows, err := r.queries.ListLiveHolds(ctx, db, sqlc.ListLiveHoldsParams{
		ResourceID: resourceID,
		Date:       converter.DateToPg(date),
		ExpiresAt:  pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live holds", err)
	}

	holds := make([]*hold.Hold, 0, len(rows))
	for _, row := range rows {
		h, err := converter.HoldFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert hold", err, infra.KindDBFailure)
		}
		holds = append(holds, h)
	}
	return holds, nil
}

func (r *HoldRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error) {
	affected, err := r.queries.DeleteHold(ctx, db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete hold", err)
	}
	return affected > 0, nil
}

func (r *HoldRepository) DeleteExpired(ctx context.Context, db sqlc.DBTX, scope *shared.SlotScope, now time.Time) ([]slot.Slot, error) {
	var (
		rows []sqlc.DeletedHoldRow
		err  error
	)
	if scope == nil {
		rows, err = r.queries.DeleteExpiredHolds(ctx, db, pgconv.TimeToPgtype(now))
	} else {
		rows, err = r.queries.DeleteExpiredHoldsInPartition(ctx, db, sqlc.DeleteExpiredHoldsInPartitionParams{
			ExpiresAt:  pgconv.TimeToPgtype(now),
			ResourceID: scope.ResourceID,
			Date:       converter.DateToPg(scope.Date),
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete expired holds", err)
	}

	slots := make([]slot.Slot, 0, len(rows))
	for _, row := range rows {
		s, err := converter.SlotFromPg(row.ResourceID, row.Date, row.StartTime, row.EndTime)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert expired hold", err, infra.KindDBFailure)
		}
		slots = append(slots, s)
	}
	return slots, nil
}
