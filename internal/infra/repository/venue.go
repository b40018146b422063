package repository

import (
	"context"

	"court-booking/internal/domain/resource"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type VenueQueries interface {
	GetCourt(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Courts, error)
	GetComplex(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Complexes, error)
}

type VenueRepository struct {
	queries VenueQueries
}

func NewVenueRepository(queries VenueQueries) *VenueRepository {
	return &VenueRepository{queries: queries}
}

func (r *VenueRepository) CourtByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*resource.Court, error) {
	row, err := r.queries.GetCourt(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find court", err)
	}
	return converter.CourtFromRow(row), nil
}

func (r *VenueRepository) ComplexByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*resource.Complex, error) {
	row, err := r.queries.GetComplex(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find complex", err)
	}
	cx, err := converter.ComplexFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert complex", err, infra.KindDBFailure)
	}
	return cx, nil
}
