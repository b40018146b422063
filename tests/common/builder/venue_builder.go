//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/resource"
	"court-booking/internal/domain/slot"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VenueBuilder struct {
	ComplexID       uuid.UUID
	ComplexName     string
	CommissionStart *slot.Date
	CourtID         uuid.UUID
	CourtName       string
	PricePerHour    int64
	CreatedAt       time.Time
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ComplexID:    uuid.New(),
		ComplexName:  "Club Norte",
		CourtID:      uuid.New(),
		CourtName:    "Cancha 1",
		PricePerHour: 20000,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (v *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(v)
	return v
}

func (v *VenueBuilder) BuildCourt() *resource.Court {
	return resource.ReconstructCourt(v.CourtID, v.ComplexID, v.CourtName, v.PricePerHour, v.CreatedAt, v.CreatedAt)
}

func (v *VenueBuilder) BuildComplex() *resource.Complex {
	c, err := resource.NewComplex(v.ComplexID, v.ComplexName, v.CommissionStart)
	if err != nil {
		panic(err)
	}
	return c
}

func (v *VenueBuilder) BuildCourtRow() sqlc.Courts {
	return sqlc.Courts{
		ID:           v.CourtID,
		ComplexID:    v.ComplexID,
		Name:         v.CourtName,
		PricePerHour: v.PricePerHour,
		CreatedAt:    pgconv.TimeToPgtype(v.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(v.CreatedAt),
	}
}

func (v *VenueBuilder) BuildComplexRow() sqlc.Complexes {
	row := sqlc.Complexes{
		ID:        v.ComplexID,
		Name:      v.ComplexName,
		CreatedAt: pgconv.TimeToPgtype(v.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(v.CreatedAt),
	}
	if v.CommissionStart != nil {
		row.CommissionStartDate = pgconv.DateToPgtype(v.CommissionStart.Time())
	}
	return row
}

func (v *VenueBuilder) WithPricePerHour(price int64) *VenueBuilder {
	v.PricePerHour = price
	return v
}

func (v *VenueBuilder) WithCommissionStart(date slot.Date) *VenueBuilder {
	v.CommissionStart = &date
	return v
}
