package converter

import (
	"court-booking/internal/domain/resource"
	"court-booking/internal/domain/slot"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
)

func CourtFromRow(row sqlc.Courts) *resource.Court {
	return resource.ReconstructCourt(
		row.ID,
		row.ComplexID,
		row.Name,
		row.PricePerHour,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ComplexFromRow(row sqlc.Complexes) (*resource.Complex, error) {
	var start *slot.Date
	if row.CommissionStartDate.Valid {
		d, err := DateFromPg(row.CommissionStartDate)
		if err != nil {
			return nil, err
		}
		start = &d
	}
	return resource.NewComplex(row.ID, row.Name, start)
}
