package converter

import (
	"encoding/json"

	"court-booking/internal/domain/hold"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"
)

func HoldToCreateParams(h *hold.Hold) (sqlc.CreateHoldParams, error) {
	customer, err := json.Marshal(h.Snapshot())
	if err != nil {
		return sqlc.CreateHoldParams{}, errs.Wrap(err, "encode customer snapshot")
	}
	s := h.Slot()
	start, end := IntervalToPg(s.Interval)
	return sqlc.CreateHoldParams{
		ID:              h.ID(),
		ResourceID:      s.ResourceID,
		Date:            DateToPg(s.Date),
		StartTime:       start,
		EndTime:         end,
		SessionID:       h.SessionID(),
		Kind:            string(h.Kind()),
		Customer:        customer,
		ReservationCode: h.ReservationCode(),
		ExpiresAt:       pgconv.TimeToPgtype(h.ExpiresAt()),
		CreatedAt:       pgconv.TimeToPgtype(h.CreatedAt()),
	}, nil
}

func HoldFromRow(row sqlc.TemporaryHolds) (*hold.Hold, error) {
	s, err := SlotFromPg(row.ResourceID, row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return nil, err
	}
	var snapshot hold.CustomerSnapshot
	if len(row.Customer) > 0 {
		if err := json.Unmarshal(row.Customer, &snapshot); err != nil {
			return nil, errs.Wrap(err, "decode customer snapshot")
		}
	}
	return hold.ReconstructHold(
		row.ID,
		s,
		row.SessionID,
		hold.Kind(row.Kind),
		snapshot,
		row.ReservationCode,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
