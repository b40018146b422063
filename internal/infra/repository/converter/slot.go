package converter

import (
	"court-booking/internal/domain/slot"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var errNullDate = errs.New("date column is null")

func DateToPg(d slot.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPg(pd pgtype.Date) (slot.Date, error) {
	t, ok := pgconv.DateFromPgtype(pd)
	if !ok {
		return "", errNullDate
	}
	return slot.DateOf(t), nil
}

func IntervalToPg(i slot.Interval) (pgtype.Time, pgtype.Time) {
	return pgconv.MinutesToPgtime(i.Start.Minutes()), pgconv.MinutesToPgtime(i.End.Minutes())
}

func IntervalFromPg(start, end pgtype.Time) (slot.Interval, error) {
	return slot.NewInterval(
		slot.TimeOfDay(pgconv.MinutesFromPgtime(start)),
		slot.TimeOfDay(pgconv.MinutesFromPgtime(end)),
	)
}

func SlotFromPg(resourceID uuid.UUID, date pgtype.Date, start, end pgtype.Time) (slot.Slot, error) {
	d, err := DateFromPg(date)
	if err != nil {
		return slot.Slot{}, err
	}
	interval, err := IntervalFromPg(start, end)
	if err != nil {
		return slot.Slot{}, errs.Wrap(err, "stored interval is invalid")
	}
	return slot.New(resourceID, d, interval), nil
}
