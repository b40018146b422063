package cache

import (
	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

const keyPrefix = "availability:"

func availabilityKey(resourceID uuid.UUID, date slot.Date) string {
	return keyPrefix + resourceID.String() + ":" + date.String()
}

type occupiedEntry struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func toEntries(occupied []slot.Occupied) []occupiedEntry {
	out := make([]occupiedEntry, 0, len(occupied))
	for _, o := range occupied {
		out = append(out, occupiedEntry{Start: o.Interval.Start.Minutes(), End: o.Interval.End.Minutes()})
	}
	return out
}

func fromEntries(resourceID uuid.UUID, date slot.Date, entries []occupiedEntry) ([]slot.Occupied, bool) {
	out := make([]slot.Occupied, 0, len(entries))
	for _, e := range entries {
		interval, err := slot.NewInterval(slot.TimeOfDay(e.Start), slot.TimeOfDay(e.End))
		if err != nil {
			return nil, false
		}
		out = append(out, slot.Occupied{ResourceID: resourceID, Date: date, Interval: interval})
	}
	return out, true
}
