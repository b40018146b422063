package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate     = errors.New("date must use YYYY-MM-DD")
	ErrInvalidTime     = errors.New("time must use HH:MM")
	ErrInvalidInterval = errors.New("start time must be before end time")
)

const (
	dateLayout    = "2006-01-02"
	minutesPerDay = 24 * 60
)

// Date is a calendar day normalized to YYYY-MM-DD. The fixed width makes
// lexicographic comparison equivalent to chronological comparison.
type Date string

func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	// timestamps such as 2025-10-31T00:00:00Z are accepted and truncated
	if idx := strings.IndexByte(value, 'T'); idx > 0 {
		value = value[:idx]
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return "", ErrInvalidDate
	}
	return Date(t.Format(dateLayout)), nil
}

func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func (d Date) String() string { return string(d) }

func (d Date) Before(other Date) bool { return string(d) < string(other) }

func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

// TimeOfDay counts minutes since midnight.
type TimeOfDay int

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	// HH:MM:SS from TIME columns is tolerated, seconds are ignored
	if len(value) == 8 {
		value = value[:5]
	}
	if len(value) != 5 || value[2] != ':' {
		return 0, ErrInvalidTime
	}
	h, herr := strconv.Atoi(value[:2])
	m, merr := strconv.Atoi(value[3:])
	if herr != nil || merr != nil {
		return 0, ErrInvalidTime
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, ErrInvalidTime
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Interval is half-open: [Start, End).
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewInterval(start, end TimeOfDay) (Interval, error) {
	if start < 0 || end > minutesPerDay || start >= end {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

func (i Interval) Minutes() int { return int(i.End - i.Start) }

func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// Overlaps reports whether a and b share any instant. Touching intervals
// (one ends when the other starts) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Slot identifies a bookable unit of a resource.
type Slot struct {
	ResourceID uuid.UUID
	Date       Date
	Interval   Interval
}

func New(resourceID uuid.UUID, date Date, interval Interval) Slot {
	return Slot{ResourceID: resourceID, Date: date, Interval: interval}
}

func (s Slot) ConflictsWith(other Slot) bool {
	return s.ResourceID == other.ResourceID &&
		s.Date == other.Date &&
		Overlaps(s.Interval, other.Interval)
}

// LockKey names the (resource, date) partition serialized during
// check-then-insert.
func (s Slot) LockKey() string {
	return s.ResourceID.String() + ":" + string(s.Date)
}

// CanonicalKey is the uniqueness key of a slot.
func (s Slot) CanonicalKey() string {
	return s.LockKey() + ":" + s.Interval.Start.String()
}

func (s Slot) String() string {
	return s.CanonicalKey() + "-" + s.Interval.End.String()
}

// Occupied is an interval already taken by a reservation or a live hold.
type Occupied struct {
	ResourceID uuid.UUID
	Date       Date
	Interval   Interval
}

// ConflictsWithExisting scans existing occupations of the same resource and
// date for an overlap with interval.
func ConflictsWithExisting(resourceID uuid.UUID, date Date, interval Interval, existing []Occupied) bool {
	for _, o := range existing {
		if o.ResourceID != resourceID || o.Date != date {
			continue
		}
		if Overlaps(interval, o.Interval) {
			return true
		}
	}
	return false
}
