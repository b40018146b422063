package hold

import (
	"errors"
	"strings"
	"time"

	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrEmptySession     = errors.New("session id is required")
	ErrNonPositiveTTL   = errors.New("hold ttl must be positive")
	ErrHoldExpired      = errors.New("hold has expired")
	ErrSessionMismatch  = errors.New("hold belongs to another session")
	ErrEmptyReservation = errors.New("reservation code is required")
)

type Kind string

const (
	KindCustomer Kind = "customer"
	KindProbe    Kind = "probe"
)

// CustomerSnapshot is persisted as an opaque document alongside the hold.
type CustomerSnapshot struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	NationalID     string `json:"nationalId,omitempty"`
	TotalPrice     int64  `json:"totalPrice"`
	DiscountCode   string `json:"discountCode,omitempty"`
	PaidPercentage int    `json:"paidPercentage"`
}

type Policy struct {
	CustomerTTL time.Duration
	ProbeTTL    time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		CustomerTTL: 15 * time.Minute,
		ProbeTTL:    3 * time.Minute,
	}
}

func (p Policy) TTL(kind Kind) time.Duration {
	if kind == KindProbe {
		return p.ProbeTTL
	}
	return p.CustomerTTL
}

type Hold struct {
	id              uuid.UUID
	slot            slot.Slot
	sessionID       string
	kind            Kind
	snapshot        CustomerSnapshot
	reservationCode string
	expiresAt       time.Time
	createdAt       time.Time
}

func NewHold(
	s slot.Slot,
	sessionID string,
	kind Kind,
	snapshot CustomerSnapshot,
	reservationCode string,
	now time.Time,
	ttl time.Duration,
) (*Hold, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrEmptySession
	}
	if ttl <= 0 {
		return nil, ErrNonPositiveTTL
	}
	if reservationCode == "" {
		return nil, ErrEmptyReservation
	}

	return &Hold{
		id:              uuid.New(),
		slot:            s,
		sessionID:       sessionID,
		kind:            kind,
		snapshot:        snapshot,
		reservationCode: reservationCode,
		expiresAt:       now.Add(ttl),
		createdAt:       now,
	}, nil
}

func ReconstructHold(
	id uuid.UUID,
	s slot.Slot,
	sessionID string,
	kind Kind,
	snapshot CustomerSnapshot,
	reservationCode string,
	expiresAt, createdAt time.Time,
) *Hold {
	return &Hold{
		id:              id,
		slot:            s,
		sessionID:       sessionID,
		kind:            kind,
		snapshot:        snapshot,
		reservationCode: reservationCode,
		expiresAt:       expiresAt,
		createdAt:       createdAt,
	}
}

// IsExpired reports whether the hold stopped blocking at now. A hold is live
// strictly before expiresAt.
func (h *Hold) IsExpired(now time.Time) bool {
	return !now.Before(h.expiresAt)
}

func (h *Hold) EnsureLive(now time.Time) error {
	if h.IsExpired(now) {
		return ErrHoldExpired
	}
	return nil
}

func (h *Hold) OwnedBy(sessionID string) bool {
	return h.sessionID == strings.TrimSpace(sessionID)
}

func (h *Hold) Occupied() slot.Occupied {
	return slot.Occupied{ResourceID: h.slot.ResourceID, Date: h.slot.Date, Interval: h.slot.Interval}
}

func (h *Hold) ID() uuid.UUID              { return h.id }
func (h *Hold) Slot() slot.Slot            { return h.slot }
func (h *Hold) SessionID() string          { return h.sessionID }
func (h *Hold) Kind() Kind                 { return h.kind }
func (h *Hold) Snapshot() CustomerSnapshot { return h.snapshot }
func (h *Hold) ReservationCode() string    { return h.reservationCode }
func (h *Hold) ExpiresAt() time.Time       { return h.expiresAt }
func (h *Hold) CreatedAt() time.Time       { return h.createdAt }
