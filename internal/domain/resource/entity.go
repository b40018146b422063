package resource

import (
	"errors"
	"strings"
	"time"

	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrNegativePrice       = errors.New("price per hour cannot be negative")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
)

const (
	MaxResourceNameLength = 255
)

// Court is a bookable resource belonging to a complex.
type Court struct {
	id           uuid.UUID
	complexID    uuid.UUID
	name         string
	pricePerHour int64
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCourt(id, complexID uuid.UUID, name string, pricePerHour int64) (*Court, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if pricePerHour < 0 {
		return nil, ErrNegativePrice
	}

	return &Court{
		id:           id,
		complexID:    complexID,
		name:         strings.TrimSpace(name),
		pricePerHour: pricePerHour,
	}, nil
}

func ReconstructCourt(id, complexID uuid.UUID, name string, pricePerHour int64, createdAt, updatedAt time.Time) *Court {
	return &Court{
		id:           id,
		complexID:    complexID,
		name:         name,
		pricePerHour: pricePerHour,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Court) ID() uuid.UUID        { return c.id }
func (c *Court) ComplexID() uuid.UUID { return c.complexID }
func (c *Court) Name() string         { return c.name }
func (c *Court) PricePerHour() int64  { return c.pricePerHour }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }

// Complex groups courts and owns the commission schedule.
type Complex struct {
	id                  uuid.UUID
	name                string
	commissionStartDate *slot.Date
}

func NewComplex(id uuid.UUID, name string, commissionStartDate *slot.Date) (*Complex, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	return &Complex{
		id:                  id,
		name:                strings.TrimSpace(name),
		commissionStartDate: commissionStartDate,
	}, nil
}

func (c *Complex) ID() uuid.UUID { return c.id }
func (c *Complex) Name() string  { return c.name }

// CommissionStartDate returns the first day commission is charged, if configured.
func (c *Complex) CommissionStartDate() (slot.Date, bool) {
	if c == nil || c.commissionStartDate == nil {
		return "", false
	}
	return *c.commissionStartDate, true
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}
