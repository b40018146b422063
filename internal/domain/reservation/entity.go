package reservation

import (
	"errors"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice         = errors.New("price cannot be negative")
	ErrReservationCancelled  = errors.New("reservation is already cancelled")
	ErrReservationNotRefund  = errors.New("only paid reservations can be refunded")
	ErrInvalidPaidPercentage = pricing.ErrInvalidPaidPercentage
)

type Reservation struct {
	id             uuid.UUID
	code           Code
	slot           slot.Slot
	customer       Customer
	totalPrice     int64
	paidPercentage int
	origin         pricing.Origin
	commission     pricing.Commission
	discountCode   string
	status         Status
	paymentStatus  PaymentStatus
	createdBy      *uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

type Params struct {
	Code           Code
	Slot           slot.Slot
	Customer       Customer
	TotalPrice     int64
	PaidPercentage int
	Origin         pricing.Origin
	Commission     pricing.Commission
	DiscountCode   string
	CreatedBy      *uuid.UUID
}

// NewConfirmed builds a settled reservation: confirmed and paid.
func NewConfirmed(p Params) (*Reservation, error) {
	if p.TotalPrice < 0 {
		return nil, ErrNegativePrice
	}
	if err := pricing.ValidatePaidPercentage(p.PaidPercentage); err != nil {
		return nil, err
	}
	if _, err := ParseCode(string(p.Code)); err != nil {
		return nil, err
	}
	if _, err := pricing.ParseOrigin(string(p.Origin)); err != nil {
		return nil, err
	}

	return &Reservation{
		id:             uuid.New(),
		code:           p.Code,
		slot:           p.Slot,
		customer:       p.Customer,
		totalPrice:     p.TotalPrice,
		paidPercentage: p.PaidPercentage,
		origin:         p.Origin,
		commission:     p.Commission,
		discountCode:   p.DiscountCode,
		status:         StatusConfirmed,
		paymentStatus:  PaymentPaid,
		createdBy:      p.CreatedBy,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	p Params,
	status Status,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		code:           p.Code,
		slot:           p.Slot,
		customer:       p.Customer,
		totalPrice:     p.TotalPrice,
		paidPercentage: p.PaidPercentage,
		origin:         p.Origin,
		commission:     p.Commission,
		discountCode:   p.DiscountCode,
		status:         status,
		paymentStatus:  paymentStatus,
		createdBy:      p.CreatedBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// MarkRefunded cancels the booking after the gateway returned the money.
func (r *Reservation) MarkRefunded() error {
	if r.status == StatusCancelled {
		return ErrReservationCancelled
	}
	if r.paymentStatus != PaymentPaid {
		return ErrReservationNotRefund
	}
	r.status = StatusCancelled
	r.paymentStatus = PaymentRefunded
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status != StatusCancelled
}

func (r *Reservation) Split() pricing.Split {
	s, err := pricing.SplitPayment(r.totalPrice, r.paidPercentage)
	if err != nil {
		return pricing.Split{PaidOnline: r.totalPrice}
	}
	return s
}

func (r *Reservation) Occupied() slot.Occupied {
	return slot.Occupied{ResourceID: r.slot.ResourceID, Date: r.slot.Date, Interval: r.slot.Interval}
}

func (r *Reservation) ID() uuid.UUID                  { return r.id }
func (r *Reservation) Code() Code                     { return r.code }
func (r *Reservation) Slot() slot.Slot                { return r.slot }
func (r *Reservation) Customer() Customer             { return r.customer }
func (r *Reservation) TotalPrice() int64              { return r.totalPrice }
func (r *Reservation) PaidPercentage() int            { return r.paidPercentage }
func (r *Reservation) Origin() pricing.Origin         { return r.origin }
func (r *Reservation) Commission() pricing.Commission { return r.commission }
func (r *Reservation) CommissionApplied() int64       { return r.commission.Net }
func (r *Reservation) DiscountCode() string           { return r.discountCode }
func (r *Reservation) Status() Status                 { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus   { return r.paymentStatus }
func (r *Reservation) CreatedBy() *uuid.UUID          { return r.createdBy }
func (r *Reservation) CreatedAt() time.Time           { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time           { return r.updatedAt }
