package reservation

import (
	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/resource"
	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// FromHold materializes a direct booking from the data captured at hold time.
// The total price is taken from the snapshot unchanged.
func (f *Factory) FromHold(h *hold.Hold, complex *resource.Complex) (*Reservation, error) {
	snap := h.Snapshot()
	customer, err := NewCustomer(snap.Name, snap.Email, snap.Phone, snap.NationalID)
	if err != nil {
		return nil, err
	}

	s := h.Slot()
	return NewConfirmed(Params{
		Code:           Code(h.ReservationCode()),
		Slot:           s,
		Customer:       customer,
		TotalPrice:     snap.TotalPrice,
		PaidPercentage: snap.PaidPercentage,
		Origin:         pricing.OriginDirect,
		Commission:     pricing.CalculateFinalCommissionWithVAT(complex, s.Date, snap.TotalPrice, pricing.OriginDirect),
		DiscountCode:   snap.DiscountCode,
	})
}

type AdministrativeInput struct {
	Code          Code
	Slot          slot.Slot
	Court         *resource.Court
	Complex       *resource.Complex
	Customer      Customer
	ContactMethod *pricing.ContactMethod
	Actor         uuid.UUID
}

// Administrative builds a staff-entered booking priced from the court rate.
// Commission is computed on the price before any contact-method discount.
func (f *Factory) Administrative(in AdministrativeInput) (*Reservation, error) {
	sl := in.Slot
	base := pricing.PriceForInterval(in.Court.PricePerHour(), sl.Interval)
	total := base
	if in.ContactMethod != nil {
		total = pricing.CalculateDiscountedPrice(base, *in.ContactMethod)
	}

	actor := in.Actor
	return NewConfirmed(Params{
		Code:           in.Code,
		Slot:           sl,
		Customer:       in.Customer,
		TotalPrice:     total,
		PaidPercentage: 100,
		Origin:         pricing.OriginAdministrative,
		Commission:     pricing.CalculateFinalCommissionWithVAT(in.Complex, sl.Date, base, pricing.OriginAdministrative),
		CreatedBy:      &actor,
	})
}
