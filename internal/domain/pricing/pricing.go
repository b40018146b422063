package pricing

import (
	"errors"
	"math"

	"court-booking/internal/domain/slot"
)

var (
	ErrInvalidOrigin         = errors.New("origin must be direct or administrative")
	ErrInvalidPaidPercentage = errors.New("paid percentage must be 50 or 100")
)

type Origin string

const (
	OriginDirect         Origin = "direct"
	OriginAdministrative Origin = "administrative"
)

func ParseOrigin(value string) (Origin, error) {
	switch Origin(value) {
	case OriginDirect, OriginAdministrative:
		return Origin(value), nil
	default:
		return "", ErrInvalidOrigin
	}
}

type ContactMethod string

const (
	ContactPresencial ContactMethod = "presencial"
	ContactWhatsApp   ContactMethod = "whatsapp"
)

// NormalizeContactMethod maps unknown methods to presencial.
func NormalizeContactMethod(value string) ContactMethod {
	if ContactMethod(value) == ContactWhatsApp {
		return ContactWhatsApp
	}
	return ContactPresencial
}

const (
	DirectCommissionRate         = 0.035
	AdministrativeCommissionRate = 0.0175
	VATRate                      = 0.19

	presencialFactor = 0.90
	whatsAppFactor   = 0.95
)

// round matches half-up rounding for the non-negative amounts handled here.
func round(v float64) int64 {
	return int64(math.Round(v))
}

func rateFor(origin Origin) float64 {
	if origin == OriginAdministrative {
		return AdministrativeCommissionRate
	}
	return DirectCommissionRate
}

func CalculateCommission(basePrice int64, origin Origin) int64 {
	return round(float64(basePrice) * rateFor(origin))
}

type Commission struct {
	Net   int64
	VAT   int64
	Total int64
}

func CalculateCommissionWithVAT(basePrice int64, origin Origin) Commission {
	net := CalculateCommission(basePrice, origin)
	vat := round(float64(net) * VATRate)
	return Commission{Net: net, VAT: vat, Total: net + vat}
}

func CalculateDiscountedPrice(basePrice int64, method ContactMethod) int64 {
	if method == ContactWhatsApp {
		return round(float64(basePrice) * whatsAppFactor)
	}
	return round(float64(basePrice) * presencialFactor)
}

// CommissionSchedule is satisfied by resource.Complex.
type CommissionSchedule interface {
	CommissionStartDate() (slot.Date, bool)
}

func IsExemptFromCommission(complex CommissionSchedule, reservationDate slot.Date) bool {
	if complex == nil {
		return false
	}
	start, ok := complex.CommissionStartDate()
	if !ok || start == "" {
		return false
	}
	return reservationDate.Before(start)
}

func CalculateFinalCommission(complex CommissionSchedule, reservationDate slot.Date, basePrice int64, origin Origin) int64 {
	if IsExemptFromCommission(complex, reservationDate) {
		return 0
	}
	return CalculateCommission(basePrice, origin)
}

func CalculateFinalCommissionWithVAT(complex CommissionSchedule, reservationDate slot.Date, basePrice int64, origin Origin) Commission {
	if IsExemptFromCommission(complex, reservationDate) {
		return Commission{}
	}
	return CalculateCommissionWithVAT(basePrice, origin)
}

// PriceForInterval prorates an hourly price over the interval length.
func PriceForInterval(pricePerHour int64, interval slot.Interval) int64 {
	return round(float64(pricePerHour) * float64(interval.Minutes()) / 60)
}

func ValidatePaidPercentage(pct int) error {
	if pct != 50 && pct != 100 {
		return ErrInvalidPaidPercentage
	}
	return nil
}

type Split struct {
	PaidOnline     int64
	PendingAtVenue int64
}

// SplitPayment derives both parts from the fixed total so they always add up to it.
func SplitPayment(totalPrice int64, paidPercentage int) (Split, error) {
	if err := ValidatePaidPercentage(paidPercentage); err != nil {
		return Split{}, err
	}
	online := OnlineAmount(totalPrice, paidPercentage)
	return Split{PaidOnline: online, PendingAtVenue: totalPrice - online}, nil
}

func OnlineAmount(totalPrice int64, paidPercentage int) int64 {
	if paidPercentage >= 100 {
		return totalPrice
	}
	return round(float64(totalPrice) * float64(paidPercentage) / 100)
}
