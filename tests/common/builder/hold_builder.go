//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/slot"
	reqdto "court-booking/internal/handler/dto/request"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HoldBuilder struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	Date            string
	StartTime       string
	EndTime         string
	SessionID       string
	Kind            hold.Kind
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	NationalID      string
	DiscountCode    string
	PaidPercentage  int
	TotalPrice      int64
	ReservationCode string
	Now             time.Time
	TTL             time.Duration
}

func NewHoldBuilder() *HoldBuilder {
	return &HoldBuilder{
		ID:              uuid.New(),
		ResourceID:      uuid.New(),
		Date:            "2025-03-10",
		StartTime:       "10:00",
		EndTime:         "11:00",
		SessionID:       "session-1",
		Kind:            hold.KindCustomer,
		CustomerName:    "Ana Rojas",
		CustomerEmail:   "ana@example.com",
		CustomerPhone:   "+56911112222",
		PaidPercentage:  100,
		TotalPrice:      20000,
		ReservationCode: "ABC123",
		Now:             time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		TTL:             15 * time.Minute,
	}
}

func (h *HoldBuilder) With(mutate func(*HoldBuilder)) *HoldBuilder {
	mutate(h)
	return h
}

func (h *HoldBuilder) BuildSlot() slot.Slot {
	date, err := slot.ParseDate(h.Date)
	if err != nil {
		panic(err)
	}
	interval, err := slot.ParseInterval(h.StartTime, h.EndTime)
	if err != nil {
		panic(err)
	}
	return slot.New(h.ResourceID, date, interval)
}

func (h *HoldBuilder) BuildSnapshot() hold.CustomerSnapshot {
	return hold.CustomerSnapshot{
		Name:           h.CustomerName,
		Email:          h.CustomerEmail,
		Phone:          h.CustomerPhone,
		NationalID:     h.NationalID,
		TotalPrice:     h.TotalPrice,
		DiscountCode:   h.DiscountCode,
		PaidPercentage: h.PaidPercentage,
	}
}

// BuildDomain keeps the builder ID so rows and entities line up.
func (h *HoldBuilder) BuildDomain() *hold.Hold {
	return hold.ReconstructHold(h.ID, h.BuildSlot(), h.SessionID, h.Kind, h.BuildSnapshot(),
		h.ReservationCode, h.Now.Add(h.TTL), h.Now)
}

func (h *HoldBuilder) BuildInfra() sqlc.TemporaryHolds {
	customer, err := json.Marshal(h.BuildSnapshot())
	if err != nil {
		panic(err)
	}
	s := h.BuildSlot()
	start, end := converter.IntervalToPg(s.Interval)
	return sqlc.TemporaryHolds{
		ID:              h.ID,
		ResourceID:      h.ResourceID,
		Date:            converter.DateToPg(s.Date),
		StartTime:       start,
		EndTime:         end,
		SessionID:       h.SessionID,
		Kind:            string(h.Kind),
		Customer:        customer,
		ReservationCode: h.ReservationCode,
		ExpiresAt:       pgconv.TimeToPgtype(h.Now.Add(h.TTL)),
		CreatedAt:       pgconv.TimeToPgtype(h.Now),
	}
}

func (h *HoldBuilder) BuildCreateRequestDTO() reqdto.CreateHoldRequest {
	return reqdto.CreateHoldRequest{
		ResourceID: h.ResourceID,
		SlotRequest: reqdto.SlotRequest{
			Date:      h.Date,
			StartTime: h.StartTime,
			EndTime:   h.EndTime,
		},
		SessionID: h.SessionID,
		Customer: reqdto.CustomerRequest{
			Name:       h.CustomerName,
			Email:      h.CustomerEmail,
			Phone:      h.CustomerPhone,
			NationalID: h.NationalID,
		},
		DiscountCode:   h.DiscountCode,
		PaidPercentage: h.PaidPercentage,
	}
}

func (h *HoldBuilder) BuildCommand() commands.CreateHoldRequest {
	s := h.BuildSlot()
	return commands.CreateHoldRequest{
		ResourceID: s.ResourceID,
		Date:       s.Date,
		Interval:   s.Interval,
		SessionID:  h.SessionID,
		Customer: commands.CustomerInput{
			Name:       h.CustomerName,
			Email:      h.CustomerEmail,
			Phone:      h.CustomerPhone,
			NationalID: h.NationalID,
		},
		DiscountCode:   h.DiscountCode,
		PaidPercentage: h.PaidPercentage,
	}
}

func (h *HoldBuilder) BuildResult() *commands.HoldResult {
	return &commands.HoldResult{
		HoldID:          h.ID,
		ReservationCode: h.ReservationCode,
		ExpiresAt:       h.Now.Add(h.TTL),
		TotalPrice:      h.TotalPrice,
		AmountDue:       pricing.OnlineAmount(h.TotalPrice, h.PaidPercentage),
	}
}

func (h *HoldBuilder) BuildView() *queries.HoldView {
	return &queries.HoldView{
		ID:              h.ID,
		ResourceID:      h.ResourceID,
		Date:            h.Date,
		StartTime:       h.StartTime,
		EndTime:         h.EndTime,
		Kind:            string(h.Kind),
		ReservationCode: h.ReservationCode,
		TotalPrice:      h.TotalPrice,
		PaidPercentage:  h.PaidPercentage,
		AmountDue:       pricing.OnlineAmount(h.TotalPrice, h.PaidPercentage),
		ExpiresAt:       h.Now.Add(h.TTL),
	}
}

func (h *HoldBuilder) WithSlot(resourceID uuid.UUID, date, start, end string) *HoldBuilder {
	h.ResourceID = resourceID
	h.Date = date
	h.StartTime = start
	h.EndTime = end
	return h
}

func (h *HoldBuilder) WithSession(sessionID string) *HoldBuilder {
	h.SessionID = sessionID
	return h
}

func (h *HoldBuilder) AsHalfPayment() *HoldBuilder {
	h.PaidPercentage = 50
	return h
}

func (h *HoldBuilder) AsProbe() *HoldBuilder {
	h.Kind = hold.KindProbe
	h.CustomerName = ""
	h.CustomerEmail = ""
	h.CustomerPhone = ""
	h.TotalPrice = 0
	h.PaidPercentage = 100
	h.TTL = 3 * time.Minute
	return h
}
