package request

import (
	"court-booking/internal/domain/slot"
	"court-booking/internal/domain/user"
	"court-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Email      string `json:"email" binding:"omitempty,email,max=255"`
	Phone      string `json:"phone" binding:"omitempty,max=32"`
	NationalID string `json:"national_id" binding:"omitempty,max=32"`
}

func (r CustomerRequest) toInput() commands.CustomerInput {
	return commands.CustomerInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		NationalID: r.NationalID,
	}
}

// SlotRequest is embedded by every request that targets one interval of a day.
type SlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (r SlotRequest) parse() (slot.Date, slot.Interval, error) {
	date, err := slot.ParseDate(r.Date)
	if err != nil {
		return "", slot.Interval{}, err
	}
	interval, err := slot.ParseInterval(r.StartTime, r.EndTime)
	if err != nil {
		return "", slot.Interval{}, err
	}
	return date, interval, nil
}

type CreateHoldRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	SlotRequest
	SessionID      string          `json:"session_id" binding:"omitempty,max=128"`
	Customer       CustomerRequest `json:"customer"`
	DiscountCode   string          `json:"discount_code" binding:"omitempty,max=64"`
	PaidPercentage int             `json:"paid_percentage" binding:"required,oneof=50 100"`
}

func (r *CreateHoldRequest) ToCommand(sessionID string) (commands.CreateHoldRequest, error) {
	date, interval, err := r.parse()
	if err != nil {
		return commands.CreateHoldRequest{}, err
	}
	return commands.CreateHoldRequest{
		ResourceID:     r.ResourceID,
		Date:           date,
		Interval:       interval,
		SessionID:      sessionID,
		Customer:       r.Customer.toInput(),
		DiscountCode:   r.DiscountCode,
		PaidPercentage: r.PaidPercentage,
	}, nil
}

type ProbeHoldsRequest struct {
	ResourceIDs []uuid.UUID `json:"resource_ids" binding:"required,min=1,max=50"`
	SlotRequest
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
}

func (r *ProbeHoldsRequest) ToCommand(sessionID string, actor user.Actor) (commands.ProbeHoldsRequest, error) {
	date, interval, err := r.parse()
	if err != nil {
		return commands.ProbeHoldsRequest{}, err
	}
	return commands.ProbeHoldsRequest{
		ResourceIDs: r.ResourceIDs,
		Date:        date,
		Interval:    interval,
		SessionID:   sessionID,
		Actor:       actor,
	}, nil
}
