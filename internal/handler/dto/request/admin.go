package request

import (
	"court-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type AdminReservationRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	SlotRequest
	Customer      CustomerRequest `json:"customer"`
	ContactMethod string          `json:"contact_method" binding:"omitempty,oneof=presencial whatsapp"`
	ProbeHoldID   *uuid.UUID      `json:"probe_hold_id"`
	SessionID     string          `json:"session_id" binding:"omitempty,max=128"`
}

func (r *AdminReservationRequest) ToCommand(sessionID string) (commands.AdminReservationRequest, error) {
	date, interval, err := r.parse()
	if err != nil {
		return commands.AdminReservationRequest{}, err
	}
	return commands.AdminReservationRequest{
		ResourceID:    r.ResourceID,
		Date:          date,
		Interval:      interval,
		Customer:      r.Customer.toInput(),
		ContactMethod: r.ContactMethod,
		ProbeHoldID:   r.ProbeHoldID,
		SessionID:     sessionID,
	}, nil
}

type AvailabilityQuery struct {
	ResourceID string `form:"resourceId" binding:"required,uuid"`
	Date       string `form:"date" binding:"required"`
}

type BackupListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}
