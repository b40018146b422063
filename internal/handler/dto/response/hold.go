package response

import (
	"court-booking/internal/usecase/commands"
)

type HoldResponse struct {
	HoldID          string `json:"hold_id"`
	ReservationCode string `json:"reservation_code"`
	SessionID       string `json:"session_id,omitempty"`
	ExpiresAt       int64  `json:"expires_at"`
	TotalPrice      int64  `json:"total_price"`
	AmountDue       int64  `json:"amount_due"`
}

func FromHoldResult(r *commands.HoldResult, sessionID string) *HoldResponse {
	return &HoldResponse{
		HoldID:          r.HoldID.String(),
		ReservationCode: r.ReservationCode,
		SessionID:       sessionID,
		ExpiresAt:       r.ExpiresAt.Unix(),
		TotalPrice:      r.TotalPrice,
		AmountDue:       r.AmountDue,
	}
}

type ProbeSkipResponse struct {
	ResourceID string `json:"resource_id"`
	Reason     string `json:"reason"`
}

type ProbeHoldsResponse struct {
	SessionID string               `json:"session_id"`
	Held      []*HoldResponse      `json:"held"`
	Skipped   []*ProbeSkipResponse `json:"skipped"`
}

func FromProbeResult(r *commands.ProbeHoldsResult, sessionID string) *ProbeHoldsResponse {
	res := &ProbeHoldsResponse{
		SessionID: sessionID,
		Held:      make([]*HoldResponse, 0, len(r.Held)),
		Skipped:   make([]*ProbeSkipResponse, 0, len(r.Skipped)),
	}
	for i := range r.Held {
		res.Held = append(res.Held, FromHoldResult(&r.Held[i], ""))
	}
	for _, s := range r.Skipped {
		res.Skipped = append(res.Skipped, &ProbeSkipResponse{ResourceID: s.ResourceID.String(), Reason: s.Reason})
	}
	return res
}
