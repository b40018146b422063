package request

import (
	"court-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type InitiatePaymentRequest struct {
	HoldID    uuid.UUID `json:"hold_id" binding:"required"`
	Amount    int64     `json:"amount" binding:"required,gt=0"`
	SessionID string    `json:"session_id" binding:"omitempty,max=128"`
}

func (r *InitiatePaymentRequest) ToCommand(sessionID string) commands.InitiatePaymentRequest {
	return commands.InitiatePaymentRequest{
		HoldID:    r.HoldID,
		Amount:    r.Amount,
		SessionID: sessionID,
	}
}

// ConfirmPaymentRequest also accepts the gateway's own token_ws field, which
// is what the customer's browser posts back after paying.
type ConfirmPaymentRequest struct {
	Token   string `json:"token" form:"token"`
	TokenWS string `json:"token_ws" form:"token_ws"`
}

func (r *ConfirmPaymentRequest) ResolveToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.TokenWS
}

type RefundRequest struct {
	Token  string `json:"token" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}
