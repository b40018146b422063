package response

import (
	"court-booking/internal/usecase/commands"
)

type InitiatePaymentResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
}

func FromInitiateResult(r *commands.InitiatePaymentResult) *InitiatePaymentResponse {
	return &InitiatePaymentResponse{
		Token:       r.Token,
		RedirectURL: r.RedirectURL,
		OrderID:     r.OrderID,
		Amount:      r.Amount,
	}
}

type ConfirmationResponse struct {
	ReservationCode   string `json:"reservation_code"`
	Amount            int64  `json:"amount"`
	AuthorizationCode string `json:"authorization_code"`
	TotalPrice        int64  `json:"total_price"`
	PaidOnline        int64  `json:"paid_online"`
	PendingAtVenue    int64  `json:"pending_at_venue"`
	Notified          bool   `json:"notified"`
	Stage             string `json:"stage"`
	IsReplayed        bool   `json:"is_replayed"`
}

func FromConfirmationResult(r *commands.ConfirmationResult) *ConfirmationResponse {
	return &ConfirmationResponse{
		ReservationCode:   r.ReservationCode,
		Amount:            r.Amount,
		AuthorizationCode: r.AuthorizationCode,
		TotalPrice:        r.TotalPrice,
		PaidOnline:        r.PaidOnline,
		PendingAtVenue:    r.PendingAtVenue,
		Notified:          r.Notified,
		Stage:             string(r.Stage),
		IsReplayed:        r.IsReplayed,
	}
}

type RefundResponse struct {
	AuthorizationCode string `json:"authorization_code"`
	Amount            int64  `json:"amount"`
	ReservationCode   string `json:"reservation_code"`
}

func FromRefundResult(r *commands.RefundResult) *RefundResponse {
	return &RefundResponse{
		AuthorizationCode: r.AuthorizationCode,
		Amount:            r.Amount,
		ReservationCode:   r.ReservationCode,
	}
}
