package httperr

import (
	"net/http"

	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	CodeSlotConflict      = "SLOT_CONFLICT"
	CodeNotFound          = "NOT_FOUND"
	CodeHoldExpired       = "HOLD_EXPIRED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeValidation        = "VALIDATION_ERROR"
	CodeInvalidState      = "INVALID_STATE"
	CodePaymentDeclined   = "PAYMENT_DECLINED"
	CodeGatewayError      = "GATEWAY_ERROR"
	CodeConfirmationError = "CONFIRMATION_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)

type mapping struct {
	target  error
	status  int
	code    string
	message string
}

// Checked in order; the first match wins.
var mappings = []mapping{
	{commands.ErrConfirmationError, http.StatusInternalServerError, CodeConfirmationError, "Payment was confirmed but the reservation could not be completed"},
	{commands.ErrGatewayDeclined, http.StatusPaymentRequired, CodePaymentDeclined, "Payment was declined"},
	{shared.ErrGatewayTransport, http.StatusBadGateway, CodeGatewayError, "Payment gateway unavailable"},
	{commands.ErrSlotConflict, http.StatusConflict, CodeSlotConflict, "Slot is no longer available"},
	{commands.ErrResourceNotFound, http.StatusNotFound, CodeNotFound, "Resource not found"},
	{commands.ErrHoldNotFound, http.StatusNotFound, CodeNotFound, "Hold not found"},
	{queries.ErrHoldNotFound, http.StatusNotFound, CodeNotFound, "Hold not found"},
	{commands.ErrPaymentNotFound, http.StatusNotFound, CodeNotFound, "Payment not found"},
	{queries.ErrPaymentNotFound, http.StatusNotFound, CodeNotFound, "Payment not found"},
	{commands.ErrReservationNotFound, http.StatusNotFound, CodeNotFound, "Reservation not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, CodeNotFound, "Reservation not found"},
	{commands.ErrHoldExpired, http.StatusGone, CodeHoldExpired, "Hold has expired"},
	{commands.ErrHoldNotOwned, http.StatusForbidden, CodeForbidden, "Hold belongs to another session"},
	{commands.ErrForbidden, http.StatusForbidden, CodeForbidden, "Insufficient permissions"},
	{commands.ErrAmountMismatch, http.StatusBadRequest, CodeValidation, "Amount does not match the hold"},
	{commands.ErrInvalidRefundAmount, http.StatusBadRequest, CodeValidation, "Invalid refund amount"},
	{commands.ErrDomainValidation, http.StatusBadRequest, CodeValidation, "Invalid request"},
	{commands.ErrPaymentNotConfirmable, http.StatusConflict, CodeInvalidState, "Payment is not pending confirmation"},
	{commands.ErrPaymentNotRefundable, http.StatusConflict, CodeInvalidState, "Payment is not refundable"},
}

// RecoveryDetail exposes the identifiers needed to reconcile a payment by hand.
type RecoveryDetail struct {
	Stage             string `json:"stage"`
	Token             string `json:"token"`
	HoldID            string `json:"hold_id"`
	ReservationCode   string `json:"reservation_code"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}

// StatusOf resolves the HTTP status, code and public message for a usecase error.
func StatusOf(err error) (int, string, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.code, m.message
		}
	}
	return http.StatusInternalServerError, CodeInternal, "Internal error"
}

// AbortWithUsecaseError maps err and attaches recovery identifiers when present.
func AbortWithUsecaseError(c *gin.Context, err error) {
	status, code, msg := StatusOf(err)

	var detail any
	var rec *commands.RecoveryError
	if errs.As(err, &rec) {
		detail = RecoveryDetail{
			Stage:             string(rec.Stage),
			Token:             rec.Token,
			HoldID:            rec.HoldID.String(),
			ReservationCode:   rec.ReservationCode,
			AuthorizationCode: rec.AuthorizationCode,
		}
	}
	AbortWithCode(c, status, err, code, msg, detail)
}
