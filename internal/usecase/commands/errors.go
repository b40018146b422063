package commands

import (
	"fmt"

	"court-booking/internal/domain/payment"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotConflict            = errs.New("slot is already held or booked")
	ErrResourceNotFound        = errs.New("resource not found")
	ErrHoldNotFound            = errs.New("hold not found")
	ErrHoldExpired             = errs.New("hold has expired")
	ErrHoldNotOwned            = errs.New("hold belongs to another session")
	ErrAmountMismatch          = errs.New("amount does not match the hold")
	ErrPaymentNotFound         = errs.New("payment not found")
	ErrPaymentNotConfirmable   = errs.New("payment is not pending confirmation")
	ErrPaymentNotRefundable    = errs.New("payment is not refundable")
	ErrInvalidRefundAmount     = errs.New("refund amount must be positive and not exceed the charged amount")
	ErrGatewayDeclined         = errs.New("payment declined by gateway")
	ErrConfirmationError       = errs.New("payment confirmed but reservation could not be completed")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrForbidden               = errs.New("actor cannot manage this resource")
	ErrCodeExhausted           = errs.New("could not allocate a unique reservation code")
)

// RecoveryError carries every identifier an operator needs to reconcile a
// confirmation that did not complete cleanly.
type RecoveryError struct {
	Stage             payment.Stage
	Token             string
	HoldID            uuid.UUID
	ReservationCode   string
	AuthorizationCode string
	Err               error
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("%s (token=%s hold=%s code=%s auth=%s): %v",
		e.Stage, e.Token, e.HoldID, e.ReservationCode, e.AuthorizationCode, e.Err)
}

func (e *RecoveryError) Unwrap() error {
	return e.Err
}
