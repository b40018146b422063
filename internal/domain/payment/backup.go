package payment

import (
	"time"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/slot"

	"github.com/google/uuid"
)

// BackupState tracks a confirmation attempt for manual recovery.
type BackupState string

const (
	BackupPending           BackupState = "pending"
	BackupSuccess           BackupState = "success"
	BackupFailed            BackupState = "failed"
	BackupConfirmationError BackupState = "confirmation_error"
)

// Stage is the last state reached by a booking attempt.
type Stage string

const (
	StageHoldCreated          Stage = "HOLD_CREATED"
	StagePaymentInitiated     Stage = "PAYMENT_INITIATED"
	StagePaymentConfirmed     Stage = "PAYMENT_CONFIRMED"
	StageReservationPersisted Stage = "RESERVATION_PERSISTED"
	StageHoldReleased         Stage = "HOLD_RELEASED"
	StageNotified             Stage = "NOTIFIED"
	StagePaymentFailed        Stage = "PAYMENT_FAILED"
	StageConfirmationError    Stage = "CONFIRMATION_ERROR"
)

type FailureBackup struct {
	ID              uuid.UUID
	HoldID          uuid.UUID
	Token           string
	ReservationCode string
	Amount          int64
	State           BackupState
	Stage           Stage
	ErrorMessage    string
	Snapshot        hold.CustomerSnapshot
	ResourceID      uuid.UUID
	Date            slot.Date
	Interval        slot.Interval
	ReservationID   *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewPendingBackup captures the hold before the gateway is contacted.
func NewPendingBackup(h *hold.Hold, amount int64) *FailureBackup {
	s := h.Slot()
	return &FailureBackup{
		ID:              uuid.New(),
		HoldID:          h.ID(),
		ReservationCode: h.ReservationCode(),
		Amount:          amount,
		State:           BackupPending,
		Stage:           StageHoldCreated,
		Snapshot:        h.Snapshot(),
		ResourceID:      s.ResourceID,
		Date:            s.Date,
		Interval:        s.Interval,
	}
}

func (b *FailureBackup) IsResolved() bool {
	return b.State == BackupSuccess
}
