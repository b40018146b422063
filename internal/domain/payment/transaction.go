package payment

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid payment status transition")
	ErrInvalidAmount     = errors.New("payment amount must be positive")
	ErrEmptyToken        = errors.New("payment token is required")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusFailed},
	StatusApproved: {StatusRefunded},
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Authorization is what the gateway reports for an authorized charge.
type Authorization struct {
	AuthorizationCode  string
	PaymentTypeCode    string
	ResponseCode       int
	InstallmentsNumber int
	TransactionDate    *time.Time
}

type Transaction struct {
	token           string
	orderID         string
	sessionID       string
	amount          int64
	status          Status
	holdID          uuid.UUID
	reservationCode string
	authorization   Authorization
	createdAt       time.Time
	updatedAt       time.Time
}

func NewTransaction(token, orderID, sessionID string, amount int64, holdID uuid.UUID, reservationCode string) (*Transaction, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Transaction{
		token:           token,
		orderID:         orderID,
		sessionID:       sessionID,
		amount:          amount,
		status:          StatusPending,
		holdID:          holdID,
		reservationCode: reservationCode,
	}, nil
}

func ReconstructTransaction(
	token, orderID, sessionID string,
	amount int64,
	status Status,
	holdID uuid.UUID,
	reservationCode string,
	auth Authorization,
	createdAt, updatedAt time.Time,
) *Transaction {
	return &Transaction{
		token:           token,
		orderID:         orderID,
		sessionID:       sessionID,
		amount:          amount,
		status:          status,
		holdID:          holdID,
		reservationCode: reservationCode,
		authorization:   auth,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (t *Transaction) transition(to Status) error {
	if !CanTransition(t.status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.status, to)
	}
	t.status = to
	return nil
}

func (t *Transaction) Approve(auth Authorization) error {
	if err := t.transition(StatusApproved); err != nil {
		return err
	}
	t.authorization = auth
	return nil
}

func (t *Transaction) Fail() error {
	return t.transition(StatusFailed)
}

func (t *Transaction) Refund() error {
	return t.transition(StatusRefunded)
}

func (t *Transaction) Token() string                { return t.token }
func (t *Transaction) OrderID() string              { return t.orderID }
func (t *Transaction) SessionID() string            { return t.sessionID }
func (t *Transaction) Amount() int64                { return t.amount }
func (t *Transaction) Status() Status               { return t.status }
func (t *Transaction) HoldID() uuid.UUID            { return t.holdID }
func (t *Transaction) ReservationCode() string      { return t.reservationCode }
func (t *Transaction) Authorization() Authorization { return t.authorization }
func (t *Transaction) CreatedAt() time.Time         { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time         { return t.updatedAt }

// NewOrderID builds a gateway buy order from the last 8 digits of the unix
// millisecond clock. The gateway caps buy orders at 26 characters.
func NewOrderID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "ORD" + ms
}
