package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/slot"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrGatewayTransport marks network and protocol failures talking to the
// payment gateway, as opposed to a business decline.
var ErrGatewayTransport = errs.New("payment gateway transport error")

const gatewayStatusAuthorized = "AUTHORIZED"

type CreateTransactionRequest struct {
	OrderID   string
	SessionID string
	Amount    int64
	ReturnURL string
}

type CreatedTransaction struct {
	Token string
	URL   string
}

// RedirectURL is where the customer completes the payment.
func (c CreatedTransaction) RedirectURL() string {
	if c.URL == "" {
		return ""
	}
	return c.URL + "?token_ws=" + c.Token
}

type TransactionStatus struct {
	Status             string
	ResponseCode       int
	Amount             int64
	OrderID            string
	SessionID          string
	AuthorizationCode  string
	PaymentTypeCode    string
	InstallmentsNumber int
	TransactionDate    *time.Time
}

func (s TransactionStatus) Approved() bool {
	return s.Status == gatewayStatusAuthorized && s.ResponseCode == 0
}

type RefundResult struct {
	Type              string
	AuthorizationCode string
	Amount            int64
	ResponseCode      int
}

type PaymentGateway interface {
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*CreatedTransaction, error)
	ConfirmTransaction(ctx context.Context, token string) (*TransactionStatus, error)
	GetStatus(ctx context.Context, token string) (*TransactionStatus, error)
	Refund(ctx context.Context, token string, amount int64) (*RefundResult, error)
}

// ReservationNotice is the data handed to customer-facing channels.
type ReservationNotice struct {
	Code           string
	ResourceID     uuid.UUID
	CourtName      string
	Date           slot.Date
	StartTime      string
	EndTime        string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	Origin         string
	TotalPrice     int64
	PaidOnline     int64
	PendingAtVenue int64
}

type Delivery struct {
	Delivered bool
}

type NotificationDispatcher interface {
	SendConfirmation(ctx context.Context, notice ReservationNotice) (Delivery, error)
	SendCancellation(ctx context.Context, notice ReservationNotice) (Delivery, error)
}

// AvailabilityCache is a read-path cache only. It is never consulted when
// deciding whether a slot is free.
type AvailabilityCache interface {
	Get(ctx context.Context, resourceID uuid.UUID, date slot.Date) ([]slot.Occupied, bool)
	Set(ctx context.Context, resourceID uuid.UUID, date slot.Date, occupied []slot.Occupied, ttl time.Duration)
	Invalidate(ctx context.Context, resourceID uuid.UUID, date slot.Date)
}
