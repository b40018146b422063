package queries

import (
	"time"

	"github.com/google/uuid"
)

type HoldView struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Kind            string    `json:"kind"`
	ReservationCode string    `json:"reservation_code"`
	TotalPrice      int64     `json:"total_price"`
	PaidPercentage  int       `json:"paid_percentage"`
	AmountDue       int64     `json:"amount_due"`
	ExpiresAt       time.Time `json:"expires_at"`
	Expired         bool      `json:"expired"`
}

type OccupiedInterval struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityView struct {
	ResourceID uuid.UUID          `json:"resource_id"`
	Date       string             `json:"date"`
	Occupied   []OccupiedInterval `json:"occupied"`
	Cached     bool               `json:"cached"`
}

type ReservationView struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	ResourceID     uuid.UUID `json:"resource_id"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email,omitempty"`
	TotalPrice     int64     `json:"total_price"`
	PaidPercentage int       `json:"paid_percentage"`
	PaidOnline     int64     `json:"paid_online"`
	PendingAtVenue int64     `json:"pending_at_venue"`
	Origin         string    `json:"origin"`
	Commission     int64     `json:"commission"`
	CommissionVAT  int64     `json:"commission_vat"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
}

type TransactionView struct {
	Token             string    `json:"token"`
	OrderID           string    `json:"order_id"`
	Amount            int64     `json:"amount"`
	Status            string    `json:"status"`
	AuthorizationCode string    `json:"authorization_code,omitempty"`
	ReservationCode   string    `json:"reservation_code"`
	HoldID            uuid.UUID `json:"hold_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type GatewayStatusView struct {
	Status            string `json:"status"`
	ResponseCode      int    `json:"response_code"`
	Amount            int64  `json:"amount"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}

type PaymentStatusView struct {
	Transaction  TransactionView    `json:"transaction"`
	Gateway      *GatewayStatusView `json:"gateway,omitempty"`
	GatewayError string             `json:"gateway_error,omitempty"`
}

type BackupView struct {
	ID              uuid.UUID  `json:"id"`
	HoldID          uuid.UUID  `json:"hold_id"`
	Token           string     `json:"token,omitempty"`
	ReservationCode string     `json:"reservation_code"`
	Amount          int64      `json:"amount"`
	State           string     `json:"state"`
	Stage           string     `json:"stage"`
	ErrorMessage    string     `json:"error_message,omitempty"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email,omitempty"`
	CustomerPhone   string     `json:"customer_phone,omitempty"`
	ResourceID      uuid.UUID  `json:"resource_id"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	ReservationID   *uuid.UUID `json:"reservation_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
