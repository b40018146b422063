package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Complexes struct {
	ID                  uuid.UUID          `json:"id"`
	Name                string             `json:"name"`
	CommissionStartDate pgtype.Date        `json:"commission_start_date"`
	CreatedAt           pgtype.Timestamptz `json:"created_at"`
	UpdatedAt           pgtype.Timestamptz `json:"updated_at"`
}

type Courts struct {
	ID           uuid.UUID          `json:"id"`
	ComplexID    uuid.UUID          `json:"complex_id"`
	Name         string             `json:"name"`
	PricePerHour int64              `json:"price_per_hour"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type TemporaryHolds struct {
	ID              uuid.UUID          `json:"id"`
	ResourceID      uuid.UUID          `json:"resource_id"`
	Date            pgtype.Date        `json:"date"`
	StartTime       pgtype.Time        `json:"start_time"`
	EndTime         pgtype.Time        `json:"end_time"`
	SessionID       string             `json:"session_id"`
	Kind            string             `json:"kind"`
	Customer        []byte             `json:"customer"`
	ReservationCode string             `json:"reservation_code"`
	ExpiresAt       pgtype.Timestamptz `json:"expires_at"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
}

type Reservations struct {
	ID             uuid.UUID          `json:"id"`
	Code           string             `json:"code"`
	ResourceID     uuid.UUID          `json:"resource_id"`
	Date           pgtype.Date        `json:"date"`
	StartTime      pgtype.Time        `json:"start_time"`
	EndTime        pgtype.Time        `json:"end_time"`
	CustomerName   string             `json:"customer_name"`
	CustomerEmail  string             `json:"customer_email"`
	CustomerPhone  string             `json:"customer_phone"`
	NationalID     string             `json:"national_id"`
	TotalPrice     int64              `json:"total_price"`
	PaidPercentage int32              `json:"paid_percentage"`
	Origin         string             `json:"origin"`
	Commission     int64              `json:"commission"`
	CommissionVat  int64              `json:"commission_vat"`
	DiscountCode   string             `json:"discount_code"`
	Status         string             `json:"status"`
	PaymentStatus  string             `json:"payment_status"`
	CreatedBy      pgtype.UUID        `json:"created_by"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type PaymentTransactions struct {
	Token              string             `json:"token"`
	OrderID            string             `json:"order_id"`
	SessionID          string             `json:"session_id"`
	Amount             int64              `json:"amount"`
	Status             string             `json:"status"`
	HoldID             uuid.UUID          `json:"hold_id"`
	ReservationCode    string             `json:"reservation_code"`
	AuthorizationCode  string             `json:"authorization_code"`
	PaymentTypeCode    string             `json:"payment_type_code"`
	ResponseCode       int32              `json:"response_code"`
	InstallmentsNumber int32              `json:"installments_number"`
	TransactionDate    pgtype.Timestamptz `json:"transaction_date"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}

type PaymentFailureBackups struct {
	ID              uuid.UUID          `json:"id"`
	HoldID          uuid.UUID          `json:"hold_id"`
	Token           string             `json:"token"`
	ReservationCode string             `json:"reservation_code"`
	Amount          int64              `json:"amount"`
	State           string             `json:"state"`
	Stage           string             `json:"stage"`
	ErrorMessage    string             `json:"error_message"`
	Customer        []byte             `json:"customer"`
	ResourceID      uuid.UUID          `json:"resource_id"`
	Date            pgtype.Date        `json:"date"`
	StartTime       pgtype.Time        `json:"start_time"`
	EndTime         pgtype.Time        `json:"end_time"`
	ReservationID   pgtype.UUID        `json:"reservation_id"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}
