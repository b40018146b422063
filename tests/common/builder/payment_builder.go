//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/payment"
	reqdto "court-booking/internal/handler/dto/request"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	Token             string
	OrderID           string
	SessionID         string
	Amount            int64
	Status            payment.Status
	HoldID            uuid.UUID
	ReservationCode   string
	AuthorizationCode string
	CreatedAt         time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		Token:           "tok-0001",
		OrderID:         "O-12345678",
		SessionID:       "session-1",
		Amount:          20000,
		Status:          payment.StatusPending,
		HoldID:          uuid.New(),
		ReservationCode: "ABC123",
		CreatedAt:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) BuildDomain() *payment.Transaction {
	return payment.ReconstructTransaction(p.Token, p.OrderID, p.SessionID, p.Amount, p.Status, p.HoldID,
		p.ReservationCode, payment.Authorization{AuthorizationCode: p.AuthorizationCode}, p.CreatedAt, p.CreatedAt)
}

func (p *PaymentBuilder) BuildInfra() sqlc.PaymentTransactions {
	return sqlc.PaymentTransactions{
		Token:             p.Token,
		OrderID:           p.OrderID,
		SessionID:         p.SessionID,
		Amount:            p.Amount,
		Status:            string(p.Status),
		HoldID:            p.HoldID,
		ReservationCode:   p.ReservationCode,
		AuthorizationCode: p.AuthorizationCode,
		CreatedAt:         pgconv.TimeToPgtype(p.CreatedAt),
		UpdatedAt:         pgconv.TimeToPgtype(p.CreatedAt),
	}
}

func (p *PaymentBuilder) BuildInitiateRequestDTO() reqdto.InitiatePaymentRequest {
	return reqdto.InitiatePaymentRequest{
		HoldID:    p.HoldID,
		Amount:    p.Amount,
		SessionID: p.SessionID,
	}
}

func (p *PaymentBuilder) BuildInitiateResult() *commands.InitiatePaymentResult {
	return &commands.InitiatePaymentResult{
		Token:       p.Token,
		RedirectURL: "https://gateway.test/pay?token_ws=" + p.Token,
		OrderID:     p.OrderID,
		Amount:      p.Amount,
	}
}

func (p *PaymentBuilder) BuildConfirmationResult() *commands.ConfirmationResult {
	return &commands.ConfirmationResult{
		ReservationCode:   p.ReservationCode,
		Amount:            p.Amount,
		AuthorizationCode: p.AuthorizationCode,
		TotalPrice:        p.Amount,
		PaidOnline:        p.Amount,
		Notified:          true,
		Stage:             payment.StageNotified,
	}
}

func (p *PaymentBuilder) AsApproved() *PaymentBuilder {
	p.Status = payment.StatusApproved
	p.AuthorizationCode = "1213"
	return p
}
