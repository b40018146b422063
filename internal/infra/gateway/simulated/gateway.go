// Package simulated is a local stand-in for the card gateway used in
// development: every transaction is authorized.
package simulated

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownToken = errs.New("unknown simulated transaction token")

const (
	statusInitialized = "INITIALIZED"
	statusAuthorized  = "AUTHORIZED"
	statusReversed    = "REVERSED"
)

type transaction struct {
	req      shared.CreateTransactionRequest
	status   string
	authCode string
	refunded int64
}

type Gateway struct {
	mu      sync.Mutex
	baseURL string
	clk     clock.Clock
	logger  *slog.Logger
	txns    map[string]*transaction
	seq     int
}

func NewGateway(baseURL string, clk clock.Clock, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		clk:     clk,
		logger:  logger,
		txns:    make(map[string]*transaction),
	}
}

var _ shared.PaymentGateway = (*Gateway)(nil)

func (g *Gateway) CreateTransaction(_ context.Context, req shared.CreateTransactionRequest) (*shared.CreatedTransaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	token := "sim-" + uuid.NewString()
	g.txns[token] = &transaction{req: req, status: statusInitialized}
	g.logger.Info("simulated transaction created", "token", token, "order_id", req.OrderID, "amount", req.Amount)
	return &shared.CreatedTransaction{Token: token, URL: g.baseURL}, nil
}

func (g *Gateway) ConfirmTransaction(_ context.Context, token string) (*shared.TransactionStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, ok := g.txns[token]
	if !ok {
		return nil, ErrUnknownToken
	}
	if t.status == statusInitialized {
		g.seq++
		t.status = statusAuthorized
		t.authCode = fmt.Sprintf("%06d", g.seq)
	}
	return g.statusOf(t), nil
}

func (g *Gateway) GetStatus(_ context.Context, token string) (*shared.TransactionStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, ok := g.txns[token]
	if !ok {
		return nil, ErrUnknownToken
	}
	return g.statusOf(t), nil
}

func (g *Gateway) Refund(_ context.Context, token string, amount int64) (*shared.RefundResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, ok := g.txns[token]
	if !ok {
		return nil, ErrUnknownToken
	}
	if t.status != statusAuthorized || t.refunded+amount > t.req.Amount {
		return nil, errs.New("simulated refund rejected")
	}
	t.refunded += amount
	if t.refunded == t.req.Amount {
		t.status = statusReversed
	}
	return &shared.RefundResult{
		Type:              statusReversed,
		AuthorizationCode: t.authCode,
		Amount:            amount,
	}, nil
}

func (g *Gateway) statusOf(t *transaction) *shared.TransactionStatus {
	now := g.clk.Now()
	return &shared.TransactionStatus{
		Status:            t.status,
		Amount:            t.req.Amount,
		OrderID:           t.req.OrderID,
		SessionID:         t.req.SessionID,
		AuthorizationCode: t.authCode,
		PaymentTypeCode:   "VD",
		TransactionDate:   &now,
	}
}
