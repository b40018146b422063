package webpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

const (
	IntegrationBaseURL = "https://webpay3gint.transbank.cl"
	ProductionBaseURL  = "https://webpay3g.transbank.cl"

	// Public integration credentials published by Transbank.
	IntegrationCommerceCode = "597055555532"
	IntegrationAPIKey       = "579B532A7440BB0C9079DED94D31EA1615BACEB56610332264630D42D0A36B1C"

	transactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"
	maxErrorBody     = 512
)

var ErrUnexpectedStatus = errs.New("unexpected webpay response status")

type Config struct {
	BaseURL      string
	CommerceCode string
	APIKey       string
	Timeout      time.Duration
}

// ConfigFor resolves credentials for the named environment. Empty
// credentials in integration fall back to the public test commerce.
func ConfigFor(environment, commerceCode, apiKey string, timeout time.Duration) Config {
	cfg := Config{
		BaseURL:      IntegrationBaseURL,
		CommerceCode: commerceCode,
		APIKey:       apiKey,
		Timeout:      timeout,
	}
	if environment == "production" {
		cfg.BaseURL = ProductionBaseURL
		return cfg
	}
	if cfg.CommerceCode == "" {
		cfg.CommerceCode = IntegrationCommerceCode
	}
	if cfg.APIKey == "" {
		cfg.APIKey = IntegrationAPIKey
	}
	return cfg
}

type Client struct {
	http   *http.Client
	cfg    Config
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		cfg:    cfg,
		logger: logger,
	}
}

var _ shared.PaymentGateway = (*Client)(nil)

type createRequest struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
	ReturnURL string `json:"return_url"`
}

type createResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type transactionResponse struct {
	VCI                string     `json:"vci"`
	Amount             int64      `json:"amount"`
	Status             string     `json:"status"`
	BuyOrder           string     `json:"buy_order"`
	SessionID          string     `json:"session_id"`
	AuthorizationCode  string     `json:"authorization_code"`
	PaymentTypeCode    string     `json:"payment_type_code"`
	ResponseCode       int        `json:"response_code"`
	InstallmentsNumber int        `json:"installments_number"`
	TransactionDate    *time.Time `json:"transaction_date"`
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

type refundResponse struct {
	Type              string `json:"type"`
	AuthorizationCode string `json:"authorization_code"`
	NullifiedAmount   int64  `json:"nullified_amount"`
	ResponseCode      int    `json:"response_code"`
}

type errorResponse struct {
	ErrorMessage string `json:"error_message"`
}

func (c *Client) CreateTransaction(ctx context.Context, req shared.CreateTransactionRequest) (*shared.CreatedTransaction, error) {
	body := createRequest{
		BuyOrder:  req.OrderID,
		SessionID: req.SessionID,
		Amount:    req.Amount,
		ReturnURL: req.ReturnURL,
	}
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, transactionsPath, body, &resp); err != nil {
		return nil, errs.Wrap(err, "webpay create transaction")
	}
	c.logger.Info("webpay transaction created", "order_id", req.OrderID, "amount", req.Amount)
	return &shared.CreatedTransaction{Token: resp.Token, URL: resp.URL}, nil
}

func (c *Client) ConfirmTransaction(ctx context.Context, token string) (*shared.TransactionStatus, error) {
	var resp transactionResponse
	if err := c.do(ctx, http.MethodPut, transactionsPath+"/"+url.PathEscape(token), nil, &resp); err != nil {
		return nil, errs.Wrap(err, "webpay commit transaction")
	}
	c.logger.Info("webpay transaction committed", "token", token, "status", resp.Status, "response_code", resp.ResponseCode)
	return resp.toStatus(), nil
}

func (c *Client) GetStatus(ctx context.Context, token string) (*shared.TransactionStatus, error) {
	var resp transactionResponse
	if err := c.do(ctx, http.MethodGet, transactionsPath+"/"+url.PathEscape(token), nil, &resp); err != nil {
		return nil, errs.Wrap(err, "webpay transaction status")
	}
	return resp.toStatus(), nil
}

func (c *Client) Refund(ctx context.Context, token string, amount int64) (*shared.RefundResult, error) {
	var resp refundResponse
	path := transactionsPath + "/" + url.PathEscape(token) + "/refunds"
	if err := c.do(ctx, http.MethodPost, path, refundRequest{Amount: amount}, &resp); err != nil {
		return nil, errs.Wrap(err, "webpay refund")
	}
	c.logger.Info("webpay transaction refunded", "token", token, "type", resp.Type, "amount", amount)
	return &shared.RefundResult{
		Type:              resp.Type,
		AuthorizationCode: resp.AuthorizationCode,
		Amount:            amount,
		ResponseCode:      resp.ResponseCode,
	}, nil
}

func (r transactionResponse) toStatus() *shared.TransactionStatus {
	return &shared.TransactionStatus{
		Status:             r.Status,
		ResponseCode:       r.ResponseCode,
		Amount:             r.Amount,
		OrderID:            r.BuyOrder,
		SessionID:          r.SessionID,
		AuthorizationCode:  r.AuthorizationCode,
		PaymentTypeCode:    r.PaymentTypeCode,
		InstallmentsNumber: r.InstallmentsNumber,
		TransactionDate:    r.TransactionDate,
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Tbk-Api-Key-Id", c.cfg.CommerceCode)
	req.Header.Set("Tbk-Api-Key-Secret", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("webpay request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var e errorResponse
		msg := string(snippet)
		if json.Unmarshal(snippet, &e) == nil && e.ErrorMessage != "" {
			msg = e.ErrorMessage
		}
		c.logger.Warn("webpay returned error", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
		return errs.Wrap(ErrUnexpectedStatus, fmt.Sprintf("status %d: %s", resp.StatusCode, msg))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
