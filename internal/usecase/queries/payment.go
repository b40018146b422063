package queries

import (
	"context"
	"log/slog"

	"court-booking/internal/domain/payment"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"
)

var ErrPaymentNotFound = errs.New("payment not found")

const defaultBackupLimit = 100

type PaymentQueries interface {
	GetPaymentStatus(ctx context.Context, token string) (*PaymentStatusView, error)
	ListPendingBackups(ctx context.Context, limit int) ([]*BackupView, error)
}

type paymentQueriesImpl struct {
	uow     shared.UnitOfWork
	gateway shared.PaymentGateway
}

func NewPaymentQueries(uow shared.UnitOfWork, gateway shared.PaymentGateway) PaymentQueries {
	return &paymentQueriesImpl{uow: uow, gateway: gateway}
}

// GetPaymentStatus reports the local record next to what the gateway says.
// It is the check an operator runs before re-driving a confirmation.
func (q *paymentQueriesImpl) GetPaymentStatus(ctx context.Context, token string) (*PaymentStatusView, error) {
	var txn *payment.Transaction
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		txn, err = tx.Payments().FindByToken(ctx, tx.DB(), token)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view := &PaymentStatusView{Transaction: toTransactionView(txn)}
	status, err := q.gateway.GetStatus(ctx, token)
	if err != nil {
		slog.Warn("gateway status lookup failed", "token", token, "error", err)
		view.GatewayError = err.Error()
		return view, nil
	}
	view.Gateway = &GatewayStatusView{
		Status:            status.Status,
		ResponseCode:      status.ResponseCode,
		Amount:            status.Amount,
		AuthorizationCode: status.AuthorizationCode,
	}
	return view, nil
}

func (q *paymentQueriesImpl) ListPendingBackups(ctx context.Context, limit int) ([]*BackupView, error) {
	if limit <= 0 {
		limit = defaultBackupLimit
	}
	var backups []*payment.FailureBackup
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		backups, err = tx.Backups().ListUnresolved(ctx, tx.DB(), limit)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	views := make([]*BackupView, 0, len(backups))
	for _, b := range backups {
		views = append(views, &BackupView{
			ID:              b.ID,
			HoldID:          b.HoldID,
			Token:           b.Token,
			ReservationCode: b.ReservationCode,
			Amount:          b.Amount,
			State:           string(b.State),
			Stage:           string(b.Stage),
			ErrorMessage:    b.ErrorMessage,
			CustomerName:    b.Snapshot.Name,
			CustomerEmail:   b.Snapshot.Email,
			CustomerPhone:   b.Snapshot.Phone,
			ResourceID:      b.ResourceID,
			Date:            b.Date.String(),
			StartTime:       b.Interval.Start.String(),
			EndTime:         b.Interval.End.String(),
			ReservationID:   b.ReservationID,
			CreatedAt:       b.CreatedAt,
			UpdatedAt:       b.UpdatedAt,
		})
	}
	return views, nil
}

func toTransactionView(t *payment.Transaction) TransactionView {
	return TransactionView{
		Token:             t.Token(),
		OrderID:           t.OrderID(),
		Amount:            t.Amount(),
		Status:            string(t.Status()),
		AuthorizationCode: t.Authorization().AuthorizationCode,
		ReservationCode:   t.ReservationCode(),
		HoldID:            t.HoldID(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
}
