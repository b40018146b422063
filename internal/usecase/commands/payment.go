package commands

import (
	"context"
	"errors"
	"log/slog"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/payment"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/resource"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type InitiatePaymentRequest struct {
	HoldID    uuid.UUID
	Amount    int64
	SessionID string
}

type InitiatePaymentResult struct {
	Token       string
	RedirectURL string
	OrderID     string
	Amount      int64
}

type ConfirmationResult struct {
	ReservationCode   string
	Amount            int64
	AuthorizationCode string
	TotalPrice        int64
	PaidOnline        int64
	PendingAtVenue    int64
	Notified          bool
	Stage             payment.Stage
	IsReplayed        bool
}

type RefundResult struct {
	AuthorizationCode string
	Amount            int64
	ReservationCode   string
}

type PaymentCommands interface {
	InitiatePayment(ctx context.Context, req InitiatePaymentRequest) (*InitiatePaymentResult, error)
	ConfirmPayment(ctx context.Context, token string) (*ConfirmationResult, error)
	Refund(ctx context.Context, token string, amount int64, actor user.Actor) (*RefundResult, error)
}

type PaymentConfig struct {
	ReturnURL string
}

type paymentUseCaseImpl struct {
	uow        shared.UnitOfWork
	gateway    shared.PaymentGateway
	dispatcher shared.NotificationDispatcher
	cache      shared.AvailabilityCache
	factory    *reservation.Factory
	cfg        PaymentConfig
	clock      clock.Clock
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	dispatcher shared.NotificationDispatcher,
	cache shared.AvailabilityCache,
	factory *reservation.Factory,
	cfg PaymentConfig,
	clk clock.Clock,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:        uow,
		gateway:    gateway,
		dispatcher: dispatcher,
		cache:      cache,
		factory:    factory,
		cfg:        cfg,
		clock:      clk,
	}
}

func (uc *paymentUseCaseImpl) InitiatePayment(ctx context.Context, req InitiatePaymentRequest) (*InitiatePaymentResult, error) {
	var (
		h      *hold.Hold
		backup *payment.FailureBackup
	)

	// The backup row is committed before the gateway is contacted.
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		h, err = tx.Holds().FindByID(ctx, tx.DB(), req.HoldID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHoldNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if h.IsExpired(uc.clock.Now()) {
			return ErrHoldExpired
		}
		if req.SessionID != "" && !h.OwnedBy(req.SessionID) {
			return ErrHoldNotOwned
		}
		snap := h.Snapshot()
		if req.Amount != pricing.OnlineAmount(snap.TotalPrice, snap.PaidPercentage) {
			return ErrAmountMismatch
		}

		backup, err = tx.Backups().FindByHoldID(ctx, tx.DB(), h.ID())
		switch {
		case err == nil:
			backup.Amount = req.Amount
			backup.State = payment.BackupPending
			backup.Stage = payment.StageHoldCreated
			backup.ErrorMessage = ""
			return tx.Backups().Update(ctx, tx.DB(), backup)
		case infra.IsKind(err, infra.KindNotFound):
			backup = payment.NewPendingBackup(h, req.Amount)
			return tx.Backups().Create(ctx, tx.DB(), backup)
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	})
	if err != nil {
		return nil, err
	}

	orderID := payment.NewOrderID(uc.clock.Now())
	created, err := uc.gateway.CreateTransaction(ctx, shared.CreateTransactionRequest{
		OrderID:   orderID,
		SessionID: h.SessionID(),
		Amount:    req.Amount,
		ReturnURL: uc.cfg.ReturnURL,
	})
	if err != nil {
		backup.State = payment.BackupFailed
		backup.ErrorMessage = err.Error()
		uc.saveBackup(ctx, backup)
		return nil, errs.Mark(err, shared.ErrGatewayTransport)
	}

	txn, err := payment.NewTransaction(created.Token, orderID, h.SessionID(), req.Amount, h.ID(), h.ReservationCode())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	backup.Token = created.Token
	backup.Stage = payment.StagePaymentInitiated
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Payments().Create(ctx, tx.DB(), txn); err != nil {
			return err
		}
		return tx.Backups().Update(ctx, tx.DB(), backup)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("payment initiated",
		"token", created.Token,
		"order_id", orderID,
		"hold_id", h.ID(),
		"reservation_code", h.ReservationCode(),
		"amount", req.Amount)

	return &InitiatePaymentResult{
		Token:       created.Token,
		RedirectURL: created.RedirectURL(),
		OrderID:     orderID,
		Amount:      req.Amount,
	}, nil
}

func (uc *paymentUseCaseImpl) ConfirmPayment(ctx context.Context, token string) (*ConfirmationResult, error) {
	txn, err := uc.findTransaction(ctx, token)
	if err != nil {
		return nil, err
	}
	logger := slog.With(
		"token", token,
		"hold_id", txn.HoldID(),
		"reservation_code", txn.ReservationCode())

	switch txn.Status() {
	case payment.StatusPending:
		if err := uc.confirmAtGateway(ctx, txn, logger); err != nil {
			return nil, err
		}
	case payment.StatusApproved:
		if res, err := uc.findReservation(ctx, reservation.Code(txn.ReservationCode())); err == nil {
			split := res.Split()
			return &ConfirmationResult{
				ReservationCode:   res.Code().String(),
				Amount:            txn.Amount(),
				AuthorizationCode: txn.Authorization().AuthorizationCode,
				TotalPrice:        res.TotalPrice(),
				PaidOnline:        split.PaidOnline,
				PendingAtVenue:    split.PendingAtVenue,
				Stage:             payment.StageReservationPersisted,
				IsReplayed:        true,
			}, nil
		} else if !errors.Is(err, ErrReservationNotFound) {
			return nil, err
		}
		// approved earlier but never materialized: resume from the hold
		logger.Warn("resuming materialization of an approved payment")
	default:
		return nil, ErrPaymentNotConfirmable
	}

	return uc.materialize(ctx, txn, logger)
}

// confirmAtGateway drives PAYMENT_INITIATED -> PAYMENT_CONFIRMED.
func (uc *paymentUseCaseImpl) confirmAtGateway(ctx context.Context, txn *payment.Transaction, logger *slog.Logger) error {
	status, err := uc.gateway.ConfirmTransaction(ctx, txn.Token())
	if err != nil {
		// the gateway may have charged the customer: keep the hold
		logger.Error("gateway confirmation failed", "error", err)
		uc.failTransaction(ctx, txn, err.Error())
		return uc.recovery(txn, payment.StagePaymentFailed, errs.Mark(err, shared.ErrGatewayTransport))
	}

	if !status.Approved() {
		logger.Warn("payment declined", "status", status.Status, "response_code", status.ResponseCode)
		uc.failTransaction(ctx, txn, "declined: "+status.Status)
		uc.releaseHold(ctx, txn.HoldID(), logger)
		return uc.recovery(txn, payment.StagePaymentFailed, ErrGatewayDeclined)
	}

	auth := payment.Authorization{
		AuthorizationCode:  status.AuthorizationCode,
		PaymentTypeCode:    status.PaymentTypeCode,
		ResponseCode:       status.ResponseCode,
		InstallmentsNumber: status.InstallmentsNumber,
		TransactionDate:    status.TransactionDate,
	}
	if err := txn.Approve(auth); err != nil {
		return errs.Mark(err, ErrPaymentNotConfirmable)
	}
	if status.Amount != 0 && status.Amount != txn.Amount() {
		logger.Warn("gateway amount differs from initiated amount", "gateway_amount", status.Amount, "amount", txn.Amount())
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), txn, payment.StatusPending); err != nil {
			return err
		}
		backup, err := tx.Backups().FindByHoldID(ctx, tx.DB(), txn.HoldID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		backup.State = payment.BackupSuccess
		backup.Stage = payment.StagePaymentConfirmed
		backup.Token = txn.Token()
		backup.ErrorMessage = ""
		return tx.Backups().Update(ctx, tx.DB(), backup)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrPaymentNotConfirmable
		}
		logger.Error("could not record approved payment", "error", err)
		uc.markBackup(ctx, txn, payment.BackupConfirmationError, payment.StageConfirmationError, err.Error())
		return uc.recovery(txn, payment.StageConfirmationError, errs.Mark(err, ErrConfirmationError))
	}

	logger.Info("payment confirmed", "authorization_code", auth.AuthorizationCode)
	return nil
}

// materialize drives PAYMENT_CONFIRMED -> NOTIFIED. The hold is removed only
// after the reservation row is committed.
func (uc *paymentUseCaseImpl) materialize(ctx context.Context, txn *payment.Transaction, logger *slog.Logger) (*ConfirmationResult, error) {
	var (
		h      *hold.Hold
		res    *reservation.Reservation
		notice shared.ReservationNotice
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		h, err = lockedHold(ctx, tx, txn.HoldID())
		if err != nil {
			return err
		}
		if h.IsExpired(uc.clock.Now()) {
			// writers drop expired holds under the same lock, so the row still
			// being here means nobody else has claimed the slot since expiry
			logger.Warn("confirming an expired hold")
		}

		court, err := tx.Venues().CourtByID(ctx, tx.DB(), h.Slot().ResourceID)
		if err != nil {
			return err
		}
		cx, err := tx.Venues().ComplexByID(ctx, tx.DB(), court.ComplexID())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		res, err = uc.factory.FromHold(h, cx)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return mapSlotWriteErr(err)
		}

		backup, err := tx.Backups().FindByHoldID(ctx, tx.DB(), h.ID())
		if err == nil {
			id := res.ID()
			backup.ReservationID = &id
			backup.Stage = payment.StageReservationPersisted
			backup.State = payment.BackupSuccess
			if err := tx.Backups().Update(ctx, tx.DB(), backup); err != nil {
				return err
			}
		}
		notice = noticeFor(res, court.Name())
		return nil
	})
	if err != nil {
		logger.Error("reservation could not be materialized", "error", err)
		uc.markBackup(ctx, txn, payment.BackupConfirmationError, payment.StageConfirmationError, err.Error())
		return nil, uc.recovery(txn, payment.StageConfirmationError, errs.Mark(err, ErrConfirmationError))
	}
	logger.Info("reservation persisted", "reservation_id", res.ID())

	stage := payment.StageReservationPersisted
	if uc.releaseHold(ctx, h.ID(), logger) {
		stage = payment.StageHoldReleased
	}
	uc.invalidate(ctx, res)

	notified := uc.notifyConfirmation(ctx, notice, logger)
	if notified {
		stage = payment.StageNotified
	}
	uc.markBackup(ctx, txn, payment.BackupSuccess, stage, "")

	split := res.Split()
	return &ConfirmationResult{
		ReservationCode:   res.Code().String(),
		Amount:            txn.Amount(),
		AuthorizationCode: txn.Authorization().AuthorizationCode,
		TotalPrice:        res.TotalPrice(),
		PaidOnline:        split.PaidOnline,
		PendingAtVenue:    split.PendingAtVenue,
		Notified:          notified,
		Stage:             stage,
	}, nil
}

func (uc *paymentUseCaseImpl) Refund(ctx context.Context, token string, amount int64, actor user.Actor) (*RefundResult, error) {
	txn, err := uc.findTransaction(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := uc.authorizeRefund(ctx, txn, actor); err != nil {
		return nil, err
	}
	if txn.Status() != payment.StatusApproved {
		return nil, ErrPaymentNotRefundable
	}
	if amount <= 0 || amount > txn.Amount() {
		return nil, ErrInvalidRefundAmount
	}

	refund, err := uc.gateway.Refund(ctx, token, amount)
	if err != nil {
		slog.Error("gateway refund failed", "token", token, "error", err)
		return nil, errs.Mark(err, shared.ErrGatewayTransport)
	}

	var (
		res    *reservation.Reservation
		notice shared.ReservationNotice
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// the closure may run again on a retried transaction
		refunded := *txn
		if err := refunded.Refund(); err != nil {
			return errs.Mark(err, ErrPaymentNotRefundable)
		}
		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), &refunded, payment.StatusApproved); err != nil {
			return err
		}

		var err error
		res, err = tx.Reservations().FindByCode(ctx, tx.DB(), reservation.Code(txn.ReservationCode()))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				res = nil
				return nil
			}
			return err
		}
		if err := res.MarkRefunded(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return err
		}
		courtName := ""
		if court, err := tx.Venues().CourtByID(ctx, tx.DB(), res.Slot().ResourceID); err == nil {
			courtName = court.Name()
		}
		notice = noticeFor(res, courtName)
		return nil
	})
	if err != nil {
		// money already returned: surface the identifiers for reconciliation
		slog.Error("refund accepted by gateway but not recorded", "token", token, "error", err)
		return nil, uc.recovery(txn, payment.StageConfirmationError, errs.Mark(err, ErrDatabaseOperationFailed))
	}

	if res != nil {
		uc.invalidate(ctx, res)
		if _, err := uc.dispatcher.SendCancellation(ctx, notice); err != nil {
			slog.Warn("cancellation notice failed", "reservation_code", res.Code().String(), "error", err)
		}
	}

	slog.Info("payment refunded", "token", token, "amount", refund.Amount)
	return &RefundResult{
		AuthorizationCode: refund.AuthorizationCode,
		Amount:            refund.Amount,
		ReservationCode:   txn.ReservationCode(),
	}, nil
}

// authorizeRefund resolves the complex that owns the payment's court, through
// the reservation or, before materialization, the hold. When neither survives
// only a super admin may refund.
func (uc *paymentUseCaseImpl) authorizeRefund(ctx context.Context, txn *payment.Transaction, actor user.Actor) error {
	var court *resource.Court
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var courtID uuid.UUID
		if res, err := tx.Reservations().FindByCode(ctx, tx.DB(), reservation.Code(txn.ReservationCode())); err == nil {
			courtID = res.Slot().ResourceID
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		} else if h, err := tx.Holds().FindByID(ctx, tx.DB(), txn.HoldID()); err == nil {
			courtID = h.Slot().ResourceID
		} else if infra.IsKind(err, infra.KindNotFound) {
			return nil
		} else {
			return err
		}

		var err error
		court, err = tx.Venues().CourtByID(ctx, tx.DB(), courtID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrResourceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if court == nil {
		if actor.Role() == user.RoleSuperAdmin {
			return nil
		}
		return ErrForbidden
	}
	if !actor.CanManage(court.ComplexID()) {
		return ErrForbidden
	}
	return nil
}

func (uc *paymentUseCaseImpl) findTransaction(ctx context.Context, token string) (*payment.Transaction, error) {
	var txn *payment.Transaction
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
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
	return txn, nil
}

func (uc *paymentUseCaseImpl) findReservation(ctx context.Context, code reservation.Code) (*reservation.Reservation, error) {
	var res *reservation.Reservation
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res, err = tx.Reservations().FindByCode(ctx, tx.DB(), code)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return res, nil
}

func (uc *paymentUseCaseImpl) failTransaction(ctx context.Context, txn *payment.Transaction, reason string) {
	if err := txn.Fail(); err != nil {
		slog.Warn("cannot mark payment failed", "token", txn.Token(), "error", err)
		return
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().UpdateStatus(ctx, tx.DB(), txn, payment.StatusPending)
	})
	if err != nil {
		slog.Error("could not persist failed payment", "token", txn.Token(), "error", err)
	}
	uc.markBackup(ctx, txn, payment.BackupFailed, payment.StagePaymentFailed, reason)
}

// releaseHold deletes the hold and reports whether it is gone.
func (uc *paymentUseCaseImpl) releaseHold(ctx context.Context, holdID uuid.UUID, logger *slog.Logger) bool {
	var released *hold.Hold
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Holds().FindByID(ctx, tx.DB(), holdID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		if _, err := tx.Holds().Delete(ctx, tx.DB(), holdID); err != nil {
			return err
		}
		released = h
		return nil
	})
	if err != nil {
		logger.Warn("hold release failed, sweep will reclaim it", "error", err)
		return false
	}
	if released != nil && uc.cache != nil {
		uc.cache.Invalidate(ctx, released.Slot().ResourceID, released.Slot().Date)
	}
	return true
}

func (uc *paymentUseCaseImpl) markBackup(ctx context.Context, txn *payment.Transaction, state payment.BackupState, stage payment.Stage, msg string) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		backup, err := tx.Backups().FindByHoldID(ctx, tx.DB(), txn.HoldID())
		if err != nil {
			return err
		}
		backup.Token = txn.Token()
		backup.State = state
		backup.Stage = stage
		backup.ErrorMessage = msg
		return tx.Backups().Update(ctx, tx.DB(), backup)
	})
	if err != nil {
		slog.Warn("payment backup not updated", "token", txn.Token(), "state", string(state), "error", err)
	}
}

func (uc *paymentUseCaseImpl) saveBackup(ctx context.Context, backup *payment.FailureBackup) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Backups().Update(ctx, tx.DB(), backup)
	})
	if err != nil {
		slog.Warn("payment backup not updated", "hold_id", backup.HoldID, "error", err)
	}
}

func (uc *paymentUseCaseImpl) notifyConfirmation(ctx context.Context, notice shared.ReservationNotice, logger *slog.Logger) bool {
	delivery, err := uc.dispatcher.SendConfirmation(ctx, notice)
	if err != nil {
		logger.Warn("confirmation notice failed", "error", err)
		return false
	}
	return delivery.Delivered
}

func (uc *paymentUseCaseImpl) invalidate(ctx context.Context, res *reservation.Reservation) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, res.Slot().ResourceID, res.Slot().Date)
	}
}

func (uc *paymentUseCaseImpl) recovery(txn *payment.Transaction, stage payment.Stage, err error) error {
	return &RecoveryError{
		Stage:             stage,
		Token:             txn.Token(),
		HoldID:            txn.HoldID(),
		ReservationCode:   txn.ReservationCode(),
		AuthorizationCode: txn.Authorization().AuthorizationCode,
		Err:               err,
	}
}

func noticeFor(res *reservation.Reservation, courtName string) shared.ReservationNotice {
	s := res.Slot()
	c := res.Customer()
	split := res.Split()
	return shared.ReservationNotice{
		Code:           res.Code().String(),
		ResourceID:     s.ResourceID,
		CourtName:      courtName,
		Date:           s.Date,
		StartTime:      s.Interval.Start.String(),
		EndTime:        s.Interval.End.String(),
		CustomerName:   c.Name,
		CustomerEmail:  c.Email,
		CustomerPhone:  c.Phone,
		Origin:         string(res.Origin()),
		TotalPrice:     res.TotalPrice(),
		PaidOnline:     split.PaidOnline,
		PendingAtVenue: split.PendingAtVenue,
	}
}

// lockedHold takes the partition lock of the hold's slot and reads the hold
// again under it. A hold swept before the lock was granted is reported as
// missing.
func lockedHold(ctx context.Context, tx shared.Tx, id uuid.UUID) (*hold.Hold, error) {
	h, err := tx.Holds().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHoldNotFound
		}
		return nil, err
	}
	s := h.Slot()
	if err := tx.Holds().LockSlot(ctx, tx.DB(), s.ResourceID, s.Date); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	h, err = tx.Holds().FindByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHoldNotFound
		}
		return nil, err
	}
	return h, nil
}
