package commands

import (
	"context"
	"log/slog"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/slot"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdminReservationRequest struct {
	ResourceID    uuid.UUID
	Date          slot.Date
	Interval      slot.Interval
	Customer      CustomerInput
	ContactMethod string
	// ProbeHoldID is a probe hold placed by SessionID on the same slot. It is
	// consumed by the reservation instead of blocking it.
	ProbeHoldID *uuid.UUID
	SessionID   string
}

type AdminReservationResult struct {
	ReservationCode string
	Price           int64
	Commission      int64
	CommissionVAT   int64
	Notified        bool
}

type AdminCommands interface {
	CreateAdministrativeReservation(ctx context.Context, req AdminReservationRequest, actor user.Actor) (*AdminReservationResult, error)
}

type adminUseCaseImpl struct {
	uow        shared.UnitOfWork
	dispatcher shared.NotificationDispatcher
	cache      shared.AvailabilityCache
	factory    *reservation.Factory
	clock      clock.Clock
}

func NewAdminUseCase(
	uow shared.UnitOfWork,
	dispatcher shared.NotificationDispatcher,
	cache shared.AvailabilityCache,
	factory *reservation.Factory,
	clk clock.Clock,
) AdminCommands {
	return &adminUseCaseImpl{
		uow:        uow,
		dispatcher: dispatcher,
		cache:      cache,
		factory:    factory,
		clock:      clk,
	}
}

func (uc *adminUseCaseImpl) CreateAdministrativeReservation(ctx context.Context, req AdminReservationRequest, actor user.Actor) (*AdminReservationResult, error) {
	customer, err := reservation.NewCustomer(req.Customer.Name, req.Customer.Email, req.Customer.Phone, req.Customer.NationalID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	var method *pricing.ContactMethod
	if req.ContactMethod != "" {
		m := pricing.NormalizeContactMethod(req.ContactMethod)
		method = &m
	}

	s := slot.New(req.ResourceID, req.Date, req.Interval)
	var (
		res    *reservation.Reservation
		notice shared.ReservationNotice
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		court, err := tx.Venues().CourtByID(ctx, tx.DB(), req.ResourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !actor.CanManage(court.ComplexID()) {
			return ErrForbidden
		}
		cx, err := tx.Venues().ComplexByID(ctx, tx.DB(), court.ComplexID())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Holds().LockSlot(ctx, tx.DB(), s.ResourceID, s.Date); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		probe, err := ownProbeHold(ctx, tx, req, s)
		if err != nil {
			return err
		}
		if err := ensureSlotFree(ctx, tx, s, uc.clock.Now(), probe); err != nil {
			return err
		}

		code, err := allocateCode(ctx, tx)
		if err != nil {
			return err
		}
		res, err = uc.factory.Administrative(reservation.AdministrativeInput{
			Code:          code,
			Slot:          s,
			Court:         court,
			Complex:       cx,
			Customer:      customer,
			ContactMethod: method,
			Actor:         actor.ID(),
		})
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return mapSlotWriteErr(err)
		}
		if probe != nil {
			if _, err := tx.Holds().Delete(ctx, tx.DB(), *probe); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		notice = noticeFor(res, court.Name())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, s.ResourceID, s.Date)
	}
	slog.Info("administrative reservation created",
		"reservation_code", res.Code().String(),
		"actor", actor.ID(),
		"price", res.TotalPrice())

	notified := false
	if customer.HasEmail() {
		delivery, err := uc.dispatcher.SendConfirmation(ctx, notice)
		if err != nil {
			slog.Warn("confirmation notice failed", "reservation_code", res.Code().String(), "error", err)
		} else {
			notified = delivery.Delivered
		}
	}

	commission := res.Commission()
	return &AdminReservationResult{
		ReservationCode: res.Code().String(),
		Price:           res.TotalPrice(),
		Commission:      commission.Net,
		CommissionVAT:   commission.VAT,
		Notified:        notified,
	}, nil
}

// ownProbeHold resolves req.ProbeHoldID under the partition lock. Only a probe
// hold of the caller's session on exactly this slot may be consumed; a hold
// that is already gone leaves the regular conflict check in charge.
func ownProbeHold(ctx context.Context, tx shared.Tx, req AdminReservationRequest, s slot.Slot) (*uuid.UUID, error) {
	if req.ProbeHoldID == nil {
		return nil, nil
	}
	h, err := tx.Holds().FindByID(ctx, tx.DB(), *req.ProbeHoldID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if h.Kind() != hold.KindProbe || req.SessionID == "" || !h.OwnedBy(req.SessionID) {
		return nil, ErrHoldNotOwned
	}
	if h.Slot() != s {
		return nil, ErrSlotConflict
	}
	id := h.ID()
	return &id, nil
}
