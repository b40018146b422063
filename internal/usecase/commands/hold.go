package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

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

const maxCodeAttempts = 5

type CustomerInput struct {
	Name       string
	Email      string
	Phone      string
	NationalID string
}

type CreateHoldRequest struct {
	ResourceID     uuid.UUID
	Date           slot.Date
	Interval       slot.Interval
	SessionID      string
	Customer       CustomerInput
	DiscountCode   string
	PaidPercentage int
	// TTL overrides the customer policy when positive.
	TTL time.Duration
}

type HoldResult struct {
	HoldID          uuid.UUID
	ReservationCode string
	ExpiresAt       time.Time
	TotalPrice      int64
	AmountDue       int64
}

type ProbeHoldsRequest struct {
	ResourceIDs []uuid.UUID
	Date        slot.Date
	Interval    slot.Interval
	SessionID   string
	// Actor must manage the complex of every court probed.
	Actor user.Actor
}

type ProbeSkip struct {
	ResourceID uuid.UUID
	Reason     string
}

type ProbeHoldsResult struct {
	Held    []HoldResult
	Skipped []ProbeSkip
}

type HoldCommands interface {
	CreateHold(ctx context.Context, req CreateHoldRequest) (*HoldResult, error)
	ReleaseHold(ctx context.Context, id uuid.UUID, sessionID string) error
	ExpireStaleHolds(ctx context.Context, now time.Time) (int, error)
	ProbeHolds(ctx context.Context, req ProbeHoldsRequest) (*ProbeHoldsResult, error)
}

type holdUseCaseImpl struct {
	uow    shared.UnitOfWork
	cache  shared.AvailabilityCache
	policy hold.Policy
	clock  clock.Clock
}

func NewHoldUseCase(uow shared.UnitOfWork, cache shared.AvailabilityCache, policy hold.Policy, clk clock.Clock) HoldCommands {
	return &holdUseCaseImpl{uow: uow, cache: cache, policy: policy, clock: clk}
}

func (uc *holdUseCaseImpl) CreateHold(ctx context.Context, req CreateHoldRequest) (*HoldResult, error) {
	if err := pricing.ValidatePaidPercentage(req.PaidPercentage); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	customer, err := reservation.NewCustomer(req.Customer.Name, req.Customer.Email, req.Customer.Phone, req.Customer.NationalID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	ttl := req.TTL
	if ttl <= 0 {
		ttl = uc.policy.TTL(hold.KindCustomer)
	}

	build := func(totalPrice int64) hold.CustomerSnapshot {
		return hold.CustomerSnapshot{
			Name:           customer.Name,
			Email:          customer.Email,
			Phone:          customer.Phone,
			NationalID:     customer.NationalID,
			TotalPrice:     totalPrice,
			DiscountCode:   req.DiscountCode,
			PaidPercentage: req.PaidPercentage,
		}
	}

	h, err := uc.placeHold(ctx, slot.New(req.ResourceID, req.Date, req.Interval), nil, req.SessionID, hold.KindCustomer, ttl, build)
	if err != nil {
		return nil, err
	}

	snap := h.Snapshot()
	return &HoldResult{
		HoldID:          h.ID(),
		ReservationCode: h.ReservationCode(),
		ExpiresAt:       h.ExpiresAt(),
		TotalPrice:      snap.TotalPrice,
		AmountDue:       pricing.OnlineAmount(snap.TotalPrice, snap.PaidPercentage),
	}, nil
}

// placeHold runs the serialized check-then-insert for one slot. A non-nil
// actor must manage the court's complex.
func (uc *holdUseCaseImpl) placeHold(
	ctx context.Context,
	s slot.Slot,
	actor *user.Actor,
	sessionID string,
	kind hold.Kind,
	ttl time.Duration,
	snapshot func(totalPrice int64) hold.CustomerSnapshot,
) (*hold.Hold, error) {
	var created *hold.Hold
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			court, err := tx.Venues().CourtByID(ctx, tx.DB(), s.ResourceID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrResourceNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if actor != nil && !actor.CanManage(court.ComplexID()) {
				return ErrForbidden
			}

			now := uc.clock.Now()
			if err := ensureSlotFree(ctx, tx, s, now, nil); err != nil {
				return err
			}

			code, err := allocateCode(ctx, tx)
			if err != nil {
				return err
			}

			h, err := hold.NewHold(s, sessionID, kind, snapshot(pricing.PriceForInterval(court.PricePerHour(), s.Interval)), code.String(), now, ttl)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if err := tx.Holds().Create(ctx, tx.DB(), h); err != nil {
				return mapSlotWriteErr(err)
			}
			created = h
			return nil
		})
		if err == nil {
			break
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.Warn("reservation code collision, retrying", "attempt", attempt+1)
			continue
		}
		if errors.Is(err, ErrSlotConflict) {
			slog.Info("slot conflict on hold creation", "slot", s.String())
		}
		return nil, err
	}
	if created == nil {
		return nil, ErrCodeExhausted
	}

	uc.invalidate(ctx, s)
	slog.Info("hold created",
		"hold_id", created.ID(),
		"reservation_code", created.ReservationCode(),
		"kind", string(kind),
		"expires_at", created.ExpiresAt())
	return created, nil
}

func (uc *holdUseCaseImpl) ReleaseHold(ctx context.Context, id uuid.UUID, sessionID string) error {
	var released *hold.Hold
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Holds().FindByID(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if sessionID != "" && !h.OwnedBy(sessionID) {
			return ErrHoldNotOwned
		}
		if _, err := tx.Holds().Delete(ctx, tx.DB(), id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		released = h
		return nil
	})
	if err != nil {
		return err
	}
	if released != nil {
		uc.invalidate(ctx, released.Slot())
		slog.Info("hold released", "hold_id", id)
	}
	return nil
}

func (uc *holdUseCaseImpl) ExpireStaleHolds(ctx context.Context, now time.Time) (int, error) {
	var swept []slot.Slot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		swept, err = tx.Holds().DeleteExpired(ctx, tx.DB(), nil, now)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	seen := make(map[string]struct{}, len(swept))
	for _, s := range swept {
		if _, ok := seen[s.LockKey()]; ok {
			continue
		}
		seen[s.LockKey()] = struct{}{}
		uc.invalidate(ctx, s)
	}
	return len(swept), nil
}

func (uc *holdUseCaseImpl) ProbeHolds(ctx context.Context, req ProbeHoldsRequest) (*ProbeHoldsResult, error) {
	result := &ProbeHoldsResult{}
	ttl := uc.policy.TTL(hold.KindProbe)
	empty := func(int64) hold.CustomerSnapshot { return hold.CustomerSnapshot{PaidPercentage: 100} }

	for _, resourceID := range req.ResourceIDs {
		h, err := uc.placeHold(ctx, slot.New(resourceID, req.Date, req.Interval), &req.Actor, req.SessionID, hold.KindProbe, ttl, empty)
		switch {
		case err == nil:
			result.Held = append(result.Held, HoldResult{
				HoldID:          h.ID(),
				ReservationCode: h.ReservationCode(),
				ExpiresAt:       h.ExpiresAt(),
			})
		case errors.Is(err, ErrSlotConflict):
			result.Skipped = append(result.Skipped, ProbeSkip{ResourceID: resourceID, Reason: "occupied"})
		case errors.Is(err, ErrResourceNotFound):
			result.Skipped = append(result.Skipped, ProbeSkip{ResourceID: resourceID, Reason: "not_found"})
		case errors.Is(err, ErrForbidden):
			result.Skipped = append(result.Skipped, ProbeSkip{ResourceID: resourceID, Reason: "forbidden"})
		default:
			return nil, err
		}
	}
	return result, nil
}

func (uc *holdUseCaseImpl) invalidate(ctx context.Context, s slot.Slot) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, s.ResourceID, s.Date)
	}
}

// ensureSlotFree must run inside the write transaction. It takes the partition
// lock, drops expired holds of the partition and checks the remaining live
// holds and active reservations. ignoreHold excludes the caller's own hold.
func ensureSlotFree(ctx context.Context, tx shared.Tx, s slot.Slot, now time.Time, ignoreHold *uuid.UUID) error {
	if err := tx.Holds().LockSlot(ctx, tx.DB(), s.ResourceID, s.Date); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	scope := &shared.SlotScope{ResourceID: s.ResourceID, Date: s.Date}
	if _, err := tx.Holds().DeleteExpired(ctx, tx.DB(), scope, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	holds, err := tx.Holds().ListLive(ctx, tx.DB(), s.ResourceID, s.Date, now)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	reservations, err := tx.Reservations().ListActive(ctx, tx.DB(), s.ResourceID, s.Date)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	occupied := make([]slot.Occupied, 0, len(holds)+len(reservations))
	for _, h := range holds {
		if ignoreHold != nil && h.ID() == *ignoreHold {
			continue
		}
		occupied = append(occupied, h.Occupied())
	}
	for _, r := range reservations {
		occupied = append(occupied, r.Occupied())
	}

	if slot.ConflictsWithExisting(s.ResourceID, s.Date, s.Interval, occupied) {
		return ErrSlotConflict
	}
	return nil
}

func allocateCode(ctx context.Context, tx shared.Tx) (reservation.Code, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := reservation.GenerateCode(nil)
		if err != nil {
			return "", errs.Wrap(err, "generate reservation code")
		}
		taken, err := tx.Reservations().CodeExists(ctx, tx.DB(), code)
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

// mapSlotWriteErr turns constraint backstops on slot keys into SlotConflict.
func mapSlotWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return ErrSlotConflict
	case infra.IsKind(err, infra.KindDuplicateKey):
		return err
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
