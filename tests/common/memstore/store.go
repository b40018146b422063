//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for usecase tests.
// Every transaction holds one store-wide mutex, so writers are serialized the
// same way the partition advisory lock serializes them in Postgres, and a
// failed transaction rolls every table back.
package memstore

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/payment"
	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/resource"
	"court-booking/internal/domain/slot"
	"court-booking/internal/infra"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Operation names accepted by FailOn.
const (
	OpCreateHold        = "holds.create"
	OpDeleteHold        = "holds.delete"
	OpCreateReservation = "reservations.create"
	OpUpdateReservation = "reservations.update"
	OpCreatePayment     = "payments.create"
	OpUpdatePayment     = "payments.update"
	OpUpdateBackup      = "backups.update"
)

type tables struct {
	holds        map[uuid.UUID]hold.Hold
	reservations map[reservation.Code]reservation.Reservation
	payments     map[string]payment.Transaction
	backups      map[uuid.UUID]payment.FailureBackup
}

func (t tables) clone() tables {
	return tables{
		holds:        maps.Clone(t.holds),
		reservations: maps.Clone(t.reservations),
		payments:     maps.Clone(t.payments),
		backups:      maps.Clone(t.backups),
	}
}

type Store struct {
	mu        sync.Mutex
	data      tables
	courts    map[uuid.UUID]*resource.Court
	complexes map[uuid.UUID]*resource.Complex
	failures  map[string]error
	onLock    func(ctx context.Context, tx shared.Tx)
	// rollback target of the running write transaction
	base *tables
}

func New() *Store {
	return &Store{
		data: tables{
			holds:        map[uuid.UUID]hold.Hold{},
			reservations: map[reservation.Code]reservation.Reservation{},
			payments:     map[string]payment.Transaction{},
			backups:      map[uuid.UUID]payment.FailureBackup{},
		},
		courts:    map[uuid.UUID]*resource.Court{},
		complexes: map[uuid.UUID]*resource.Complex{},
		failures:  map[string]error{},
	}
}

func (s *Store) AddComplex(c *resource.Complex) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.complexes[c.ID()] = c
}

func (s *Store) AddCourt(c *resource.Court) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courts[c.ID()] = c
}

// FailOn makes every later call of op return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// BeforeNextLock runs fn inside the next LockSlot call, once, as if another
// writer had been granted the partition lock and committed first.
func (s *Store) BeforeNextLock(fn func(ctx context.Context, tx shared.Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLock = fn
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	saved := s.data.clone()
	s.base = &saved
	defer func() { s.base = nil }()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.data = saved
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	saved := s.data.clone()
	err := fn(ctx, &memTx{s: s})
	s.data = saved
	return err
}

func (s *Store) Holds() []hold.Hold {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]hold.Hold, 0, len(s.data.holds))
	for _, h := range s.data.holds {
		out = append(out, h)
	}
	return out
}

func (s *Store) Reservations() []reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]reservation.Reservation, 0, len(s.data.reservations))
	for _, r := range s.data.reservations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out
}

func (s *Store) Payment(token string) (payment.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.data.payments[token]
	return t, ok
}

func (s *Store) Backup(holdID uuid.UUID) (payment.FailureBackup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data.backups[holdID]
	return b, ok
}

// PutHold stores h directly, bypassing every check.
func (s *Store) PutHold(h *hold.Hold) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.holds[h.ID()] = *h
}

// PutReservation stores r directly, bypassing every check.
func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.reservations[r.Code()] = *r
}

// PutPayment stores t directly, bypassing every check.
func (s *Store) PutPayment(t *payment.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.payments[t.Token()] = *t
}

func (s *Store) failure(op string) error {
	if err, ok := s.failures[op]; ok {
		return infra.WrapRepoErr("injected failure on "+op, err, infra.KindDBFailure)
	}
	return nil
}

type memTx struct {
	s *Store
}

func (t *memTx) Holds() shared.HoldRepository               { return holdRepo{t.s} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t.s} }
func (t *memTx) Payments() shared.PaymentRepository         { return paymentRepo{t.s} }
func (t *memTx) Backups() shared.BackupRepository           { return backupRepo{t.s} }
func (t *memTx) Venues() shared.VenueRepository             { return venueRepo{t.s} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type holdRepo struct{ s *Store }

// LockSlot only runs a pending BeforeNextLock hook: the store mutex is already
// held for the transaction. The hook's writes survive a rollback of the
// calling transaction, which must not have written anything yet.
func (r holdRepo) LockSlot(ctx context.Context, _ sqlc.DBTX, _ uuid.UUID, _ slot.Date) error {
	if hook := r.s.onLock; hook != nil {
		r.s.onLock = nil
		hook(ctx, &memTx{s: r.s})
		if r.s.base != nil {
			*r.s.base = r.s.data.clone()
		}
	}
	return nil
}

func (r holdRepo) Create(_ context.Context, _ sqlc.DBTX, h *hold.Hold) error {
	if err := r.s.failure(OpCreateHold); err != nil {
		return err
	}
	for _, other := range r.s.data.holds {
		if other.Slot().CanonicalKey() == h.Slot().CanonicalKey() {
			return infra.WrapRepoErr("temporary_holds_slot_key", nil, infra.KindConflict)
		}
		if other.ReservationCode() == h.ReservationCode() {
			return infra.WrapRepoErr("temporary_holds_code_key", nil, infra.KindDuplicateKey)
		}
	}
	r.s.data.holds[h.ID()] = *h
	return nil
}

func (r holdRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*hold.Hold, error) {
	h, ok := r.s.data.holds[id]
	if !ok {
		return nil, notFound("hold not found")
	}
	return &h, nil
}

func (r holdRepo) ListLive(_ context.Context, _ sqlc.DBTX, resourceID uuid.UUID, date slot.Date, now time.Time) ([]*hold.Hold, error) {
	var out []*hold.Hold
	for _, h := range r.s.data.holds {
		if h.Slot().ResourceID != resourceID || h.Slot().Date != date || h.IsExpired(now) {
			continue
		}
		h := h
		out = append(out, &h)
	}
	return out, nil
}

func (r holdRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (bool, error) {
	if err := r.s.failure(OpDeleteHold); err != nil {
		return false, err
	}
	_, ok := r.s.data.holds[id]
	delete(r.s.data.holds, id)
	return ok, nil
}

func (r holdRepo) DeleteExpired(_ context.Context, _ sqlc.DBTX, scope *shared.SlotScope, now time.Time) ([]slot.Slot, error) {
	var swept []slot.Slot
	for id, h := range r.s.data.holds {
		if scope != nil && (h.Slot().ResourceID != scope.ResourceID || h.Slot().Date != scope.Date) {
			continue
		}
		if h.IsExpired(now) {
			swept = append(swept, h.Slot())
			delete(r.s.data.holds, id)
		}
	}
	return swept, nil
}

type reservationRepo struct{ s *Store }

func (r reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.s.failure(OpCreateReservation); err != nil {
		return err
	}
	if _, ok := r.s.data.reservations[res.Code()]; ok {
		return infra.WrapRepoErr("reservations_code_key", nil, infra.KindDuplicateKey)
	}
	for _, other := range r.s.data.reservations {
		if other.IsActive() && other.Slot().ConflictsWith(res.Slot()) {
			return infra.WrapRepoErr("reservations_no_overlap", nil, infra.KindConflict)
		}
	}
	r.s.data.reservations[res.Code()] = *res
	return nil
}

func (r reservationRepo) FindByCode(_ context.Context, _ sqlc.DBTX, code reservation.Code) (*reservation.Reservation, error) {
	res, ok := r.s.data.reservations[code]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return &res, nil
}

func (r reservationRepo) CodeExists(_ context.Context, _ sqlc.DBTX, code reservation.Code) (bool, error) {
	if _, ok := r.s.data.reservations[code]; ok {
		return true, nil
	}
	for _, h := range r.s.data.holds {
		if h.ReservationCode() == code.String() {
			return true, nil
		}
	}
	return false, nil
}

func (r reservationRepo) ListActive(_ context.Context, _ sqlc.DBTX, resourceID uuid.UUID, date slot.Date) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.s.data.reservations {
		if res.Slot().ResourceID != resourceID || res.Slot().Date != date || !res.IsActive() {
			continue
		}
		res := res
		out = append(out, &res)
	}
	return out, nil
}

func (r reservationRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.s.failure(OpUpdateReservation); err != nil {
		return err
	}
	if _, ok := r.s.data.reservations[res.Code()]; !ok {
		return notFound("reservation not found")
	}
	r.s.data.reservations[res.Code()] = *res
	return nil
}

type paymentRepo struct{ s *Store }

func (r paymentRepo) Create(_ context.Context, _ sqlc.DBTX, t *payment.Transaction) error {
	if err := r.s.failure(OpCreatePayment); err != nil {
		return err
	}
	if _, ok := r.s.data.payments[t.Token()]; ok {
		return infra.WrapRepoErr("payment_transactions_pkey", nil, infra.KindDuplicateKey)
	}
	r.s.data.payments[t.Token()] = *t
	return nil
}

func (r paymentRepo) FindByToken(_ context.Context, _ sqlc.DBTX, token string) (*payment.Transaction, error) {
	t, ok := r.s.data.payments[token]
	if !ok {
		return nil, notFound("payment transaction not found")
	}
	return &t, nil
}

func (r paymentRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, t *payment.Transaction, from payment.Status) error {
	if err := r.s.failure(OpUpdatePayment); err != nil {
		return err
	}
	stored, ok := r.s.data.payments[t.Token()]
	if !ok || stored.Status() != from {
		return infra.WrapRepoErr("payment transaction is no longer "+string(from), nil, infra.KindConflict)
	}
	r.s.data.payments[t.Token()] = *t
	return nil
}

type backupRepo struct{ s *Store }

func (r backupRepo) Create(_ context.Context, _ sqlc.DBTX, b *payment.FailureBackup) error {
	if _, ok := r.s.data.backups[b.HoldID]; ok {
		return infra.WrapRepoErr("payment_failure_backups_hold_id_key", nil, infra.KindDuplicateKey)
	}
	r.s.data.backups[b.HoldID] = *b
	return nil
}

func (r backupRepo) FindByHoldID(_ context.Context, _ sqlc.DBTX, holdID uuid.UUID) (*payment.FailureBackup, error) {
	b, ok := r.s.data.backups[holdID]
	if !ok {
		return nil, notFound("payment backup not found")
	}
	return &b, nil
}

func (r backupRepo) Update(_ context.Context, _ sqlc.DBTX, b *payment.FailureBackup) error {
	if err := r.s.failure(OpUpdateBackup); err != nil {
		return err
	}
	if _, ok := r.s.data.backups[b.HoldID]; !ok {
		return notFound("payment backup not found")
	}
	r.s.data.backups[b.HoldID] = *b
	return nil
}

func (r backupRepo) ListUnresolved(_ context.Context, _ sqlc.DBTX, limit int) ([]*payment.FailureBackup, error) {
	var out []*payment.FailureBackup
	for _, b := range r.s.data.backups {
		if b.IsResolved() {
			continue
		}
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type venueRepo struct{ s *Store }

func (r venueRepo) CourtByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*resource.Court, error) {
	c, ok := r.s.courts[id]
	if !ok {
		return nil, notFound("court not found")
	}
	return c, nil
}

func (r venueRepo) ComplexByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*resource.Complex, error) {
	c, ok := r.s.complexes[id]
	if !ok {
		return nil, notFound("complex not found")
	}
	return c, nil
}
