package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/hold"
	"court-booking/internal/domain/payment"
	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/resource"
	"court-booking/internal/domain/slot"
	sqlc "court-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Holds() HoldRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Backups() BackupRepository
	Venues() VenueRepository
	DB() sqlc.DBTX
}

type HoldRepository interface {
	// LockSlot serializes writers of one (resource, date) partition until the
	// surrounding transaction ends.
	LockSlot(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID, date slot.Date) error
	Create(ctx context.Context, db sqlc.DBTX, h *hold.Hold) error
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*hold.Hold, error)
	ListLive(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID, date slot.Date, now time.Time) ([]*hold.Hold, error)
	Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	// DeleteExpired removes holds with expires_at <= now. A nil scope sweeps
	// every partition.
	DeleteExpired(ctx context.Context, db sqlc.DBTX, scope *SlotScope, now time.Time) ([]slot.Slot, error)
}

type SlotScope struct {
	ResourceID uuid.UUID
	Date       slot.Date
}

type ReservationRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, r *reservation.Reservation) error
	FindByCode(ctx context.Context, db sqlc.DBTX, code reservation.Code) (*reservation.Reservation, error)
	CodeExists(ctx context.Context, db sqlc.DBTX, code reservation.Code) (bool, error)
	ListActive(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID, date slot.Date) ([]*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, db sqlc.DBTX, r *reservation.Reservation) error
}

type PaymentRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, t *payment.Transaction) error
	FindByToken(ctx context.Context, db sqlc.DBTX, token string) (*payment.Transaction, error)
	// UpdateStatus persists t only if the stored status still equals from.
	UpdateStatus(ctx context.Context, db sqlc.DBTX, t *payment.Transaction, from payment.Status) error
}

type BackupRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, b *payment.FailureBackup) error
	FindByHoldID(ctx context.Context, db sqlc.DBTX, holdID uuid.UUID) (*payment.FailureBackup, error)
	Update(ctx context.Context, db sqlc.DBTX, b *payment.FailureBackup) error
	ListUnresolved(ctx context.Context, db sqlc.DBTX, limit int) ([]*payment.FailureBackup, error)
}

type VenueRepository interface {
	CourtByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*resource.Court, error)
	ComplexByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*resource.Complex, error)
}
