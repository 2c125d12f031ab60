package shared

//go:generate mockgen -destination=../../../tests/mock/shared/shared.go -package=sharedmock . UnitOfWork,Tx,CommandReads,HoldRepository,ChargeRepository,BookingRepository,GuestRepository,NotificationRepository

import (
	"context"
	"time"

	"booth-booking/internal/domain/booking"
	"booth-booking/internal/domain/booth"
	"booth-booking/internal/domain/charge"
	"booth-booking/internal/domain/hold"
	"booth-booking/internal/infra/pgsql"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Holds() HoldRepository
	Charges() ChargeRepository
	Bookings() BookingRepository
	Guests() GuestRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() pgsql.DBTX
}

type CommandReads interface {
	BoothByID(ctx context.Context, id uuid.UUID) (*booth.Booth, error)
	HoldByID(ctx context.Context, id uuid.UUID) (*hold.Hold, error)
	CheckoutByHoldID(ctx context.Context, holdID uuid.UUID) (*CheckoutRecord, error)
}

type HoldRepository interface {
	// LockBoothDate serialises hold creation for one booth and date until the transaction ends.
	LockBoothDate(ctx context.Context, tx pgsql.DBTX, boothID uuid.UUID, date time.Time) error
	ExpireLapsed(ctx context.Context, tx pgsql.DBTX, boothID uuid.UUID, date time.Time, now time.Time) (int64, error)
	FindBySessionKey(ctx context.Context, tx pgsql.DBTX, sessionID, idempotencyKey string) (*hold.Hold, error)
	FindConflict(ctx context.Context, tx pgsql.DBTX, q ConflictQuery) (BlockSource, error)
	Create(ctx context.Context, tx pgsql.DBTX, h *hold.Hold) error
	GetForUpdate(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) (*hold.Hold, error)
	UpdateExpiry(ctx context.Context, tx pgsql.DBTX, id uuid.UUID, expiresAt time.Time) error
	// UpdateStatus moves a hold from one status to another and reports whether a row changed.
	UpdateStatus(ctx context.Context, tx pgsql.DBTX, id uuid.UUID, from, to hold.Status, releasedBy *uuid.UUID) (bool, error)
}

type ChargeRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, c *charge.Charge) error
	SetGuestToken(ctx context.Context, tx pgsql.DBTX, chargeID uuid.UUID, token string) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx pgsql.DBTX, b *booking.Booking) error
}

type GuestRepository interface {
	CreateOrganiser(ctx context.Context, tx pgsql.DBTX, bookingID uuid.UUID, name, email string) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgsql.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimQueued(ctx context.Context, tx pgsql.DBTX, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error
	Reschedule(ctx context.Context, tx pgsql.DBTX, id uuid.UUID, cause string, runAt time.Time) error
	MarkFailed(ctx context.Context, tx pgsql.DBTX, id uuid.UUID, cause string) error
}
