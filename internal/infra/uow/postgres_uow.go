package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"booth-booking/internal/domain/booth"
	"booth-booking/internal/domain/hold"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/infra/readstore"
	"booth-booking/internal/infra/repository"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgsql.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgsql.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Overlap safety comes from the advisory lock and the exclusion constraints, not the isolation level
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgsql.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	holdRepo         shared.HoldRepository
	chargeRepo       shared.ChargeRepository
	bookingRepo      shared.BookingRepository
	guestRepo        shared.GuestRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() pgsql.DBTX {
	return t.dbtx
}

func (t *pgTx) Holds() shared.HoldRepository {
	if t.holdRepo == nil {
		t.holdRepo = repository.NewHoldRepository(t.uow.q)
	}
	return t.holdRepo
}

func (t *pgTx) Charges() shared.ChargeRepository {
	if t.chargeRepo == nil {
		t.chargeRepo = repository.NewChargeRepository(t.uow.q)
	}
	return t.chargeRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Guests() shared.GuestRepository {
	if t.guestRepo == nil {
		t.guestRepo = repository.NewGuestRepository(t.uow.q)
	}
	return t.guestRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx pgsql.DBTX

	// Lazy-initialized readstores
	boothStore    *readstore.BoothReadStore
	holdStore     *readstore.HoldReadStore
	checkoutStore *readstore.CheckoutReadStore
}

func (r *commandReads) BoothByID(ctx context.Context, id uuid.UUID) (*booth.Booth, error) {
	if r.boothStore == nil {
		r.boothStore = readstore.NewBoothReadStore(r.uow.q, r.dbtx)
	}
	return r.boothStore.FindByID(ctx, id)
}

func (r *commandReads) HoldByID(ctx context.Context, id uuid.UUID) (*hold.Hold, error) {
	if r.holdStore == nil {
		r.holdStore = readstore.NewHoldReadStore(r.uow.q, r.dbtx)
	}
	return r.holdStore.FindByID(ctx, id)
}

func (r *commandReads) CheckoutByHoldID(ctx context.Context, holdID uuid.UUID) (*shared.CheckoutRecord, error) {
	if r.checkoutStore == nil {
		r.checkoutStore = readstore.NewCheckoutReadStore(r.uow.q, r.dbtx)
	}
	return r.checkoutStore.FindByHoldID(ctx, holdID)
}
