package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const holdColumns = `id, booth_id, venue, booking_date, start_time, end_time, start_minute, end_minute,
	session_id, status, expires_at, contact_email, idempotency_key, created_at`

func scanHold(row interface{ Scan(...any) error }) (Hold, error) {
	var h Hold
	err := row.Scan(
		&h.ID, &h.BoothID, &h.Venue, &h.BookingDate, &h.StartTime, &h.EndTime, &h.StartMinute, &h.EndMinute,
		&h.SessionID, &h.Status, &h.ExpiresAt, &h.ContactEmail, &h.IdempotencyKey, &h.CreatedAt,
	)
	return h, err
}

type CreateHoldParams struct {
	ID             uuid.UUID
	BoothID        uuid.UUID
	Venue          string
	BookingDate    pgtype.Date
	StartTime      string
	EndTime        string
	StartMinute    int32
	EndMinute      int32
	SessionID      string
	ExpiresAt      pgtype.Timestamptz
	ContactEmail   pgtype.Text
	IdempotencyKey pgtype.Text
}

const createHold = `INSERT INTO holds (
	id, booth_id, venue, booking_date, start_time, end_time, start_minute, end_minute,
	session_id, status, expires_at, contact_email, idempotency_key
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'active', $10, $11, $12)`

func (q *Queries) CreateHold(ctx context.Context, db DBTX, arg CreateHoldParams) error {
	_, err := db.Exec(ctx, createHold,
		arg.ID, arg.BoothID, arg.Venue, arg.BookingDate, arg.StartTime, arg.EndTime, arg.StartMinute, arg.EndMinute,
		arg.SessionID, arg.ExpiresAt, arg.ContactEmail, arg.IdempotencyKey,
	)
	return err
}

const getHoldByID = `SELECT ` + holdColumns + ` FROM holds WHERE id = $1`

func (q *Queries) GetHoldByID(ctx context.Context, db DBTX, id uuid.UUID) (Hold, error) {
	return scanHold(db.QueryRow(ctx, getHoldByID, id))
}

const getHoldByIDForUpdate = getHoldByID + ` FOR UPDATE`

func (q *Queries) GetHoldByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Hold, error) {
	return scanHold(db.QueryRow(ctx, getHoldByIDForUpdate, id))
}

const getHoldBySessionKey = `SELECT ` + holdColumns + ` FROM holds WHERE session_id = $1 AND idempotency_key = $2`

func (q *Queries) GetHoldBySessionKey(ctx context.Context, db DBTX, sessionID, key string) (Hold, error) {
	return scanHold(db.QueryRow(ctx, getHoldBySessionKey, sessionID, key))
}

const updateHoldExpiry = `UPDATE holds SET expires_at = $2, updated_at = now() WHERE id = $1 AND status = 'active'`

func (q *Queries) UpdateHoldExpiry(ctx context.Context, db DBTX, id uuid.UUID, expiresAt pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, updateHoldExpiry, id, expiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type UpdateHoldStatusParams struct {
	ID         uuid.UUID
	FromStatus string
	ToStatus   string
	ReleasedBy pgtype.UUID
}

const updateHoldStatus = `UPDATE holds
SET status = $3, released_by = COALESCE($4, released_by), updated_at = now()
WHERE id = $1 AND status = $2`

func (q *Queries) UpdateHoldStatus(ctx context.Context, db DBTX, arg UpdateHoldStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateHoldStatus, arg.ID, arg.FromStatus, arg.ToStatus, arg.ReleasedBy)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Active holds past their expiry still sit inside the exclusion constraint until swept.
const expireLapsedHolds = `UPDATE holds
SET status = 'expired', updated_at = now()
WHERE booth_id = $1 AND booking_date = $2 AND status = 'active' AND expires_at <= $3`

func (q *Queries) ExpireLapsedHolds(ctx context.Context, db DBTX, boothID uuid.UUID, date pgtype.Date, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, expireLapsedHolds, boothID, date, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const lockBoothDate = `SELECT pg_advisory_xact_lock(hashtext($1))`

func (q *Queries) LockBoothDate(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, lockBoothDate, key)
	return err
}
