package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func scanRanges(ctx context.Context, db DBTX, sql string, args ...any) ([]OccupiedRange, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OccupiedRange
	for rows.Next() {
		var r OccupiedRange
		if err := rows.Scan(&r.BoothID, &r.StartMinute, &r.EndMinute); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listBookedRanges = `SELECT booth_id, start_minute, end_minute
FROM bookings
WHERE booth_id = ANY($1::uuid[]) AND booking_date = $2 AND status <> 'cancelled'`

func (q *Queries) ListBookedRanges(ctx context.Context, db DBTX, boothIDs []uuid.UUID, date pgtype.Date) ([]OccupiedRange, error) {
	return scanRanges(ctx, db, listBookedRanges, boothIDs, date)
}

const listHeldRanges = `SELECT booth_id, start_minute, end_minute
FROM holds
WHERE booth_id = ANY($1::uuid[]) AND booking_date = $2 AND status = 'active' AND expires_at > $3`

func (q *Queries) ListHeldRanges(ctx context.Context, db DBTX, boothIDs []uuid.UUID, date pgtype.Date, now time.Time) ([]OccupiedRange, error) {
	return scanRanges(ctx, db, listHeldRanges, boothIDs, date, now)
}

type FindConflictParams struct {
	BoothID     uuid.UUID
	BookingDate pgtype.Date
	StartMinute int32
	EndMinute   int32
	Now         time.Time
}

const findConflict = `SELECT source FROM (
	SELECT 'booking' AS source FROM bookings
	WHERE booth_id = $1 AND booking_date = $2 AND status <> 'cancelled'
		AND start_minute < $4 AND end_minute > $3
	UNION ALL
	SELECT 'hold' AS source FROM holds
	WHERE booth_id = $1 AND booking_date = $2 AND status = 'active' AND expires_at > $5
		AND start_minute < $4 AND end_minute > $3
) c LIMIT 1`

// FindConflict returns "booking" or "hold" for the first overlapping record, pgx.ErrNoRows when clear.
func (q *Queries) FindConflict(ctx context.Context, db DBTX, arg FindConflictParams) (string, error) {
	var source string
	err := db.QueryRow(ctx, findConflict, arg.BoothID, arg.BookingDate, arg.StartMinute, arg.EndMinute, arg.Now).Scan(&source)
	return source, err
}
