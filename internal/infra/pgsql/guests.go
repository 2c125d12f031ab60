package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateGuestParams struct {
	BookingID   uuid.UUID
	Name        string
	Email       pgtype.Text
	IsOrganiser bool
}

const createGuest = `INSERT INTO guests (booking_id, name, email, is_organiser) VALUES ($1, $2, $3, $4) RETURNING id`

func (q *Queries) CreateGuest(ctx context.Context, db DBTX, arg CreateGuestParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createGuest, arg.BookingID, arg.Name, arg.Email, arg.IsOrganiser).Scan(&id)
	return id, err
}

const listGuestsByBooking = `SELECT id, booking_id, name, email, is_organiser, created_at
FROM guests WHERE booking_id = $1
ORDER BY is_organiser DESC, created_at`

func (q *Queries) ListGuestsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]Guest, error) {
	rows, err := db.Query(ctx, listGuestsByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Guest
	for rows.Next() {
		var g Guest
		if err := rows.Scan(&g.ID, &g.BookingID, &g.Name, &g.Email, &g.IsOrganiser, &g.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}
