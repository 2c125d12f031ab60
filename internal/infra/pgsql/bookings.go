package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateBookingParams struct {
	ID             uuid.UUID
	ChargeID       uuid.UUID
	HoldID         pgtype.UUID
	Category       string
	Venue          string
	BoothID        pgtype.UUID
	BookingDate    pgtype.Date
	StartTime      string
	EndTime        string
	StartMinute    int32
	EndMinute      int32
	DurationHours  float64
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  pgtype.Text
	GuestCount     int32
	TicketQuantity int32
	Status         string
	PaymentStatus  string
	AmountCents    int64
	ReferenceCode  string
}

const createBooking = `INSERT INTO bookings (
	id, charge_id, hold_id, category, venue, booth_id, booking_date, start_time, end_time,
	start_minute, end_minute, duration_hours, customer_name, customer_email, customer_phone,
	guest_count, ticket_quantity, status, payment_status, amount_cents, reference_code
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID, arg.ChargeID, arg.HoldID, arg.Category, arg.Venue, arg.BoothID, arg.BookingDate, arg.StartTime, arg.EndTime,
		arg.StartMinute, arg.EndMinute, arg.DurationHours, arg.CustomerName, arg.CustomerEmail, arg.CustomerPhone,
		arg.GuestCount, arg.TicketQuantity, arg.Status, arg.PaymentStatus, arg.AmountCents, arg.ReferenceCode,
	)
	return err
}

const bookingColumns = `id, charge_id, hold_id, category, venue, booth_id, booking_date, start_time, end_time,
	customer_name, customer_email, guest_count, ticket_quantity, status, payment_status, amount_cents,
	reference_code, created_at`

func scanBooking(row interface{ Scan(...any) error }) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.ChargeID, &b.HoldID, &b.Category, &b.Venue, &b.BoothID, &b.BookingDate, &b.StartTime, &b.EndTime,
		&b.CustomerName, &b.CustomerEmail, &b.GuestCount, &b.TicketQuantity, &b.Status, &b.PaymentStatus, &b.AmountCents,
		&b.ReferenceCode, &b.CreatedAt,
	)
	return b, err
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const listBookingsByChargeID = `SELECT ` + bookingColumns + `
FROM bookings WHERE charge_id = $1
ORDER BY CASE category WHEN 'karaoke_session' THEN 0 ELSE 1 END, created_at`

func (q *Queries) ListBookingsByChargeID(ctx context.Context, db DBTX, chargeID uuid.UUID) ([]Booking, error) {
	rows, err := db.Query(ctx, listBookingsByChargeID, chargeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
