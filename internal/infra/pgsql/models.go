package pgsql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Booth struct {
	ID              uuid.UUID
	Venue           string
	Name            string
	Capacity        int32
	HourlyRateCents int64
	OpensAt         string
	ClosesAt        string
	IsAvailable     bool
}

type Hold struct {
	ID             uuid.UUID
	BoothID        uuid.UUID
	Venue          string
	BookingDate    pgtype.Date
	StartTime      string
	EndTime        string
	StartMinute    int32
	EndMinute      int32
	SessionID      string
	Status         string
	ExpiresAt      pgtype.Timestamptz
	ContactEmail   pgtype.Text
	IdempotencyKey pgtype.Text
	CreatedAt      pgtype.Timestamptz
}

type OccupiedRange struct {
	BoothID     uuid.UUID
	StartMinute int32
	EndMinute   int32
}

type Charge struct {
	ID             uuid.UUID
	HoldID         uuid.UUID
	TransactionID  string
	IdempotencyKey string
	AmountCents    int64
	Currency       string
	GuestToken     string
	CreatedAt      pgtype.Timestamptz
}

type Booking struct {
	ID             uuid.UUID
	ChargeID       pgtype.UUID
	HoldID         pgtype.UUID
	Category       string
	Venue          string
	BoothID        pgtype.UUID
	BookingDate    pgtype.Date
	StartTime      string
	EndTime        string
	CustomerName   string
	CustomerEmail  string
	GuestCount     int32
	TicketQuantity int32
	Status         string
	PaymentStatus  string
	AmountCents    int64
	ReferenceCode  string
	CreatedAt      pgtype.Timestamptz
}

type Guest struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	Name        string
	Email       pgtype.Text
	IsOrganiser bool
	CreatedAt   pgtype.Timestamptz
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}
