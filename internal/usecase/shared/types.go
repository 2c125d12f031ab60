package shared

import (
	"time"

	"booth-booking/internal/domain/timeslot"

	"github.com/google/uuid"
)

// BlockSource names the kind of record that occupies a range.
type BlockSource string

const (
	BlockNone    BlockSource = ""
	BlockBooking BlockSource = "booking"
	BlockHold    BlockSource = "hold"
)

type ConflictQuery struct {
	BoothID  uuid.UUID
	Date     time.Time
	Interval timeslot.Interval
	Now      time.Time
}

// CheckoutRecord is what a finished checkout stored, enough to answer a replay.
type CheckoutRecord struct {
	ChargeID       uuid.UUID
	TransactionID  string
	AmountCents    int64
	Currency       string
	GuestListToken string
	Session        *BookingSnapshot
	Tickets        *BookingSnapshot
}

type BookingSnapshot struct {
	ID            uuid.UUID
	Category      string
	ReferenceCode string
	AmountCents   int64
	Date          time.Time
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
}
