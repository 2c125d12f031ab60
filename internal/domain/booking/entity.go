package booking

import (
	"errors"
	"time"

	"booth-booking/internal/domain/timeslot"

	"github.com/google/uuid"
)

var (
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrInvalidReference  = errors.New("invalid reference code")
	ErrMissingCharge     = errors.New("paid booking requires a charge")
	ErrNoTickets         = errors.New("ticket booking requires at least one ticket")
)

// Slot is the booth, venue and time a booking occupies.
type Slot struct {
	BoothID  uuid.UUID
	Venue    string
	Date     time.Time
	Interval timeslot.Interval
}

type Booking struct {
	id             uuid.UUID
	chargeID       uuid.UUID
	holdID         *uuid.UUID
	category       Category
	venue          string
	boothID        *uuid.UUID
	date           time.Time
	interval       timeslot.Interval
	customer       Customer
	guestCount     int
	ticketQuantity int
	status         Status
	paymentStatus  PaymentStatus
	amount         Money
	referenceCode  string
}

// NewKaraokeSession books the booth for a paid hold. The amount is the booth charge only.
func NewKaraokeSession(
	slot Slot,
	holdID, chargeID uuid.UUID,
	customer Customer,
	guestCount, ticketQuantity int,
	amount Money,
	referenceCode string,
) (*Booking, error) {
	if guestCount < 1 {
		return nil, ErrInvalidGuestCount
	}
	boothID := slot.BoothID
	b := &Booking{
		id:             uuid.New(),
		holdID:         &holdID,
		category:       CategoryKaraokeSession,
		venue:          slot.Venue,
		boothID:        &boothID,
		date:           slot.Date,
		interval:       slot.Interval,
		customer:       customer,
		guestCount:     guestCount,
		ticketQuantity: ticketQuantity,
		amount:         amount,
	}
	if err := b.markPaid(chargeID, referenceCode); err != nil {
		return nil, err
	}
	return b, nil
}

// NewTicketEntry books door tickets funded by the same charge as the session.
func NewTicketEntry(
	slot Slot,
	chargeID uuid.UUID,
	customer Customer,
	ticketQuantity int,
	amount Money,
	referenceCode string,
) (*Booking, error) {
	if ticketQuantity < 1 {
		return nil, ErrNoTickets
	}
	b := &Booking{
		id:             uuid.New(),
		category:       CategoryTicketEntry,
		venue:          slot.Venue,
		date:           slot.Date,
		interval:       slot.Interval,
		customer:       customer,
		guestCount:     ticketQuantity,
		ticketQuantity: ticketQuantity,
		amount:         amount,
	}
	if err := b.markPaid(chargeID, referenceCode); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Booking) markPaid(chargeID uuid.UUID, referenceCode string) error {
	if chargeID == uuid.Nil {
		return ErrMissingCharge
	}
	if !ReferenceCodePattern.MatchString(referenceCode) {
		return ErrInvalidReference
	}
	b.chargeID = chargeID
	b.referenceCode = referenceCode
	b.status = StatusConfirmed
	b.paymentStatus = PaymentPaid
	return nil
}

// Rekey swaps the reference code after a collision.
func (b *Booking) Rekey(referenceCode string) error {
	if !ReferenceCodePattern.MatchString(referenceCode) {
		return ErrInvalidReference
	}
	b.referenceCode = referenceCode
	return nil
}

func (b *Booking) DurationHours() float64 {
	if b.category != CategoryKaraokeSession {
		return 0
	}
	return b.interval.Hours()
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ChargeID() uuid.UUID          { return b.chargeID }
func (b *Booking) HoldID() *uuid.UUID           { return b.holdID }
func (b *Booking) Category() Category           { return b.category }
func (b *Booking) Venue() string                { return b.venue }
func (b *Booking) BoothID() *uuid.UUID          { return b.boothID }
func (b *Booking) Date() time.Time              { return b.date }
func (b *Booking) Interval() timeslot.Interval  { return b.interval }
func (b *Booking) Customer() Customer           { return b.customer }
func (b *Booking) GuestCount() int              { return b.guestCount }
func (b *Booking) TicketQuantity() int          { return b.ticketQuantity }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Amount() Money                { return b.amount }
func (b *Booking) ReferenceCode() string        { return b.referenceCode }
