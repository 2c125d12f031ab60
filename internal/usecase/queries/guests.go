package queries

import (
	"context"

	"booth-booking/internal/infra"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrGuestListToken   = errs.New("guest-list link is invalid or expired")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrGuestListAccess  = errs.New("guest-list link does not match this booking")
	ErrGuestListUnknown = errs.New("guest list could not be read")
)

type GuestList struct {
	Booking readmodel.BookingRM `json:"booking"`
	Guests  []readmodel.GuestRM `json:"guests"`
}

type GuestReader interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]readmodel.GuestRM, error)
}

type GuestTokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

type GuestListQueries interface {
	GuestList(ctx context.Context, bookingID uuid.UUID, token string) (*GuestList, error)
}

type guestListQueriesImpl struct {
	guests   GuestReader
	verifier GuestTokenVerifier
}

func NewGuestListQueries(guests GuestReader, verifier GuestTokenVerifier) GuestListQueries {
	return &guestListQueriesImpl{guests: guests, verifier: verifier}
}

// GuestList opens a booking's guest list for whoever holds its signed link.
func (q *guestListQueriesImpl) GuestList(ctx context.Context, bookingID uuid.UUID, token string) (*GuestList, error) {
	granted, err := q.verifier.Verify(token)
	if err != nil {
		return nil, errs.MarkAll(err, ErrGuestListToken, errs.ErrForbidden)
	}
	if granted != bookingID {
		return nil, errs.MarkAll(nil, ErrGuestListAccess, errs.ErrForbidden)
	}

	b, err := q.guests.BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.MarkAll(err, ErrBookingNotFound, errs.ErrNotFound)
		}
		return nil, errs.MarkAll(err, ErrGuestListUnknown, errs.ErrUpstream)
	}

	guests, err := q.guests.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.MarkAll(err, ErrGuestListUnknown, errs.ErrUpstream)
	}

	return &GuestList{Booking: *b, Guests: guests}, nil
}
