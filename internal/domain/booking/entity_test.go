//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booth-booking/internal/domain/booking"
	"booth-booking/internal/domain/timeslot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlot(t *testing.T) booking.Slot {
	t.Helper()
	iv, err := timeslot.ParseInterval("18:00", "20:00")
	require.NoError(t, err)
	return booking.Slot{
		BoothID:  uuid.New(),
		Venue:    "soho",
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Interval: iv,
	}
}

func TestNewKaraokeSession(t *testing.T) {
	customer, err := booking.NewCustomer("Ada", "ada@example.com", nil)
	require.NoError(t, err)
	amount, _ := booking.NewMoney(10000)
	chargeID := uuid.New()

	t.Run("confirmed and paid", func(t *testing.T) {
		b, err := booking.NewKaraokeSession(testSlot(t), uuid.New(), chargeID, customer, 4, 3, amount, "ABCD2345")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, booking.CategoryKaraokeSession, b.Category())
		assert.Equal(t, chargeID, b.ChargeID())
		assert.InDelta(t, 2.0, b.DurationHours(), 0.001)
	})

	t.Run("rejects ambiguous reference", func(t *testing.T) {
		_, err := booking.NewKaraokeSession(testSlot(t), uuid.New(), chargeID, customer, 4, 0, amount, "ABCD0O11")
		assert.ErrorIs(t, err, booking.ErrInvalidReference)
	})

	t.Run("rejects missing charge", func(t *testing.T) {
		_, err := booking.NewKaraokeSession(testSlot(t), uuid.New(), uuid.Nil, customer, 4, 0, amount, "ABCD2345")
		assert.ErrorIs(t, err, booking.ErrMissingCharge)
	})

	t.Run("rejects zero guests", func(t *testing.T) {
		_, err := booking.NewKaraokeSession(testSlot(t), uuid.New(), chargeID, customer, 0, 0, amount, "ABCD2345")
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})
}

func TestNewTicketEntry(t *testing.T) {
	customer, _ := booking.NewCustomer("Ada", "ada@example.com", nil)
	amount, _ := booking.NewMoney(3000)

	b, err := booking.NewTicketEntry(testSlot(t), uuid.New(), customer, 3, amount, "WXYZ6789")
	require.NoError(t, err)
	assert.Equal(t, booking.CategoryTicketEntry, b.Category())
	assert.Nil(t, b.BoothID(), "ticket bookings do not occupy the booth")
	assert.Equal(t, int64(3000), b.Amount().Cents())

	_, err = booking.NewTicketEntry(testSlot(t), uuid.New(), customer, 0, amount, "WXYZ6789")
	assert.ErrorIs(t, err, booking.ErrNoTickets)
}

func TestNewCustomer(t *testing.T) {
	phone := "  "
	c, err := booking.NewCustomer(" Ada ", "ada@example.com", &phone)
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.Name())
	assert.Nil(t, c.Phone())

	_, err = booking.NewCustomer("", "ada@example.com", nil)
	assert.ErrorIs(t, err, booking.ErrEmptyCustomerName)

	_, err = booking.NewCustomer("Ada", "not-an-email", nil)
	assert.ErrorIs(t, err, booking.ErrInvalidEmail)
}
