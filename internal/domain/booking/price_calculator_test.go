//go:build unit

package booking_test

import (
	"testing"

	"booth-booking/internal/domain/booking"
	"booth-booking/internal/domain/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatRateCalculator(t *testing.T) {
	calc := booking.NewFlatRateCalculator(1000)

	t.Run("two hour session with three tickets", func(t *testing.T) {
		iv, err := timeslot.ParseInterval("18:00", "20:00")
		require.NoError(t, err)

		q, err := calc.Quote(5000, iv, 3)
		require.NoError(t, err)
		assert.Equal(t, "100.00", q.Booth.String())
		assert.Equal(t, "30.00", q.Tickets.String())
		assert.Equal(t, "130.00", q.Total.String())
		assert.Equal(t, int64(13000), q.Total.Cents())
		assert.Equal(t, 120, q.Minutes)
	})

	t.Run("overnight hour is priced as one hour", func(t *testing.T) {
		iv, err := timeslot.ParseInterval("23:00", "00:00")
		require.NoError(t, err)

		q, err := calc.Quote(5000, iv, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), q.Total.Cents())
		assert.Equal(t, int64(0), q.Tickets.Cents())
	})

	t.Run("partial hours round to the nearest minor unit", func(t *testing.T) {
		iv, err := timeslot.ParseInterval("18:00", "18:50")
		require.NoError(t, err)

		q, err := calc.Quote(1999, iv, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1666), q.Booth.Cents())
	})

	t.Run("rejects missing rate", func(t *testing.T) {
		iv, _ := timeslot.ParseInterval("18:00", "19:00")
		_, err := calc.Quote(0, iv, 1)
		assert.ErrorIs(t, err, booking.ErrNonPositiveRate)
	})

	t.Run("rejects negative tickets", func(t *testing.T) {
		iv, _ := timeslot.ParseInterval("18:00", "19:00")
		_, err := calc.Quote(5000, iv, -1)
		assert.ErrorIs(t, err, booking.ErrNegativeTicketCount)
	})
}
