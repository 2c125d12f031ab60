//go:build unit

package timeslot_test

import (
	"testing"

	"booth-booking/internal/domain/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "9:05", want: "09:05"},
		{in: "09:05", want: "09:05"},
		{in: "18:00:00", want: "18:00"},
		{in: " 23:59 ", want: "23:59"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1200", wantErr: true},
		{in: "12:0", wantErr: true},
		{in: "12:00:0", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := timeslot.ParseClockTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, timeslot.ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		a, b       [2]string
		overlapped bool
	}{
		{name: "partial overlap", a: [2]string{"18:00", "20:00"}, b: [2]string{"19:00", "21:00"}, overlapped: true},
		{name: "contained", a: [2]string{"18:00", "22:00"}, b: [2]string{"19:00", "20:00"}, overlapped: true},
		{name: "identical", a: [2]string{"18:00", "20:00"}, b: [2]string{"18:00", "20:00"}, overlapped: true},
		{name: "touching end to start", a: [2]string{"18:00", "20:00"}, b: [2]string{"20:00", "21:00"}, overlapped: false},
		{name: "touching start to end", a: [2]string{"20:00", "21:00"}, b: [2]string{"18:00", "20:00"}, overlapped: false},
		{name: "disjoint", a: [2]string{"10:00", "11:00"}, b: [2]string{"14:00", "15:00"}, overlapped: false},
		{name: "mixed precision", a: [2]string{"9:00", "10:00:00"}, b: [2]string{"09:30", "11:00"}, overlapped: true},
		{name: "across midnight", a: [2]string{"23:00", "01:00"}, b: [2]string{"23:30", "00:30"}, overlapped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlapped, timeslot.OverlapsClock(tt.a[0], tt.a[1], tt.b[0], tt.b[1]))
			assert.Equal(t, tt.overlapped, timeslot.OverlapsClock(tt.b[0], tt.b[1], tt.a[0], tt.a[1]))
		})
	}

	t.Run("malformed input never overlaps", func(t *testing.T) {
		assert.False(t, timeslot.OverlapsClock("bad", "20:00", "18:00", "20:00"))
	})
}

func TestIntervalDuration(t *testing.T) {
	tests := []struct {
		start, end string
		minutes    int
	}{
		{start: "23:00", end: "00:00", minutes: 60},
		{start: "10:00", end: "12:00", minutes: 120},
		{start: "10:00", end: "13:00", minutes: 180},
		{start: "22:30", end: "00:15", minutes: 105},
		{start: "10:00", end: "10:00", minutes: 1440},
	}

	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			iv, err := timeslot.ParseInterval(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, iv.Minutes())
			assert.Equal(t, tt.start, iv.StartClock().String())
			assert.Equal(t, tt.end, iv.EndClock().String())
		})
	}
}

func TestIntervalSplit(t *testing.T) {
	iv, err := timeslot.ParseInterval("18:00", "20:30")
	require.NoError(t, err)

	slots := iv.Split(60)
	require.Len(t, slots, 2)
	assert.Equal(t, "18:00", slots[0].StartClock().String())
	assert.Equal(t, "20:00", slots[1].EndClock().String())

	assert.Len(t, iv.Split(15), 10)
	assert.Nil(t, iv.Split(0))
}
