package booth

import (
	"booth-booking/internal/domain/timeslot"
)

// OperatingHours is the daily window a booth can be booked in.
// A window whose close is not after its open runs past midnight.
type OperatingHours struct {
	window timeslot.Interval
}

func NewOperatingHours(opensAt, closesAt string) (OperatingHours, error) {
	window, err := timeslot.ParseInterval(opensAt, closesAt)
	if err != nil {
		return OperatingHours{}, err
	}
	return OperatingHours{window: window}, nil
}

func (h OperatingHours) Window() timeslot.Interval {
	return h.window
}

func (h OperatingHours) Overnight() bool {
	return h.window.End > timeslot.MinutesPerDay
}

func (h OperatingHours) OpensAt() string {
	return h.window.StartClock().String()
}

func (h OperatingHours) ClosesAt() string {
	return h.window.EndClock().String()
}

// Anchor places early-morning ranges of an overnight window after midnight,
// so 01:00-02:00 in an 18:00-03:00 window becomes minutes 1500-1560.
func (h OperatingHours) Anchor(iv timeslot.Interval) timeslot.Interval {
	if h.Overnight() && iv.Start < h.window.Start {
		return iv.Shift(timeslot.MinutesPerDay)
	}
	return iv
}

// Slots cuts the window into steps of the given granularity.
func (h OperatingHours) Slots(granularity int) []timeslot.Interval {
	return h.window.Split(granularity)
}
