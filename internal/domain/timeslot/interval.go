package timeslot

import (
	"errors"
)

var ErrEmptyInterval = errors.New("interval must have a positive duration")

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// OverlapsClock compares HH:MM strings after normalizing them.
// Malformed input never overlaps.
func OverlapsClock(aStart, aEnd, bStart, bEnd string) bool {
	a, err := ParseInterval(aStart, aEnd)
	if err != nil {
		return false
	}
	b, err := ParseInterval(bStart, bEnd)
	if err != nil {
		return false
	}
	return a.Overlaps(b)
}

// Interval is a half-open range of minutes measured from the booking date's midnight.
// End may exceed MinutesPerDay when the range crosses midnight.
type Interval struct {
	Start int
	End   int
}

// NewInterval treats end <= start as crossing midnight.
func NewInterval(start, end ClockTime) Interval {
	e := end.Minutes()
	if e <= start.Minutes() {
		e += MinutesPerDay
	}
	return Interval{Start: start.Minutes(), End: e}
}

func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e), nil
}

// FromMinutes builds an interval from stored minute offsets.
func FromMinutes(start, end int) (Interval, error) {
	if end <= start {
		return Interval{}, ErrEmptyInterval
	}
	return Interval{Start: start, End: end}, nil
}

func (i Interval) Minutes() int {
	return i.End - i.Start
}

func (i Interval) Hours() float64 {
	return float64(i.Minutes()) / 60
}

func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i.Start, i.End, other.Start, other.End)
}

func (i Interval) Contains(other Interval) bool {
	return other.Start >= i.Start && other.End <= i.End
}

// Shift moves the interval by a whole number of minutes.
func (i Interval) Shift(minutes int) Interval {
	return Interval{Start: i.Start + minutes, End: i.End + minutes}
}

func (i Interval) StartClock() ClockTime {
	return ClockTimeFromMinutes(i.Start)
}

func (i Interval) EndClock() ClockTime {
	return ClockTimeFromMinutes(i.End)
}

// Split cuts the interval into consecutive steps; a trailing partial step is dropped.
func (i Interval) Split(step int) []Interval {
	if step <= 0 {
		return nil
	}
	out := make([]Interval, 0, i.Minutes()/step)
	for s := i.Start; s+step <= i.End; s += step {
		out = append(out, Interval{Start: s, End: s + step})
	}
	return out
}
