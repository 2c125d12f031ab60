package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

var ErrInvalidClockTime = errors.New("time must be HH:MM")

// ClockTime is a time of day held as minutes since midnight.
type ClockTime struct {
	minutes int
}

// ParseClockTime accepts H:MM, HH:MM and HH:MM:SS. Seconds are dropped.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, ErrInvalidClockTime
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return ClockTime{}, ErrInvalidClockTime
	}
	if len(parts) == 3 && len(parts[2]) != 2 {
		return ClockTime{}, ErrInvalidClockTime
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, ErrInvalidClockTime
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return ClockTime{}, ErrInvalidClockTime
		}
	}

	return ClockTime{minutes: h*60 + m}, nil
}

func MustParseClockTime(s string) ClockTime {
	ct, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return ct
}

// ClockTimeFromMinutes wraps values past midnight back into the day.
func ClockTimeFromMinutes(minutes int) ClockTime {
	m := minutes % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return ClockTime{minutes: m}
}

func (c ClockTime) Minutes() int {
	return c.minutes
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}
