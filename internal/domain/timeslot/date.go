package timeslot

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
