package booth

import (
	"errors"
	"strings"

	"booth-booking/internal/domain/timeslot"

	"github.com/google/uuid"
)

var (
	ErrEmptyVenue          = errors.New("venue cannot be empty")
	ErrInvalidCapacity     = errors.New("capacity must be positive")
	ErrNegativeRate        = errors.New("hourly rate cannot be negative")
	ErrRateNotConfigured   = errors.New("booth has no hourly rate")
	ErrBoothUnavailable    = errors.New("booth is not available")
	ErrOutsideOperatingHrs = errors.New("requested time is outside operating hours")
)

type Booth struct {
	id              uuid.UUID
	venue           string
	name            string
	capacity        int
	hourlyRateCents int64
	hours           OperatingHours
	available       bool
}

func NewBooth(
	id uuid.UUID,
	venue, name string,
	capacity int,
	hourlyRateCents int64,
	hours OperatingHours,
	available bool,
) (*Booth, error) {
	venue = strings.TrimSpace(venue)
	if venue == "" {
		return nil, ErrEmptyVenue
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}

	return &Booth{
		id:              id,
		venue:           venue,
		name:            strings.TrimSpace(name),
		capacity:        capacity,
		hourlyRateCents: hourlyRateCents,
		hours:           hours,
		available:       available,
	}, nil
}

// Placement anchors a requested range inside the operating window and checks the booth can take it.
func (b *Booth) Placement(start, end timeslot.ClockTime) (timeslot.Interval, error) {
	if !b.available {
		return timeslot.Interval{}, ErrBoothUnavailable
	}
	iv := b.hours.Anchor(timeslot.NewInterval(start, end))
	if !b.hours.Window().Contains(iv) {
		return timeslot.Interval{}, ErrOutsideOperatingHrs
	}
	return iv, nil
}

// RequireRate fails when the booth cannot be priced.
func (b *Booth) RequireRate() error {
	if b.hourlyRateCents <= 0 {
		return ErrRateNotConfigured
	}
	return nil
}

func (b *Booth) ID() uuid.UUID                  { return b.id }
func (b *Booth) Venue() string                  { return b.venue }
func (b *Booth) Name() string                   { return b.name }
func (b *Booth) Capacity() int                  { return b.capacity }
func (b *Booth) HourlyRateCents() int64         { return b.hourlyRateCents }
func (b *Booth) OperatingHours() OperatingHours { return b.hours }
func (b *Booth) IsAvailable() bool              { return b.available }
