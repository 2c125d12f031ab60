//go:build unit || e2e

package builder

import (
	"booth-booking/internal/domain/booth"

	"github.com/google/uuid"
)

type BoothBuilder struct {
	ID              uuid.UUID
	Venue           string
	Name            string
	Capacity        int
	HourlyRateCents int64
	OpensAt         string
	ClosesAt        string
	Available       bool
}

func NewBoothBuilder() *BoothBuilder {
	return &BoothBuilder{
		ID:              uuid.New(),
		Venue:           "soho",
		Name:            "Booth 1",
		Capacity:        8,
		HourlyRateCents: 4000,
		OpensAt:         "12:00",
		ClosesAt:        "02:00",
		Available:       true,
	}
}

func (b *BoothBuilder) With(mutate func(*BoothBuilder)) *BoothBuilder {
	mutate(b)
	return b
}

func (b *BoothBuilder) BuildDomain() (*booth.Booth, error) {
	hours, err := booth.NewOperatingHours(b.OpensAt, b.ClosesAt)
	if err != nil {
		return nil, err
	}
	return booth.NewBooth(b.ID, b.Venue, b.Name, b.Capacity, b.HourlyRateCents, hours, b.Available)
}

// MustBuild panics on invalid fixtures; use it only with values known to be valid.
func (b *BoothBuilder) MustBuild() *booth.Booth {
	out, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return out
}
