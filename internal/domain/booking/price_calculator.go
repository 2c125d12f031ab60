package booking

import (
	"errors"

	"booth-booking/internal/domain/timeslot"
)

var (
	ErrNonPositiveRate     = errors.New("hourly rate must be positive")
	ErrNegativeTicketCount = errors.New("ticket quantity cannot be negative")
)

type Quote struct {
	Booth   Money
	Tickets Money
	Total   Money
	Minutes int
}

type PriceCalculator interface {
	Quote(hourlyRateCents int64, session timeslot.Interval, ticketQuantity int) (Quote, error)
}

// FlatRateCalculator charges the booth by the minute at its hourly rate plus a flat fee per ticket.
type FlatRateCalculator struct {
	TicketPriceCents int64
}

func NewFlatRateCalculator(ticketPriceCents int64) *FlatRateCalculator {
	return &FlatRateCalculator{TicketPriceCents: ticketPriceCents}
}

func (c *FlatRateCalculator) Quote(hourlyRateCents int64, session timeslot.Interval, ticketQuantity int) (Quote, error) {
	if hourlyRateCents <= 0 {
		return Quote{}, ErrNonPositiveRate
	}
	if ticketQuantity < 0 {
		return Quote{}, ErrNegativeTicketCount
	}

	minutes := session.Minutes()
	// round half up to the nearest minor unit
	boothCents := (hourlyRateCents*int64(minutes) + 30) / 60
	boothCharge, err := NewMoney(boothCents)
	if err != nil {
		return Quote{}, err
	}
	ticketCharge, err := NewMoney(int64(ticketQuantity) * c.TicketPriceCents)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Booth:   boothCharge,
		Tickets: ticketCharge,
		Total:   boothCharge.Add(ticketCharge),
		Minutes: minutes,
	}, nil
}
