package converter

import (
	"booth-booking/internal/domain/booking"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) pgsql.CreateBookingParams {
	iv := b.Interval()
	c := b.Customer()
	return pgsql.CreateBookingParams{
		ID:             b.ID(),
		ChargeID:       b.ChargeID(),
		HoldID:         pgconv.UUIDPtrToPgtype(b.HoldID()),
		Category:       b.Category().String(),
		Venue:          b.Venue(),
		BoothID:        pgconv.UUIDPtrToPgtype(b.BoothID()),
		BookingDate:    pgconv.DateToPgtype(b.Date()),
		StartTime:      iv.StartClock().String(),
		EndTime:        iv.EndClock().String(),
		StartMinute:    int32(iv.Start),
		EndMinute:      int32(iv.End),
		DurationHours:  b.DurationHours(),
		CustomerName:   c.Name(),
		CustomerEmail:  c.Email(),
		CustomerPhone:  pgconv.StringPtrToPgtype(c.Phone()),
		GuestCount:     int32(b.GuestCount()),
		TicketQuantity: int32(b.TicketQuantity()),
		Status:         b.Status().String(),
		PaymentStatus:  b.PaymentStatus().String(),
		AmountCents:    b.Amount().Cents(),
		ReferenceCode:  b.ReferenceCode(),
	}
}
