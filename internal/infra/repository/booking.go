package repository

import (
	"context"

	"booth-booking/internal/domain/booking"
	"booth-booking/internal/infra"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/infra/repository/converter"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateBookingParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// Create inserts a booking. A reference-code collision surfaces as DUPLICATE_KEY on bookings_reference_code_key.
func (r *BookingRepository) Create(ctx context.Context, tx pgsql.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}
