package readstore

import (
	"context"

	"booth-booking/internal/infra"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/pkg/pgconv"
	"booth-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type GuestReadQueries interface {
	GetBookingByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Booking, error)
	ListGuestsByBooking(ctx context.Context, db pgsql.DBTX, bookingID uuid.UUID) ([]pgsql.Guest, error)
}

type GuestReadStore struct {
	queries GuestReadQueries
	db      pgsql.DBTX
}

func NewGuestReadStore(queries GuestReadQueries, db pgsql.DBTX) *GuestReadStore {
	return &GuestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *GuestReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &readmodel.BookingRM{
		ID:            row.ID,
		Category:      row.Category,
		Venue:         row.Venue,
		BoothID:       pgconv.UUIDPtrFromPgtype(row.BoothID),
		Date:          pgconv.DateFromPgtype(row.BookingDate),
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		GuestCount:    int(row.GuestCount),
		ReferenceCode: row.ReferenceCode,
		Status:        row.Status,
	}, nil
}

func (r *GuestReadStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]readmodel.GuestRM, error) {
	rows, err := r.queries.ListGuestsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}

	result := make([]readmodel.GuestRM, len(rows))
	for i, row := range rows {
		result[i] = readmodel.GuestRM{
			ID:          row.ID,
			Name:        row.Name,
			Email:       pgconv.StringPtrFromPgtype(row.Email),
			IsOrganiser: row.IsOrganiser,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
