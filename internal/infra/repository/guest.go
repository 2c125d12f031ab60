package repository

import (
	"context"

	"booth-booking/internal/infra"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/pkg/pgconv"
	"booth-booking/internal/pkg/ptr"

	"github.com/google/uuid"
)

type GuestWriteQueries interface {
	CreateGuest(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateGuestParams) (uuid.UUID, error)
}

type GuestRepository struct {
	queries GuestWriteQueries
}

func NewGuestRepository(queries GuestWriteQueries) *GuestRepository {
	return &GuestRepository{queries: queries}
}

func (r *GuestRepository) CreateOrganiser(ctx context.Context, tx pgsql.DBTX, bookingID uuid.UUID, name, email string) (uuid.UUID, error) {
	id, err := r.queries.CreateGuest(ctx, tx, pgsql.CreateGuestParams{
		BookingID:   bookingID,
		Name:        name,
		Email:       pgconv.StringPtrToPgtype(ptr.TrimmedOrNil(&email)),
		IsOrganiser: true,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to add organiser to guest list", err)
	}
	return id, nil
}
