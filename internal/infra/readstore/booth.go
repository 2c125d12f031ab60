package readstore

import (
	"context"

	"booth-booking/internal/domain/booth"
	"booth-booking/internal/infra"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BoothReadQueries interface {
	GetBoothByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Booth, error)
	ListAvailableBoothsByVenue(ctx context.Context, db pgsql.DBTX, venue string, minCapacity int32) ([]pgsql.Booth, error)
}

type BoothReadStore struct {
	queries BoothReadQueries
	db      pgsql.DBTX
}

func NewBoothReadStore(queries BoothReadQueries, db pgsql.DBTX) *BoothReadStore {
	return &BoothReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BoothReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booth.Booth, error) {
	row, err := r.queries.GetBoothByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booth not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booth by ID", err)
	}
	return toDomainBooth(row)
}

// ListByVenue returns the venue's enabled booths seating at least minCapacity.
func (r *BoothReadStore) ListByVenue(ctx context.Context, venue string, minCapacity int) ([]*booth.Booth, error) {
	rows, err := r.queries.ListAvailableBoothsByVenue(ctx, r.db, venue, int32(minCapacity))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venue booths", err)
	}

	result := make([]*booth.Booth, 0, len(rows))
	for _, row := range rows {
		b, err := toDomainBooth(row)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}

func toDomainBooth(row pgsql.Booth) (*booth.Booth, error) {
	hours, err := booth.NewOperatingHours(row.OpensAt, row.ClosesAt)
	if err != nil {
		return nil, infra.WrapRepoErr("stored operating hours are malformed", err, infra.KindDBFailure)
	}
	b, err := booth.NewBooth(row.ID, row.Venue, row.Name, int(row.Capacity), row.HourlyRateCents, hours, row.IsAvailable)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booth is inconsistent", err, infra.KindDBFailure)
	}
	return b, nil
}
