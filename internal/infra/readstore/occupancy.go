package readstore

import (
	"context"
	"time"

	"booth-booking/internal/domain/timeslot"
	"booth-booking/internal/infra"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/pkg/pgconv"
	"booth-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OccupancyReadQueries interface {
	ListBookedRanges(ctx context.Context, db pgsql.DBTX, boothIDs []uuid.UUID, date pgtype.Date) ([]pgsql.OccupiedRange, error)
	ListHeldRanges(ctx context.Context, db pgsql.DBTX, boothIDs []uuid.UUID, date pgtype.Date, now time.Time) ([]pgsql.OccupiedRange, error)
}

type OccupancyReadStore struct {
	queries OccupancyReadQueries
	db      pgsql.DBTX
}

func NewOccupancyReadStore(queries OccupancyReadQueries, db pgsql.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{
		queries: queries,
		db:      db,
	}
}

// BookedRanges lists non-cancelled bookings on the given booths and date.
func (r *OccupancyReadStore) BookedRanges(ctx context.Context, boothIDs []uuid.UUID, date time.Time) ([]readmodel.OccupiedRange, error) {
	rows, err := r.queries.ListBookedRanges(ctx, r.db, boothIDs, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked ranges", err)
	}
	return toRanges(rows)
}

// HeldRanges lists active holds that have not lapsed at now.
func (r *OccupancyReadStore) HeldRanges(ctx context.Context, boothIDs []uuid.UUID, date time.Time, now time.Time) ([]readmodel.OccupiedRange, error) {
	rows, err := r.queries.ListHeldRanges(ctx, r.db, boothIDs, pgconv.DateToPgtype(date), now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list held ranges", err)
	}
	return toRanges(rows)
}

func toRanges(rows []pgsql.OccupiedRange) ([]readmodel.OccupiedRange, error) {
	result := make([]readmodel.OccupiedRange, 0, len(rows))
	for _, row := range rows {
		iv, err := timeslot.FromMinutes(int(row.StartMinute), int(row.EndMinute))
		if err != nil {
			return nil, infra.WrapRepoErr("stored range is empty", err, infra.KindDBFailure)
		}
		result = append(result, readmodel.OccupiedRange{BoothID: row.BoothID, Interval: iv})
	}
	return result, nil
}
