package readstore

import (
	"context"

	"booth-booking/internal/domain/hold"
	"booth-booking/internal/infra"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/infra/repository/converter"
	"booth-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HoldReadQueries interface {
	GetHoldByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Hold, error)
}

type HoldReadStore struct {
	queries HoldReadQueries
	db      pgsql.DBTX
}

func NewHoldReadStore(queries HoldReadQueries, db pgsql.DBTX) *HoldReadStore {
	return &HoldReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HoldReadStore) FindByID(ctx context.Context, id uuid.UUID) (*hold.Hold, error) {
	row, err := r.queries.GetHoldByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hold by ID", err)
	}
	h, err := converter.HoldFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored hold is inconsistent", err, infra.KindDBFailure)
	}
	return h, nil
}
