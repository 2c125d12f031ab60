package repository

import (
	"context"
	"time"

	"booth-booking/internal/domain/hold"
	"booth-booking/internal/domain/timeslot"
	"booth-booking/internal/infra"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/infra/repository/converter"
	"booth-booking/internal/pkg/pgconv"
	"booth-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HoldWriteQueries interface {
	LockBoothDate(ctx context.Context, db pgsql.DBTX, key string) error
	ExpireLapsedHolds(ctx context.Context, db pgsql.DBTX, boothID uuid.UUID, date pgtype.Date, now time.Time) (int64, error)
	GetHoldBySessionKey(ctx context.Context, db pgsql.DBTX, sessionID, key string) (pgsql.Hold, error)
	FindConflict(ctx context.Context, db pgsql.DBTX, arg pgsql.FindConflictParams) (string, error)
	CreateHold(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateHoldParams) error
	GetHoldByIDForUpdate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Hold, error)
	UpdateHoldExpiry(ctx context.Context, db pgsql.DBTX, id uuid.UUID, expiresAt pgtype.Timestamptz) (int64, error)
	UpdateHoldStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateHoldStatusParams) (int64, error)
}

type HoldRepository struct {
	queries HoldWriteQueries
}

func NewHoldRepository(queries HoldWriteQueries) *HoldRepository {
	return &HoldRepository{queries: queries}
}

func (r *HoldRepository) LockBoothDate(ctx context.Context, tx pgsql.DBTX, boothID uuid.UUID, date time.Time) error {
	key := boothID.String() + "|" + date.Format(timeslot.DateLayout)
	if err := r.queries.LockBoothDate(ctx, tx, key); err != nil {
		return infra.WrapRepoErr("failed to lock booth date", err)
	}
	return nil
}

func (r *HoldRepository) ExpireLapsed(ctx context.Context, tx pgsql.DBTX, boothID uuid.UUID, date time.Time, now time.Time) (int64, error) {
	n, err := r.queries.ExpireLapsedHolds(ctx, tx, boothID, pgconv.DateToPgtype(date), now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire lapsed holds", err)
	}
	return n, nil
}

func (r *HoldRepository) FindBySessionKey(ctx context.Context, tx pgsql.DBTX, sessionID, idempotencyKey string) (*hold.Hold, error) {
	row, err := r.queries.GetHoldBySessionKey(ctx, tx, sessionID, idempotencyKey)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found for idempotency key", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hold by idempotency key", err)
	}
	return toDomainHold(row)
}

func (r *HoldRepository) FindConflict(ctx context.Context, tx pgsql.DBTX, q shared.ConflictQuery) (shared.BlockSource, error) {
	source, err := r.queries.FindConflict(ctx, tx, pgsql.FindConflictParams{
		BoothID:     q.BoothID,
		BookingDate: pgconv.DateToPgtype(q.Date),
		StartMinute: int32(q.Interval.Start),
		EndMinute:   int32(q.Interval.End),
		Now:         q.Now,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return shared.BlockNone, nil
		}
		return shared.BlockNone, infra.WrapRepoErr("failed to check slot conflicts", err)
	}
	return shared.BlockSource(source), nil
}

func (r *HoldRepository) Create(ctx context.Context, tx pgsql.DBTX, h *hold.Hold) error {
	if err := r.queries.CreateHold(ctx, tx, converter.HoldToInfra(h)); err != nil {
		return infra.WrapRepoErr("failed to create hold", err)
	}
	return nil
}

func (r *HoldRepository) GetForUpdate(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) (*hold.Hold, error) {
	row, err := r.queries.GetHoldByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock hold", err)
	}
	return toDomainHold(row)
}

func (r *HoldRepository) UpdateExpiry(ctx context.Context, tx pgsql.DBTX, id uuid.UUID, expiresAt time.Time) error {
	n, err := r.queries.UpdateHoldExpiry(ctx, tx, id, pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		return infra.WrapRepoErr("failed to extend hold", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("active hold not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HoldRepository) UpdateStatus(ctx context.Context, tx pgsql.DBTX, id uuid.UUID, from, to hold.Status, releasedBy *uuid.UUID) (bool, error) {
	n, err := r.queries.UpdateHoldStatus(ctx, tx, pgsql.UpdateHoldStatusParams{
		ID:         id,
		FromStatus: from.String(),
		ToStatus:   to.String(),
		ReleasedBy: pgconv.UUIDPtrToPgtype(releasedBy),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update hold status", err)
	}
	return n > 0, nil
}

func toDomainHold(row pgsql.Hold) (*hold.Hold, error) {
	h, err := converter.HoldFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored hold is inconsistent", err, infra.KindDBFailure)
	}
	return h, nil
}
