package repository

import (
	"context"

	"booth-booking/internal/domain/charge"
	"booth-booking/internal/infra"
	"booth-booking/internal/infra/pgsql"

	"github.com/google/uuid"
)

type ChargeWriteQueries interface {
	CreateCharge(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateChargeParams) error
	SetChargeGuestToken(ctx context.Context, db pgsql.DBTX, id uuid.UUID, token string) error
}

type ChargeRepository struct {
	queries ChargeWriteQueries
}

func NewChargeRepository(queries ChargeWriteQueries) *ChargeRepository {
	return &ChargeRepository{queries: queries}
}

func (r *ChargeRepository) Create(ctx context.Context, tx pgsql.DBTX, c *charge.Charge) error {
	err := r.queries.CreateCharge(ctx, tx, pgsql.CreateChargeParams{
		ID:             c.ID(),
		HoldID:         c.HoldID(),
		TransactionID:  c.TransactionID(),
		IdempotencyKey: c.IdempotencyKey(),
		AmountCents:    c.Amount().Cents(),
		Currency:       c.Currency(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record charge", err)
	}
	return nil
}

func (r *ChargeRepository) SetGuestToken(ctx context.Context, tx pgsql.DBTX, chargeID uuid.UUID, token string) error {
	if err := r.queries.SetChargeGuestToken(ctx, tx, chargeID, token); err != nil {
		return infra.WrapRepoErr("failed to store guest-list token", err)
	}
	return nil
}
