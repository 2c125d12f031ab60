package pgsql

import (
	"context"

	"github.com/google/uuid"
)

type CreateChargeParams struct {
	ID             uuid.UUID
	HoldID         uuid.UUID
	TransactionID  string
	IdempotencyKey string
	AmountCents    int64
	Currency       string
}

const createCharge = `INSERT INTO charges (id, hold_id, transaction_id, idempotency_key, amount_cents, currency)
VALUES ($1, $2, $3, $4, $5, $6)`

func (q *Queries) CreateCharge(ctx context.Context, db DBTX, arg CreateChargeParams) error {
	_, err := db.Exec(ctx, createCharge, arg.ID, arg.HoldID, arg.TransactionID, arg.IdempotencyKey, arg.AmountCents, arg.Currency)
	return err
}

const getChargeByHoldID = `SELECT id, hold_id, transaction_id, idempotency_key, amount_cents, currency, guest_token, created_at
FROM charges WHERE hold_id = $1`

func (q *Queries) GetChargeByHoldID(ctx context.Context, db DBTX, holdID uuid.UUID) (Charge, error) {
	var c Charge
	err := db.QueryRow(ctx, getChargeByHoldID, holdID).Scan(
		&c.ID, &c.HoldID, &c.TransactionID, &c.IdempotencyKey, &c.AmountCents, &c.Currency, &c.GuestToken, &c.CreatedAt,
	)
	return c, err
}

const setChargeGuestToken = `UPDATE charges SET guest_token = $2 WHERE id = $1`

func (q *Queries) SetChargeGuestToken(ctx context.Context, db DBTX, id uuid.UUID, token string) error {
	_, err := db.Exec(ctx, setChargeGuestToken, id, token)
	return err
}
