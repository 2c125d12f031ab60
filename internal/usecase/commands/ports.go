package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands.go -package=commandsmock . PaymentGateway,Publisher,GuestTokenIssuer,ReconciliationHook,HoldCommands,CheckoutCommands

import (
	"context"

	"github.com/google/uuid"
)

// ChargeRequest is one charge against the external gateway. At most one charge happens per IdempotencyKey.
type ChargeRequest struct {
	AmountCents      int64
	Currency         string
	PaymentToken     string
	IdempotencyKey   string
	MerchantLocation string
	Metadata         map[string]string
}

type ChargeReceipt struct {
	TransactionID string
}

type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeReceipt, error)
	Refund(ctx context.Context, transactionID, idempotencyKey string) error
}

// Publisher sends an event body to a named queue.
type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// GuestTokenIssuer signs the link that opens a booking's guest list.
type GuestTokenIssuer interface {
	Issue(bookingID uuid.UUID, bookingDate string) (string, error)
}
