// Package payment adapts the Stripe API to the checkout's payment gateway port.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/client"
)

var (
	ErrChargeDeclined   = errs.New("charge declined")
	ErrChargeIncomplete = errs.New("charge not completed")
)

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{api: sc}
}

// Charge creates and confirms a PaymentIntent. Stripe replays the first result for a repeated idempotency key.
func (g *StripeGateway) Charge(ctx context.Context, req commands.ChargeRequest) (*commands.ChargeReceipt, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountCents),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentToken),
		Confirm:       stripe.Bool(true),
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)
	params.AddMetadata("location_id", req.MerchantLocation)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return nil, errs.Mark(errs.Wrap(err, string(stripeErr.Code)), ErrChargeDeclined)
		}
		return nil, errs.Wrap(err, "stripe payment intent")
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		slog.Warn("payment intent not completed", "payment_intent", pi.ID, "status", string(pi.Status))
		return nil, errs.Mark(errs.New(fmt.Sprintf("payment intent %s is %s", pi.ID, pi.Status)), ErrChargeIncomplete)
	}

	return &commands.ChargeReceipt{TransactionID: pi.ID}, nil
}

func (g *StripeGateway) Refund(ctx context.Context, transactionID, idempotencyKey string) error {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(transactionID),
	}
	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)

	if _, err := g.api.Refunds.New(params); err != nil {
		return errs.Wrap(err, "stripe refund")
	}
	return nil
}
