package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"booth-booking/internal/infra/metrics"

	"github.com/google/uuid"
)

// PaidUnbooked describes a charge that was taken but whose bookings were never stored.
type PaidUnbooked struct {
	HoldID         uuid.UUID `json:"hold_id"`
	TransactionID  string    `json:"transaction_id"`
	IdempotencyKey string    `json:"idempotency_key"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	CustomerEmail  string    `json:"customer_email"`
	Refunded       bool      `json:"refunded"`
	Cause          string    `json:"cause"`
	RefundError    string    `json:"refund_error,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type ReconciliationHook interface {
	PaidUnbooked(ctx context.Context, ev PaidUnbooked)
}

type alertingReconciliation struct {
	publisher Publisher
	queue     string
}

// NewReconciliationHook logs, counts and publishes every paid-unbooked event to queue.
func NewReconciliationHook(publisher Publisher, queue string) ReconciliationHook {
	return &alertingReconciliation{publisher: publisher, queue: queue}
}

func (r *alertingReconciliation) PaidUnbooked(ctx context.Context, ev PaidUnbooked) {
	metrics.PaidUnbooked.Inc()
	slog.Error("paid_unbooked",
		"hold_id", ev.HoldID.String(),
		"transaction_id", ev.TransactionID,
		"amount_cents", ev.AmountCents,
		"currency", ev.Currency,
		"refunded", ev.Refunded,
		"cause", ev.Cause,
		"refund_error", ev.RefundError)

	body, err := json.Marshal(ev)
	if err != nil {
		slog.Error("failed to encode reconciliation event", "error", err.Error())
		return
	}
	if err := r.publisher.Publish(ctx, r.queue, body); err != nil {
		slog.Error("failed to publish reconciliation event",
			"hold_id", ev.HoldID.String(),
			"queue", r.queue,
			"error", err.Error())
	}
}
