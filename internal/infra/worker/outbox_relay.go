// Package worker runs background jobs alongside the API.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booth-booking/internal/infra/broker"
	"booth-booking/internal/infra/metrics"
	"booth-booking/internal/pkg/clock"
	"booth-booking/internal/usecase/shared"
)

const maxDeliveryAttempts = 5

type RelayConfig struct {
	Interval  time.Duration
	BatchSize int
}

// OutboxRelay moves queued notification jobs to the broker. Several relays may run at once;
// each claims rows with SKIP LOCKED so a job is handed to one of them.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher broker.Publisher
	clock     clock.Clock
	cfg       RelayConfig

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher broker.Publisher, clk clock.Clock, cfg RelayConfig) *OutboxRelay {
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		stop:      make(chan struct{}),
	}
}

func (r *OutboxRelay) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Interval*5)
				if _, err := r.RunOnce(ctx); err != nil {
					slog.Error("outbox relay pass failed", "error", err.Error())
				}
				cancel()
			}
		}
	}()
	slog.Info("outbox relay started", "interval", r.cfg.Interval.String(), "batch_size", r.cfg.BatchSize)
}

func (r *OutboxRelay) Stop() {
	close(r.stop)
	r.wg.Wait()
	slog.Info("outbox relay stopped")
}

// RunOnce relays one batch and reports how many jobs were published.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		jobs, err := tx.Notifications().ClaimQueued(ctx, tx.DB(), r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if perr := r.publisher.Publish(ctx, job.Topic, job.Payload); perr != nil {
				if err := r.recordFailure(ctx, tx, job, perr); err != nil {
					return err
				}
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
			metrics.OutboxPublished.WithLabelValues("sent").Inc()
			published++
		}
		return nil
	})
	return published, err
}

func (r *OutboxRelay) recordFailure(ctx context.Context, tx shared.Tx, job shared.NotificationJob, cause error) error {
	attempt := job.Attempts + 1
	slog.Warn("outbox publish failed",
		"job_id", job.ID.String(),
		"kind", job.Kind,
		"attempt", attempt,
		"error", cause.Error())

	if attempt >= maxDeliveryAttempts {
		metrics.OutboxPublished.WithLabelValues("failed").Inc()
		return tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, cause.Error())
	}

	metrics.OutboxPublished.WithLabelValues("retry").Inc()
	retryAt := r.clock.Now().Add(time.Duration(attempt*attempt) * r.cfg.Interval)
	return tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, cause.Error(), retryAt)
}
