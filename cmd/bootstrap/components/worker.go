package components

import (
	"context"
	"log/slog"

	"booth-booking/internal/infra/broker"
	"booth-booking/internal/infra/worker"
	"booth-booking/internal/pkg/clock"
	"booth-booking/internal/pkg/config"
	"booth-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartOutboxRelay),
)

// StartOutboxRelay runs the relay only when a real broker is configured; otherwise jobs stay queued.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, publisher broker.Publisher, clk clock.Clock) {
	if cfg.Broker.URL == "" {
		slog.Info("outbox relay disabled, no broker configured")
		return
	}

	relay := worker.NewOutboxRelay(uow, publisher, clk, worker.RelayConfig{
		Interval:  cfg.Broker.RelayInterval,
		BatchSize: int(cfg.Broker.RelayBatchSize),
	})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return nil
		},
	})
}
