package bootstrap

import (
	"context"
	"log/slog"

	"booth-booking/internal/infra/broker"
	"booth-booking/internal/infra/payment"
	"booth-booking/internal/pkg/config"
	"booth-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integrations",
	fx.Provide(
		NewPublisher,
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		func(p broker.Publisher) commands.Publisher { return p },
	),
)

// NewPublisher falls back to logging events when RABBITMQ_URL is empty.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) broker.Publisher {
	if cfg.Broker.URL == "" {
		slog.Info("broker not configured, events are logged only")
		return broker.LogPublisher{}
	}

	p := broker.NewRabbitPublisher(cfg.Broker.URL)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

func NewPaymentGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Payment.StripeSecretKey)
}
