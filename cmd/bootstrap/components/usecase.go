package components

import (
	"booth-booking/internal/domain/booking"
	"booth-booking/internal/domain/hold"
	"booth-booking/internal/pkg/clock"
	"booth-booking/internal/pkg/config"
	"booth-booking/internal/pkg/guesttoken"
	"booth-booking/internal/usecase"
	"booth-booking/internal/usecase/commands"
	"booth-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		func(cfg config.Config) *booking.FlatRateCalculator {
			return booking.NewFlatRateCalculator(cfg.Booking.TicketPriceCents)
		},
		fx.As(new(booking.PriceCalculator)),
	),
	fx.Annotate(
		booking.NewRandomReferenceGenerator,
		fx.As(new(booking.ReferenceGenerator)),
	),
	func(cfg config.Config) hold.TTLPolicy {
		return hold.TTLPolicy{Default: cfg.Booking.HoldTTL(), Max: cfg.Booking.HoldMaxTTL()}
	},
	func(cfg config.Config) commands.CheckoutConfig {
		return commands.CheckoutConfig{
			Currency:              cfg.Booking.Currency,
			MerchantLocation:      cfg.Payment.MerchantLocation,
			PaymentTimeout:        cfg.Payment.Timeout,
			ReferenceCodeAttempts: cfg.Booking.ReferenceCodeAttempts,
		}
	},
	func(s *guesttoken.Service) commands.GuestTokenIssuer { return s },
	func(s *guesttoken.Service) queries.GuestTokenVerifier { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewHoldUseCase,
		commands.NewCheckoutUseCase,
		func(p commands.Publisher, cfg config.Config) commands.ReconciliationHook {
			return commands.NewReconciliationHook(p, cfg.Broker.ReconciliationQueue)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(
			booths queries.BoothReader,
			occupancy queries.OccupancyReader,
			cache queries.AvailabilityCache,
			clk clock.Clock,
			cfg config.Config,
		) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(booths, occupancy, cache, clk, cfg.Booking.DefaultGranularity)
		},
		queries.NewGuestListQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
