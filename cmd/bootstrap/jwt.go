package bootstrap

import (
	"time"

	"booth-booking/internal/pkg/clock"
	"booth-booking/internal/pkg/config"
	"booth-booking/internal/pkg/guesttoken"
	"booth-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewGuestTokenService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration)
}

func NewGuestTokenService(cfg config.Config, clk clock.Clock) *guesttoken.Service {
	return guesttoken.NewService(cfg.GuestToken.Secret, clk, cfg.Booking.GuestTokenFallbackDays)
}
