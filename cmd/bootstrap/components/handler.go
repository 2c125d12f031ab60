package components

import (
	"booth-booking/internal/handler"
	"booth-booking/internal/handler/api"
	"booth-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewHoldHandler,
		api.NewCheckoutHandler,
		api.NewGuestListHandler,
		middleware.NewAuthMiddleware,
		func(
			availability *api.AvailabilityHandler,
			holds *api.HoldHandler,
			checkout *api.CheckoutHandler,
			guests *api.GuestListHandler,
		) handler.Handlers {
			return handler.Handlers{
				Availability: availability,
				Holds:        holds,
				Checkout:     checkout,
				GuestList:    guests,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
