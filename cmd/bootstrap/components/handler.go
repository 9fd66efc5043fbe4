package components

import (
	"room-booking/internal/handler"
	"room-booking/internal/handler/api"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPlaceHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(p *api.PlaceHandler, b *api.BookingHandler, auth *middleware.AuthMiddleware) handler.Handlers {
			return handler.Handlers{Place: p, Booking: b, Auth: auth}
		},
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)
