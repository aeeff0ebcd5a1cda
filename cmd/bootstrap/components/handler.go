package components

import (
	"parking-system/internal/handler"
	"parking-system/internal/handler/api"
	"parking-system/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewParkingHandler,
		api.NewSpotHandler,
		api.NewTicketHandler,
		api.NewPoolHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	parking *api.ParkingHandler,
	spot *api.SpotHandler,
	ticket *api.TicketHandler,
	pool *api.PoolHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Parking: parking,
		Spot:    spot,
		Ticket:  ticket,
		Pool:    pool,
	}
}
