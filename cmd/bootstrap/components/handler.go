package components

import (
	"foodshare-api/internal/handler"
	"foodshare-api/internal/handler/api"
	"foodshare-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDonationHandler,
		api.NewMatchHandler,
		api.NewRequestHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	donation *api.DonationHandler,
	match *api.MatchHandler,
	request *api.RequestHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Donation: donation,
		Match:    match,
		Request:  request,
	}
}
