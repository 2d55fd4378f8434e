package components

import (
	"barista-bot/internal/handler"
	"barista-bot/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderingHandler,
		api.NewMenuHandler,
	),
	fx.Invoke(handler.NewRouter),
)
