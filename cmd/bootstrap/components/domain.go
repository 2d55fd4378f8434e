package components

import (
	"barista-bot/internal/domain/catalog"
	"barista-bot/internal/domain/order"
	"barista-bot/internal/domain/session"
	"barista-bot/internal/domain/utterance"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		catalog.Default,
		utterance.NewParser,
		fx.Annotate(
			order.NewDefaultPriceCalculator,
			fx.As(new(order.PriceCalculator)),
		),
		session.NewMachine,
	),
)
