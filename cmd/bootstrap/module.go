package bootstrap

import (
	"barista-bot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	HistoryModule,
	components.DomainModule,
	components.UseCaseModule,
	components.HandlerModule,
)
