package components

import (
	"barista-bot/internal/pkg/clock"
	"barista-bot/internal/usecase/commands"
	"barista-bot/internal/usecase/ledger"
	"barista-bot/internal/usecase/queries"
	"barista-bot/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewSessionRegistry,
	fx.Annotate(
		shared.NewPassthroughNarrator,
		fx.As(new(shared.Narrator)),
	),
	ledger.New,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderingQueries,
	),
)
