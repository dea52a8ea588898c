package components

import (
	"ferias-api/internal/pkg/clock"
	"ferias-api/internal/usecase/commands"
	"ferias-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewAuthCommands,
		commands.NewFeriasCommands,
		queries.NewFeriasQueries,
	),
)
