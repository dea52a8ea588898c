package components

import (
	"ferias-api/internal/infra/readstore"
	"ferias-api/internal/infra/writerepo"
	"ferias-api/internal/usecase/commands"
	"ferias-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewFeriasReadStore,
			fx.As(new(queries.FeriasReadStore)),
		),
		// The raw repository stays private to this module; only the
		// normalizing decorator is exposed as the write port.
		writerepo.NewFeriasRepository,
		fx.Annotate(
			func(inner *writerepo.FeriasRepository) *writerepo.NormalizingFeriasRepository {
				return writerepo.NewNormalizingFeriasRepository(inner)
			},
			fx.As(new(commands.FeriasRepository)),
		),
	),
)
