package components

import (
	"context"

	"ferias-api/internal/handler"
	"ferias-api/internal/handler/api"
	"ferias-api/internal/handler/middleware"
	"ferias-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewFeriasHandler,
		api.NewExportHandler,
		NewLoginLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewLoginLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.LimiterStore {
	store := middleware.NewLimiterStore(cfg.RateLimit)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			store.StartJanitor(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})

	return store
}
