package bootstrap

import (
	"context"
	"log/slog"

	"barista-bot/internal/infra/db"
	"barista-bot/internal/infra/history"
	"barista-bot/internal/pkg/config"
	"barista-bot/internal/usecase/shared"

	"go.uber.org/fx"
)

var HistoryModule = fx.Module("history",
	fx.Provide(
		NewHistoryStore,
	),
)

// NewHistoryStore picks the backend named by HISTORY_BACKEND and checks it is readable on start.
func NewHistoryStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.HistoryStore, error) {
	var store shared.HistoryStore

	switch cfg.History.Backend {
	case config.HistoryBackendPostgres:
		pool, cleanup, err := db.Connect(context.Background(), cfg.DB, logger)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(context.Background(), pool, logger); err != nil {
			cleanup()
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		store = history.NewPostgresStore(pool, logger)
	default:
		store = history.NewFileStore(cfg.History.FilePath, logger)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			h, err := store.Load(ctx)
			if err != nil {
				return err
			}
			records := 0
			for _, rs := range h {
				records += len(rs)
			}
			logger.Info("order history loaded",
				slog.String("backend", cfg.History.Backend),
				slog.Int("users", len(h)),
				slog.Int("records", records))
			return nil
		},
	})

	return store, nil
}
