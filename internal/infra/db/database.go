package db

import (
	"context"
	"log/slog"
	"time"

	"barista-bot/internal/pkg/config"
	"barista-bot/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 5
	pingTimeout     = 5 * time.Second
)

func Connect(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*pgxpool.Pool, func(), error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database config")
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	var pool *pgxpool.Pool
	for i := 0; i < connectAttempts; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				break
			}
			pool.Close()
		}

		if i < connectAttempts-1 {
			wait := time.Duration(i+1) * 2 * time.Second
			logger.Warn("database connection failed, retrying",
				slog.Int("attempt", i+1),
				slog.Duration("wait", wait),
				slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			case <-time.After(wait):
			}
		}
	}
	if err != nil {
		return nil, nil, errs.Wrapf(err, "failed to connect to database after %d attempts", connectAttempts)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}
