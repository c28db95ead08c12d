package providers

import (
	"context"
	"fmt"
	"telemetryd/internal/services"
	"telemetryd/internal/structures"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPingTimeout = 5 * time.Second

// NewStorageProvider opens the shared Postgres pool. Handlers never
// open their own connections; they all go through this pool, which is
// closed once on shutdown.
func NewStorageProvider(conf *structures.Config, logger Logger) (services.DBPool, error) {
	cfg, err := pgxpool.ParseConfig(conf.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}
	if conf.Database.MaxConns > 0 {
		cfg.MaxConns = conf.Database.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	timeout := conf.Database.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	logger.Infof(TypeApp, "Connected to Postgres, maxConns=%d", cfg.MaxConns)
	return pool, nil
}
