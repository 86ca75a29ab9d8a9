package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orevault/orevault/internal/config"
	"github.com/orevault/orevault/internal/domain"
	"github.com/orevault/orevault/internal/metrics"
)

// Open selects and initializes the persistence backend per configuration.
// When the database is requested but cannot be reached or migrated, Open
// logs the failure and falls back to the flat-file backend for the
// remainder of the process lifetime. The fallback is one-time and
// one-directional; it is never retried mid-session.
func Open(ctx context.Context, cfg *config.StorageConfig) (Store, Backend, error) {
	if cfg.UseDatabase {
		store, err := openPostgres(ctx, &cfg.Database)
		if err == nil {
			slog.Info(LogMsgDatabaseConnected, "host", cfg.Database.Host, "database", cfg.Database.Name)
			metrics.StorageBackendInfo.WithLabelValues(string(BackendPostgres)).Set(1)
			return store, BackendPostgres, nil
		}
		slog.Warn(LogMsgFallbackToFlatFile, "error", err)
		metrics.StorageFallbacks.Inc()
	}

	store, err := NewFlatFileStore(cfg.DataDir)
	if err != nil {
		return nil, "", err
	}

	slog.Info(LogMsgFlatFileReady, "dir", cfg.DataDir)
	metrics.StorageBackendInfo.WithLabelValues(string(BackendFlatFile)).Set(1)
	return store, BackendFlatFile, nil
}

func openPostgres(ctx context.Context, cfg *config.DatabaseConfig) (Store, error) {
	connString := cfg.ConnString()

	pool, err := NewPool(ctx, connString, cfg.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if err := Migrate(connString); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return NewPostgresStore(pool), nil
}
