package storage

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"

	"github.com/orevault/orevault/migrations"
)

// NewPool creates a PostgreSQL connection pool and verifies connectivity
func NewPool(ctx context.Context, connString string, maxConns int) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	cfg.MaxConns = int32(maxConns)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreatePoolFailed, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf(ErrMsgPingFailed, err)
	}

	return pool, nil
}

// Migrate applies the embedded goose migrations
func Migrate(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf(ErrMsgMigrateFailed, err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Embedded)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf(ErrMsgMigrateFailed, err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf(ErrMsgMigrateFailed, err)
	}

	return nil
}
