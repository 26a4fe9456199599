package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PoolOptions ajusta el pool; ceros => defaults.
type PoolOptions struct {
	MaxOpen     int
	MaxIdle     int
	PingTimeout time.Duration
}

// Open abre un pool pgx (database/sql) sobre la DB del backend de ganado.
// Solo se usa para lecturas del hato, así que el pool es chico.
func Open(ctx context.Context, dsn string, opts PoolOptions) (*sql.DB, error) {
	if opts.MaxOpen <= 0 {
		opts.MaxOpen = 4
	}
	if opts.MaxIdle <= 0 {
		opts.MaxIdle = 2
	}
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = 3 * time.Second
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(opts.MaxOpen)
	db.SetMaxIdleConns(opts.MaxIdle)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, opts.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
