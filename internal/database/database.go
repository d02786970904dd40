package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// connectTimeout bounds both the dial and the verification ping.
const connectTimeout = 30 * time.Second

// DB owns the shared connection pool. It is created once at startup, injected
// into the repository, and closed during shutdown; there is no package-level
// pool state.
type DB struct {
	Pool *pgxpool.Pool
}

// New opens a bounded connection pool against the given URL and verifies
// connectivity with a ping before returning. Callers must abort startup on
// error.
func New(ctx context.Context, url string, maxConns int32) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.WithField("max_conns", maxConns).Info("database connection pool established")
	return &DB{Pool: pool}, nil
}

// Close drains and closes the pool. Safe to call more than once; shutdown
// must not fail.
func (db *DB) Close() {
	if db.Pool == nil {
		return
	}
	db.Pool.Close()
	db.Pool = nil
	log.Info("database connection pool closed")
}
