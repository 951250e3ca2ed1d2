// Package postgres implements the request repository against
// PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/example/requesthub/internal/config"
)

// Connect opens a pgx pool against the configured database and
// verifies it with a ping. The caller owns the pool and must close it
// on every exit path.
func Connect(ctx context.Context, db config.Database, log *zap.SugaredLogger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(db.DSN())
	if err != nil {
		return nil, &StorageError{Op: "parse pool config", Err: err}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, &StorageError{Op: "open pool", Err: err}
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &StorageError{Op: "ping", Err: err}
	}

	log.Debugw("connected to postgres", "host", db.Host, "database", db.Name)
	return pool, nil
}

// StorageError wraps any connectivity, constraint, or query failure
// surfaced by the storage engine.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
