// Package cli defines the requesthub command surface.
package cli

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/requesthub/internal/adapters/postgres"
	"github.com/example/requesthub/internal/app"
	"github.com/example/requesthub/internal/config"
)

// withService runs one operation end to end: resolve config, open a
// pool, execute, and release the connection on every exit path. Each
// invocation is a single connect/query/disconnect cycle.
func withService(fn func(ctx context.Context, svc *app.RequestService) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := postgres.NewRequestRepository(pool, log)
	return fn(ctx, app.NewRequestService(repo, log))
}

// newLogger builds a stderr logger so stdout stays reserved for
// tables and CSV paths.
func newLogger(level string) (*zap.SugaredLogger, error) {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
