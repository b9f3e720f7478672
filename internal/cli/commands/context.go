// Package commands implements the quickrun subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/quickrun-cli/quickrun/internal/config"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// WithConfig stores the config in ctx.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom retrieves the config from ctx, falling back to defaults.
func ConfigFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{
		Database:     config.DefaultDatabasePath(),
		BackendURL:   config.DefaultBackendURL,
		HistoryLimit: config.DefaultHistoryLimit,
		Color:        config.DefaultColor,
	}
}

// WithLogger stores the logger in ctx.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// LoggerFrom retrieves the logger from ctx.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	// Discard logger as safe fallback.
	return slog.New(slog.DiscardHandler)
}
