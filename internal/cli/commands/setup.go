package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quickrun-cli/quickrun/internal/cli/output"
	"github.com/quickrun-cli/quickrun/internal/interp"
	"github.com/quickrun-cli/quickrun/internal/registry"
	"github.com/quickrun-cli/quickrun/internal/tio"
	"github.com/spf13/cobra"
)

// newSession opens the registry, connects the execution client, and loads a
// session. The returned cleanup closes the store.
func newSession(cmd *cobra.Command) (*interp.Session, func(), error) {
	ctx := cmd.Context()
	cfg := ConfigFrom(ctx)
	log := LoggerFrom(ctx)

	// Ensure the registry directory exists.
	dir := filepath.Dir(cfg.Database)
	if cfg.Database != ":memory:" && dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	store := registry.NewSQLiteStore()
	if err := store.Open(cfg.Database); err != nil {
		return nil, nil, err
	}
	if err := store.Init(); err != nil {
		store.Close()
		return nil, nil, err
	}

	client := tio.NewClient(cfg.BackendURL)
	renderer := output.New(cmd.OutOrStdout(), cfg.Color)
	log.Debug("registry opened", "database", cfg.Database, "backend", cfg.BackendURL)

	session, err := interp.NewSession(ctx, store, client, renderer, log, cfg.HistoryLimit)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	return session, func() { _ = store.Close() }, nil
}
