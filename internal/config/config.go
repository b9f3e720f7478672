// Package config provides configuration management for the quickrun CLI.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Config holds all CLI configuration options.
type Config struct {
	Database     string `koanf:"database"`
	BackendURL   string `koanf:"backend_url"`
	HistoryLimit int    `koanf:"history_limit"`
	Verbose      bool   `koanf:"verbose"`
	Color        string `koanf:"color"`
}

// Default configuration values.
const (
	DefaultHistoryLimit = 15
	DefaultColor        = "auto" // auto | always | never
)

// DefaultDatabasePath returns the per-user registry database location under
// the XDG data directory.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, "quickrun", "quickrun.db")
}

// HistoryFilePath returns the readline history file location, kept next to
// the registry database.
func HistoryFilePath(databasePath string) string {
	return filepath.Join(filepath.Dir(databasePath), "shell_history")
}
