package registry

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// migrate runs all pending migrations and reports whether the database was
// freshly created (no migration had ever run).
func (s *SQLiteStore) migrate() (fresh bool, err error) {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite"); err != nil {
		return false, fmt.Errorf("failed to set dialect: %w", err)
	}

	version, err := goose.EnsureDBVersion(s.db)
	if err != nil {
		return false, fmt.Errorf("failed to read migration version: %w", err)
	}

	if err := goose.Up(s.db, "migrations"); err != nil {
		return false, fmt.Errorf("failed to run migrations: %w", err)
	}

	return version == 0, nil
}
