package registry

import (
	"database/sql"
	"fmt"

	// sqlite driver for the registry database.
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates a new SQLite registry store instance.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// Open opens a connection to the SQLite database.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// An in-memory database exists per connection; keep the pool at one so
	// every statement sees the same schema.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Init runs pending migrations and, for a freshly created database, seeds
// the built-in default aliases and jargon. A registry that already existed
// is never re-seeded, so deliberately emptied tables stay empty.
func (s *SQLiteStore) Init() error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	fresh, err := s.migrate()
	if err != nil {
		return err
	}
	if fresh {
		if err := s.seedDefaults(); err != nil {
			return fmt.Errorf("failed to seed defaults: %w", err)
		}
	}
	return nil
}

// seedDefaults inserts the built-in alias and jargon rows.
func (s *SQLiteStore) seedDefaults() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for alias, language := range DefaultAliases() {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO aliases (alias, language) VALUES (?, ?)`,
			alias, language,
		); err != nil {
			return fmt.Errorf("failed to seed alias %s: %w", alias, err)
		}
	}

	for identifier, j := range DefaultJargon() {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO jargon (identifier, template, key) VALUES (?, ?, ?)`,
			identifier, j.Template, j.Key,
		); err != nil {
			return fmt.Errorf("failed to seed jargon for %s: %w", identifier, err)
		}
	}

	return tx.Commit()
}
