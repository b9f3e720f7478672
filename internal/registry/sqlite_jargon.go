package registry

import (
	"database/sql"
	"errors"
	"fmt"
)

// LoadJargon returns the template and key for an identifier. Both strings
// are empty when the identifier has no jargon; that is not an error.
func (s *SQLiteStore) LoadJargon(identifier string) (template, key string, err error) {
	if s.db == nil {
		return "", "", fmt.Errorf("database not opened")
	}

	err = s.db.QueryRow(
		`SELECT template, key FROM jargon WHERE identifier = ?`,
		identifier,
	).Scan(&template, &key)

	if errors.Is(err, sql.ErrNoRows) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to load jargon: %w", err)
	}
	return template, key, nil
}

// HasJargon reports whether an identifier has jargon.
func (s *SQLiteStore) HasJargon(identifier string) (bool, error) {
	template, _, err := s.LoadJargon(identifier)
	if err != nil {
		return false, err
	}
	return template != "", nil
}

// CreateJargon stores the jargon for an alias or language. Template and key
// validation happens upstream, before anything is persisted.
func (s *SQLiteStore) CreateJargon(identifier, template, key string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	if _, err := s.db.Exec(
		`INSERT INTO jargon (identifier, template, key) VALUES (?, ?, ?)`,
		identifier, template, key,
	); err != nil {
		return fmt.Errorf("failed to create jargon: %w", err)
	}
	return nil
}

// DeleteJargon removes the jargon for an alias or language.
func (s *SQLiteStore) DeleteJargon(identifier string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	if _, err := s.db.Exec(
		`DELETE FROM jargon WHERE identifier = ?`,
		identifier,
	); err != nil {
		return fmt.Errorf("failed to delete jargon: %w", err)
	}
	return nil
}
