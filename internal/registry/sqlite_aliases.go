package registry

import "fmt"

// LoadAliases returns all alias rows. The map is empty when none exist.
func (s *SQLiteStore) LoadAliases() (map[string]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(`SELECT alias, language FROM aliases`)
	if err != nil {
		return nil, fmt.Errorf("failed to read aliases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	aliases := make(map[string]string)
	for rows.Next() {
		var alias, language string
		if err := rows.Scan(&alias, &language); err != nil {
			return nil, fmt.Errorf("failed to scan alias: %w", err)
		}
		aliases[alias] = language
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read aliases: %w", err)
	}
	return aliases, nil
}

// CreateAlias inserts an alias into both the languages and aliases tables.
// Name-conflict checks against existing aliases and languages are the
// caller's job.
func (s *SQLiteStore) CreateAlias(alias, language string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO languages (name) VALUES (?)`,
		alias,
	); err != nil {
		return fmt.Errorf("failed to add alias to languages: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO aliases (alias, language) VALUES (?, ?)`,
		alias, language,
	); err != nil {
		return fmt.Errorf("failed to create alias: %w", err)
	}

	return tx.Commit()
}

// DeleteAlias removes an alias from the languages and aliases tables along
// with any jargon keyed on it, as one transaction.
func (s *SQLiteStore) DeleteAlias(alias string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM aliases WHERE alias = ?`, alias); err != nil {
		return fmt.Errorf("failed to delete alias: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM languages WHERE name = ?`, alias); err != nil {
		return fmt.Errorf("failed to delete alias from languages: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM jargon WHERE identifier = ?`, alias); err != nil {
		return fmt.Errorf("failed to delete alias jargon: %w", err)
	}

	return tx.Commit()
}
