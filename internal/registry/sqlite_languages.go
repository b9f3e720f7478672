package registry

import (
	"context"
	"fmt"
)

// LoadLanguages returns all persisted language identifiers. When the table
// has never been populated it bootstraps: the lister's supported-language
// list is unioned with the current alias keys, persisted, and returned.
// Later calls read from the table without consulting the lister again.
func (s *SQLiteStore) LoadLanguages(ctx context.Context, lister LanguageLister) ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	languages, err := s.readLanguages()
	if err != nil {
		return nil, err
	}
	if len(languages) > 0 {
		return languages, nil
	}

	return s.bootstrapLanguages(ctx, lister)
}

// bootstrapLanguages fills an empty languages table from the backend's
// supported-language list plus all alias keys.
func (s *SQLiteStore) bootstrapLanguages(ctx context.Context, lister LanguageLister) ([]string, error) {
	languages, err := lister.Languages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch language list from backend: %w", err)
	}

	aliases, err := s.LoadAliases()
	if err != nil {
		return nil, err
	}
	for alias := range aliases {
		languages = append(languages, alias)
	}

	if err := s.SaveLanguages(languages); err != nil {
		return nil, err
	}
	return languages, nil
}

// SaveLanguages persists identifiers, ignoring ones already present.
func (s *SQLiteStore) SaveLanguages(languages []string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range languages {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO languages (name) VALUES (?)`,
			name,
		); err != nil {
			return fmt.Errorf("failed to save language %s: %w", name, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) readLanguages() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM languages`)
	if err != nil {
		return nil, fmt.Errorf("failed to read languages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var languages []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read languages: %w", err)
	}
	return languages, nil
}
