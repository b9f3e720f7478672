package registry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordRun appends a history entry. A missing ID or timestamp is filled in.
func (s *SQLiteStore) RecordRun(entry HistoryEntry) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if _, err := s.db.Exec(
		`INSERT INTO history (id, language, resolved, exit_status, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Language, entry.Resolved, entry.ExitStatus, entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit history entries, newest first.
func (s *SQLiteStore) RecentRuns(limit int) ([]HistoryEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT id, language, resolved, exit_status, created_at
		 FROM history ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(
			&entry.ID, &entry.Language, &entry.Resolved, &entry.ExitStatus, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return entries, nil
}
