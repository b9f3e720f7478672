// Package registry provides the persisted language registry for quickrun
// using SQLite. It stores the known language identifiers, user-defined
// aliases, per-identifier jargon wrapping, and the run history.
package registry

import (
	"context"
	"time"
)

// LanguageLister reports the language identifiers a code execution backend
// supports. It is only consulted once, when the languages table has never
// been populated.
type LanguageLister interface {
	Languages(ctx context.Context) ([]string, error)
}

// HistoryEntry records one code submission.
type HistoryEntry struct {
	ID         string
	Language   string // the identifier the user typed, possibly an alias
	Resolved   string // the canonical identifier sent to the backend
	ExitStatus int
	CreatedAt  time.Time
}

// Store is the registry persistence contract.
type Store interface {
	// LoadAliases returns all alias rows. The map is empty, not nil, when
	// no aliases exist.
	LoadAliases() (map[string]string, error)

	// LoadLanguages returns all persisted language identifiers. When the
	// table has never been populated it bootstraps from the lister's
	// supported-language list unioned with the current alias keys,
	// persists the union, and returns it.
	LoadLanguages(ctx context.Context, lister LanguageLister) ([]string, error)

	// SaveLanguages persists identifiers, ignoring ones already present.
	SaveLanguages(languages []string) error

	// LoadJargon returns the template and key for an identifier, or two
	// empty strings when the identifier has no jargon.
	LoadJargon(identifier string) (template, key string, err error)

	// HasJargon reports whether an identifier has jargon.
	HasJargon(identifier string) (bool, error)

	// CreateAlias inserts an alias into both the languages and aliases
	// tables. Name-conflict checks are the caller's job.
	CreateAlias(alias, language string) error

	// DeleteAlias removes an alias from the languages, aliases, and jargon
	// tables in one transaction.
	DeleteAlias(alias string) error

	CreateJargon(identifier, template, key string) error
	DeleteJargon(identifier string) error

	// RecordRun appends a history entry.
	RecordRun(entry HistoryEntry) error

	// RecentRuns returns up to limit history entries, newest first.
	RecentRuns(limit int) ([]HistoryEntry, error)

	Close() error
}
