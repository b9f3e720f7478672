package registry

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore()
	if err := store.Open(":memory:"); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

// fakeLister counts how often the backend language list is requested.
type fakeLister struct {
	languages []string
	calls     int
	err       error
}

func (f *fakeLister) Languages(context.Context) ([]string, error) {
	f.calls++
	return f.languages, f.err
}

func TestSQLiteStore_OpenClose(t *testing.T) {
	store := NewSQLiteStore()
	if err := store.Open(":memory:"); err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
}

func TestSQLiteStore_InitSeedsDefaults(t *testing.T) {
	store := setupTestStore(t)

	aliases, err := store.LoadAliases()
	if err != nil {
		t.Fatalf("failed to load aliases: %v", err)
	}
	if len(aliases) != len(DefaultAliases()) {
		t.Errorf("expected %d default aliases, got %d", len(DefaultAliases()), len(aliases))
	}
	if aliases["py"] != "python3" {
		t.Errorf("expected py -> python3, got %q", aliases["py"])
	}

	// Dialect identifiers share their base language's template.
	template, key, err := store.LoadJargon("c-clang")
	if err != nil {
		t.Fatalf("failed to load jargon: %v", err)
	}
	if key != "int main(" {
		t.Errorf("expected c-clang jargon key %q, got %q", "int main(", key)
	}
	if template != DefaultJargon()["c"].Template {
		t.Errorf("c-clang template does not match the c default")
	}
}

func TestSQLiteStore_InitDoesNotReseed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.db")

	store := NewSQLiteStore()
	if err := store.Open(path); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.DeleteAlias("py"); err != nil {
		t.Fatalf("failed to delete alias: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened := NewSQLiteStore()
	if err := reopened.Open(path); err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()
	if err := reopened.Init(); err != nil {
		t.Fatalf("failed to re-init store: %v", err)
	}

	aliases, err := reopened.LoadAliases()
	if err != nil {
		t.Fatalf("failed to load aliases: %v", err)
	}
	if _, ok := aliases["py"]; ok {
		t.Error("deleted alias reappeared after reopening the registry")
	}
}

func TestSQLiteStore_LoadLanguagesBootstrapsOnce(t *testing.T) {
	store := setupTestStore(t)
	lister := &fakeLister{languages: []string{"python3", "go", "rust"}}

	languages, err := store.LoadLanguages(context.Background(), lister)
	if err != nil {
		t.Fatalf("failed to load languages: %v", err)
	}
	if lister.calls != 1 {
		t.Errorf("expected one backend query, got %d", lister.calls)
	}
	want := len(lister.languages) + len(DefaultAliases())
	if len(languages) != want {
		t.Errorf("expected %d languages (backend + aliases), got %d", want, len(languages))
	}

	contains := func(all []string, name string) bool {
		for _, l := range all {
			if l == name {
				return true
			}
		}
		return false
	}
	for _, name := range []string{"python3", "py", "js"} {
		if !contains(languages, name) {
			t.Errorf("expected bootstrapped languages to contain %q", name)
		}
	}

	// The second load must read from the table without another backend query.
	again, err := store.LoadLanguages(context.Background(), lister)
	if err != nil {
		t.Fatalf("failed to reload languages: %v", err)
	}
	if lister.calls != 1 {
		t.Errorf("expected the backend to be queried once, got %d calls", lister.calls)
	}
	if len(again) != len(languages) {
		t.Errorf("expected %d languages on reload, got %d", len(languages), len(again))
	}
}

func TestSQLiteStore_AliasLifecycle(t *testing.T) {
	store := setupTestStore(t)

	if err := store.CreateAlias("gopher", "go"); err != nil {
		t.Fatalf("failed to create alias: %v", err)
	}
	if err := store.CreateJargon("gopher", "package main\nfunc main() {\nINSERT_HERE\n}", "func main("); err != nil {
		t.Fatalf("failed to create jargon: %v", err)
	}

	aliases, err := store.LoadAliases()
	if err != nil {
		t.Fatalf("failed to load aliases: %v", err)
	}
	if aliases["gopher"] != "go" {
		t.Errorf("expected gopher -> go, got %q", aliases["gopher"])
	}

	// The alias itself is a valid language from the interpreter's point
	// of view.
	languages, err := store.readLanguages()
	if err != nil {
		t.Fatalf("failed to read languages: %v", err)
	}
	found := false
	for _, l := range languages {
		if l == "gopher" {
			found = true
		}
	}
	if !found {
		t.Error("expected languages table to contain the new alias")
	}

	// Deleting the alias cascades to languages and jargon.
	if err := store.DeleteAlias("gopher"); err != nil {
		t.Fatalf("failed to delete alias: %v", err)
	}

	aliases, err = store.LoadAliases()
	if err != nil {
		t.Fatalf("failed to load aliases: %v", err)
	}
	if _, ok := aliases["gopher"]; ok {
		t.Error("alias still present after delete")
	}

	languages, err = store.readLanguages()
	if err != nil {
		t.Fatalf("failed to read languages: %v", err)
	}
	for _, l := range languages {
		if l == "gopher" {
			t.Error("languages table still contains the deleted alias")
		}
	}

	has, err := store.HasJargon("gopher")
	if err != nil {
		t.Fatalf("failed to check jargon: %v", err)
	}
	if has {
		t.Error("jargon still present after alias delete")
	}
}

func TestSQLiteStore_JargonRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	const template = "HEADER\nINSERT_HERE\nFOOTER"
	const key = "ENTRY("

	if err := store.CreateJargon("mylang", template, key); err != nil {
		t.Fatalf("failed to create jargon: %v", err)
	}

	gotTemplate, gotKey, err := store.LoadJargon("mylang")
	if err != nil {
		t.Fatalf("failed to load jargon: %v", err)
	}
	if gotTemplate != template {
		t.Errorf("template = %q, want %q", gotTemplate, template)
	}
	if gotKey != key {
		t.Errorf("key = %q, want %q", gotKey, key)
	}

	if err := store.DeleteJargon("mylang"); err != nil {
		t.Fatalf("failed to delete jargon: %v", err)
	}
	gotTemplate, gotKey, err = store.LoadJargon("mylang")
	if err != nil {
		t.Fatalf("failed to load jargon after delete: %v", err)
	}
	if gotTemplate != "" || gotKey != "" {
		t.Errorf("expected empty jargon after delete, got (%q, %q)", gotTemplate, gotKey)
	}
}

func TestSQLiteStore_LoadJargonUnknownIdentifier(t *testing.T) {
	store := setupTestStore(t)

	template, key, err := store.LoadJargon("no-such-language")
	if err != nil {
		t.Fatalf("expected no error for missing jargon, got %v", err)
	}
	if template != "" || key != "" {
		t.Errorf("expected empty jargon, got (%q, %q)", template, key)
	}
}

func TestSQLiteStore_History(t *testing.T) {
	store := setupTestStore(t)

	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	for i, lang := range []string{"py", "go", "rust"} {
		err := store.RecordRun(HistoryEntry{
			Language:   lang,
			Resolved:   lang,
			ExitStatus: i,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to record run: %v", err)
		}
	}

	entries, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("failed to read history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Language != "rust" || entries[1].Language != "go" {
		t.Errorf("expected newest-first order, got %q then %q",
			entries[0].Language, entries[1].Language)
	}
	if entries[0].ID == "" {
		t.Error("expected a generated entry ID")
	}
	if entries[0].ExitStatus != 2 {
		t.Errorf("exit status = %d, want 2", entries[0].ExitStatus)
	}
}
