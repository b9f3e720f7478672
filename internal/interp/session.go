// Package interp implements the quickrun command interpreter: one session's
// language and alias state, alias resolution, and the dispatcher over the
// interactive command grammar.
package interp

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/quickrun-cli/quickrun/internal/cli/output"
	"github.com/quickrun-cli/quickrun/internal/jargon"
	"github.com/quickrun-cli/quickrun/internal/registry"
	"github.com/quickrun-cli/quickrun/internal/tio"
)

// Executor runs code on the remote execution backend.
type Executor interface {
	Languages(ctx context.Context) ([]string, error)
	Run(ctx context.Context, r tio.Request) (*tio.Result, error)
}

// Resolve maps an identifier through the alias table to its canonical
// language identifier. Identifiers without an alias entry resolve to
// themselves.
func Resolve(identifier string, aliases map[string]string) string {
	if language, ok := aliases[identifier]; ok {
		return language
	}
	return identifier
}

// Session holds one interactive session's state: the known-language set and
// alias map, kept in lock-step with the registry store on every mutation.
type Session struct {
	store        registry.Store
	exec         Executor
	out          *output.Renderer
	log          *slog.Logger
	historyLimit int

	languages map[string]struct{}
	aliases   map[string]string
}

// NewSession loads the registry into memory and returns a ready session.
// A registry that has never seen a language list bootstraps it from the
// executor here.
func NewSession(ctx context.Context, store registry.Store, exec Executor, out *output.Renderer, log *slog.Logger, historyLimit int) (*Session, error) {
	aliases, err := store.LoadAliases()
	if err != nil {
		return nil, err
	}

	languages, err := store.LoadLanguages(ctx, exec)
	if err != nil {
		return nil, err
	}

	s := &Session{
		store:        store,
		exec:         exec,
		out:          out,
		log:          log,
		historyLimit: historyLimit,
		languages:    make(map[string]struct{}, len(languages)),
		aliases:      aliases,
	}
	for _, name := range languages {
		s.languages[name] = struct{}{}
	}
	return s, nil
}

// Known reports whether an identifier names a language or an alias.
func (s *Session) Known(identifier string) bool {
	_, ok := s.languages[identifier]
	return ok
}

// LanguageNames returns all known identifiers, sorted, including aliases.
func (s *Session) LanguageNames() []string {
	names := make([]string, 0, len(s.languages))
	for name := range s.languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunSnippet validates the chosen identifier, unwraps an optional fenced
// code block (text after the closing fence feeds the program's stdin),
// applies jargon wrapping by the raw identifier, resolves aliasing, and
// submits the result to the execution backend.
//
// Jargon lookup deliberately happens before alias resolution: jargon may be
// keyed on an alias independent of its target language's own jargon.
func (s *Session) RunSnippet(ctx context.Context, language, input string) error {
	if !s.Known(language) {
		return inputErrorf("Invalid language: `%s`", language)
	}

	code, stdin := jargon.UnwrapCodeBlock(input)

	template, key, err := s.store.LoadJargon(language)
	if err != nil {
		return err
	}
	code = jargon.Wrap(code, template, key)

	resolved := Resolve(language, s.aliases)

	result, err := s.exec.Run(ctx, tio.Request{
		Code:     code,
		Language: resolved,
		Stdin:    stdin,
	})
	if err != nil {
		return err
	}

	s.out.Printf("%s\n%s", s.out.Heading(fmt.Sprintf("`%s` output:", resolved)), result.Output)
	if !strings.HasSuffix(result.Output, "\n") {
		s.out.Println()
	}
	s.out.Printf("%s %d\n", s.out.Heading("exit status:"), result.ExitStatus)

	if err := s.store.RecordRun(registry.HistoryEntry{
		Language:   language,
		Resolved:   resolved,
		ExitStatus: result.ExitStatus,
	}); err != nil {
		s.log.Warn("failed to record run history", "error", err)
	}
	return nil
}

// ListLanguages prints all known languages, or those containing the filter
// term. Aliases are styled distinctly; the unfiltered count covers canonical
// languages only.
func (s *Session) ListLanguages(filter string) {
	names := s.LanguageNames()

	if filter != "" {
		filtered := names[:0]
		for _, name := range names {
			if strings.Contains(name, filter) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
		s.out.Printf("languages that contain `%s` (%d): ", filter, len(names))
	} else {
		s.out.Printf("languages (%d): ", len(names)-len(s.aliases))
	}

	aliasShown := false
	styled := make([]string, len(names))
	for i, name := range names {
		if _, ok := s.aliases[name]; ok {
			aliasShown = true
			styled[i] = s.out.Alias(name)
		} else {
			styled[i] = name
		}
	}
	s.out.Println(strings.Join(styled, ", "))
	if aliasShown {
		s.out.Println(s.out.Muted("(Aliases are shown in cyan.)"))
	}
}

// Refresh re-fetches the backend's language list, unions it with the alias
// keys, persists the union, and replaces the session's language set.
func (s *Session) Refresh(ctx context.Context) error {
	languages, err := s.exec.Languages(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch language list from backend: %w", err)
	}
	for alias := range s.aliases {
		languages = append(languages, alias)
	}

	if err := s.store.SaveLanguages(languages); err != nil {
		return err
	}

	s.languages = make(map[string]struct{}, len(languages))
	for _, name := range languages {
		s.languages[name] = struct{}{}
	}
	s.out.Printf("Refreshed the language list (%d languages).\n", len(s.languages)-len(s.aliases))
	return nil
}

// ShowHistory prints the most recent submissions as a table.
func (s *Session) ShowHistory(limit int) error {
	if limit <= 0 {
		limit = s.historyLimit
	}

	entries, err := s.store.RecentRuns(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		s.out.Println("No runs recorded yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(s.out.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"When", "Language", "Resolved", "Exit"})
	for _, entry := range entries {
		t.AppendRow(table.Row{
			entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			entry.Language,
			entry.Resolved,
			entry.ExitStatus,
		})
	}
	t.Render()
	return nil
}
