package interp

import (
	"context"
	"strconv"
	"strings"

	"github.com/quickrun-cli/quickrun/internal/jargon"
)

// Prompter collects follow-up input for commands that need more than one
// line: code blocks, jargon definitions, and confirmations. The shell
// implements it over readline; tests script it.
type Prompter interface {
	// ReadMultiline collects a multi-line block of text.
	ReadMultiline(prompt string) (string, error)

	// ReadLine collects a single line of text.
	ReadLine(prompt string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(prompt string) (bool, error)
}

// Dispatch parses one line of user input and runs the matching command.
// It returns ErrExit when the user asks to leave, an InputError for user
// mistakes, and any backend failure as-is.
func Dispatch(ctx context.Context, s *Session, line string, p Prompter) error {
	choice := strings.ToLower(strings.TrimSpace(line))

	switch {
	case choice == "":
		return nil
	case choice == "help":
		s.printHelp()
		return nil
	case choice == "exit":
		return ErrExit
	case strings.HasPrefix(choice, "run "):
		return s.runCommand(ctx, argAfter(choice, "run "), p)
	case choice == "list" || strings.HasPrefix(choice, "list "):
		s.ListLanguages(argAfter(choice, "list"))
		return nil
	case choice == "ls" || strings.HasPrefix(choice, "ls "):
		s.ListLanguages(argAfter(choice, "ls"))
		return nil
	case strings.HasPrefix(choice, "create jargon "):
		return s.createJargon(argAfter(choice, "create jargon "), p)
	case strings.HasPrefix(choice, "delete jargon "):
		return s.deleteJargon(argAfter(choice, "delete jargon "))
	case strings.HasPrefix(choice, "jargon "):
		return s.showJargon(argAfter(choice, "jargon "))
	case strings.HasPrefix(choice, "create alias "):
		return s.createAlias(argAfter(choice, "create alias "), p)
	case strings.HasPrefix(choice, "delete alias "):
		return s.deleteAlias(argAfter(choice, "delete alias "))
	case strings.HasPrefix(choice, "alias "):
		return s.showAlias(argAfter(choice, "alias "))
	case choice == "refresh":
		return s.Refresh(ctx)
	case choice == "history" || strings.HasPrefix(choice, "history "):
		return s.historyCommand(argAfter(choice, "history"))
	default:
		return inputErrorf("Invalid input. Enter %s for help.", s.out.Command("help"))
	}
}

// argAfter strips a command prefix and surrounding whitespace.
func argAfter(choice, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(choice, prefix))
}

func (s *Session) runCommand(ctx context.Context, language string, p Prompter) error {
	if !s.Known(language) {
		return inputErrorf("Invalid language: `%s`", language)
	}

	code, err := p.ReadMultiline("code:")
	if err != nil {
		return err
	}
	return s.RunSnippet(ctx, language, code)
}

func (s *Session) showJargon(language string) error {
	template, key, err := s.store.LoadJargon(language)
	if err != nil {
		return err
	}
	if template == "" {
		return inputErrorf("No jargon wrapping has been set for the `%s` language", language)
	}

	s.out.Printf("%s\n%s\n", s.out.Heading("jargon:"), template)
	s.out.Printf("%s %s\n", s.out.Heading("jargon key:"), key)
	return nil
}

func (s *Session) createJargon(language string, p Prompter) error {
	if !s.Known(language) {
		return inputErrorf("Invalid language: `%s`", language)
	}

	has, err := s.store.HasJargon(language)
	if err != nil {
		return err
	}
	if has {
		ok, err := p.Confirm("`" + language + "` already has jargon. Overwrite? (y/n) ")
		if err != nil {
			return err
		}
		if !ok {
			return inputErrorf("Cancelled creating new jargon.")
		}
		if err := s.store.DeleteJargon(language); err != nil {
			return err
		}
	}

	template, err := p.ReadMultiline("jargon:")
	if err != nil {
		return err
	}
	key, err := p.ReadLine("jargon key: ")
	if err != nil {
		return err
	}
	if err := jargon.Validate(template, key); err != nil {
		return inputErrorf("Invalid jargon: %v", err)
	}

	if err := s.store.CreateJargon(language, template, key); err != nil {
		return err
	}
	s.out.Printf("Created jargon for the `%s` language\n", language)
	return nil
}

func (s *Session) deleteJargon(language string) error {
	has, err := s.store.HasJargon(language)
	if err != nil {
		return err
	}
	if !has {
		return inputErrorf("`%s` has no jargon", language)
	}

	if err := s.store.DeleteJargon(language); err != nil {
		return err
	}
	s.out.Printf("Jargon for the `%s` language deleted.\n", language)
	return nil
}

func (s *Session) showAlias(alias string) error {
	language, ok := s.aliases[alias]
	if !ok {
		return inputErrorf("`%s` is not an alias", alias)
	}
	s.out.Printf("`%s` is an alias of `%s`\n", alias, language)
	return nil
}

func (s *Session) createAlias(args string, p Prompter) error {
	words := strings.Fields(args)
	if len(words) != 2 {
		return inputErrorf(`Error: expected two words after "create alias": the new alias and the language being aliased`)
	}
	newAlias, language := words[0], words[1]

	if _, isAlias := s.aliases[newAlias]; isAlias {
		ok, err := p.Confirm("`" + newAlias + "` is already an alias of `" + s.aliases[newAlias] + "`. Overwrite? (y/n) ")
		if err != nil {
			return err
		}
		if !ok {
			return inputErrorf("Cancelled creating the alias.")
		}
		if err := s.deleteAliasState(newAlias); err != nil {
			return err
		}
	} else if s.Known(newAlias) {
		return inputErrorf("`%s` is already a language.", newAlias)
	}

	if !s.Known(language) {
		return inputErrorf("Invalid language: `%s`", language)
	}
	// Aliases always point at a canonical identifier, never at another
	// alias.
	language = Resolve(language, s.aliases)

	if err := s.store.CreateAlias(newAlias, language); err != nil {
		return err
	}
	s.aliases[newAlias] = language
	s.languages[newAlias] = struct{}{}

	s.out.Printf("Created `%s` as an alias to `%s`\n", newAlias, language)
	return nil
}

func (s *Session) deleteAlias(alias string) error {
	if _, ok := s.aliases[alias]; !ok {
		return inputErrorf("`%s` is not an alias", alias)
	}
	if err := s.deleteAliasState(alias); err != nil {
		return err
	}
	s.out.Printf("Deleted alias `%s`\n", alias)
	return nil
}

// deleteAliasState removes an alias from the store and the session's
// in-memory mirrors, keeping the two consistent.
func (s *Session) deleteAliasState(alias string) error {
	if err := s.store.DeleteAlias(alias); err != nil {
		return err
	}
	delete(s.aliases, alias)
	delete(s.languages, alias)
	return nil
}

func (s *Session) historyCommand(arg string) error {
	limit := 0
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return inputErrorf("Invalid history count: `%s`", arg)
		}
		limit = n
	}
	return s.ShowHistory(limit)
}

func (s *Session) printHelp() {
	arg := func(name string) string {
		return s.out.Muted("(" + name + ")")
	}
	s.out.Printf(`help
    Displays this message.
exit
    Closes this app.
run %s
    Selects a language and then asks you for code to run.
list %s
    Shows all supported languages, or those containing a chosen term.
jargon %s
    Shows the code that can wrap around your code in a chosen language.
create jargon %s
    Allows you to set the jargon for a language.
delete jargon %s
    Deletes the jargon for a language.
alias %s
    Shows the language an alias is an alias of.
create alias %s %s
    Creates a new alias for a chosen language.
delete alias %s
    Deletes an alias and any jargon it has.
history %s
    Shows the most recent runs.
refresh
    Fetches the language list from the execution backend again.
`,
		arg("language"), arg("term"), arg("language"), arg("language"),
		arg("language"), arg("alias"), arg("new alias"), arg("language"),
		arg("alias"), arg("count"))
}
