package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/quickrun-cli/quickrun/internal/cli/output"
	"github.com/quickrun-cli/quickrun/internal/config"
	"github.com/quickrun-cli/quickrun/internal/interp"
	"github.com/spf13/cobra"
)

// NewShellCommand creates the shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Long: `Start the interactive quickrun shell.

Type a command at the prompt; "help" lists them. Code blocks are entered
line by line and submitted with a lone "." or Ctrl-D.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunShell(cmd)
		},
	}
}

// RunShell runs the interactive loop. The bare root command lands here too.
func RunShell(cmd *cobra.Command) error {
	cfg := ConfigFrom(cmd.Context())

	session, cleanup, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	renderer := output.New(cmd.OutOrStdout(), cfg.Color)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          renderer.Heading("quickrun> "),
		HistoryFile:     config.HistoryFilePath(cfg.Database),
		AutoComplete:    newShellCompleter(session),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	renderer.Printf("quickrun v%s. Type %s for commands, %s to leave.\n",
		strings.TrimPrefix(cmd.Root().Version, "v"),
		renderer.Command("help"), renderer.Command("exit"))

	prompter := &shellPrompter{rl: rl, renderer: renderer}

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			// ^C clears a partial line; on an empty one it leaves.
			if len(line) > 0 {
				continue
			}
			renderer.Println("Interrupted.")
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = interp.Dispatch(cmd.Context(), session, line, prompter)
		switch {
		case errors.Is(err, interp.ErrExit):
			return nil
		case errors.Is(err, readline.ErrInterrupt):
			// A ^C during follow-up input abandons the command.
			continue
		case interp.IsInputError(err):
			renderer.Println(renderer.Error(err.Error()))
		case err != nil:
			// Backend and storage failures recover at the same point.
			renderer.Println(renderer.Error(fmt.Sprintf("Error: %v", err)))
		}
	}
}

// shellPrompter implements interp.Prompter over the shell's readline
// instance.
type shellPrompter struct {
	rl       *readline.Instance
	renderer *output.Renderer
}

// ReadMultiline collects lines until a lone "." or Ctrl-D.
func (p *shellPrompter) ReadMultiline(prompt string) (string, error) {
	p.renderer.Printf("%s %s\n", p.renderer.Heading(prompt),
		p.renderer.Muted(`(submit with "." on its own line or Ctrl-D)`))

	defer p.rl.SetPrompt(p.renderer.Heading("quickrun> "))
	p.rl.SetPrompt("  ")

	var lines []string
	for {
		line, err := p.rl.Readline()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (p *shellPrompter) ReadLine(prompt string) (string, error) {
	defer p.rl.SetPrompt(p.renderer.Heading("quickrun> "))
	p.rl.SetPrompt(p.renderer.Heading(prompt))

	line, err := p.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *shellPrompter) Confirm(prompt string) (bool, error) {
	answer, err := p.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// newShellCompleter completes command words and known language names.
func newShellCompleter(session *interp.Session) *readline.PrefixCompleter {
	languages := readline.PcItemDynamic(func(string) []string {
		return session.LanguageNames()
	})

	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("exit"),
		readline.PcItem("run", languages),
		readline.PcItem("list", languages),
		readline.PcItem("ls", languages),
		readline.PcItem("jargon", languages),
		readline.PcItem("alias", languages),
		readline.PcItem("create",
			readline.PcItem("jargon", languages),
			readline.PcItem("alias"),
		),
		readline.PcItem("delete",
			readline.PcItem("jargon", languages),
			readline.PcItem("alias", languages),
		),
		readline.PcItem("history"),
		readline.PcItem("refresh"),
	)
}
