package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <language> [file]",
		Short: "Execute a snippet without entering the shell",
		Long: `Execute a single snippet in the named language and print its output.

The code is read from the given file, or from stdin when no file is
supplied. Jargon and aliases apply exactly as in the shell.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			session, cleanup, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return session.RunSnippet(cmd.Context(), args[0], code)
		},
	}
	return cmd
}

func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 2 {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[1], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
