package commands

import (
	"github.com/spf13/cobra"
)

// NewLanguagesCommand creates the languages command.
func NewLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages [filter]",
		Short: "List known languages and aliases",
		Long: `List every runnable language identifier, aliases included.

An optional filter keeps only identifiers containing it as a substring.`,
		Aliases: []string{"langs"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cleanup, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			session.ListLanguages(filter)
			return nil
		},
	}
}
