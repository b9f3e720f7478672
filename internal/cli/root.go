// Package cli provides the command-line interface for quickrun.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/quickrun-cli/quickrun/internal/cli/commands"
	"github.com/quickrun-cli/quickrun/internal/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.3.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quickrun",
		Short: "Quickly run code in almost any language",
		Long: `quickrun is an interactive shell for running code snippets in almost any
language through a remote execution service.

It keeps a local registry of languages, user-defined aliases for them, and
"jargon": entry-point boilerplate that is wrapped around a snippet when the
snippet doesn't already contain the language's entry point.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx := commands.WithConfig(cmd.Context(), cfg)
			ctx = commands.WithLogger(ctx, log)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.FileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		// Bare `quickrun` drops into the interactive shell.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunShell(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} v{{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./quickrun.yaml)")
	rootCmd.PersistentFlags().String("database", "", "Path to the registry database")
	rootCmd.PersistentFlags().String("backend-url", "", "Base URL of the execution service")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("color", "", "Colorize output (auto|always|never)")

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewShellCommand())
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewLanguagesCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
