package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platematch",
		Short: "Platematch - rank a recipe catalog against your preferences",
		Long: `Platematch ranks a recipe catalog against a preference document and a
configurable weighting scheme, producing the best matches.

Preferences describe the target recipe: an optional name, numeric ranges for
calories, fat, protein, cooking time and rating, plus liked and disliked
ingredient lists. Each recipe is scored independently and the top matches
are written as a JSON artifact.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newMatchCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
