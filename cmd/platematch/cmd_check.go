package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/platematch/platematch/internal/prefs"
	"github.com/platematch/platematch/internal/validation"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <preferences.yaml>",
		Short: "Validate a preference document",
		Long: `Validate a preference document against the schema without running a match.

Reports every schema violation with its location, then parses the document
and summarizes the resulting query.`,
		Args: cobra.ExactArgs(1),
		RunE: checkCommandE,
	}

	return cmd
}

func checkCommandE(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}

	if errs := validation.ValidatePrefsBytes(data); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(out, "  ✗ %s\n", e) //nolint:errcheck
		}
		return fmt.Errorf("%s: %d schema violation(s)", path, len(errs))
	}

	spec, err := prefs.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}

	fmt.Fprintf(out, "✓ %s is a valid preference document\n\n", path) //nolint:errcheck
	if spec.RecipeName != "" {
		fmt.Fprintf(out, "  Target name:  %q\n", spec.RecipeName) //nolint:errcheck
	}
	printRange(out, "Calories", spec.Calories)
	printRange(out, "Fat", spec.Fat)
	printRange(out, "Protein", spec.Protein)
	printRange(out, "Minutes", spec.Minutes)
	printRange(out, "Rating", spec.Rating)
	fmt.Fprintf(out, "  Liked:        %d ingredient(s)\n", len(spec.Liked))    //nolint:errcheck
	fmt.Fprintf(out, "  Disliked:     %d ingredient(s)\n", len(spec.Disliked)) //nolint:errcheck

	return nil
}

func printRange(out io.Writer, label string, r prefs.Range) {
	note := ""
	if r.Unsatisfiable() {
		note = "  (min exceeds max: never satisfied)"
	}
	fmt.Fprintf(out, "  %-12s  [%g, %g]%s\n", label+":", r.Min, r.Max, note) //nolint:errcheck
}
