package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/platematch/platematch/internal/wizard"
)

const starterPrefs = `# platematch preference document
# Absent fields fall back to wide-open ranges (rating 0..5, others 0..10000).

recipe_name: ""

# minutes_min: 0
# minutes_max: 45
# cal_min: 0
# cal_max: 800
# rating_min: 3

ingredients_liked: []
ingredients_disliked: []
`

const starterWeights = `# platematch weight configuration
# Uncomment a line to override the built-in coefficient.

# weight_name = 5
# weight_cal = 1
# weight_fat = 1
# weight_prot = 1
# weight_time = 1
# weight_rating = 1
# weight_liked = 2
# weight_disliked = 2
`

func newInitCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold a preference document",
		Long: `Scaffold a starter preferences.yaml and weights.conf.

Use --interactive to run a guided wizard that collects the target recipe,
time limit, rating floor and ingredient lists.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, args, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run the guided preference wizard")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string, interactive bool) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	prefsContent := starterPrefs
	if interactive {
		query, err := wizard.RunPrefsWizard(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}

		prefsContent, err = wizard.GeneratePrefsYAML(query)
		if err != nil {
			return fmt.Errorf("failed to generate preferences: %w", err)
		}
	}

	prefsPath := filepath.Join(dir, "preferences.yaml")
	if err := os.WriteFile(prefsPath, []byte(prefsContent), 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	weightsPath := filepath.Join(dir, "weights.conf")
	if err := os.WriteFile(weightsPath, []byte(starterWeights), 0o644); err != nil {
		return fmt.Errorf("failed to write weights: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Created:")          //nolint:errcheck
	fmt.Fprintf(out, "  %s\n", prefsPath)  //nolint:errcheck
	fmt.Fprintf(out, "  %s\n", weightsPath) //nolint:errcheck

	return nil
}
