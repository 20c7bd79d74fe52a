package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platematch/platematch/internal/catalog"
	"github.com/platematch/platematch/internal/matcher"
	"github.com/platematch/platematch/internal/prefs"
	"github.com/platematch/platematch/internal/ranking"
	"github.com/platematch/platematch/internal/results"
	"github.com/platematch/platematch/internal/weights"
)

var (
	catalogPath string
	weightsPath string
	outputPath  string
	topN        int
	verbose     bool
	parallel    bool
	workers     int
	format      string
)

func newMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <preferences.yaml>",
		Short: "Rank the recipe catalog against a preference document",
		Long: `Rank every recipe in the catalog against a preference document.

The preference document names the target recipe, numeric ranges and liked/
disliked ingredients. Each recipe is scored on independent weighted criteria
and the top matches are written to the output file as (id, score) pairs.

Weights default to the built-in configuration; pass --weights to override
individual coefficients from a "key = value" file.`,
		Args: cobra.ExactArgs(1),
		RunE: matchCommandE,
	}

	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "Recipe catalog CSV file (.gz accepted)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file for the ranked results")
	cmd.Flags().StringVarP(&weightsPath, "weights", "w", "", "Weight configuration file (defaults used when absent)")
	cmd.Flags().IntVar(&topN, "top", ranking.DefaultTopN, "Number of top matches to emit")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the per-criterion breakdown for each match")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Score records concurrently")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of concurrent workers (default: 4, requires --parallel)")
	cmd.Flags().StringVar(&format, "format", "default", "Console output format: default, markdown")

	cmd.MarkFlagRequired("catalog") //nolint:errcheck
	cmd.MarkFlagRequired("output")  //nolint:errcheck

	return cmd
}

func matchCommandE(cmd *cobra.Command, args []string) error {
	// Missing weight file is non-fatal: defaults plus a warning.
	cfg := weights.Load(weightsPath)

	spec, err := prefs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	// Inline overrides from the document's weights: section, if any.
	cfg, err = cfg.WithOverrides(spec.WeightOverrides)
	if err != nil {
		return fmt.Errorf("failed to apply inline weights: %w", err)
	}

	records, err := catalog.Read(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	runner := &matcher.Runner{
		Prefs:   spec,
		Weights: cfg,
		Options: matcher.Options{
			TopN:     topN,
			Parallel: parallel,
			Workers:  workers,
		},
	}

	top, err := runner.Run(cmd.Context(), records)
	if err != nil {
		return err
	}

	entries := matcher.Entries(top)
	if err := results.Save(outputPath, entries); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "markdown":
		fmt.Fprint(out, FormatMarkdown(spec, top, len(records))) //nolint:errcheck
	default:
		printSummary(out, spec, top, len(records), verbose)
	}
	fmt.Fprintf(out, "Results saved to: %s\n", outputPath) //nolint:errcheck

	if len(entries) == 0 {
		return &NoMatchesError{Message: "catalog contained no records to rank"}
	}
	return nil
}
