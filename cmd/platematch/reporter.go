package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/platematch/platematch/internal/prefs"
	"github.com/platematch/platematch/internal/ranking"
	"github.com/platematch/platematch/internal/results"
)

const maxNameWidth = 40

// printSummary writes the ranked matches as an aligned console table, with
// an optional per-criterion breakdown.
func printSummary(w io.Writer, spec *prefs.Spec, top []ranking.Scored, total int, verbose bool) {
	fmt.Fprintf(w, "Ranked %d recipes", total) //nolint:errcheck
	if spec.RecipeName != "" {
		fmt.Fprintf(w, " against %q", spec.RecipeName) //nolint:errcheck
	}
	fmt.Fprintf(w, "\n\n") //nolint:errcheck

	if len(top) == 0 {
		fmt.Fprintln(w, "No recipes to rank.") //nolint:errcheck
		return
	}

	nameWidth := runewidth.StringWidth("Recipe")
	for _, m := range top {
		if nw := runewidth.StringWidth(displayName(m)); nw > nameWidth {
			nameWidth = nw
		}
	}

	fmt.Fprintf(w, " #  %8s  %5s  %s\n", "ID", "Score", "Recipe")       //nolint:errcheck
	fmt.Fprintf(w, "--  --------  -----  %s\n", dashes(nameWidth))      //nolint:errcheck
	for i, m := range top {
		fmt.Fprintf(w, "%2d  %8d  %.3f  %s\n", //nolint:errcheck
			i+1, m.Record.ID, results.Round3(m.Scoring.Score), padRight(displayName(m), nameWidth))

		if verbose {
			for _, c := range m.Scoring.Criteria {
				mark := "✓"
				if !c.Satisfied {
					mark = "✗"
				}
				fmt.Fprintf(w, "      %s %s (weight %.1f)\n", mark, c.Name, c.Weight) //nolint:errcheck
			}
		}
	}
	fmt.Fprintln(w) //nolint:errcheck
}

// FormatMarkdown formats the ranked matches as a markdown fragment suitable
// for pasting into an issue or PR comment.
func FormatMarkdown(spec *prefs.Spec, top []ranking.Scored, total int) string {
	var b strings.Builder

	b.WriteString("## 🍽️ Platematch Results\n\n")
	b.WriteString(fmt.Sprintf("**Catalog:** %d recipes", total))
	if spec.RecipeName != "" {
		b.WriteString(fmt.Sprintf(" | **Target:** %q", spec.RecipeName))
	}
	b.WriteString("\n\n")

	if len(top) == 0 {
		b.WriteString("_No recipes to rank._\n")
		return b.String()
	}

	b.WriteString("| # | ID | Score | Recipe |\n")
	b.WriteString("|---|----|-------|--------|\n")
	for i, m := range top {
		b.WriteString(fmt.Sprintf("| %d | %d | %.3f | %s |\n",
			i+1, m.Record.ID, results.Round3(m.Scoring.Score), displayName(m)))
	}
	b.WriteString("\n")

	return b.String()
}

func displayName(m ranking.Scored) string {
	if m.Record.Name == "" {
		return "-"
	}
	return truncateName(m.Record.Name, maxNameWidth)
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func dashes(n int) string {
	return strings.Repeat("-", n)
}
