// Package wizard collects a preference document interactively.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Query holds the fields collected by the interactive wizard.
type Query struct {
	RecipeName string
	MinutesMax int
	RatingMin  float64
	Liked      []string
	Disliked   []string
}

const prefsTemplate = `# platematch preference document
# Absent fields fall back to wide-open ranges (rating 0..5, others 0..10000).
{{- if .RecipeName }}
recipe_name: "{{ .RecipeName }}"
{{- end }}
{{- if .MinutesMax }}
minutes_max: {{ .MinutesMax }}
{{- end }}
{{- if .RatingMin }}
rating_min: {{ .RatingMin }}
{{- end }}
ingredients_liked:{{ if .Liked }}{{ range .Liked }}
  - {{ . }}{{ end }}{{ else }} []{{ end }}
ingredients_disliked:{{ if .Disliked }}{{ range .Disliked }}
  - {{ . }}{{ end }}{{ else }} []{{ end }}
`

// RunPrefsWizard runs an interactive huh form collecting the target recipe
// query. If stdin is not a TTY (tests, piped input) the form falls back to
// accessible mode.
func RunPrefsWizard(in io.Reader, out io.Writer) (*Query, error) {
	var (
		recipeName  string
		minutesRaw  string
		ratingRaw   string
		likedRaw    string
		dislikedRaw string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recipe name").
				Description("Substring to look for in recipe names (leave empty to skip)").
				Placeholder("pasta").
				Value(&recipeName),
			huh.NewInput().
				Title("Maximum cooking time").
				Description("In minutes; leave empty for no limit").
				Placeholder("45").
				Value(&minutesRaw).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Minimum rating").
				Description("0 to 5; leave empty for no floor").
				Placeholder("3.5").
				Value(&ratingRaw).
				Validate(validateOptionalRating),
			huh.NewInput().
				Title("Liked ingredients").
				Description("Comma-separated ingredients you want in the recipe").
				Placeholder("garlic, basil").
				Value(&likedRaw),
			huh.NewInput().
				Title("Disliked ingredients").
				Description("Comma-separated ingredients to avoid").
				Placeholder("sugar, cilantro").
				Value(&dislikedRaw),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	query := &Query{
		RecipeName: strings.TrimSpace(recipeName),
		Liked:      splitAndTrim(likedRaw),
		Disliked:   splitAndTrim(dislikedRaw),
	}
	if v := strings.TrimSpace(minutesRaw); v != "" {
		query.MinutesMax, _ = strconv.Atoi(v)
	}
	if v := strings.TrimSpace(ratingRaw); v != "" {
		query.RatingMin, _ = strconv.ParseFloat(v, 64)
	}
	return query, nil
}

// GeneratePrefsYAML renders a preference document from the collected query.
func GeneratePrefsYAML(query *Query) (string, error) {
	tmpl, err := template.New("prefs").Parse(prefsTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, query); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func validateOptionalInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative whole number")
	}
	return nil
}

func validateOptionalRating(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 5 {
		return fmt.Errorf("enter a number between 0 and 5")
	}
	return nil
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
