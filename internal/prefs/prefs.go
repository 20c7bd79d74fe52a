package prefs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/platematch/platematch/internal/validation"
)

// Default bounds applied to any range absent from the document.
const (
	DefaultRangeMax  = 10000
	DefaultRatingMax = 5
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the inclusive interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Unsatisfiable reports whether no value can fall inside the range.
func (r Range) Unsatisfiable() bool {
	return r.Min > r.Max
}

// Spec is the target query: the recipe the user is looking for. A Spec is
// loaded once per run and read-only afterwards.
type Spec struct {
	// RecipeName is matched as a case-insensitive substring of recipe
	// names. Empty means the name criterion is not evaluated.
	RecipeName string

	Calories Range
	Fat      Range
	Protein  Range
	Minutes  Range
	Rating   Range

	// Liked and Disliked hold ingredient substrings, scored for presence
	// and absence respectively.
	Liked    []string
	Disliked []string

	// WeightOverrides carries the document's optional inline "weights:"
	// section, applied by the caller on top of the weight configuration.
	WeightOverrides map[string]any
}

// Default returns a Spec with no name criterion, wide-open ranges and empty
// ingredient lists. Every recipe scores 1.0 against it.
func Default() *Spec {
	return &Spec{
		Calories: Range{0, DefaultRangeMax},
		Fat:      Range{0, DefaultRangeMax},
		Protein:  Range{0, DefaultRangeMax},
		Minutes:  Range{0, DefaultRangeMax},
		Rating:   Range{0, DefaultRatingMax},
	}
}

// document mirrors the YAML layout. Numeric fields are pointers so absent
// keys can fall back to the defaults.
type document struct {
	RecipeName          string         `yaml:"recipe_name"`
	CalMin              *float64       `yaml:"cal_min"`
	CalMax              *float64       `yaml:"cal_max"`
	FatMin              *float64       `yaml:"fat_min"`
	FatMax              *float64       `yaml:"fat_max"`
	ProtMin             *float64       `yaml:"prot_min"`
	ProtMax             *float64       `yaml:"prot_max"`
	MinutesMin          *float64       `yaml:"minutes_min"`
	MinutesMax          *float64       `yaml:"minutes_max"`
	RatingMin           *float64       `yaml:"rating_min"`
	RatingMax           *float64       `yaml:"rating_max"`
	IngredientsLiked    []string       `yaml:"ingredients_liked"`
	IngredientsDisliked []string       `yaml:"ingredients_disliked"`
	Weights             map[string]any `yaml:"weights"`
}

// Load reads a preference document. A missing or unreadable file is an
// error; the caller treats it as fatal.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Parse validates raw YAML against the preference schema and decodes it.
func Parse(data []byte) (*Spec, error) {
	if errs := validation.ValidatePrefsBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid preference document:\n  %s", strings.Join(errs, "\n  "))
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}

	spec := Default()
	spec.RecipeName = strings.TrimSpace(doc.RecipeName)
	applyBound(&spec.Calories.Min, doc.CalMin)
	applyBound(&spec.Calories.Max, doc.CalMax)
	applyBound(&spec.Fat.Min, doc.FatMin)
	applyBound(&spec.Fat.Max, doc.FatMax)
	applyBound(&spec.Protein.Min, doc.ProtMin)
	applyBound(&spec.Protein.Max, doc.ProtMax)
	applyBound(&spec.Minutes.Min, doc.MinutesMin)
	applyBound(&spec.Minutes.Max, doc.MinutesMax)
	applyBound(&spec.Rating.Min, doc.RatingMin)
	applyBound(&spec.Rating.Max, doc.RatingMax)
	spec.Liked = cleanList(doc.IngredientsLiked)
	spec.Disliked = cleanList(doc.IngredientsDisliked)
	spec.WeightOverrides = doc.Weights

	spec.warnUnsatisfiable()
	return spec, nil
}

// warnUnsatisfiable logs inverted ranges. The ranges are kept as given: the
// criterion simply never passes.
func (s *Spec) warnUnsatisfiable() {
	ranges := []struct {
		name string
		r    Range
	}{
		{"calories", s.Calories},
		{"fat", s.Fat},
		{"protein", s.Protein},
		{"minutes", s.Minutes},
		{"rating", s.Rating},
	}
	for _, nr := range ranges {
		if nr.r.Unsatisfiable() {
			slog.Warn("range min exceeds max, criterion can never be satisfied",
				"range", nr.name, "min", nr.r.Min, "max", nr.r.Max)
		}
	}
}

func applyBound(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
