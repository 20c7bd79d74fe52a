// Package scoring computes the preference-weighted match score for a single
// recipe record. Scoring is a pure function of the record plus the already
// loaded preferences and weights, so records can be scored in any order or
// concurrently.
package scoring

import (
	"strings"

	"github.com/platematch/platematch/internal/catalog"
	"github.com/platematch/platematch/internal/prefs"
	"github.com/platematch/platematch/internal/weights"
)

// Criterion is the outcome of one binary rule: fully satisfied or not, no
// partial credit.
type Criterion struct {
	Name      string
	Weight    float64
	Satisfied bool
}

// Result is the normalized score for one record plus the per-criterion
// breakdown behind it.
type Result struct {
	// Score is Achieved/Possible, in [0,1]. Zero when no criterion
	// carried any weight.
	Score    float64
	Achieved float64
	Possible float64
	Criteria []Criterion
}

// Score evaluates rec against the preference spec under the given weights.
//
// The name criterion is only evaluated when the spec names a target; the
// time, calories, fat, protein and rating range criteria always are. Each
// liked ingredient is its own presence criterion and each disliked
// ingredient its own absence criterion.
func Score(rec catalog.Record, spec *prefs.Spec, w weights.Config) Result {
	var res Result

	add := func(name string, weight float64, satisfied bool) {
		res.Possible += weight
		if satisfied {
			res.Achieved += weight
		}
		res.Criteria = append(res.Criteria, Criterion{Name: name, Weight: weight, Satisfied: satisfied})
	}

	if spec.RecipeName != "" {
		add("name", w.Name, containsFold(rec.Name, spec.RecipeName))
	}

	add("time", w.Time, spec.Minutes.Contains(float64(rec.Minutes)))
	add("calories", w.Calories, spec.Calories.Contains(rec.Calories))
	add("fat", w.Fat, spec.Fat.Contains(rec.Fat))
	add("protein", w.Protein, spec.Protein.Contains(rec.Protein))
	add("rating", w.Rating, spec.Rating.Contains(rec.AvgRating))

	for _, ing := range spec.Liked {
		add("liked:"+ing, w.Liked, anyContainsFold(rec.Ingredients, ing))
	}
	for _, ing := range spec.Disliked {
		// Success is absence: the recipe avoids the ingredient.
		add("disliked:"+ing, w.Disliked, !anyContainsFold(rec.Ingredients, ing))
	}

	if res.Possible > 0 {
		res.Score = res.Achieved / res.Possible
	}
	return res
}

// containsFold reports whether s contains substr, case-insensitively and
// unanchored: a liked term "egg" matches the ingredient "eggplant".
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyContainsFold(items []string, substr string) bool {
	for _, item := range items {
		if containsFold(item, substr) {
			return true
		}
	}
	return false
}
