// Package ranking totally orders scored recipes and selects the top
// results.
package ranking

import (
	"sort"

	"github.com/platematch/platematch/internal/catalog"
	"github.com/platematch/platematch/internal/scoring"
)

// DefaultTopN is the number of matches a run emits unless asked otherwise.
const DefaultTopN = 3

// Scored pairs a catalog record with its scoring outcome.
type Scored struct {
	Record  catalog.Record
	Scoring scoring.Result
}

// Top returns the n highest-scoring records ordered by descending score.
// Equal scores are broken by ascending record id, so the order is
// deterministic. The input is not modified. When the catalog holds fewer
// than n records, all of them are returned.
func Top(scored []Scored, n int) []Scored {
	out := make([]Scored, len(scored))
	copy(out, scored)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Scoring.Score != out[j].Scoring.Score {
			return out[i].Scoring.Score > out[j].Scoring.Score
		}
		return out[i].Record.ID < out[j].Record.ID
	})

	if n < 0 {
		n = 0
	}
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}
