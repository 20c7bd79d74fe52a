package matcher

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platematch/platematch/internal/catalog"
	"github.com/platematch/platematch/internal/prefs"
	"github.com/platematch/platematch/internal/weights"
)

func testCatalog() []catalog.Record {
	// Scores under a "liked garlic, disliked sugar, under 30 minutes"
	// query separate cleanly: 1.0, 7/9, 8/9.
	return []catalog.Record{
		{ID: 1, AvgRating: 4.0, Minutes: 20, Calories: 400, Protein: 20, Fat: 10,
			Name: "Garlic Noodles", Ingredients: []string{"garlic", "noodles"}},
		{ID: 2, AvgRating: 4.0, Minutes: 20, Calories: 400, Protein: 20, Fat: 10,
			Name: "Candied Garlic", Ingredients: []string{"garlic", "sugar"}},
		{ID: 3, AvgRating: 4.0, Minutes: 90, Calories: 400, Protein: 20, Fat: 10,
			Name: "Slow Garlic Roast", Ingredients: []string{"garlic", "beef"}},
	}
}

func testSpec() *prefs.Spec {
	spec := prefs.Default()
	spec.Minutes = prefs.Range{Min: 0, Max: 30}
	spec.Liked = []string{"garlic"}
	spec.Disliked = []string{"sugar"}
	return spec
}

func TestRun_RanksDescending(t *testing.T) {
	runner := &Runner{Prefs: testSpec(), Weights: weights.Default()}

	top, err := runner.Run(context.Background(), testCatalog())
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, 1, top[0].Record.ID)
	assert.Equal(t, 1.0, top[0].Scoring.Score)
	assert.Equal(t, 3, top[1].Record.ID)
	assert.InDelta(t, 8.0/9.0, top[1].Scoring.Score, 1e-9)
	assert.Equal(t, 2, top[2].Record.ID)
	assert.InDelta(t, 7.0/9.0, top[2].Scoring.Score, 1e-9)
}

func TestRun_TopNDefaultsToThree(t *testing.T) {
	records := testCatalog()
	for i := 4; i <= 10; i++ {
		records = append(records, catalog.Record{ID: i, Minutes: 20, AvgRating: 4})
	}

	runner := &Runner{Prefs: testSpec(), Weights: weights.Default()}
	top, err := runner.Run(context.Background(), records)
	require.NoError(t, err)
	assert.Len(t, top, 3)
}

func TestRun_FewerRecordsThanTopN(t *testing.T) {
	runner := &Runner{Prefs: testSpec(), Weights: weights.Default()}

	top, err := runner.Run(context.Background(), testCatalog()[:2])
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestRun_EmptyCatalog(t *testing.T) {
	runner := &Runner{Prefs: testSpec(), Weights: weights.Default()}

	top, err := runner.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	var records []catalog.Record
	for i := 1; i <= 200; i++ {
		rec := catalog.Record{
			ID:        i,
			AvgRating: 4.0,
			Minutes:   i % 60,
			Calories:  float64(200 + i),
			Protein:   20,
			Fat:       10,
			Name:      fmt.Sprintf("Recipe %d", i),
		}
		if i%3 == 0 {
			rec.Ingredients = []string{"garlic"}
		}
		if i%5 == 0 {
			rec.Ingredients = append(rec.Ingredients, "sugar")
		}
		records = append(records, rec)
	}

	sequential := &Runner{Prefs: testSpec(), Weights: weights.Default(),
		Options: Options{TopN: 10}}
	parallel := &Runner{Prefs: testSpec(), Weights: weights.Default(),
		Options: Options{TopN: 10, Parallel: true, Workers: 8}}

	seqTop, err := sequential.Run(context.Background(), records)
	require.NoError(t, err)
	parTop, err := parallel.Run(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, seqTop, parTop)
}

func TestEntries(t *testing.T) {
	runner := &Runner{Prefs: testSpec(), Weights: weights.Default()}
	top, err := runner.Run(context.Background(), testCatalog())
	require.NoError(t, err)

	entries := Entries(top)
	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, 1.0, entries[0].Score)
	assert.Equal(t, 2, entries[2].ID)
}
