// Package matcher orchestrates one ranking run: score every catalog record
// against the loaded preferences and weights, then rank and select the top
// matches.
package matcher

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/platematch/platematch/internal/catalog"
	"github.com/platematch/platematch/internal/prefs"
	"github.com/platematch/platematch/internal/ranking"
	"github.com/platematch/platematch/internal/results"
	"github.com/platematch/platematch/internal/scoring"
	"github.com/platematch/platematch/internal/weights"
)

const defaultWorkers = 4

// Options control a single run.
type Options struct {
	// TopN is the number of matches to return; ranking.DefaultTopN when
	// zero.
	TopN int
	// Parallel scores records concurrently. Purely a throughput option:
	// scoring is pure per record, so results are identical either way.
	Parallel bool
	// Workers bounds concurrent scoring when Parallel is set. Defaults
	// to 4.
	Workers int
}

// Runner wires the scoring engine and ranker for one run. Prefs and
// Weights are read-only once the run starts.
type Runner struct {
	Prefs   *prefs.Spec
	Weights weights.Config
	Options Options
}

// Run scores every record and returns the ranked top matches.
func (r *Runner) Run(ctx context.Context, records []catalog.Record) ([]ranking.Scored, error) {
	start := time.Now()

	scored := make([]ranking.Scored, len(records))
	scoreOne := func(i int) {
		scored[i] = ranking.Scored{
			Record:  records[i],
			Scoring: scoring.Score(records[i], r.Prefs, r.Weights),
		}
	}

	if r.Options.Parallel && len(records) > 1 {
		workers := r.Options.Workers
		if workers <= 0 {
			workers = defaultWorkers
		}

		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := range records {
			g.Go(func() error {
				scoreOne(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range records {
			scoreOne(i)
		}
	}

	topN := r.Options.TopN
	if topN == 0 {
		topN = ranking.DefaultTopN
	}
	top := ranking.Top(scored, topN)

	slog.Debug("ranking run complete",
		"records", len(records),
		"top", len(top),
		"parallel", r.Options.Parallel,
		"duration", time.Since(start))
	return top, nil
}

// Entries converts ranked matches into the result artifact shape.
func Entries(top []ranking.Scored) []results.Entry {
	entries := make([]results.Entry, len(top))
	for i, sc := range top {
		entries[i] = results.Entry{ID: sc.Record.ID, Score: sc.Scoring.Score}
	}
	return entries
}
