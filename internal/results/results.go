// Package results defines the result artifact: the ordered (id, score)
// pairs handed to whoever consumes the run.
package results

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// Entry is one row of the result artifact.
type Entry struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

// Round3 rounds a score to three decimal places, the artifact's precision.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Write emits entries as a JSON array in their given order, with scores
// rounded to three decimals.
func Write(w io.Writer, entries []Entry) error {
	rounded := make([]Entry, len(entries))
	for i, e := range entries {
		rounded[i] = Entry{ID: e.ID, Score: Round3(e.Score)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rounded); err != nil {
		return fmt.Errorf("results: encoding: %w", err)
	}
	return nil
}

// Save writes the artifact to path. Nothing is written on encoding errors
// beyond what had already been flushed; callers only invoke Save after a
// successful run.
func Save(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("results: create %s: %w", path, err)
	}

	if err := Write(f, entries); err != nil {
		f.Close() //nolint:errcheck
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("results: close %s: %w", path, err)
	}
	return nil
}
