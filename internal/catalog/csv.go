package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// FieldCount is the number of ordered fields in a catalog row: id,
// avg_rating, review_count, minutes, calories, protein, fat, name,
// ingredients, tags.
const FieldCount = 10

// listSeparator splits the ingredients and tags fields into their entries.
const listSeparator = ";"

// Read loads the recipe catalog at path. Files ending in .gz are
// decompressed transparently (the upstream dataset ships compressed).
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("catalog: gzip %s: %w", path, err)
		}
		defer zr.Close() //nolint:errcheck
		r = zr
	}

	records, err := ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return records, nil
}

// ReadFrom parses catalog rows from r. The first row is a header and is
// discarded. Rows with missing trailing fields or unparseable numbers keep
// zero values for the affected attributes and log a per-row warning.
func ReadFrom(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog is empty (no header row)")
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, incomplete := parseRow(row)
		if incomplete {
			// Row 1 is the header, so data rows start at 2.
			slog.Warn("catalog row has missing or malformed fields, zero-filling",
				"row", i+2, "fields", len(row), "id", rec.ID)
		}
		records = append(records, rec)
	}

	slog.Debug("catalog loaded", "records", len(records))
	return records, nil
}

// parseRow maps the ten positional fields onto a Record. It reports whether
// any field was missing or failed to parse.
func parseRow(row []string) (Record, bool) {
	incomplete := len(row) < FieldCount

	field := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	parseInt := func(s string) int {
		if s == "" {
			return 0
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			incomplete = true
			return 0
		}
		return v
	}
	parseFloat := func(s string) float64 {
		if s == "" {
			return 0
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			incomplete = true
			return 0
		}
		return v
	}

	rec := Record{
		ID:          parseInt(field(0)),
		AvgRating:   parseFloat(field(1)),
		ReviewCount: parseInt(field(2)),
		Minutes:     parseInt(field(3)),
		Calories:    parseFloat(field(4)),
		Protein:     parseFloat(field(5)),
		Fat:         parseFloat(field(6)),
		Name:        field(7),
		Ingredients: splitList(field(8)),
		Tags:        splitList(field(9)),
	}
	return rec, incomplete
}

// splitList splits a ";"-separated sub-list field, trimming each entry and
// dropping empties.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, listSeparator) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
