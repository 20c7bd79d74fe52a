package weights

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Config holds the coefficient for each scoring criterion class. All values
// are non-negative. A Config is loaded once at startup and treated as
// read-only for the rest of the run.
type Config struct {
	Name     float64 `mapstructure:"weight_name"`
	Calories float64 `mapstructure:"weight_cal"`
	Fat      float64 `mapstructure:"weight_fat"`
	Protein  float64 `mapstructure:"weight_prot"`
	Time     float64 `mapstructure:"weight_time"`
	Rating   float64 `mapstructure:"weight_rating"`
	Liked    float64 `mapstructure:"weight_liked"`
	Disliked float64 `mapstructure:"weight_disliked"`
}

// Default returns the built-in weight configuration. The name match counts
// for the most, each ingredient preference counts double a range criterion.
func Default() Config {
	return Config{
		Name:     5.0,
		Calories: 1.0,
		Fat:      1.0,
		Protein:  1.0,
		Time:     1.0,
		Rating:   1.0,
		Liked:    2.0,
		Disliked: 2.0,
	}
}

// Load reads a weight configuration file. A missing or unreadable file is
// non-fatal: the defaults are returned and a warning is logged.
func Load(path string) Config {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("weight file unavailable, using defaults", "path", path, "error", err)
		return Default()
	}
	defer f.Close() //nolint:errcheck

	cfg := Parse(f)
	slog.Debug("loaded weight configuration", "path", path)
	return cfg
}

// Parse reads line-oriented "key = value" entries. Blank lines and lines
// starting with # are skipped, unknown keys are ignored, and each recognized
// key overrides only its own default. A malformed or negative value keeps
// the default for that key and logs a warning.
func Parse(r io.Reader) Config {
	cfg := Default()

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, rawValue, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)

		target := cfg.field(key)
		if target == nil {
			slog.Debug("ignoring unknown weight key", "line", lineNo, "key", key)
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
		if err != nil {
			slog.Warn("ignoring malformed weight value, keeping default", "line", lineNo, "key", key)
			continue
		}
		if value < 0 {
			slog.Warn("ignoring negative weight, keeping default", "line", lineNo, "key", key, "value", value)
			continue
		}
		*target = value
	}
	if err := sc.Err(); err != nil {
		slog.Warn("error reading weight file, keeping values parsed so far", "error", err)
	}

	return cfg
}

// WithOverrides applies the inline "weights:" section of a preference
// document on top of c. Keys are the same as in the weight file; unknown
// keys are ignored, negative values keep the current coefficient.
func (c Config) WithOverrides(overrides map[string]any) (Config, error) {
	if len(overrides) == 0 {
		return c, nil
	}

	out := c
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return c, fmt.Errorf("weights: building decoder: %w", err)
	}
	if err := dec.Decode(overrides); err != nil {
		return c, fmt.Errorf("weights: decoding inline overrides: %w", err)
	}

	out.clampNegatives(c)
	return out, nil
}

// clampNegatives restores prev's coefficient wherever an override went
// negative, keeping the non-negativity invariant.
func (c *Config) clampNegatives(prev Config) {
	fields := []struct {
		key  string
		cur  *float64
		prev float64
	}{
		{"weight_name", &c.Name, prev.Name},
		{"weight_cal", &c.Calories, prev.Calories},
		{"weight_fat", &c.Fat, prev.Fat},
		{"weight_prot", &c.Protein, prev.Protein},
		{"weight_time", &c.Time, prev.Time},
		{"weight_rating", &c.Rating, prev.Rating},
		{"weight_liked", &c.Liked, prev.Liked},
		{"weight_disliked", &c.Disliked, prev.Disliked},
	}
	for _, f := range fields {
		if *f.cur < 0 {
			slog.Warn("ignoring negative weight override", "key", f.key, "value", *f.cur)
			*f.cur = f.prev
		}
	}
}

func (c *Config) field(key string) *float64 {
	switch key {
	case "weight_name":
		return &c.Name
	case "weight_cal":
		return &c.Calories
	case "weight_fat":
		return &c.Fat
	case "weight_prot":
		return &c.Protein
	case "weight_time":
		return &c.Time
	case "weight_rating":
		return &c.Rating
	case "weight_liked":
		return &c.Liked
	case "weight_disliked":
		return &c.Disliked
	}
	return nil
}
