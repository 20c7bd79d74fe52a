// Package catalog reads the row-oriented recipe catalog consumed by the
// scoring engine.
package catalog

// Record is one recipe row. Each record owns its ingredient and tag lists;
// nothing is shared across records.
type Record struct {
	ID          int
	AvgRating   float64
	ReviewCount int
	Minutes     int
	Calories    float64
	Protein     float64
	Fat         float64
	Name        string
	Ingredients []string
	Tags        []string
}
