package domain

import (
	"math"
	"time"
)

// GenderCounts is the simulated roster breakdown of one cohort.
type GenderCounts struct {
	Male      int
	Female    int
	NonBinary int
}

// Total returns the sum of all counts.
func (g GenderCounts) Total() int {
	return g.Male + g.Female + g.NonBinary
}

// Cohort is the simulated student population and comment corpus attached to
// one course for a single enrichment pass. It is never persisted.
type Cohort struct {
	TotalStudents  int
	Gender         GenderCounts
	MaleFraction   float64 // sampled fraction, before flooring
	MalePercentage float64 // Male / TotalStudents rounded to 2 places
	Vocabulary     string
	CommentCorpus  []string

	// Adjusted is set when the female count had to be clamped at zero.
	Adjusted bool
}

// Balanced reports whether the gender counts sum to the roster size.
func (c Cohort) Balanced() bool {
	return c.Gender.Total() == c.TotalStudents
}

// EnrichedCourse is one row of the enriched table: a catalog record plus its
// simulated cohort.
type EnrichedCourse struct {
	Course
	Cohort Cohort
}

// Snapshot is one enrichment pass over the whole catalog.
type Snapshot struct {
	ID                 string
	Seed               int64
	GeneratedAt        time.Time
	CatalogFingerprint uint64
	Rows               []EnrichedCourse
}

// RoundTo2 rounds v to two decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
