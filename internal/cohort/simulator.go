// Package cohort fabricates simulated rosters and comment corpora for
// catalog courses. Output is a pure function of the course and the state of
// the injected random source.
package cohort

import (
	"math"
	"math/rand"

	"github.com/alexanderramin/atlas/internal/domain"
)

const (
	MinStudents       = 12
	MaxStudents       = 22
	MaxNonBinary      = 3
	DefaultCorpusSize = 150
)

// Source is the subset of *rand.Rand the simulator consumes.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSkewPolicy replaces the male-fraction policy table.
func WithSkewPolicy(p SkewPolicy) Option {
	return func(s *Simulator) { s.skew = p }
}

// WithVocabularyPolicy replaces the vocabulary policy table.
func WithVocabularyPolicy(p VocabularyPolicy) Option {
	return func(s *Simulator) { s.vocab = p }
}

// WithFemalePolicy selects how negative female counts are handled.
func WithFemalePolicy(p domain.FemalePolicy) Option {
	return func(s *Simulator) { s.female = p }
}

// WithCorpusSize overrides the number of comment tokens per cohort.
func WithCorpusSize(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.corpusSize = n
		}
	}
}

// Simulator derives a Cohort for each course.
type Simulator struct {
	src        Source
	skew       SkewPolicy
	vocab      VocabularyPolicy
	female     domain.FemalePolicy
	corpusSize int
}

// NewSimulator creates a Simulator drawing from src.
func NewSimulator(src Source, opts ...Option) *Simulator {
	s := &Simulator{
		src:        src,
		skew:       DefaultSkewPolicy(),
		vocab:      DefaultVocabularyPolicy(),
		female:     domain.FemaleClamp,
		corpusSize: DefaultCorpusSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate produces one cohort for c. The draw order is fixed (roster size,
// male fraction, non-binary count, corpus) so that a seeded source yields
// identical cohorts across runs.
func (s *Simulator) Simulate(c domain.Course) domain.Cohort {
	total := MinStudents + s.src.Intn(MaxStudents-MinStudents+1)

	rule := s.skew.Resolve(c)
	fraction := rule.Min + s.src.Float64()*(rule.Max-rule.Min)

	male := int(math.Floor(float64(total) * fraction))
	nonBinary := s.src.Intn(MaxNonBinary + 1)
	female := total - male - nonBinary

	adjusted := false
	if female < 0 && s.female != domain.FemaleUnclamped {
		female = 0
		nonBinary = total - male
		adjusted = true
	}

	vocab := s.vocab.Resolve(c)

	return domain.Cohort{
		TotalStudents: total,
		Gender: domain.GenderCounts{
			Male:      male,
			Female:    female,
			NonBinary: nonBinary,
		},
		MaleFraction:   fraction,
		MalePercentage: domain.RoundTo2(float64(male) / float64(total)),
		Vocabulary:     vocab.Name,
		CommentCorpus:  s.drawCorpus(vocab.Words),
		Adjusted:       adjusted,
	}
}

// Enrich simulates every course in order.
func (s *Simulator) Enrich(courses []domain.Course) []domain.EnrichedCourse {
	out := make([]domain.EnrichedCourse, 0, len(courses))
	for _, c := range courses {
		out = append(out, domain.EnrichedCourse{Course: c, Cohort: s.Simulate(c)})
	}
	return out
}

func (s *Simulator) drawCorpus(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	corpus := make([]string, s.corpusSize)
	for i := range corpus {
		corpus[i] = words[s.src.Intn(len(words))]
	}
	return corpus
}
