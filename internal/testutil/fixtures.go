package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/atlas/internal/catalog"
	"github.com/alexanderramin/atlas/internal/cohort"
	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/google/uuid"
)

var testCourseCounter atomic.Int64

// Course options
type CourseOption func(*domain.Course)

func WithDepartment(d domain.Department) CourseOption {
	return func(c *domain.Course) {
		c.Department = d
	}
}

func WithCourseType(t domain.CourseType) CourseOption {
	return func(c *domain.Course) {
		c.Type = t
	}
}

func WithFocus(f domain.DEIBFocus) CourseOption {
	return func(c *domain.Course) {
		c.Focus = f
	}
}

func WithTag(tag string) CourseOption {
	return func(c *domain.Course) {
		c.Tag = tag
	}
}

func WithHomework(h float64) CourseOption {
	return func(c *domain.Course) {
		c.HomeworkHours = h
	}
}

// NewTestCourse builds a valid Math/Required/Low course. An empty name gets
// a unique generated one.
func NewTestCourse(name string, opts ...CourseOption) domain.Course {
	if name == "" {
		name = "Test Course " + string(rune('A'+testCourseCounter.Add(1)%26))
	}
	c := domain.Course{
		Name:          name,
		Department:    domain.DeptMath,
		Type:          domain.TypeRequired,
		Focus:         domain.FocusLow,
		Tag:           domain.TagNone,
		HomeworkHours: 3.0,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// EnrichedCatalog simulates the full catalog with a fixed seed.
func EnrichedCatalog(seed int64) []domain.EnrichedCourse {
	return cohort.NewSimulator(cohort.NewSeededSource(seed)).Enrich(catalog.Load())
}

// NewTestEnriched attaches a fixed, balanced cohort to c.
func NewTestEnriched(c domain.Course, male, female, nonBinary int) domain.EnrichedCourse {
	total := male + female + nonBinary
	pct := 0.0
	if total > 0 {
		pct = domain.RoundTo2(float64(male) / float64(total))
	}
	return domain.EnrichedCourse{
		Course: c,
		Cohort: domain.Cohort{
			TotalStudents:  total,
			Gender:         domain.GenderCounts{Male: male, Female: female, NonBinary: nonBinary},
			MalePercentage: pct,
			Vocabulary:     "standard",
			CommentCorpus:  []string{"clear", "fun", "clear"},
		},
	}
}

// NewTestSnapshot wraps the seeded, enriched catalog in a Snapshot.
func NewTestSnapshot(seed int64) *domain.Snapshot {
	rows := EnrichedCatalog(seed)
	fp, _ := catalog.Fingerprint(catalog.Load())
	return &domain.Snapshot{
		ID:                 uuid.New().String(),
		Seed:               seed,
		GeneratedAt:        time.Now().UTC().Truncate(time.Second),
		CatalogFingerprint: fp,
		Rows:               rows,
	}
}
