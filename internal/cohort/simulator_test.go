package cohort

import (
	"math"
	"testing"

	"github.com/alexanderramin/atlas/internal/catalog"
	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed ints and floats, then returns zeros.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func courseByName(t *testing.T, name string) domain.Course {
	t.Helper()
	for _, c := range catalog.Load() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("course %q not in catalog", name)
	return domain.Course{}
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}

// TestSimulate_Invariants_AllCatalogCourses property-tests the roster and
// corpus invariants across many seeds.
func TestSimulate_Invariants_AllCatalogCourses(t *testing.T) {
	courses := catalog.Load()

	for seed := int64(0); seed < 200; seed++ {
		sim := NewSimulator(NewSeededSource(seed))
		for _, c := range courses {
			co := sim.Simulate(c)

			assert.GreaterOrEqual(t, co.TotalStudents, MinStudents, "seed %d %s", seed, c.Name)
			assert.LessOrEqual(t, co.TotalStudents, MaxStudents, "seed %d %s", seed, c.Name)

			assert.Equal(t, co.TotalStudents, co.Gender.Total(),
				"seed %d %s: counts must sum to roster", seed, c.Name)
			assert.GreaterOrEqual(t, co.Gender.Female, 0, "seed %d %s", seed, c.Name)
			assert.GreaterOrEqual(t, co.Gender.NonBinary, 0, "seed %d %s", seed, c.Name)
			assert.LessOrEqual(t, co.Gender.NonBinary, MaxNonBinary, "seed %d %s", seed, c.Name)

			assert.GreaterOrEqual(t, co.MalePercentage, 0.0)
			assert.LessOrEqual(t, co.MalePercentage, 1.0)
			want := math.Round(float64(co.Gender.Male)/float64(co.TotalStudents)*100) / 100
			assert.Equal(t, want, co.MalePercentage, "seed %d %s", seed, c.Name)

			rule := DefaultSkewPolicy().Resolve(c)
			assert.GreaterOrEqual(t, co.MaleFraction, rule.Min, "seed %d %s", seed, c.Name)
			assert.LessOrEqual(t, co.MaleFraction, rule.Max, "seed %d %s", seed, c.Name)

			vocab := DefaultVocabularyPolicy().Resolve(c)
			require.Len(t, co.CommentCorpus, DefaultCorpusSize)
			for _, w := range co.CommentCorpus {
				assert.True(t, contains(vocab.Words, w), "seed %d %s: %q not in %s", seed, c.Name, w, vocab.Name)
			}
		}
	}
}

func TestSimulate_AdvancedChemistry_UsesRigorAndMaleSkew(t *testing.T) {
	chem := courseByName(t, "UAS Adv Chemistry")

	rule := DefaultSkewPolicy().Resolve(chem)
	assert.Equal(t, "advanced_stem", rule.Name)
	assert.Equal(t, 0.60, rule.Min)
	assert.Equal(t, 0.85, rule.Max)

	co := NewSimulator(NewSeededSource(7)).Simulate(chem)
	assert.Equal(t, "rigor", co.Vocabulary)
	assert.GreaterOrEqual(t, co.MaleFraction, 0.60)
	assert.LessOrEqual(t, co.MaleFraction, 0.85)
	for _, w := range co.CommentCorpus {
		assert.True(t, contains(RigorWords, w) || contains(StandardWords, w), w)
	}
}

func TestSimulate_QueerTheater_UsesFemaleSkew(t *testing.T) {
	c := courseByName(t, "History of Queer Theater")
	assert.Equal(t, domain.TypeElective, c.Type)

	rule := DefaultSkewPolicy().Resolve(c)
	assert.Equal(t, "gender_themed", rule.Name)
	assert.Equal(t, 0.10, rule.Min)
	assert.Equal(t, 0.30, rule.Max)

	co := NewSimulator(NewSeededSource(7)).Simulate(c)
	assert.Equal(t, "inclusive", co.Vocabulary)
}

func TestSkewPolicy_Branches(t *testing.T) {
	tests := []struct {
		name   string
		course domain.Course
		want   string
	}{
		{"advanced math", domain.Course{Name: "UAS Calculus", Department: domain.DeptMath, Type: domain.TypeAdvanced}, "advanced_stem"},
		{"elective science", domain.Course{Name: "Neuroscience", Department: domain.DeptScience, Type: domain.TypeElective}, "balanced"},
		{"women in name", domain.Course{Name: "UAS Women's US History", Department: domain.DeptHistory, Type: domain.TypeElective}, "gender_themed"},
		{"gender tag", domain.Course{Name: "Seminar", Department: domain.DeptHistory, Tag: "Gender"}, "gender_themed"},
		{"lgbtq tag", domain.Course{Name: "Seminar", Department: domain.DeptHistory, Tag: "LGBTQ+"}, "gender_themed"},
		{"advanced history", domain.Course{Name: "UAS Making America", Department: domain.DeptHistory, Type: domain.TypeAdvanced}, "balanced"},
		// Branch order resolves overlaps: advanced STEM wins over a gender tag.
		{"tie by order", domain.Course{Name: "Women in Physics", Department: domain.DeptScience, Type: domain.TypeAdvanced, Tag: "Gender"}, "advanced_stem"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultSkewPolicy().Resolve(tt.course).Name)
		})
	}
}

func TestVocabularyPolicy_Branches(t *testing.T) {
	tests := []struct {
		name   string
		course domain.Course
		want   string
	}{
		{"advanced science high focus", domain.Course{Department: domain.DeptScience, Type: domain.TypeAdvanced, Focus: domain.FocusHigh}, "rigor"},
		{"advanced history", domain.Course{Department: domain.DeptHistory, Type: domain.TypeAdvanced, Focus: domain.FocusHigh}, "inclusive"},
		{"high focus elective", domain.Course{Department: domain.DeptMath, Type: domain.TypeElective, Focus: domain.FocusHigh}, "inclusive"},
		{"medium focus", domain.Course{Department: domain.DeptMath, Type: domain.TypeRequired, Focus: domain.FocusMedium}, "standard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultVocabularyPolicy().Resolve(tt.course).Name)
		})
	}
}

func TestSimulate_SameSeedSameCohorts(t *testing.T) {
	courses := catalog.Load()
	a := NewSimulator(NewSeededSource(42)).Enrich(courses)
	b := NewSimulator(NewSeededSource(42)).Enrich(courses)
	assert.Equal(t, a, b)

	c := NewSimulator(NewSeededSource(43)).Enrich(courses)
	assert.NotEqual(t, a, c)
}

func TestEnrich_PreservesOrder(t *testing.T) {
	courses := catalog.Load()
	rows := NewSimulator(NewSeededSource(1)).Enrich(courses)
	require.Len(t, rows, len(courses))
	for i := range courses {
		assert.Equal(t, courses[i], rows[i].Course)
	}
}

func TestSimulate_SmallRosterHighSkew_Clamped(t *testing.T) {
	chem := courseByName(t, "UAS Adv Chemistry")
	// total = 12, fraction ≈ 0.85 → male = 10, nonBinary = 3 → female = -1.
	src := &scriptedSource{ints: []int{0, 3}, floats: []float64{0.9999}}

	co := NewSimulator(src).Simulate(chem)
	assert.Equal(t, 12, co.TotalStudents)
	assert.Equal(t, 10, co.Gender.Male)
	assert.Equal(t, 0, co.Gender.Female)
	assert.Equal(t, 2, co.Gender.NonBinary)
	assert.True(t, co.Adjusted)
	assert.True(t, co.Balanced())
}

func TestSimulate_SmallRosterHighSkew_Unclamped(t *testing.T) {
	chem := courseByName(t, "UAS Adv Chemistry")
	src := &scriptedSource{ints: []int{0, 3}, floats: []float64{0.9999}}

	co := NewSimulator(src, WithFemalePolicy(domain.FemaleUnclamped)).Simulate(chem)
	assert.Equal(t, -1, co.Gender.Female)
	assert.Equal(t, 3, co.Gender.NonBinary)
	assert.False(t, co.Adjusted)
	assert.Equal(t, co.TotalStudents, co.Gender.Total())
}

func TestSimulate_CustomPolicies(t *testing.T) {
	skew := SkewPolicy{{Name: "all_male", Min: 1, Max: 1}}
	vocab := VocabularyPolicy{{Name: "one", Words: []string{"only"}}}

	sim := NewSimulator(NewSeededSource(3),
		WithSkewPolicy(skew),
		WithVocabularyPolicy(vocab),
		WithCorpusSize(10),
	)
	co := sim.Simulate(domain.Course{Name: "X", Department: domain.DeptMath, Type: domain.TypeRequired})

	assert.Equal(t, co.TotalStudents, co.Gender.Male+co.Gender.NonBinary)
	assert.Equal(t, 1.0, co.MalePercentage)
	assert.Equal(t, "one", co.Vocabulary)
	assert.Len(t, co.CommentCorpus, 10)
	for _, w := range co.CommentCorpus {
		assert.Equal(t, "only", w)
	}
}

func TestSkewPolicy_EmptyFallsBackToBalanced(t *testing.T) {
	r := SkewPolicy(nil).Resolve(domain.Course{})
	assert.Equal(t, "balanced", r.Name)
	assert.Equal(t, 0.40, r.Min)
	assert.Equal(t, 0.60, r.Max)
}
