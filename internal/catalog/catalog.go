// Package catalog holds the compiled-in course catalog for the Math, Science
// and History departments.
package catalog

import (
	"fmt"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/mitchellh/hashstructure/v2"
)

const (
	math    = domain.DeptMath
	science = domain.DeptScience
	history = domain.DeptHistory

	required = domain.TypeRequired
	elective = domain.TypeElective
	advanced = domain.TypeAdvanced

	low    = domain.FocusLow
	medium = domain.FocusMedium
	high   = domain.FocusHigh
)

var courses = [...]domain.Course{
	// Math
	{Name: "Math 1A/1B", Department: math, Type: required, Focus: medium, Tag: "Inclusive Pedagogy", HomeworkHours: 2.5},
	{Name: "Math 2A/2B", Department: math, Type: required, Focus: low, Tag: domain.TagNone, HomeworkHours: 3.0},
	{Name: "Math 3A/3B", Department: math, Type: required, Focus: low, Tag: domain.TagNone, HomeworkHours: 3.5},
	{Name: "Data Science", Department: math, Type: elective, Focus: high, Tag: "Ethics & Bias", HomeworkHours: 3.5},
	{Name: "Statistics", Department: math, Type: elective, Focus: medium, Tag: "Social Science Data", HomeworkHours: 3.0},
	{Name: "UAS Calculus", Department: math, Type: advanced, Focus: low, Tag: domain.TagNone, HomeworkHours: 5.5},
	{Name: "UAS Infinity", Department: math, Type: advanced, Focus: medium, Tag: "Philosophy", HomeworkHours: 5.0},

	// Science
	{Name: "Fundamentals of Science 1", Department: science, Type: required, Focus: low, Tag: domain.TagNone, HomeworkHours: 2.5},
	{Name: "Fundamentals of Science 2", Department: science, Type: required, Focus: medium, Tag: "Evolution/Genetics", HomeworkHours: 3.0},
	{Name: "Applied Physics: Electronics", Department: science, Type: elective, Focus: low, Tag: domain.TagNone, HomeworkHours: 2.5},
	{Name: "Marine Biology", Department: science, Type: elective, Focus: medium, Tag: "Environmental Justice", HomeworkHours: 3.0},
	{Name: "Neuroscience", Department: science, Type: elective, Focus: low, Tag: domain.TagNone, HomeworkHours: 3.5},
	{Name: "Climate Change: Challenges", Department: science, Type: elective, Focus: high, Tag: "Social Justice", HomeworkHours: 3.0},
	{Name: "UAS Adv Biology: Genetics", Department: science, Type: advanced, Focus: high, Tag: "Bioethics/Race", HomeworkHours: 5.0},
	{Name: "UAS Adv Biology: Infectious Disease", Department: science, Type: advanced, Focus: high, Tag: "Global Health Equity", HomeworkHours: 5.0},
	{Name: "UAS Adv Chemistry", Department: science, Type: advanced, Focus: low, Tag: domain.TagNone, HomeworkHours: 6.0},
	{Name: "UAS Adv Physics: Mechanics", Department: science, Type: advanced, Focus: low, Tag: domain.TagNone, HomeworkHours: 5.5},
	{Name: "UAS Env Sci: Physical Resources", Department: science, Type: advanced, Focus: high, Tag: "Sustainability", HomeworkHours: 4.5},

	// History
	{Name: "World History A (Ottoman)", Department: history, Type: required, Focus: high, Tag: "Religious Minorities", HomeworkHours: 3.0},
	{Name: "World History B (Japan)", Department: history, Type: required, Focus: high, Tag: "Non-Western Perspectives", HomeworkHours: 3.0},
	{Name: "UAS Making America", Department: history, Type: required, Focus: high, Tag: "Indigeneity/Slavery", HomeworkHours: 4.5},
	{Name: "UAS Remaking America", Department: history, Type: required, Focus: high, Tag: "Civil Rights", HomeworkHours: 4.5},
	{Name: "UAS Asian American History", Department: history, Type: elective, Focus: high, Tag: "Race & Resistance", HomeworkHours: 4.0},
	{Name: "UAS Race in Latin Am. History", Department: history, Type: elective, Focus: high, Tag: "Colonialism/Race", HomeworkHours: 4.0},
	{Name: "History of Queer Theater", Department: history, Type: elective, Focus: high, Tag: "LGBTQ+", HomeworkHours: 3.5},
	{Name: "South African History", Department: history, Type: elective, Focus: high, Tag: "Anti-Eurocentric", HomeworkHours: 3.5},
	{Name: "UAS Women's US History", Department: history, Type: elective, Focus: high, Tag: "Gender", HomeworkHours: 4.0},
	{Name: "UAS Modern Middle East", Department: history, Type: elective, Focus: medium, Tag: "Global Conflict", HomeworkHours: 4.5},
	{Name: "Economics", Department: history, Type: elective, Focus: medium, Tag: "Global Inequality", HomeworkHours: 3.5},
}

// Load returns the catalog in declaration order. Each call returns a fresh
// slice, so callers may sort or filter it freely.
func Load() []domain.Course {
	out := make([]domain.Course, len(courses))
	copy(out, courses[:])
	return out
}

// Len returns the number of catalog records.
func Len() int {
	return len(courses)
}

// Departments returns the departments in the order they first appear.
func Departments() []domain.Department {
	seen := make(map[domain.Department]bool, 3)
	var out []domain.Department
	for _, c := range courses {
		if !seen[c.Department] {
			seen[c.Department] = true
			out = append(out, c.Department)
		}
	}
	return out
}

// Fingerprint returns a structural hash of the given courses. Two catalogs
// with the same records in the same order hash equal.
func Fingerprint(cs []domain.Course) (uint64, error) {
	h, err := hashstructure.Hash(cs, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("hashing catalog: %w", err)
	}
	return h, nil
}
