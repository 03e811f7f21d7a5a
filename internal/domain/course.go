package domain

import (
	"fmt"
	"strings"
)

// TagNone marks a course without an explicit DEIB theme.
const TagNone = "None"

// Course is one immutable catalog record.
type Course struct {
	Name          string
	Department    Department
	Type          CourseType
	Focus         DEIBFocus
	Tag           string
	HomeworkHours float64
}

// Validate checks that the record is well formed. Catalog data is authored
// by hand, so a failure here is an authoring error rather than a runtime one.
func (c Course) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("course name is required")
	}
	if !ValidDepartments[c.Department] {
		return fmt.Errorf("course %q: unknown department %q", c.Name, c.Department)
	}
	if !ValidCourseTypes[c.Type] {
		return fmt.Errorf("course %q: unknown type %q", c.Name, c.Type)
	}
	if c.Focus.Rank() < 0 {
		return fmt.Errorf("course %q: unknown DEIB focus %q", c.Name, c.Focus)
	}
	if c.HomeworkHours <= 0 {
		return fmt.Errorf("course %q: homework hours must be positive, got %v", c.Name, c.HomeworkHours)
	}
	return nil
}

// HasTag reports whether the course carries a real DEIB tag.
func (c Course) HasTag() bool {
	return c.Tag != "" && c.Tag != TagNone
}
