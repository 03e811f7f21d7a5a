package domain

import "strings"

// CourseFilter selects rows by department, type and focus. Empty fields
// match everything; values within a field are ORed, fields are ANDed.
type CourseFilter struct {
	Departments []Department
	Types       []CourseType
	Focus       []DEIBFocus
}

// IsZero reports whether the filter matches every course.
func (f CourseFilter) IsZero() bool {
	return len(f.Departments) == 0 && len(f.Types) == 0 && len(f.Focus) == 0
}

// Match reports whether c passes the filter.
func (f CourseFilter) Match(c Course) bool {
	return matchAny(f.Departments, c.Department) &&
		matchAny(f.Types, c.Type) &&
		matchAny(f.Focus, c.Focus)
}

// String renders the filter for log fields.
func (f CourseFilter) String() string {
	if f.IsZero() {
		return "all"
	}
	var parts []string
	if len(f.Departments) > 0 {
		parts = append(parts, "dept="+joinStrings(f.Departments))
	}
	if len(f.Types) > 0 {
		parts = append(parts, "type="+joinStrings(f.Types))
	}
	if len(f.Focus) > 0 {
		parts = append(parts, "focus="+joinStrings(f.Focus))
	}
	return strings.Join(parts, " ")
}

func matchAny[T comparable](allowed []T, v T) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

func joinStrings[T ~string](vals []T) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = string(v)
	}
	return strings.Join(s, ",")
}
