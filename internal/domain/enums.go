package domain

import (
	"fmt"
	"strings"
)

type Department string

const (
	DeptMath    Department = "Math"
	DeptScience Department = "Science"
	DeptHistory Department = "History"
)

// ValidDepartments is the canonical set of accepted department names.
var ValidDepartments = map[Department]bool{
	DeptMath: true, DeptScience: true, DeptHistory: true,
}

// IsSTEM reports whether the department belongs to the Math/Science group.
func (d Department) IsSTEM() bool {
	return d == DeptMath || d == DeptScience
}

type CourseType string

const (
	TypeRequired CourseType = "Required"
	TypeElective CourseType = "Elective"
	TypeAdvanced CourseType = "Advanced"
)

// ValidCourseTypes is the canonical set of accepted course types.
var ValidCourseTypes = map[CourseType]bool{
	TypeRequired: true, TypeElective: true, TypeAdvanced: true,
}

// ParseCourseType maps a catalog label to a CourseType. The school catalog
// labels advanced sections "UAS (Adv)"; both spellings are accepted.
func ParseCourseType(s string) (CourseType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "required":
		return TypeRequired, nil
	case "elective":
		return TypeElective, nil
	case "advanced", "uas (adv)", "adv":
		return TypeAdvanced, nil
	}
	return "", fmt.Errorf("unknown course type %q", s)
}

type DEIBFocus string

const (
	FocusLow    DEIBFocus = "Low"
	FocusMedium DEIBFocus = "Medium"
	FocusHigh   DEIBFocus = "High"
)

// Rank returns the ordinal position of the focus level (Low=0, Medium=1,
// High=2). Unknown values rank -1.
func (f DEIBFocus) Rank() int {
	switch f {
	case FocusLow:
		return 0
	case FocusMedium:
		return 1
	case FocusHigh:
		return 2
	default:
		return -1
	}
}

// ParseDEIBFocus accepts a case-insensitive focus level name.
func ParseDEIBFocus(s string) (DEIBFocus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return FocusLow, nil
	case "medium", "med":
		return FocusMedium, nil
	case "high":
		return FocusHigh, nil
	}
	return "", fmt.Errorf("unknown DEIB focus %q", s)
}

// ParseDepartment accepts a case-insensitive department name.
func ParseDepartment(s string) (Department, error) {
	for d := range ValidDepartments {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown department %q", s)
}

// FemalePolicy controls how the simulator resolves a roster where the male
// and non-binary counts already exceed the total.
type FemalePolicy string

const (
	FemaleClamp     FemalePolicy = "clamp"
	FemaleUnclamped FemalePolicy = "unclamped"
)
