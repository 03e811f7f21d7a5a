package views

import (
	"math"
	"sort"

	"github.com/alexanderramin/atlas/internal/domain"
)

// Node is one level of the DEIB hierarchy. Value is the summed homework
// hours of every course beneath the node.
type Node struct {
	Label    string
	Focus    domain.DEIBFocus // set on focus and course nodes
	Tag      string           // set on course nodes
	Value    float64
	Children []Node
}

// IsLeaf reports whether the node is a course.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

var focusOrder = []domain.DEIBFocus{domain.FocusHigh, domain.FocusMedium, domain.FocusLow}

// DEIBHierarchy builds a Department → DEIB focus → Course tree sized by
// homework hours. With excludeLow, low-focus courses are left out, which is
// how the heatmap view shows where explicit DEIB content lives.
func DEIBHierarchy(rows []domain.EnrichedCourse, excludeLow bool) []Node {
	depts, grouped := groupByDepartment(rows)

	var out []Node
	for _, d := range depts {
		dept := Node{Label: string(d)}
		for _, f := range focusOrder {
			if excludeLow && f == domain.FocusLow {
				continue
			}
			focus := Node{Label: string(f), Focus: f}
			for _, r := range grouped[d] {
				if r.Focus != f {
					continue
				}
				focus.Children = append(focus.Children, Node{
					Label: r.Name,
					Focus: r.Focus,
					Tag:   r.Tag,
					Value: r.HomeworkHours,
				})
				focus.Value += r.HomeworkHours
			}
			if len(focus.Children) == 0 {
				continue
			}
			dept.Children = append(dept.Children, focus)
			dept.Value += focus.Value
		}
		if len(dept.Children) > 0 {
			out = append(out, dept)
		}
	}
	return out
}

// BoxStats summarizes the homework distribution of one department.
type BoxStats struct {
	Department domain.Department
	Count      int
	Min        float64
	Q1         float64
	Median     float64
	Q3         float64
	Max        float64
	Mean       float64
	Points     []float64 // sorted ascending
}

// HomeworkDistribution returns box plot statistics per department, in
// first-seen department order.
func HomeworkDistribution(rows []domain.EnrichedCourse) []BoxStats {
	depts, grouped := groupByDepartment(rows)

	out := make([]BoxStats, 0, len(depts))
	for _, d := range depts {
		pts := make([]float64, 0, len(grouped[d]))
		sum := 0.0
		for _, r := range grouped[d] {
			pts = append(pts, r.HomeworkHours)
			sum += r.HomeworkHours
		}
		sort.Float64s(pts)
		out = append(out, BoxStats{
			Department: d,
			Count:      len(pts),
			Min:        pts[0],
			Q1:         quantile(pts, 0.25),
			Median:     quantile(pts, 0.5),
			Q3:         quantile(pts, 0.75),
			Max:        pts[len(pts)-1],
			Mean:       domain.RoundTo2(sum / float64(len(pts))),
			Points:     pts,
		})
	}
	return out
}

// quantile uses linear interpolation between closest ranks on sorted data.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return domain.RoundTo2(sorted[lo] + (sorted[hi]-sorted[lo])*frac)
}

// ScatterPoint is one course on the rigor vs relevance matrix.
type ScatterPoint struct {
	Course     string
	Department domain.Department
	Type       domain.CourseType
	Focus      domain.DEIBFocus
	Homework   float64
}

// RigorRelevance returns one point per course, heaviest homework first.
// High-load, low-relevance courses therefore lead the list.
func RigorRelevance(rows []domain.EnrichedCourse) []ScatterPoint {
	out := make([]ScatterPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, ScatterPoint{
			Course:     r.Name,
			Department: r.Department,
			Type:       r.Type,
			Focus:      r.Focus,
			Homework:   r.HomeworkHours,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Homework != out[j].Homework {
			return out[i].Homework > out[j].Homework
		}
		return out[i].Focus.Rank() < out[j].Focus.Rank()
	})
	return out
}

// GenderBar is one stacked bar of the gender composition chart.
type GenderBar struct {
	Course         string
	Department     domain.Department
	Male           int
	Female         int
	NonBinary      int
	Total          int
	MalePercentage float64
	Adjusted       bool
}

// GenderComposition returns one bar per course in table order.
func GenderComposition(rows []domain.EnrichedCourse) []GenderBar {
	out := make([]GenderBar, 0, len(rows))
	for _, r := range rows {
		g := r.Cohort.Gender
		out = append(out, GenderBar{
			Course:         r.Name,
			Department:     r.Department,
			Male:           g.Male,
			Female:         g.Female,
			NonBinary:      g.NonBinary,
			Total:          r.Cohort.TotalStudents,
			MalePercentage: r.Cohort.MalePercentage,
			Adjusted:       r.Cohort.Adjusted,
		})
	}
	return out
}

// DepartmentShare counts courses per department with at least minFocus.
type DepartmentShare struct {
	Department domain.Department
	Courses    int
}

// DEIBShare counts courses at or above minFocus per department. It is the
// flat rendition of the hierarchy used by image export.
func DEIBShare(rows []domain.EnrichedCourse, minFocus domain.DEIBFocus) []DepartmentShare {
	depts, grouped := groupByDepartment(rows)
	var out []DepartmentShare
	for _, d := range depts {
		n := 0
		for _, r := range grouped[d] {
			if r.Focus.Rank() >= minFocus.Rank() {
				n++
			}
		}
		if n > 0 {
			out = append(out, DepartmentShare{Department: d, Courses: n})
		}
	}
	return out
}
