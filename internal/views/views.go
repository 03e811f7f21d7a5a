// Package views shapes the enriched course table into rendering-agnostic
// chart data. Nothing here knows about terminals or image formats.
package views

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/alexanderramin/atlas/internal/domain"
)

// Column headers of the enriched table, in display order.
var Columns = []string{
	"Course", "Dept", "Type", "DEIB Focus", "DEIB Tag", "Homework (Hrs)",
	"Total Students", "Male", "Female", "Non-Binary", "Male %", "Comment Corpus",
}

// DefaultWatchlistHours is the homework load at which a course is flagged.
const DefaultWatchlistHours = 5.0

// Table flattens rows into string cells under Columns. The comment corpus
// cell carries the token count rather than 150 words.
func Table(rows []domain.EnrichedCourse) ([]string, [][]string) {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.Name,
			string(r.Department),
			string(r.Type),
			string(r.Focus),
			r.Tag,
			strconv.FormatFloat(r.HomeworkHours, 'f', 1, 64),
			strconv.Itoa(r.Cohort.TotalStudents),
			strconv.Itoa(r.Cohort.Gender.Male),
			strconv.Itoa(r.Cohort.Gender.Female),
			strconv.Itoa(r.Cohort.Gender.NonBinary),
			fmt.Sprintf("%.2f", r.Cohort.MalePercentage),
			fmt.Sprintf("%d words (%s)", len(r.Cohort.CommentCorpus), r.Cohort.Vocabulary),
		})
	}
	return Columns, cells
}

// FindCourse returns the row with the given course name.
func FindCourse(rows []domain.EnrichedCourse, name string) (domain.EnrichedCourse, bool) {
	for _, r := range rows {
		if r.Name == name {
			return r, true
		}
	}
	return domain.EnrichedCourse{}, false
}

// CourseNames lists course names in table order.
func CourseNames(rows []domain.EnrichedCourse) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	return names
}

// Filter returns the rows passing f, in input order.
func Filter(rows []domain.EnrichedCourse, f domain.CourseFilter) []domain.EnrichedCourse {
	if f.IsZero() {
		return rows
	}
	var out []domain.EnrichedCourse
	for _, r := range rows {
		if f.Match(r.Course) {
			out = append(out, r)
		}
	}
	return out
}

// Watchlist returns courses whose homework load is at least minHours,
// heaviest first. Equal loads keep table order.
func Watchlist(rows []domain.EnrichedCourse, minHours float64) []domain.EnrichedCourse {
	var out []domain.EnrichedCourse
	for _, r := range rows {
		if r.HomeworkHours >= minHours {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].HomeworkHours > out[j].HomeworkHours
	})
	return out
}

// groupByDepartment buckets rows by department, keeping first-seen order.
func groupByDepartment(rows []domain.EnrichedCourse) ([]domain.Department, map[domain.Department][]domain.EnrichedCourse) {
	grouped := make(map[domain.Department][]domain.EnrichedCourse)
	var order []domain.Department
	for _, r := range rows {
		if _, ok := grouped[r.Department]; !ok {
			order = append(order, r.Department)
		}
		grouped[r.Department] = append(grouped[r.Department], r)
	}
	return order, grouped
}
