package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/alexanderramin/atlas/internal/views"
)

// FormatDEIBTree renders the department → focus → course hierarchy.
func FormatDEIBTree(nodes []views.Node) string {
	if len(nodes) == 0 {
		return Dim("no courses") + "\n"
	}

	var items []TreeItem
	total := 0.0
	for di, dept := range nodes {
		total += dept.Value
		items = append(items, TreeItem{
			Title:  dept.Label,
			Level:  0,
			IsLast: di == len(nodes)-1,
			Detail: FormatHours(dept.Value),
		})
		for fi, focus := range dept.Children {
			items = append(items, TreeItem{
				Title:  focus.Label + " focus",
				Level:  1,
				IsLast: fi == len(dept.Children)-1,
				Focus:  focus.Focus,
				Detail: FormatHours(focus.Value),
			})
			for ci, course := range focus.Children {
				title := course.Label
				if course.Tag != "" && course.Tag != domain.TagNone {
					title += Dim(" · " + course.Tag)
				}
				items = append(items, TreeItem{
					Title:  title,
					Level:  2,
					IsLast: ci == len(focus.Children)-1,
					Focus:  course.Focus,
					Detail: FormatHours(course.Value),
				})
			}
		}
	}

	var b strings.Builder
	b.WriteString(Header("DEIB hierarchy (sized by homework hours)"))
	b.WriteString("\n")
	b.WriteString(RenderTree(items))
	b.WriteString(Dim(fmt.Sprintf("%s of weekly homework across %d departments", FormatHours(total), len(nodes))))
	b.WriteString("\n")
	return b.String()
}

// FormatHomework renders the box stats, the rigor vs relevance listing and
// the wellness watchlist.
func FormatHomework(stats []views.BoxStats, points []views.ScatterPoint, watch []views.ScatterPoint, threshold float64) string {
	var b strings.Builder

	b.WriteString(Header("Homework by department"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			Bold(string(s.Department)),
			strconv.Itoa(s.Count),
			FormatHours(s.Min),
			FormatHours(s.Q1),
			FormatHours(s.Median),
			FormatHours(s.Q3),
			FormatHours(s.Max),
			HoursColor(s.Mean, threshold).Render(FormatHours(s.Mean)),
		})
	}
	b.WriteString(RenderTableAligned(
		[]string{"DEPT", "N", "MIN", "Q1", "MEDIAN", "Q3", "MAX", "MEAN"},
		rows,
		map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true},
	))

	b.WriteString("\n")
	b.WriteString(Header("Rigor vs relevance"))
	b.WriteString("\n")
	b.WriteString(formatScatter(points, threshold))

	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Wellness watchlist (≥ %s)", FormatHours(threshold))))
	b.WriteString("\n")
	if len(watch) == 0 {
		b.WriteString(Dim("no courses at or above the threshold") + "\n")
	} else {
		b.WriteString(formatScatter(watch, threshold))
	}
	return b.String()
}

func formatScatter(points []views.ScatterPoint, threshold float64) string {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			p.Course,
			string(p.Department),
			TypeBadge(p.Type),
			FocusIndicator(p.Focus),
			HoursColor(p.Homework, threshold).Render(FormatHours(p.Homework)),
		})
	}
	return RenderTableAligned([]string{"COURSE", "DEPT", "TYPE", "DEIB", "HOMEWORK"}, rows, map[int]bool{4: true})
}

// FormatGender renders one stacked roster bar per course.
func FormatGender(bars []views.GenderBar, width int) string {
	nameWidth := 0
	for _, g := range bars {
		nameWidth = max(nameWidth, len([]rune(g.Course)))
	}
	nameWidth = min(nameWidth, 32)

	var b strings.Builder
	b.WriteString(Header("Gender composition"))
	b.WriteString("\n")
	for _, g := range bars {
		bar := RenderStackedBar([]Segment{
			{Value: g.Male, Style: StyleBlue},
			{Value: g.Female, Style: StyleYellow},
			{Value: g.NonBinary, Style: StyleGreen},
		}, width)
		name := Truncate(g.Course, nameWidth)
		pad := strings.Repeat(" ", nameWidth-len([]rune(name)))
		note := ""
		if g.Adjusted {
			note = Dim(" *")
		}
		fmt.Fprintf(&b, "%s%s  %s  %2d/%2d/%d  %s male%s\n",
			name, pad, bar, g.Male, g.Female, g.NonBinary, FormatPercent(g.MalePercentage), note)
	}
	fmt.Fprintf(&b, "%s male  %s female  %s non-binary\n",
		StyleBlue.Render(filledBlock), StyleYellow.Render(filledBlock), StyleGreen.Render(filledBlock))
	return b.String()
}
