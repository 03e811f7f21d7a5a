package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/alexanderramin/atlas/internal/views"
	"github.com/alexanderramin/atlas/internal/wordfreq"
)

// Numeric columns of views.Columns.
var courseTableRight = map[int]bool{5: true, 6: true, 7: true, 8: true, 9: true, 10: true}

// FormatCourseTable renders the enriched table. Focus and homework cells are
// colored; an adjusted cohort gets a trailing "*" on its female count.
func FormatCourseTable(rows []domain.EnrichedCourse, threshold float64) string {
	headers, cells := views.Table(rows)
	adjusted := false
	for i, r := range rows {
		cells[i][0] = Bold(r.Name)
		cells[i][3] = FocusColor(r.Focus).Render(string(r.Focus))
		if !r.HasTag() {
			cells[i][4] = Dim(r.Tag)
		}
		cells[i][5] = HoursColor(r.HomeworkHours, threshold).Render(cells[i][5])
		if r.Cohort.Adjusted {
			cells[i][8] += "*"
			adjusted = true
		}
		cells[i][10] = FormatPercent(r.Cohort.MalePercentage)
		cells[i][11] = Dim(cells[i][11])
	}

	var b strings.Builder
	b.WriteString(RenderTableAligned(headers, cells, courseTableRight))
	b.WriteString(Dim(fmt.Sprintf("%d courses", len(rows))))
	if adjusted {
		b.WriteString(Dim(" · * female count clamped at zero"))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatCourseCard renders one course with its cohort and word summary.
func FormatCourseCard(r domain.EnrichedCourse, words []wordfreq.WordCount) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n", StyleFg.Render(string(r.Department)), TypeBadge(r.Type), FocusIndicator(r.Focus))
	if r.HasTag() {
		fmt.Fprintf(&b, "%s %s\n", Dim("tag"), StylePurple.Render(r.Tag))
	}
	fmt.Fprintf(&b, "%s %s per week\n\n", Dim("homework"), FormatHours(r.HomeworkHours))

	g := r.Cohort.Gender
	fmt.Fprintf(&b, "%s %s\n", Dim("roster"), RenderStackedBar([]Segment{
		{Value: g.Male, Style: StyleBlue},
		{Value: g.Female, Style: StyleYellow},
		{Value: g.NonBinary, Style: StyleGreen},
	}, 24))
	fmt.Fprintf(&b, "       %s male · %s female · %s non-binary · %d total\n\n",
		StyleBlue.Render(strconv.Itoa(g.Male)),
		StyleYellow.Render(strconv.Itoa(g.Female)),
		StyleGreen.Render(strconv.Itoa(g.NonBinary)),
		r.Cohort.TotalStudents,
	)

	b.WriteString(FormatWordBars(words, 20))
	return RenderBox(r.Name, strings.TrimRight(b.String(), "\n"))
}

// FormatWordBars renders a ranked word list as horizontal bars.
func FormatWordBars(words []wordfreq.WordCount, width int) string {
	if len(words) == 0 {
		return Dim("no comments") + "\n"
	}
	wordWidth := 0
	for _, w := range words {
		wordWidth = max(wordWidth, len(w.Word))
	}
	top := float64(words[0].Count)

	var b strings.Builder
	for i, w := range words {
		fmt.Fprintf(&b, "%2d. %-*s %s %d\n", i+1, wordWidth, w.Word, RenderBar(float64(w.Count), top, width, StyleAqua), w.Count)
	}
	return b.String()
}

// FormatTopWords renders the words view for one course.
func FormatTopWords(course string, vocabulary string, corpusSize int, words []wordfreq.WordCount) string {
	var b strings.Builder
	b.WriteString(Header("Top words · " + course))
	b.WriteString("\n")
	b.WriteString(FormatWordBars(words, 30))
	b.WriteString(Dim(fmt.Sprintf("%d of %d comment tokens · %s vocabulary", wordfreq.Total(words), corpusSize, vocabulary)))
	b.WriteString("\n")
	return b.String()
}
