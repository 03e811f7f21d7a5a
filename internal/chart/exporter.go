// Package chart renders the atlas charts to PNG or SVG files.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/alexanderramin/atlas/internal/views"
	"github.com/alexanderramin/atlas/internal/wordfreq"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ErrNoData is returned when a chart would have nothing to draw.
var ErrNoData = errors.New("no data to chart")

// ParseFormat accepts "png" or "svg", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported chart format %q (valid: png, svg)", s)
}

type renderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

// Exporter writes chart files into Dir.
type Exporter struct {
	Dir    string
	Format Format
	Width  int
	Height int
}

// NewExporter creates dir if needed.
func NewExporter(dir string, format Format) (*Exporter, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}
	return &Exporter{Dir: dir, Format: format, Width: 1024, Height: 512}, nil
}

// Dashboard writes every table-wide chart and returns the file paths.
func (e *Exporter) Dashboard(rows []domain.EnrichedCourse) ([]string, error) {
	steps := []func([]domain.EnrichedCourse) (string, error){
		e.GenderComposition,
		e.HomeworkByDepartment,
		e.RigorRelevance,
		e.DEIBShare,
	}
	paths := make([]string, 0, len(steps))
	for _, step := range steps {
		p, err := step(rows)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// GenderComposition draws one horizontal stacked bar per course. The canvas
// grows with the number of courses so every bar keeps its own row.
func (e *Exporter) GenderComposition(rows []domain.EnrichedCourse) (string, error) {
	bars := views.GenderComposition(rows)
	if len(bars) == 0 {
		return "", fmt.Errorf("gender composition: %w", ErrNoData)
	}

	const (
		barWidth   = 14
		spacing    = 6
		labelWidth = 160
		titleSpace = 40
		axisSpace  = 60
	)
	stacked := make([]gochart.StackedBar, 0, len(bars))
	for _, b := range bars {
		stacked = append(stacked, gochart.StackedBar{
			Name:  shortLabel(b.Course, 24),
			Width: barWidth,
			Values: []gochart.Value{
				{Label: "Male", Value: float64(b.Male), Style: fill(maleColor)},
				// An unclamped roster may carry a negative female count.
				{Label: "Female", Value: math.Max(0, float64(b.Female)), Style: fill(femaleColor)},
				{Label: "Non-Binary", Value: float64(b.NonBinary), Style: fill(nonBinaryColor)},
			},
		})
	}

	c := gochart.StackedBarChart{
		Title:        "Gender Composition by Course",
		Width:        e.Width,
		Height:       max(e.Height, titleSpace+len(bars)*(barWidth+spacing)+axisSpace),
		BarSpacing:   spacing,
		IsHorizontal: true,
		Background:   gochart.Style{Padding: gochart.Box{Top: titleSpace, Left: labelWidth, Right: 24, Bottom: 16}},
		Bars:         stacked,
	}
	return e.write("gender_composition", c)
}

// HomeworkByDepartment draws the mean homework hours per department.
func (e *Exporter) HomeworkByDepartment(rows []domain.EnrichedCourse) (string, error) {
	stats := views.HomeworkDistribution(rows)
	if len(stats) == 0 {
		return "", fmt.Errorf("homework by department: %w", ErrNoData)
	}

	bars := make([]gochart.Value, 0, len(stats))
	top := 0.0
	for i, s := range stats {
		bars = append(bars, gochart.Value{
			Label: fmt.Sprintf("%s (n=%d)", s.Department, s.Count),
			Value: s.Mean,
			Style: fill(departmentColor(i)),
		})
		top = math.Max(top, s.Max)
	}

	c := gochart.BarChart{
		Title:      "Mean Homework Hours by Department",
		Width:      e.Width,
		Height:     e.Height,
		BarWidth:   120,
		BarSpacing: 60,
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		YAxis: gochart.YAxis{
			Name:  "hours / week",
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Ceil(top + 0.5)},
		},
		Bars: bars,
	}
	return e.write("homework_by_department", c)
}

var typeOffset = map[domain.CourseType]float64{
	domain.TypeRequired: -0.2,
	domain.TypeElective: 0,
	domain.TypeAdvanced: 0.2,
}

// RigorRelevance plots homework hours per department, one series per DEIB
// focus level. Course types are offset horizontally within a department.
func (e *Exporter) RigorRelevance(rows []domain.EnrichedCourse) (string, error) {
	points := views.RigorRelevance(rows)
	if len(points) == 0 {
		return "", fmt.Errorf("rigor vs relevance: %w", ErrNoData)
	}

	deptIndex := map[domain.Department]int{}
	var ticks []gochart.Tick
	for _, s := range views.HomeworkDistribution(rows) {
		deptIndex[s.Department] = len(ticks)
		ticks = append(ticks, gochart.Tick{Value: float64(len(ticks)), Label: string(s.Department)})
	}

	var series []gochart.Series
	top := 0.0
	for _, f := range []domain.DEIBFocus{domain.FocusLow, domain.FocusMedium, domain.FocusHigh} {
		s := gochart.ContinuousSeries{
			Name: string(f) + " focus",
			Style: gochart.Style{
				StrokeColor: drawing.ColorTransparent,
				DotWidth:    5,
				DotColor:    focusColors[f],
			},
		}
		for _, p := range points {
			if p.Focus != f {
				continue
			}
			s.XValues = append(s.XValues, float64(deptIndex[p.Department])+typeOffset[p.Type])
			s.YValues = append(s.YValues, p.Homework)
			top = math.Max(top, p.Homework)
		}
		if len(s.XValues) > 0 {
			series = append(series, s)
		}
	}

	c := gochart.Chart{
		Title:      "Rigor vs Relevance",
		Width:      e.Width,
		Height:     e.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  "Department (Required | Elective | Advanced)",
			Ticks: ticks,
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(len(ticks)) - 0.5},
		},
		YAxis: gochart.YAxis{
			Name:  "hours / week",
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Ceil(top + 0.5)},
		},
		Series: series,
	}
	c.Elements = []gochart.Renderable{gochart.Legend(&c)}
	return e.write("rigor_relevance", c)
}

// DEIBShare draws how many high-focus courses each department offers.
func (e *Exporter) DEIBShare(rows []domain.EnrichedCourse) (string, error) {
	shares := views.DEIBShare(rows, domain.FocusHigh)
	if len(shares) == 0 {
		return "", fmt.Errorf("DEIB share: %w", ErrNoData)
	}

	values := make([]gochart.Value, 0, len(shares))
	for i, s := range shares {
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s (%d)", s.Department, s.Courses),
			Value: float64(s.Courses),
			Style: fill(departmentColor(i)),
		})
	}

	c := gochart.PieChart{
		Title:  "High DEIB Focus Courses by Department",
		Width:  e.Height,
		Height: e.Height,
		Values: values,
	}
	return e.write("deib_share", c)
}

// TopWords draws the word-frequency summary of one course.
func (e *Exporter) TopWords(course string, words []wordfreq.WordCount) (string, error) {
	if len(words) == 0 {
		return "", fmt.Errorf("top words for %q: %w", course, ErrNoData)
	}

	bars := make([]gochart.Value, 0, len(words))
	for _, w := range words {
		bars = append(bars, gochart.Value{Label: w.Word, Value: float64(w.Count), Style: fill(barColor)})
	}

	c := gochart.BarChart{
		Title:      "Top Words: " + course,
		Width:      e.Width,
		Height:     e.Height,
		BarWidth:   60,
		BarSpacing: 24,
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		YAxis: gochart.YAxis{
			Name:  "mentions",
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(words[0].Count + 1)},
		},
		Bars: bars,
	}
	return e.write("words_"+slug(course), c)
}

func (e *Exporter) write(name string, c renderable) (path string, err error) {
	var rp gochart.RendererProvider = gochart.PNG
	if e.Format == FormatSVG {
		rp = gochart.SVG
	}

	path = filepath.Join(e.Dir, name+"."+string(e.Format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := c.Render(rp, f); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return path, nil
}

func fill(c drawing.Color) gochart.Style {
	return gochart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1}
}

func shortLabel(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// slug lowercases s and collapses every run of non-alphanumerics into "-".
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
