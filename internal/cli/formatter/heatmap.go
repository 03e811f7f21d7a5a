package formatter

import (
	"fmt"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/alexanderramin/atlas/internal/views"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var heatColumns = []domain.DEIBFocus{domain.FocusHigh, domain.FocusMedium, domain.FocusLow}

var (
	heatCold = mustHex(ColorDim)
	heatHot  = mustHex(ColorHeader)
)

func mustHex(c lipgloss.Color) colorful.Color {
	out, err := colorful.Hex(string(c))
	if err != nil {
		panic(fmt.Sprintf("formatter: bad color %q: %v", c, err))
	}
	return out
}

// HeatShade returns a color between dim and the header orange for a 0..1
// intensity, blended in Lab space.
func HeatShade(t float64) lipgloss.Color {
	return lipgloss.Color(heatCold.BlendLab(heatHot, clamp01(t)).Clamped().Hex())
}

type heatCell struct {
	courses int
	hours   float64
}

// FormatDEIBHeatmap renders departments against focus levels. Each cell
// holds the course count and the homework hours of that slice, shaded by
// its share of the heaviest cell. Pass a hierarchy built with low focus
// included to fill the LOW column.
func FormatDEIBHeatmap(nodes []views.Node) string {
	if len(nodes) == 0 {
		return Dim("no courses") + "\n"
	}

	grid := make([][]heatCell, len(nodes))
	peak := 0.0
	for i, dept := range nodes {
		grid[i] = make([]heatCell, len(heatColumns))
		for _, focus := range dept.Children {
			for j, lvl := range heatColumns {
				if focus.Focus == lvl {
					grid[i][j] = heatCell{courses: len(focus.Children), hours: focus.Value}
					peak = max(peak, focus.Value)
				}
			}
		}
	}

	headers := []string{"DEPT"}
	for _, lvl := range heatColumns {
		headers = append(headers, FocusIndicator(lvl))
	}

	rows := make([][]string, 0, len(nodes))
	for i, dept := range nodes {
		row := []string{Bold(dept.Label)}
		for _, c := range grid[i] {
			if c.courses == 0 {
				row = append(row, Dim("·"))
				continue
			}
			text := fmt.Sprintf("%d · %s", c.courses, FormatHours(c.hours))
			row = append(row, lipgloss.NewStyle().Foreground(HeatShade(c.hours/peak)).Render(text))
		}
		rows = append(rows, row)
	}

	return RenderTableAligned(headers, rows, map[int]bool{1: true, 2: true, 3: true})
}
