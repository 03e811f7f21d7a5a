package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45%. The bar is red above
// 66%, yellow from 33% and green below, so a heavier share reads hotter.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct >= 0.66 {
		style = StyleRed
	} else if pct >= 0.33 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderBar renders value against maxValue as a plain block bar.
func RenderBar(value, maxValue float64, width int, style lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	pct := 0.0
	if maxValue > 0 {
		pct = clamp01(value / maxValue)
	}
	filled := int(pct*float64(width) + 0.5)
	return style.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// Segment is one colored slice of a stacked bar.
type Segment struct {
	Value int
	Style lipgloss.Style
}

// RenderStackedBar splits width cells across segments proportionally.
// Rounding remainders go to the segments with the largest remainder, earlier
// segments winning ties, so the cells always sum to width. Negative values
// count as zero.
func RenderStackedBar(segments []Segment, width int) string {
	total := 0
	for _, s := range segments {
		total += max(0, s.Value)
	}
	if total == 0 || width <= 0 {
		return StyleDim.Render(strings.Repeat(emptyBlock, max(0, width)))
	}

	cells := make([]int, len(segments))
	order := make([]int, len(segments))
	used := 0
	for i, s := range segments {
		cells[i] = max(0, s.Value) * width / total
		used += cells[i]
		order[i] = i
	}
	rem := func(i int) int { return max(0, segments[i].Value) * width % total }
	sort.SliceStable(order, func(a, b int) bool { return rem(order[a]) > rem(order[b]) })
	for k := 0; used < width; k++ {
		cells[order[k%len(order)]]++
		used++
	}

	var b strings.Builder
	for i, s := range segments {
		b.WriteString(s.Style.Render(strings.Repeat(filledBlock, cells[i])))
	}
	return b.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
