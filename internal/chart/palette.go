package chart

import (
	"fmt"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	maleColor      = hex("#4C78A8")
	femaleColor    = hex("#F58518")
	nonBinaryColor = hex("#54A24B")
	barColor       = hex("#72B7B2")
)

// focusColors run from grey (Low) to the accent (High) so that darker dots
// mean more explicit DEIB content.
var focusColors = map[domain.DEIBFocus]drawing.Color{
	domain.FocusLow:    blend("#BAB0AC", "#B279A2", 0),
	domain.FocusMedium: blend("#BAB0AC", "#B279A2", 0.5),
	domain.FocusHigh:   blend("#BAB0AC", "#B279A2", 1),
}

var departmentColors = []drawing.Color{
	hex("#4C78A8"),
	hex("#E45756"),
	hex("#EECA3B"),
}

// mustHex parses a palette literal and panics on a malformed one.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("chart: bad palette color %q: %v", s, err))
	}
	return c
}

func hex(s string) drawing.Color {
	return toDrawing(mustHex(s))
}

func blend(from, to string, t float64) drawing.Color {
	return toDrawing(mustHex(from).BlendLab(mustHex(to), t).Clamped())
}

func toDrawing(c colorful.Color) drawing.Color {
	r, g, b := c.RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}

func departmentColor(i int) drawing.Color {
	return departmentColors[i%len(departmentColors)]
}
