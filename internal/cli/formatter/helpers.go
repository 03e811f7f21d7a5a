package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// SnapshotFooter describes which enrichment pass produced a view, e.g.
// "snapshot 1f2e3d4c · seed 42 · generated 3 minutes ago".
func SnapshotFooter(snap *domain.Snapshot, now time.Time) string {
	if snap == nil {
		return ""
	}
	age := humanize.RelTime(snap.GeneratedAt, now, "ago", "from now")
	return Dim(fmt.Sprintf("snapshot %s · seed %d · generated %s", TruncID(snap.ID), snap.Seed, age))
}

// TruncID returns the first 8 characters of an ID.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}

// FormatHours renders weekly homework hours, e.g. "4.5h".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64) + "h"
}

// FormatPercent renders a 0..1 fraction as a whole percentage.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// Truncate shortens s to n visible runes, ending with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
