package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua       = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// FocusColor returns the style for a DEIB focus level. Higher focus reads
// warmer.
func FocusColor(f domain.DEIBFocus) lipgloss.Style {
	switch f {
	case domain.FocusHigh:
		return StylePurple
	case domain.FocusMedium:
		return StyleBlue
	case domain.FocusLow:
		return StyleDim
	default:
		return StyleFg
	}
}

// FocusIndicator returns a colored focus marker such as "● HIGH".
func FocusIndicator(f domain.DEIBFocus) string {
	switch f {
	case domain.FocusHigh:
		return StylePurple.Render("● HIGH")
	case domain.FocusMedium:
		return StyleBlue.Render("◐ MEDIUM")
	case domain.FocusLow:
		return StyleDim.Render("○ LOW")
	default:
		return StyleDim.Render("? " + strings.ToUpper(string(f)))
	}
}

// TypeBadge renders the course type; advanced sections stand out.
func TypeBadge(t domain.CourseType) string {
	switch t {
	case domain.TypeAdvanced:
		return StyleYellowBold.Render("▲ Advanced")
	case domain.TypeElective:
		return StyleAqua.Render("◇ Elective")
	default:
		return StyleFg.Render("■ Required")
	}
}

// HoursColor styles a weekly homework load against the watchlist threshold.
func HoursColor(hours, threshold float64) lipgloss.Style {
	switch {
	case hours >= threshold:
		return StyleRed
	case hours >= threshold-1:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
