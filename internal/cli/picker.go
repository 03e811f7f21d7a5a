package cli

import (
	"errors"

	"github.com/alexanderramin/atlas/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// atlasHuhTheme returns a huh theme matching the formatter palette.
func atlasHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// courseSelect builds the course picker. The select is filterable so long
// catalogs can be narrowed by typing.
func courseSelect(names []string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Course").
				Description("Type / to filter").
				Options(huh.NewOptions(names...)...).
				Height(12).
				Value(value),
		),
	).WithTheme(atlasHuhTheme()).WithShowHelp(false)
}

func pickCourseForm(names []string) (string, error) {
	if len(names) == 0 {
		return "", errors.New("no courses to pick from")
	}
	var choice string
	if err := courseSelect(names, &choice).Run(); err != nil {
		return "", err
	}
	return choice, nil
}
