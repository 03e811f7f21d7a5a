package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newExploreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Browse the table in an interactive terminal UI",
		Long: `Open a tabbed explorer: the DEIB heatmap, homework balance and a
course list whose cursor drives the word summary panel. Press r to draw
a new cohort and q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("explore needs an interactive terminal")
			}
			p := tea.NewProgram(
				newExploreModel(app),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}
