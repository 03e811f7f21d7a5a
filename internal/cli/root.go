package cli

import (
	"time"

	"github.com/alexanderramin/atlas/internal/config"
	"github.com/alexanderramin/atlas/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service and session settings used by CLI commands.
type App struct {
	Atlas  service.AtlasService
	Config config.Config

	// IsInteractive reports whether stdin is a terminal. When nil the CLI
	// assumes a non-interactive session.
	IsInteractive func() bool

	// PickCourse asks the user to choose one of names. Defaults to a huh
	// select form.
	PickCourse func(names []string) (string, error)

	// Now is the clock used for snapshot age footers.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) pickCourse(names []string) (string, error) {
	if a.PickCourse != nil {
		return a.PickCourse(names)
	}
	return pickCourseForm(names)
}

// NewRootCmd creates the top-level "atlas" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var seed int64

	root := &cobra.Command{
		Use:   "atlas",
		Short: "Curriculum atlas: DEIB focus, homework load and simulated cohorts",
		Long: `atlas enriches a fixed course catalog with simulated cohorts and
renders the result as tables, trees, bars, an interactive explorer and
chart images. Cohorts are random unless a seed is given.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				return nil
			}
			_, err := app.Atlas.Reload(cmd.Context(), &seed)
			return err
		},
	}

	root.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed the cohort simulator (overrides ATLAS_SEED)")

	root.AddCommand(
		newTableCmd(app),
		newDEIBCmd(app),
		newHomeworkCmd(app),
		newGenderCmd(app),
		newWordsCmd(app),
		newExportCmd(app),
		newExploreCmd(app),
	)

	return root
}
