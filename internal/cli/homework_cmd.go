package cli

import (
	"fmt"

	"github.com/alexanderramin/atlas/internal/cli/formatter"
	"github.com/alexanderramin/atlas/internal/views"
	"github.com/spf13/cobra"
)

func newHomeworkCmd(app *App) *cobra.Command {
	var minHours float64

	cmd := &cobra.Command{
		Use:   "homework",
		Short: "Show homework balance and the wellness watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			snap, err := app.Atlas.Snapshot(ctx)
			if err != nil {
				return err
			}

			threshold := app.Config.WatchlistHours
			if cmd.Flags().Changed("min-hours") {
				if minHours <= 0 {
					return fmt.Errorf("--min-hours must be positive, got %v", minHours)
				}
				threshold = minHours
			}
			watch, err := app.Atlas.Watchlist(ctx, threshold)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatHomework(
				views.HomeworkDistribution(snap.Rows),
				views.RigorRelevance(snap.Rows),
				views.RigorRelevance(watch),
				threshold,
			))
			fmt.Fprintln(out, formatter.SnapshotFooter(snap, app.now()))
			return nil
		},
	}

	cmd.Flags().Float64Var(&minHours, "min-hours", 0, "Watchlist threshold in weekly homework hours")

	return cmd
}
