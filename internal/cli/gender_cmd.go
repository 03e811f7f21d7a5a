package cli

import (
	"fmt"

	"github.com/alexanderramin/atlas/internal/cli/formatter"
	"github.com/alexanderramin/atlas/internal/views"
	"github.com/spf13/cobra"
)

func newGenderCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "gender",
		Short: "Show the simulated gender composition of every course",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Atlas.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatGender(views.GenderComposition(snap.Rows), max(width, 4)))
			fmt.Fprintln(out, formatter.SnapshotFooter(snap, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 24, "Bar width in cells")

	return cmd
}
