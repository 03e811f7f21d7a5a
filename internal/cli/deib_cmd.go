package cli

import (
	"fmt"

	"github.com/alexanderramin/atlas/internal/cli/formatter"
	"github.com/alexanderramin/atlas/internal/views"
	"github.com/spf13/cobra"
)

func newDEIBCmd(app *App) *cobra.Command {
	var includeLow bool

	cmd := &cobra.Command{
		Use:   "deib",
		Short: "Show the department, focus and course hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Atlas.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatDEIBTree(views.DEIBHierarchy(snap.Rows, !includeLow)))
			fmt.Fprintln(out, formatter.SnapshotFooter(snap, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeLow, "include-low", false, "Include low focus courses")

	return cmd
}
