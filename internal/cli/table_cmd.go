package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/atlas/internal/catalog"
	"github.com/alexanderramin/atlas/internal/cli/formatter"
	"github.com/alexanderramin/atlas/internal/domain"
	"github.com/spf13/cobra"
)

func newTableCmd(app *App) *cobra.Command {
	var depts, types, focus []string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the enriched course table",
		Example: `  atlas table
  atlas table --dept Science --type Advanced
  atlas table --focus High,Medium`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(depts, types, focus)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rows, err := app.Atlas.Courses(ctx, filter)
			if err != nil {
				return err
			}
			snap, err := app.Atlas.Snapshot(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatCourseTable(rows, app.Config.WatchlistHours))
			fmt.Fprintln(out, formatter.SnapshotFooter(snap, app.now()))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&depts, "dept", nil, "Filter by department ("+departmentList()+")")
	cmd.Flags().StringSliceVar(&types, "type", nil, "Filter by course type (Required, Elective, Advanced)")
	cmd.Flags().StringSliceVar(&focus, "focus", nil, "Filter by DEIB focus (High, Medium, Low)")

	return cmd
}

// departmentList names the catalog's departments for help text.
func departmentList() string {
	depts := catalog.Departments()
	names := make([]string, len(depts))
	for i, d := range depts {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}

// parseFilter turns flag values into a course filter, rejecting unknown
// names.
func parseFilter(depts, types, focus []string) (domain.CourseFilter, error) {
	var f domain.CourseFilter
	for _, s := range depts {
		d, err := domain.ParseDepartment(s)
		if err != nil {
			return f, err
		}
		f.Departments = append(f.Departments, d)
	}
	for _, s := range types {
		t, err := domain.ParseCourseType(s)
		if err != nil {
			return f, err
		}
		f.Types = append(f.Types, t)
	}
	for _, s := range focus {
		lvl, err := domain.ParseDEIBFocus(s)
		if err != nil {
			return f, err
		}
		f.Focus = append(f.Focus, lvl)
	}
	return f, nil
}
