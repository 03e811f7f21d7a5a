package cli

import (
	"fmt"

	"github.com/alexanderramin/atlas/internal/chart"
	"github.com/alexanderramin/atlas/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// formatFlag validates --format while flags are parsed.
type formatFlag chart.Format

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Set(s string) error {
	v, err := chart.ParseFormat(s)
	if err != nil {
		return err
	}
	*f = formatFlag(v)
	return nil
}

func (f *formatFlag) Type() string { return "format" }

func newExportCmd(app *App) *cobra.Command {
	var dir, course string
	format := formatFlag(chart.FormatPNG)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dashboard charts as image files",
		Example: `  atlas export --dir charts
  atlas export --format svg --course "UAS Adv Chemistry"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			snap, err := app.Atlas.Snapshot(ctx)
			if err != nil {
				return err
			}

			exp, err := chart.NewExporter(dir, chart.Format(format))
			if err != nil {
				return err
			}
			paths, err := exp.Dashboard(snap.Rows)
			if err != nil {
				return err
			}

			if course != "" {
				c, words, err := app.Atlas.TopWords(ctx, course, 0)
				if err != nil {
					return err
				}
				p, err := exp.TopWords(c.Name, words)
				if err != nil {
					return err
				}
				paths = append(paths, p)
			}

			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("wrote"), p)
			}
			fmt.Fprintln(out, formatter.SnapshotFooter(snap, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "charts", "Output directory")
	cmd.Flags().Var(&format, "format", "Image format (png or svg)")
	cmd.Flags().StringVar(&course, "course", "", "Also chart the top words of this course")

	return cmd
}
