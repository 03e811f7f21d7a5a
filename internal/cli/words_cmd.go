package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/atlas/internal/cli/formatter"
	"github.com/alexanderramin/atlas/internal/views"
	"github.com/spf13/cobra"
)

func newWordsCmd(app *App) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "words [course]",
		Short: "Show the most frequent words in a course's comments",
		Long: `Summarize the synthetic comment corpus of one course. Without a
course argument an interactive terminal offers a picker over the table's
course names.`,
		Example: `  atlas words "UAS Adv Chemistry"
  atlas words "History of Queer Theater" -k 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				if !app.interactive() {
					return errors.New("course name required (run in a terminal to pick one)")
				}
				snap, err := app.Atlas.Snapshot(ctx)
				if err != nil {
					return err
				}
				name, err = app.pickCourse(views.CourseNames(snap.Rows))
				if err != nil {
					return fmt.Errorf("picking course: %w", err)
				}
			}

			course, words, err := app.Atlas.TopWords(ctx, name, k)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTopWords(
				course.Name,
				course.Cohort.Vocabulary,
				len(course.Cohort.CommentCorpus),
				words,
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "top", "k", 0, "Number of words to show (default from ATLAS_TOP_WORDS)")

	return cmd
}
