package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"petal/internal/store"
	"petal/internal/task"
	"petal/internal/ui"
)

func newAddCmd() *cobra.Command {
	var priority string
	var category string
	var date string
	var timeStr string
	var color string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("task text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, added := st.Add(ctx, store.Draft{
				Text:     strings.Join(args, " "),
				Priority: priority,
				Category: category,
				Date:     date,
				Time:     timeStr,
				Color:    color,
			})
			styles := ui.NewStyles(st.Dark())
			if !added {
				// Blank text is ignored, not an error.
				fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("Nothing to add."))
				return nil
			}

			line := fmt.Sprintf("%s %s %s", styles.Good.Render(ui.IconTask+" Added"), t.Text, styles.PriorityBadge(t.Priority))
			if c := task.CategoryByID(t.Category); c != nil {
				line += " " + styles.Muted.Render(c.Emoji+" "+c.Label)
			} else {
				line += " " + styles.Muted.Render(t.Category)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			if t.Date != "" || t.Time != "" {
				fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render(strings.TrimSpace(
					ui.IconDate+" "+task.FormatDisplayDate(t.Date)+"  "+ui.IconClock+" "+t.Time)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&category, "category", "c", "inbox", "Category (inbox|home|work|personal|shopping|other)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&timeStr, "time", "t", "", "Time (HH:MM)")
	cmd.Flags().StringVar(&color, "color", "", "Accent color (hex)")

	return cmd
}
