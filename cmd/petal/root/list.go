package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"petal/internal/task"
	"petal/internal/ui"
)

func newListCmd() *cobra.Command {
	var query string
	var unfinished bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st.SetFilterQuery(query)
			st.SetShowOnlyUnfinished(unfinished)
			grouped := st.View()
			styles := ui.NewStyles(st.Dark())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.Heading(ui.IconTask, fmt.Sprintf("Petal — %d total", len(st.Tasks()))))
			fmt.Fprintln(out, "")

			for _, key := range grouped.Keys {
				items := grouped.Tasks(key)
				label, emoji := key, ""
				if c := task.CategoryByID(key); c != nil {
					label, emoji = c.Label, c.Emoji
				}
				header := strings.TrimSpace(emoji + " " + label)
				fmt.Fprintf(out, "%s %s\n", styles.H2.Render(header), styles.Muted.Render(fmt.Sprintf("(%d %s)", len(items), plural(len(items), "task", "tasks"))))

				if len(items) == 0 {
					fmt.Fprintln(out, "  "+styles.Muted.Render("Empty"))
					continue
				}
				for _, t := range items {
					fmt.Fprintln(out, "  "+renderTaskLine(styles, t))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter tasks by text, category, date or time")
	cmd.Flags().BoolVarP(&unfinished, "unfinished", "u", false, "Show only unfinished tasks")

	return cmd
}

func renderTaskLine(styles ui.Styles, t task.Task) string {
	parts := []string{
		styles.ColorEdge(t.Color),
		styles.Checkbox(t.Done),
		styles.Muted.Render(fmt.Sprintf("#%d", t.ID)),
		styles.StrikeIf(t.Done, t.Text),
		styles.PriorityBadge(t.Priority),
	}
	if t.Date != "" {
		parts = append(parts, styles.Muted.Render(ui.IconDate+" "+task.FormatDisplayDate(t.Date)))
	}
	if t.Time != "" {
		parts = append(parts, styles.Muted.Render(ui.IconClock+" "+t.Time))
	}
	return strings.Join(parts, " ")
}
