package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"petal/internal/ui"
	"petal/internal/xp"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show XP, level and task counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			styles := ui.NewStyles(st.Dark())
			out := cmd.OutOrStdout()

			tasks := st.Tasks()
			done := 0
			for _, t := range tasks {
				if t.Done {
					done++
				}
			}

			fmt.Fprintln(out, styles.Heading(ui.IconSparkle, "Status"))
			fmt.Fprintln(out, styles.LabelValue("Tasks", fmt.Sprintf("%d total, %d done, %d open", len(tasks), done, len(tasks)-done)))
			fmt.Fprintln(out, styles.LabelValue("Level", st.Level()))
			fmt.Fprintf(out, "%s %s %s\n",
				styles.Key.Render("XP:"),
				styles.ProgressBar(st.Progress(), 24),
				styles.Muted.Render(fmt.Sprintf("%d (%d%% to level %d)", st.XP(), st.Progress(), st.Level()+1)))

			theme := ui.IconSun + " light"
			if st.Dark() {
				theme = ui.IconMoon + " dark"
			}
			fmt.Fprintln(out, styles.LabelValue("Theme", theme))
			fmt.Fprintln(out, styles.Muted.Render(fmt.Sprintf("Each completed task is worth %d XP; a level spans %d.", xp.PerTask, xp.PerLevel)))
			return nil
		},
	}

	return cmd
}
