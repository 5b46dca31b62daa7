package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"petal/internal/ui"
)

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			removed := st.ClearCompleted(ctx)
			styles := ui.NewStyles(st.Dark())
			if removed == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("Nothing completed to clear."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d completed %s cleared %s\n",
				styles.Good.Render(ui.IconSparkle),
				removed, plural(removed, "task", "tasks"),
				styles.Muted.Render(fmt.Sprintf("(xp now %d)", st.XP())))
			return nil
		},
	}

	return cmd
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
