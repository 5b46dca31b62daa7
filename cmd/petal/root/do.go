package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"petal/internal/ui"
	"petal/internal/xp"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Toggle a task done (run again to undo)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			t, ok := st.ToggleDone(ctx, id)
			styles := ui.NewStyles(st.Dark())
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render(fmt.Sprintf("No task #%d.", id)))
				return nil
			}

			if t.Done {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					styles.Good.Render(ui.IconDone+" Done"), t.Text,
					styles.Muted.Render(fmt.Sprintf("(+%d XP)", xp.PerTask)))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					styles.Warn.Render("↩ Reopened"), t.Text,
					styles.Muted.Render(fmt.Sprintf("(-%d XP)", xp.PerTask)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.LabelValue("Level", fmt.Sprintf("%d • %d XP", st.Level(), st.XP())))
			return nil
		},
	}

	return cmd
}
