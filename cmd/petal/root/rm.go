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

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
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
			t, ok := st.Remove(ctx, id)
			styles := ui.NewStyles(st.Dark())
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render(fmt.Sprintf("No task #%d.", id)))
				return nil
			}

			line := fmt.Sprintf("%s %s", styles.Warn.Render("✂ Deleted"), t.Text)
			if t.Done {
				line += " " + styles.Muted.Render(fmt.Sprintf("(-%d XP)", xp.PerTask))
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	return cmd
}
