package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"petal/internal/ui"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the color theme",
		ValidArgs: []string{"dark", "light", "toggle"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 1 {
				switch args[0] {
				case "dark":
					st.SetTheme(ctx, true)
				case "light":
					st.SetTheme(ctx, false)
				case "toggle":
					st.ToggleTheme(ctx)
				}
			}

			styles := ui.NewStyles(st.Dark())
			if st.Dark() {
				fmt.Fprintln(cmd.OutOrStdout(), styles.LabelValue("Theme", ui.IconMoon+" dark"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), styles.LabelValue("Theme", ui.IconSun+" light"))
			}
			return nil
		},
	}

	return cmd
}
