package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"petal/internal/ui"
)

const Version = "0.1.0"

var (
	flagDB      string
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "petal",
	Short:         "Petal — local-first pastel day planner with XP progression",
	Long:          "Petal is a local-first CLI/TUI task planner: categorized, prioritized, scheduled tasks with a dark-mode-aware board and an XP/leveling layer.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Path to the task database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newRmCmd(),
		newClearCmd(),
		newListCmd(),
		newStatusCmd(),
		newThemeCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		styles := ui.NewStyles(ui.HasDarkBackground())
		fmt.Fprintln(os.Stderr, styles.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
