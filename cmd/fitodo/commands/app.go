package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fitodo/fitodo/cmd/fitodo/handlers"
)

// App returns the command that opens the host app.
func App(g *handlers.GlobalOptions) *cobra.Command {
	var plain bool
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "app",
		Short: "Open the FITODO app",
		Long: `Open the FITODO app in the terminal.

Without a saved profile the app starts with the sign-up form. Use the tab
keys to move between Home, Tests, Community, Profile and Help, and select
Shuttle Run on the Tests tab to start the guided capture.

With --plain the app walks from home to the Shuttle Run and back without
a terminal UI, printing each screen.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.App(cmd.Context(), *g, plain, duration)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print a scripted walk instead of the interactive UI")
	cmd.Flags().DurationVar(&duration, "duration", 3*time.Second, "How long the scripted live test runs")

	return cmd
}
