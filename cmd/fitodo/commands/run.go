package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fitodo/fitodo/cmd/fitodo/handlers"
	"github.com/fitodo/fitodo/internal/catalog"
)

// Run returns the command that starts the capture wizard for one test.
func Run(g *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.RunOptions
	var resetOnRetry bool

	cmd := &cobra.Command{
		Use:   "run <test>",
		Short: "Start a guided fitness test",
		Long: `Start the guided capture for a fitness test.

The Shuttle Run walks through six steps: camera setup, calibration,
warm-up, test prep, the timed live test and the results. Back on the
first step leaves the wizard, and "Try Again" on the results restarts at
the live test.

A summary of what the session recorded is printed when the wizard exits.
`,
		ValidArgs: catalog.IDs(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("reset-on-retry") {
				opts.ResetOnRetry = &resetOnRetry
			}
			return handlers.Run(cmd.Context(), *g, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Print a scripted walk instead of the interactive wizard")
	cmd.Flags().DurationVar(&opts.Duration, "duration", 3*time.Second, "How long the scripted live test runs")
	cmd.Flags().BoolVar(&resetOnRetry, "reset-on-retry", false, "Clear recorded steps when trying again (overrides config)")

	return cmd
}
