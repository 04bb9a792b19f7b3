// Package commands defines the CLI command structure and flag bindings.
//
// Commands parse arguments and flags only. The work is delegated to the
// handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/fitodo/fitodo/cmd/fitodo/handlers"
)

// Root returns the root command for the fitodo CLI. Running it without a
// subcommand opens the app.
func Root() *cobra.Command {
	g := &handlers.GlobalOptions{}

	cmd := &cobra.Command{
		Use:           "fitodo",
		Short:         "Sports assessments from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.App(cmd.Context(), *g, false, 0)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&g.ConfigPath, "config", "c", "", "Path to configuration file (default: user config dir)")
	pf.StringVar(&g.LogFile, "log-file", "", "Write debug logs to this file")
	pf.CountVarP(&g.Verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	pf.BoolVar(&g.NoColor, "no-color", false, "Disable colored output")
	pf.StringVar(&g.MetricsFile, "metrics-file", "", "Write session metrics in Prometheus text format on exit")

	cmd.AddCommand(App(g))
	cmd.AddCommand(Run(g))
	cmd.AddCommand(Tests(g))
	cmd.AddCommand(SignUp(g))
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
