package commands

import (
	"github.com/spf13/cobra"

	"github.com/fitodo/fitodo/cmd/fitodo/handlers"
	"github.com/fitodo/fitodo/internal/catalog"
)

// Tests returns the command group for the fitness test catalog.
func Tests(g *handlers.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tests",
		Short: "Browse the fitness test catalog",
	}

	cmd.AddCommand(testsList())
	cmd.AddCommand(testsShow(g))

	return cmd
}

func testsList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List fitness tests and completion",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.TestsList()
		},
	}
}

func testsShow(g *handlers.GlobalOptions) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:       "show <test>",
		Short:     "Show the brief of a fitness test",
		ValidArgs: catalog.IDs(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.TestsShow(args[0], width, g.NoColor)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "Word wrap width")

	return cmd
}
