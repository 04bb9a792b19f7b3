package commands

import (
	"github.com/spf13/cobra"

	"github.com/fitodo/fitodo/cmd/fitodo/handlers"
)

// SignUp returns the command that creates or replaces the saved profile.
func SignUp(g *handlers.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Create your athlete profile",
		Long: `Run the sign-up form and save the profile to the config file.

Once a name is saved the app opens on the home tab instead of the form.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.SignUp(cmd.Context(), *g)
		},
	}
}
