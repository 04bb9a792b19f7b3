package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Completion returns the shell completion command.
func Completion() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for fitodo to stdout.

  bash:        source <(fitodo completion bash)
  zsh:         fitodo completion zsh > "${fpath[1]}/_fitodo"
  fish:        fitodo completion fish | source
  powershell:  fitodo completion powershell | Out-String | Invoke-Expression

Test names complete for "fitodo run" and "fitodo tests show".
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}
