package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [powershell|bash|zsh|fish]",
	Short: "Set up shell tab completion",
	Long: `Generate tab completion scripts. PowerShell is the default.

To load completions for the current PowerShell session:

  pcc completion | Out-String | Invoke-Expression`,
	ValidArgs: []string{"powershell", "bash", "zsh", "fish"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := "powershell"
		if len(args) == 1 {
			shell = args[0]
		}

		switch shell {
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		case "bash":
			return cmd.Root().GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		}
		return fmt.Errorf("unsupported shell %q", shell)
	},
}
