package commands

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/ringoctl/cmd/ringoctl/cmdutil"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for ringoctl.

To load completions:

Bash:
  $ ringoctl completion bash > /etc/bash_completion.d/ringoctl

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ ringoctl completion zsh > "${fpath[1]}/_ringoctl"

Fish:
  $ ringoctl completion fish > ~/.config/fish/completions/ringoctl.fish

PowerShell:
  PS> ringoctl completion powershell | Out-String | Invoke-Expression

The crud commands offered depend on the services registered in the
configuration the script was generated with.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  shellArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func shellArg(cmd *cobra.Command, args []string) error {
	if err := cmdutil.ExactArgs("shell")(cmd, args); err != nil {
		return err
	}
	for _, s := range completionShells {
		if args[0] == s {
			return nil
		}
	}
	return cmdutil.NewUsageError(cmd, "unsupported shell %q (valid: bash, zsh, fish, powershell)", args[0])
}
