package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate completion script",
	Long: `To load completions:

Bash:

  $ source <(mapstrap completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ mapstrap completion bash > /etc/bash_completion.d/mapstrap
  # macOS:
  $ mapstrap completion bash > /usr/local/etc/bash_completion.d/mapstrap

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ mapstrap completion zsh > "${fpath[1]}/_mapstrap"

  # You will need to start a new shell for this setup to take effect.

fish:

  $ mapstrap completion fish | source

  # To load completions for each session, execute once:
  $ mapstrap completion fish > ~/.config/fish/completions/mapstrap.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			cmd.Root().GenFishCompletion(os.Stdout, true)
		}
	},
	Hidden: true,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
