package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generates shell completion scripts for findy-fixture",
	Long: `
To load completion run following:

bash:
	source <(findy-fixture completion bash)

zsh:
	source <(findy-fixture completion zsh)

fish:
	findy-fixture completion fish | source

Recipe names are completed for the provision command. To configure your
shell to load completions for each session add the command above to your
shell configuration script (e.g. .bash_profile/.zshrc).
`,
	ValidArgs: []string{"bash", "zsh", "fish"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(_ *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		default:
			return rootCmd.GenFishCompletion(os.Stdout, true)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
