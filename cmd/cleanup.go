package cmd

import (
	"log"
	"os"

	"github.com/findy-network/findy-fixture/cmds/cleanup"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup <name>...",
	Short: "Command for removing fixture namespaces",
	Long: `
Removes the wallet, pool and tmp dirs of the fixture namespaces. Names which
have nothing stored are fine.

Example
	findy-fixture cleanup fx-0b1c3c6e7d3f4e3c9a8f2b1d7c6e5f40
	`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		Cmd := cleanup.Cmd{Names: args}
		try.To(Cmd.Validate())
		if !rootFlags.dryRun {
			try.To1(Cmd.Exec(os.Stdout))
		}
		return nil
	},
}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	rootCmd.AddCommand(cleanupCmd)
}
