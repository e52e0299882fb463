package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/findy-network/findy-fixture/cmds/provision"
	"github.com/findy-network/findy-fixture/fixture"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var provisionEnvs = map[string]string{
	"role": "ROLE",
	"seed": "SEED",
	"hold": "HOLD",
}

var provisionCmd = &cobra.Command{
	Use:   "provision <recipe>",
	Short: "Command for building a fixture",
	Long: `
Builds the fixture of the recipe and prints it as JSON. The fixture is released
before the command exits. With --hold the fixture is kept until the command
is interrupted.

Example
	findy-fixture provision endorser \
		--role STEWARD \
		--hold
	`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return fixture.Recipes(), cobra.ShellCompDirectiveNoFileComp
	},
	PreRunE: func(_ *cobra.Command, _ []string) (err error) {
		return BindEnvs(provisionEnvs, "PROVISION")
	},
	RunE: func(_ *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		provisionCmdArgs.Recipe = args[0]
		provisionCmdArgs.Backend = rootFlags.backend
		try.To(provisionCmdArgs.Validate())
		if !rootFlags.dryRun {
			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()
			try.To1(provisionCmdArgs.ExecContext(ctx, os.Stdout))
		}
		return nil
	},
}

var provisionCmdArgs = provision.Cmd{}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	flags := provisionCmd.Flags()
	flags.StringVar(&provisionCmdArgs.Role, "role", "", flagInfo("ledger role of the published DID", provisionCmd.Name(), provisionEnvs["role"]))
	flags.StringVar(&provisionCmdArgs.Seed, "seed", "", flagInfo("seed of the DID", provisionCmd.Name(), provisionEnvs["seed"]))
	flags.BoolVar(&provisionCmdArgs.Hold, "hold", false, flagInfo("keep the fixture until interrupted", provisionCmd.Name(), provisionEnvs["hold"]))

	rootCmd.AddCommand(provisionCmd)
}
