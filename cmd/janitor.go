package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/findy-network/findy-fixture/agent/utils"
	"github.com/findy-network/findy-fixture/cmds/janitor"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var janitorEnvs = map[string]string{
	"interval": "INTERVAL",
	"max-age":  "MAX_AGE",
	"once":     "ONCE",
}

var janitorCmd = &cobra.Command{
	Use:   "janitor",
	Short: "Command for sweeping stale fixture namespaces",
	Long: `
Sweeps the fixture namespaces which are older than max age. The sweep runs
every interval until the command is interrupted, or only once with --once.
With --dry-run the stale names are printed but nothing is removed.

Example
	findy-fixture janitor \
		--interval 5m \
		--max-age 1h
	`,
	PreRunE: func(_ *cobra.Command, _ []string) (err error) {
		return BindEnvs(janitorEnvs, "JANITOR")
	},
	RunE: func(_ *cobra.Command, _ []string) (err error) {
		defer err2.Handle(&err)

		janitorCmdArgs.DryRun = rootFlags.dryRun
		try.To(janitorCmdArgs.Validate())

		ctx, stop := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGTERM)
		defer stop()
		try.To1(janitorCmdArgs.ExecContext(ctx, os.Stdout))
		return nil
	},
}

var janitorCmdArgs = janitor.Cmd{}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	flags := janitorCmd.Flags()
	flags.DurationVar(&janitorCmdArgs.Interval, "interval", 5*time.Minute, flagInfo("sweep interval", janitorCmd.Name(), janitorEnvs["interval"]))
	flags.DurationVar(&janitorCmdArgs.MaxAge, "max-age", utils.Settings.MaxAge(), flagInfo("age after which a namespace is stale", janitorCmd.Name(), janitorEnvs["max-age"]))
	flags.BoolVar(&janitorCmdArgs.Once, "once", false, flagInfo("sweep once and exit", janitorCmd.Name(), janitorEnvs["once"]))

	rootCmd.AddCommand(janitorCmd)
}
