package cmd

import (
	"fmt"
	"strings"

	"github.com/findy-network/findy-fixture/agent/utils"
	"github.com/findy-network/findy-fixture/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var versionDoc = `
Prints the version of findy-fixture and the fixture backends compiled in.
The indy backend is listed only when the tool is built with the indy tag.`

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the fixture tool version and its backends",
	Long:  versionDoc,
	RunE: func(_ *cobra.Command, _ []string) (err error) {
		defer err2.Handle(&err)

		try.To1(fmt.Println(utils.Version))
		try.To1(fmt.Println("backends:", strings.Join(cmds.Backends(), ", ")))
		return nil
	},
}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		fmt.Println(err)
	}))

	rootCmd.AddCommand(versionCmd)
}
