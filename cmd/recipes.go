package cmd

import (
	"fmt"
	"log"

	"github.com/findy-network/findy-fixture/fixture"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Lists the fixture recipes",
	Long: `
Lists the fixture recipes which provision command can build
	`,
	RunE: func(_ *cobra.Command, _ []string) (err error) {
		defer err2.Handle(&err)

		for _, recipe := range fixture.Recipes() {
			try.To1(fmt.Println(recipe))
		}
		return nil
	},
}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	rootCmd.AddCommand(recipesCmd)
}
