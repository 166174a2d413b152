package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starklab/starkgo/params"
)

var moleculesCmd = &cobra.Command{
	Use:   "molecules",
	Short: "List the built-in molecule parameter sets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range params.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(moleculesCmd)
}
