package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List the states stored in a storage file",
	Args:  cobra.NoArgs,
	RunE:  runStates,
}

func init() {
	rootCmd.AddCommand(statesCmd)
}

func runStates(cmd *cobra.Command, _ []string) error {
	mol, err := openMolecule(true)
	if err != nil {
		return err
	}
	defer mol.Close()

	states, err := mol.States()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "J\tKa\tKc\tM\tISO\tID")
	for _, s := range states {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\n", s.J(), s.Ka(), s.Kc(), s.M(), s.Isomer(), s.ID())
	}
	return w.Flush()
}
