package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/starklab/starkgo/params"
)

var mueffCmd = &cobra.Command{
	Use:   "mueff J Ka Kc M isomer",
	Short: "Print the effective dipole moment curve of one state",
	Long: "mueff prints the field-dependent effective dipole moment of a stored\n" +
		"state, computed by finite differences over its Stark energy curve.\n" +
		"Fields are printed in kV/cm, moments in Debye.",
	Args: cobra.ExactArgs(5),
	RunE: runMueff,
}

func init() {
	rootCmd.AddCommand(mueffCmd)
}

func runMueff(cmd *cobra.Command, args []string) error {
	s, err := parseState(args)
	if err != nil {
		return err
	}

	mol, err := openMolecule(true)
	if err != nil {
		return err
	}
	defer mol.Close()

	mueff, err := mol.EffectiveDipole(s)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD_KVCM\tMUEFF_D")
	for i := range mueff.Fields {
		fmt.Fprintf(w, "%g\t%g\n", params.Vm2KVcm(mueff.Fields[i]), params.Cm2D(mueff.Energies[i]))
	}
	return w.Flush()
}
