package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/starklab/starkgo"
	"github.com/starklab/starkgo/params"
	"github.com/starklab/starkgo/rotor"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate [molecule...]",
	Short: "Run Stark energy sweeps and store the curves",
	Long: "calculate runs a Stark energy sweep for each named built-in molecule\n" +
		"(see 'stark molecules') or for parameter files given with --params, and\n" +
		"merges the resulting curves into one storage file per molecule.",
	RunE: runCalculate,
}

func init() {
	addCalculateFlags(calculateCmd)
	rootCmd.AddCommand(calculateCmd)
}

func addCalculateFlags(cmd *cobra.Command) {
	cmd.Flags().Int("isomer", 0, "isomer index for built-in molecules")
	cmd.Flags().StringSlice("params", nil, "TOML parameter files to calculate")
	cmd.Flags().String("out-dir", ".", "directory for the storage files")
	cmd.Flags().Int("m-max", 0, "sweep M = 0..m-max")
	cmd.Flags().Int("j-max", 10, "highest J included in the calculation")
	cmd.Flags().Int("j-max-save", -1, "highest J stored (default: --j-max)")
	cmd.Flags().Float64("field-min", 0, "field grid start in kV/cm")
	cmd.Flags().Float64("field-max", 0, "field grid end in kV/cm (0 keeps the parameter grid)")
	cmd.Flags().Int("field-steps", 101, "number of field grid points")
	cmd.Flags().Int("concurrency", 2, "molecules calculated in parallel")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	paramFiles, _ := cmd.Flags().GetStringSlice("params")
	if len(args) == 0 && len(paramFiles) == 0 {
		return fmt.Errorf("no molecules given: pass built-in names or --params files")
	}

	isomer, _ := cmd.Flags().GetInt("isomer")
	outDir, _ := cmd.Flags().GetString("out-dir")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	var parameters []rotor.Parameter
	for _, name := range args {
		p, err := params.Lookup(name, isomer)
		if err != nil {
			return err
		}
		parameters = append(parameters, p)
	}
	for _, file := range paramFiles {
		p, err := params.Load(file)
		if err != nil {
			return err
		}
		parameters = append(parameters, p)
	}

	for i := range parameters {
		if err := applySweep(cmd, &parameters[i]); err != nil {
			return err
		}
	}

	ctx, cancel := signalContext()
	defer cancel()

	opts, err := storeOptions(false)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, p := range parameters {
		g.Go(func() error {
			return calculateOne(ctx, outDir, p, opts)
		})
	}
	return g.Wait()
}

// applySweep fills in the sweep configuration of a parameter set from the
// command flags. Built-in registry entries carry only molecular constants,
// so the flags supply everything; parameter files keep their own sweep
// keys unless the matching flag is given explicitly.
func applySweep(cmd *cobra.Command, p *rotor.Parameter) error {
	if mmax, _ := cmd.Flags().GetInt("m-max"); cmd.Flags().Changed("m-max") || len(p.M) == 0 {
		if mmax < 0 {
			return fmt.Errorf("--m-max must be >= 0, got %d", mmax)
		}
		p.M = p.M[:0]
		for m := 0; m <= mmax; m++ {
			p.M = append(p.M, m)
		}
	}
	if jmax, _ := cmd.Flags().GetInt("j-max"); cmd.Flags().Changed("j-max") || p.JMaxCalc == 0 {
		p.JMaxCalc = jmax
	}
	if jsave, _ := cmd.Flags().GetInt("j-max-save"); jsave >= 0 {
		p.JMaxSave = jsave
	} else if p.JMaxSave == 0 {
		p.JMaxSave = p.JMaxCalc
	}
	return applyFieldGrid(cmd, p)
}

// applyFieldGrid replaces the parameter field grid when --field-max is set.
func applyFieldGrid(cmd *cobra.Command, p *rotor.Parameter) error {
	max, _ := cmd.Flags().GetFloat64("field-max")
	if max == 0 {
		if len(p.Fields) == 0 {
			return fmt.Errorf("%s: parameter set has no field grid, pass --field-max", p.Name)
		}
		return nil
	}
	min, _ := cmd.Flags().GetFloat64("field-min")
	steps, _ := cmd.Flags().GetInt("field-steps")
	if steps < 2 {
		return fmt.Errorf("need at least 2 field steps, got %d", steps)
	}
	p.Fields = params.FieldGrid(params.KVcm2Vm(min), params.KVcm2Vm(max), steps)
	return nil
}

func calculateOne(ctx context.Context, outDir string, p rotor.Parameter, opts []starkgo.Option) error {
	solver, err := solverFor(p)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, fmt.Sprintf("%s.stark", p.Name))
	mol, err := starkgo.Open(path, opts...)
	if err != nil {
		return err
	}
	defer mol.Close()

	if err := mol.Calculate(ctx, solver, p); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	fmt.Fprintf(os.Stderr, "%s: sweep done, stored in %s\n", p.Name, path)
	return mol.Close()
}

func solverFor(p rotor.Parameter) (rotor.Solver, error) {
	if p.Type == rotor.Linear {
		return rotor.PerturbativeLinear(), nil
	}
	return nil, fmt.Errorf("%s: no built-in solver for rotor type %q", p.Name, p.Type)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
