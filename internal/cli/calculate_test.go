package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starklab/starkgo"
	"github.com/starklab/starkgo/rotor"
	"github.com/starklab/starkgo/state"
)

func newCalculateCmd(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	addCalculateFlags(cmd)
	for name, value := range flags {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd
}

func TestCalculateBuiltinLinear(t *testing.T) {
	outDir := t.TempDir()
	cmd := newCalculateCmd(t, map[string]string{
		"out-dir":     outDir,
		"m-max":       "1",
		"j-max":       "3",
		"j-max-save":  "2",
		"field-max":   "100",
		"field-steps": "11",
	})

	require.NoError(t, runCalculate(cmd, []string{"OCS"}))

	mol, err := starkgo.Open(filepath.Join(outDir, "OCS.stark"), starkgo.WithReadOnly())
	require.NoError(t, err)
	defer mol.Close()

	states, err := mol.States()
	require.NoError(t, err)
	require.NotEmpty(t, states)
	for _, s := range states {
		assert.LessOrEqual(t, s.J(), 2)
	}
	assert.True(t, mol.HasState(state.MustNew(1, 0, 0, 1, 0)))

	c, err := mol.StarkEffect(state.MustNew(1, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Len(t, c.Fields, 11)
	assert.Len(t, c.Energies, 11)

	masses := mol.IsomerMasses()
	require.NotEmpty(t, masses)
	assert.Equal(t, "OCS", masses[0].Name)
	assert.Greater(t, masses[0].Mass, 0.0)
}

func TestCalculateParamFile(t *testing.T) {
	outDir := t.TempDir()
	paramFile := filepath.Join(t.TempDir(), "ocs.toml")
	doc := `
name = "ocs-custom"
mass = 59.967
type = "L"
rotcon_mhz = [6081.492475]
dipole_d = [0.71519]
m = [0]
jmax_calc = 2
jmax_save = 1
fields_kvcm = [0.0, 50.0, 100.0]
`
	require.NoError(t, os.WriteFile(paramFile, []byte(doc), 0644))

	cmd := newCalculateCmd(t, map[string]string{
		"out-dir": outDir,
		"params":  paramFile,
	})
	require.NoError(t, runCalculate(cmd, nil))

	mol, err := starkgo.Open(filepath.Join(outDir, "ocs-custom.stark"), starkgo.WithReadOnly())
	require.NoError(t, err)
	defer mol.Close()

	states, err := mol.States()
	require.NoError(t, err)
	require.NotEmpty(t, states)
	for _, s := range states {
		assert.LessOrEqual(t, s.J(), 1)
	}

	c, err := mol.StarkEffect(state.MustNew(0, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Len(t, c.Fields, 3)
}

func TestApplySweepFillsBuiltinDefaults(t *testing.T) {
	cmd := newCalculateCmd(t, map[string]string{"field-max": "100"})

	p := rotor.Parameter{Name: "x", Type: rotor.Linear}
	require.NoError(t, applySweep(cmd, &p))

	assert.Equal(t, []int{0}, p.M)
	assert.Equal(t, 10, p.JMaxCalc)
	assert.Equal(t, 10, p.JMaxSave)
	assert.Len(t, p.Fields, 101)
	assert.NoError(t, p.Validate())
}

func TestApplySweepKeepsFileConfig(t *testing.T) {
	cmd := newCalculateCmd(t, nil)

	p := rotor.Parameter{
		Name:     "x",
		Type:     rotor.Linear,
		M:        []int{0, 1, 2},
		JMaxCalc: 5,
		JMaxSave: 2,
		Fields:   []float64{0, 1e5},
	}
	require.NoError(t, applySweep(cmd, &p))

	assert.Equal(t, []int{0, 1, 2}, p.M)
	assert.Equal(t, 5, p.JMaxCalc)
	assert.Equal(t, 2, p.JMaxSave)
	assert.Equal(t, []float64{0, 1e5}, p.Fields)
}

func TestApplySweepFlagOverridesFileConfig(t *testing.T) {
	cmd := newCalculateCmd(t, map[string]string{"m-max": "1", "j-max": "4"})

	p := rotor.Parameter{
		Name:     "x",
		Type:     rotor.Linear,
		M:        []int{3},
		JMaxCalc: 8,
		JMaxSave: 2,
		Fields:   []float64{0, 1e5},
	}
	require.NoError(t, applySweep(cmd, &p))

	assert.Equal(t, []int{0, 1}, p.M)
	assert.Equal(t, 4, p.JMaxCalc)
	assert.Equal(t, 2, p.JMaxSave)
}

func TestApplySweepRequiresFieldGrid(t *testing.T) {
	cmd := newCalculateCmd(t, nil)
	p := rotor.Parameter{Name: "x", Type: rotor.Linear}
	assert.Error(t, applySweep(cmd, &p))
}
