package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starklab/starkgo/rotor"
)

func TestLookupBuiltins(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name, 0)
		require.NoError(t, err, "molecule %s", name)
		assert.Equal(t, name, p.Name)
		assert.True(t, p.Type.Valid(), "molecule %s", name)
		assert.NotEmpty(t, p.RotCon, "molecule %s", name)
		assert.NotEmpty(t, p.Dipole, "molecule %s", name)
		assert.Greater(t, p.Mass, 0.0, "molecule %s", name)
	}
}

func TestLookupUnknownMolecule(t *testing.T) {
	_, err := Lookup("unobtainium", 0)
	assert.Error(t, err)
}

func TestLookupUnknownIsomer(t *testing.T) {
	_, err := Lookup("water", 17)
	assert.Error(t, err)
}

func TestOCSRotorTypesPerIsomer(t *testing.T) {
	types := []rotor.Type{rotor.Linear, rotor.Symmetric, rotor.Asymmetric}
	for isomer, want := range types {
		p, err := Lookup("OCS", isomer)
		require.NoError(t, err)
		assert.Equal(t, want, p.Type, "isomer %d", isomer)
	}
}

func TestWaterIsomerMasses(t *testing.T) {
	h2o, err := Lookup("water", 0)
	require.NoError(t, err)
	d2o, err := Lookup("water", 1)
	require.NoError(t, err)
	assert.Greater(t, d2o.Mass, h2o.Mass)
	assert.InDelta(t, 18.0106, h2o.Mass, 1e-3)
}

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, 6.62606957e-25, Hz2J(1e9), 1e-33)
	assert.InDelta(t, 1e9, J2Hz(Hz2J(1e9)), 1e-3)
	assert.InDelta(t, 3.33564e-30, D2Cm(1), 1e-34)
	assert.InDelta(t, 1.0, Cm2D(D2Cm(1.0)), 1e-12)
	assert.Equal(t, 1e5, KVcm2Vm(1))
	assert.Equal(t, 1.0, Vm2KVcm(KVcm2Vm(1)))
}

func TestFieldGrid(t *testing.T) {
	grid := FieldGrid(0, KVcm2Vm(100), 101)
	require.Len(t, grid, 101)
	assert.Equal(t, 0.0, grid[0])
	assert.InDelta(t, 1e7, grid[100], 1e-6)
	assert.InDelta(t, 1e5, grid[1], 1e-6)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
name = "benzonitrile"
mass = 103.0422
isomer = 0
type = "A"
watson = "A"
symmetry = "C2a"
rotcon_mhz = [5655.2654, 1546.875864, 1214.40399]
quartic_hz = [45.6, 938.1, 500.0, 10.95, 628.0]
dipole_d = [4.5152, 0.0, 0.0]
`)
	p, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "benzonitrile", p.Name)
	assert.Equal(t, rotor.Asymmetric, p.Type)
	require.Len(t, p.RotCon, 3)
	assert.InDelta(t, Hz2J(5655.2654e6), p.RotCon[0], 1e-40)
	require.Len(t, p.Dipole, 3)
	assert.InDelta(t, D2Cm(4.5152), p.Dipole[0], 1e-40)

	// A parsed file must match the registered constants.
	builtin, err := Lookup("benzonitrile", 0)
	require.NoError(t, err)
	require.Len(t, p.Quartic, len(builtin.Quartic))
	for i := range builtin.RotCon {
		assert.InDelta(t, builtin.RotCon[i], p.RotCon[i], builtin.RotCon[i]*1e-12)
	}
}

func TestParseTOMLSweepConfig(t *testing.T) {
	data := []byte(`
name = "OCS"
type = "L"
rotcon_mhz = [6081.492475]
dipole_d = [0.71519]
m = [0, 1]
jmin = 0
jmax_calc = 6
jmax_save = 2
fields_kvcm = [0.0, 50.0, 100.0]
`)
	p, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p.M)
	assert.Equal(t, 6, p.JMaxCalc)
	assert.Equal(t, 2, p.JMaxSave)
	require.Len(t, p.Fields, 3)
	assert.Equal(t, KVcm2Vm(50), p.Fields[1])
	assert.NoError(t, p.Validate())
}

func TestParseTOMLSweepSaveDefaultsToCalc(t *testing.T) {
	data := []byte(`
name = "OCS"
type = "L"
rotcon_mhz = [6081.492475]
dipole_d = [0.71519]
m = [0]
jmax_calc = 4
`)
	p, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 4, p.JMaxSave)
}

func TestParseErrors(t *testing.T) {
	for name, data := range map[string]string{
		"bad toml":     `name = `,
		"missing name": `type = "A"`,
		"bad type":     "name = \"x\"\ntype = \"Q\"",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "molecule.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"OCS\"\ntype = \"L\"\nrotcon_mhz = [6081.492475]\ndipole_d = [0.71519]\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "OCS", p.Name)
	assert.Equal(t, rotor.Linear, p.Type)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
