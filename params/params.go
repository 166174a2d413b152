// Package params provides literature molecular parameters for Stark
// calculations: a registry of built-in molecules with published constants,
// and a loader for user-supplied TOML parameter files.
//
// The registry hands back rotor.Parameter values with the molecular
// constants filled in; the sweep configuration (M list, J cutoffs, field
// grid) is up to the caller.
package params

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/starklab/starkgo/rotor"
)

// ParameterFunc fills in the molecular constants of one molecule for the
// requested isomer.
type ParameterFunc func(isomer int) (rotor.Parameter, error)

var registry = map[string]ParameterFunc{}

// Register adds a molecule to the registry. Registering a name twice
// replaces the earlier entry.
func Register(name string, fn ParameterFunc) {
	registry[name] = fn
}

// Names returns the registered molecule names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the molecular parameters for a registered molecule.
func Lookup(name string, isomer int) (rotor.Parameter, error) {
	fn, ok := registry[name]
	if !ok {
		return rotor.Parameter{}, fmt.Errorf("unknown molecule %q", name)
	}
	return fn(isomer)
}

// tomlParameter is the on-disk schema of a user parameter file. Constants
// are given in the units customary in the literature and converted to SI
// on load. The sweep keys (m, jmin, jmax_calc, jmax_save, fields_kvcm)
// are optional; the calculate command fills missing ones from its flags.
// A jmax_save of 0 means "store everything up to jmax_calc".
type tomlParameter struct {
	Name     string  `toml:"name"`
	Mass     float64 `toml:"mass"`
	Isomer   int     `toml:"isomer"`
	Type     string  `toml:"type"`
	Watson   string  `toml:"watson"`
	Symmetry string  `toml:"symmetry"`

	RotConMHz []float64 `toml:"rotcon_mhz"`
	QuarticHz []float64 `toml:"quartic_hz"`
	SexticHz  []float64 `toml:"sextic_hz"`
	DipoleD   []float64 `toml:"dipole_d"`

	M          []int     `toml:"m"`
	JMin       int       `toml:"jmin"`
	JMaxCalc   int       `toml:"jmax_calc"`
	JMaxSave   int       `toml:"jmax_save"`
	FieldsKVcm []float64 `toml:"fields_kvcm"`
}

// Load reads molecular parameters from a TOML file.
func Load(path string) (rotor.Parameter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rotor.Parameter{}, err
	}
	return Parse(data)
}

// Parse decodes molecular parameters from TOML data.
func Parse(data []byte) (rotor.Parameter, error) {
	var tp tomlParameter
	if err := toml.Unmarshal(data, &tp); err != nil {
		return rotor.Parameter{}, fmt.Errorf("params: %w", err)
	}
	if tp.Name == "" {
		return rotor.Parameter{}, fmt.Errorf("params: missing molecule name")
	}
	typ := rotor.Type(tp.Type)
	if !typ.Valid() {
		return rotor.Parameter{}, fmt.Errorf("params: molecule %s: unknown rotor type %q", tp.Name, tp.Type)
	}

	p := rotor.Parameter{
		Name:     tp.Name,
		Mass:     tp.Mass,
		Isomer:   tp.Isomer,
		Type:     typ,
		Watson:   tp.Watson,
		Symmetry: tp.Symmetry,
		Dipole:   d2CmSlice(tp.DipoleD),
	}
	p.RotCon = make([]float64, len(tp.RotConMHz))
	for i, v := range tp.RotConMHz {
		p.RotCon[i] = MHz2J(v)
	}
	p.Quartic = hz2JSlice(tp.QuarticHz)
	p.Sextic = hz2JSlice(tp.SexticHz)

	p.M = tp.M
	p.JMin = tp.JMin
	p.JMaxCalc = tp.JMaxCalc
	p.JMaxSave = tp.JMaxSave
	if p.JMaxSave == 0 {
		p.JMaxSave = p.JMaxCalc
	}
	if len(tp.FieldsKVcm) > 0 {
		p.Fields = make([]float64, len(tp.FieldsKVcm))
		for i, f := range tp.FieldsKVcm {
			p.Fields[i] = KVcm2Vm(f)
		}
	}
	return p, nil
}
