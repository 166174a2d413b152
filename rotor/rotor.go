// Package rotor defines the interface to the rotational-Hamiltonian solver
// and the parameter set that drives a Stark calculation.
//
// The eigensolver itself is an external collaborator: this package only
// fixes the contract. Solvers receive the molecular parameters plus one
// (M, field) pair and return the energy of every eigenstate up to the
// configured J cutoff, labeled with its quantum numbers.
package rotor

import (
	"context"
	"fmt"

	"github.com/starklab/starkgo/state"
)

// Type selects the rotor Hamiltonian.
type Type string

const (
	Linear     Type = "L"
	Symmetric  Type = "S"
	Asymmetric Type = "A"
)

// Valid reports whether t names a known rotor type.
func (t Type) Valid() bool {
	switch t {
	case Linear, Symmetric, Asymmetric:
		return true
	}
	return false
}

// Parameter is the full molecular and sweep configuration of one Stark
// calculation. All quantities are SI: rotational and distortion constants
// in Joule, dipole components in C·m, field strengths in V/m.
type Parameter struct {
	Name   string
	Mass   float64 // u
	Isomer int

	Type     Type
	Watson   string // Watson reduction for asymmetric tops: "A" or "S"
	Symmetry string // dipole symmetry class, e.g. "N", "C2a", "C2b", "C2c"

	RotCon  []float64 // 1 (linear), 2 (symmetric) or 3 (asymmetric) constants
	Quartic []float64
	Sextic  []float64
	Dipole  []float64

	M        []int
	JMin     int
	JMaxCalc int
	JMaxSave int

	Fields []float64 // field grid, iterated in increasing order
}

// Validate checks the parts of the configuration the driver relies on.
func (p Parameter) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("unknown rotor type %q", p.Type)
	}
	if len(p.Fields) == 0 {
		return fmt.Errorf("empty field grid")
	}
	if len(p.M) == 0 {
		return fmt.Errorf("empty M list")
	}
	if p.JMaxCalc < p.JMaxSave {
		return fmt.Errorf("JMaxCalc %d below JMaxSave %d", p.JMaxCalc, p.JMaxSave)
	}
	for _, m := range p.M {
		if m < 0 || m >= state.Max {
			return fmt.Errorf("M=%d out of range", m)
		}
	}
	return nil
}

// Assignment labels one eigenstate with its energy at a single field value.
type Assignment struct {
	State  state.State
	Energy float64 // J
}

// Solver diagonalizes the rotor Hamiltonian for one (M, field) pair and
// returns every eigenstate up to the J cutoff.
type Solver interface {
	Solve(ctx context.Context, param Parameter, m int, field float64) ([]Assignment, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, param Parameter, m int, field float64) ([]Assignment, error)

// Solve calls fn.
func (fn SolverFunc) Solve(ctx context.Context, param Parameter, m int, field float64) ([]Assignment, error) {
	return fn(ctx, param, m, field)
}
