package rotor

import (
	"context"
	"fmt"

	"github.com/starklab/starkgo/state"
)

// PerturbativeLinear returns a Solver for linear rotors using closed-form
// second-order perturbation theory. It handles the weak-field regime where
// the Stark shift is small against the rotational spacing; it is exact in
// the field-free limit and needs no matrix diagonalization.
//
// Field-free energies include the quartic distortion term:
//
//	E0(J) = B J(J+1) - D [J(J+1)]^2
//
// and the second-order Stark shift for a dipole mu along the axis is
//
//	J = 0:  -mu^2 F^2 / (6B)
//	J > 0:  mu^2 F^2 / (2B) * [J(J+1) - 3M^2] / [J(J+1)(2J-1)(2J+3)]
func PerturbativeLinear() Solver {
	return SolverFunc(solveLinear)
}

func solveLinear(_ context.Context, param Parameter, m int, field float64) ([]Assignment, error) {
	if param.Type != Linear {
		return nil, fmt.Errorf("perturbative solver handles type %q only, got %q", Linear, param.Type)
	}
	if len(param.RotCon) < 1 {
		return nil, fmt.Errorf("missing rotational constant")
	}
	b := param.RotCon[0]
	if b <= 0 {
		return nil, fmt.Errorf("rotational constant must be positive, got %g", b)
	}
	var d float64
	if len(param.Quartic) > 0 {
		d = param.Quartic[0]
	}
	var mu float64
	if len(param.Dipole) > 0 {
		mu = param.Dipole[0]
	}

	jmin := param.JMin
	if jmin < m {
		jmin = m
	}

	var out []Assignment
	for j := jmin; j <= param.JMaxCalc; j++ {
		jj := float64(j * (j + 1))
		e := b*jj - d*jj*jj

		if mu != 0 && field != 0 {
			if j == 0 {
				e -= mu * mu * field * field / (6 * b)
			} else {
				mm := float64(m * m)
				num := jj - 3*mm
				den := jj * float64(2*j-1) * float64(2*j+3)
				e += mu * mu * field * field / (2 * b) * num / den
			}
		}

		st, err := state.New(j, 0, 0, m, param.Isomer)
		if err != nil {
			return nil, err
		}
		out = append(out, Assignment{State: st, Energy: e})
	}
	return out, nil
}
