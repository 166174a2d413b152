// Package curve holds the field/energy sample sequences of a Stark curve
// and the merge and finite-difference operations on them.
package curve

import (
	"fmt"
	"sort"
)

// ErrLengthMismatch reports a curve whose field and energy sequences differ
// in length. On read paths this is a corruption signal and is surfaced, not
// repaired.
type ErrLengthMismatch struct {
	Fields   int
	Energies int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("curve length mismatch: %d fields vs %d energies", e.Fields, e.Energies)
}

// ErrInsufficientData reports too few samples for a derived quantity.
type ErrInsufficientData struct {
	Points int
	Need   int
}

func (e *ErrInsufficientData) Error() string {
	return fmt.Sprintf("insufficient data: have %d points, need at least %d", e.Points, e.Need)
}

// Curve is a pair of equal-length sample sequences: field strengths and the
// corresponding Stark energies. A stored curve has strictly increasing,
// unique field values.
type Curve struct {
	Fields   []float64
	Energies []float64
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.Fields) }

// Validate checks the length invariant.
func (c Curve) Validate() error {
	if len(c.Fields) != len(c.Energies) {
		return &ErrLengthMismatch{Fields: len(c.Fields), Energies: len(c.Energies)}
	}
	return nil
}

// Merge combines an existing curve with newly computed samples.
//
// The result is the sorted union of the two field sets; where both curves
// carry the same field value the incoming energy wins. An empty old curve
// degenerates to sorting the new samples, which also covers solver output
// that arrives unsorted.
func Merge(existing, incoming Curve) (Curve, error) {
	if err := existing.Validate(); err != nil {
		return Curve{}, err
	}
	if err := incoming.Validate(); err != nil {
		return Curve{}, err
	}

	energyAt := make(map[float64]float64, existing.Len()+incoming.Len())
	for i, f := range existing.Fields {
		energyAt[f] = existing.Energies[i]
	}
	// New samples overwrite old ones at identical field values.
	for i, f := range incoming.Fields {
		energyAt[f] = incoming.Energies[i]
	}

	merged := Curve{
		Fields:   make([]float64, 0, len(energyAt)),
		Energies: make([]float64, 0, len(energyAt)),
	}
	for f := range energyAt {
		merged.Fields = append(merged.Fields, f)
	}
	sort.Float64s(merged.Fields)
	for _, f := range merged.Fields {
		merged.Energies = append(merged.Energies, energyAt[f])
	}
	return merged, nil
}

// EffectiveDipole computes the effective dipole moment, the negative field
// derivative of the Stark energy, by finite differences.
//
// The first point is 0, interior points are central differences, and the
// last point is a forward difference (there is no sample beyond the maximum
// field to support a central estimate). Needs at least two samples.
func EffectiveDipole(c Curve) (Curve, error) {
	if err := c.Validate(); err != nil {
		return Curve{}, err
	}
	n := c.Len()
	if n < 2 {
		return Curve{}, &ErrInsufficientData{Points: n, Need: 2}
	}

	mueff := make([]float64, n)
	mueff[0] = 0
	for i := 1; i < n-1; i++ {
		mueff[i] = (c.Energies[i-1] - c.Energies[i+1]) / (c.Fields[i+1] - c.Fields[i-1])
	}
	mueff[n-1] = (c.Energies[n-2] - c.Energies[n-1]) / (c.Fields[n-1] - c.Fields[n-2])

	return Curve{Fields: c.Fields, Energies: mueff}, nil
}
