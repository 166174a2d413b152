package rotor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearParam() Parameter {
	return Parameter{
		Name:     "ocs",
		Type:     Linear,
		RotCon:   []float64{4.033e-24}, // ~6081.5 MHz in J
		Quartic:  []float64{8.6e-31},
		Dipole:   []float64{2.386e-30}, // ~0.715 D in C·m
		M:        []int{0},
		JMaxCalc: 5,
		JMaxSave: 3,
		Fields:   []float64{0},
	}
}

func TestPerturbativeLinearFieldFree(t *testing.T) {
	solver := PerturbativeLinear()
	param := linearParam()

	got, err := solver.Solve(context.Background(), param, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 6)

	b := param.RotCon[0]
	d := param.Quartic[0]
	for i, a := range got {
		assert.Equal(t, i, a.State.J())
		assert.Equal(t, 0, a.State.M())
		jj := float64(i * (i + 1))
		assert.InDelta(t, b*jj-d*jj*jj, a.Energy, 1e-40)
	}
}

func TestPerturbativeLinearStarkShiftSigns(t *testing.T) {
	solver := PerturbativeLinear()
	param := linearParam()
	field := 5e5 // 5 kV/cm

	free, err := solver.Solve(context.Background(), param, 0, 0)
	require.NoError(t, err)
	shifted, err := solver.Solve(context.Background(), param, 0, field)
	require.NoError(t, err)

	// J=0,M=0 is high-field seeking: energy drops with field.
	assert.Less(t, shifted[0].Energy, free[0].Energy)
	// J=1,M=0 is low-field seeking: energy rises with field.
	assert.Greater(t, shifted[1].Energy, free[1].Energy)
}

func TestPerturbativeLinearJStartsAtM(t *testing.T) {
	solver := PerturbativeLinear()
	param := linearParam()
	param.M = []int{2}

	got, err := solver.Solve(context.Background(), param, 2, 0)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, 2, got[0].State.J())
}

func TestPerturbativeLinearRejectsOtherTypes(t *testing.T) {
	solver := PerturbativeLinear()
	param := linearParam()
	param.Type = Asymmetric

	_, err := solver.Solve(context.Background(), param, 0, 0)
	assert.Error(t, err)
}

func TestPerturbativeLinearRejectsBadConstants(t *testing.T) {
	solver := PerturbativeLinear()

	param := linearParam()
	param.RotCon = nil
	_, err := solver.Solve(context.Background(), param, 0, 0)
	assert.Error(t, err)

	param = linearParam()
	param.RotCon = []float64{-1}
	_, err = solver.Solve(context.Background(), param, 0, 0)
	assert.Error(t, err)
}
