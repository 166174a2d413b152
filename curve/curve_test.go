package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDisjoint(t *testing.T) {
	old := Curve{Fields: []float64{0, 2}, Energies: []float64{0, -3}}
	add := Curve{Fields: []float64{1, 3}, Energies: []float64{-1, -4}}

	got, err := Merge(old, add)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, got.Fields)
	assert.Equal(t, []float64{0, -1, -3, -4}, got.Energies)
}

func TestMergeNewWins(t *testing.T) {
	old := Curve{Fields: []float64{1.0}, Energies: []float64{10.0}}
	add := Curve{Fields: []float64{1.0}, Energies: []float64{20.0}}

	got, err := Merge(old, add)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0}, got.Fields)
	assert.Equal(t, []float64{20.0}, got.Energies)
}

func TestMergeEmptyOldSortsNew(t *testing.T) {
	// Solver output order over the M/field loops is not guaranteed sorted.
	add := Curve{Fields: []float64{3, 1, 2}, Energies: []float64{-4, -1, -3}}

	got, err := Merge(Curve{}, add)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got.Fields)
	assert.Equal(t, []float64{-1, -3, -4}, got.Energies)
}

func TestMergeIdempotent(t *testing.T) {
	old := Curve{Fields: []float64{0, 1, 2}, Energies: []float64{0, -1, -2}}
	add := Curve{Fields: []float64{1, 3}, Energies: []float64{-1.5, -4}}

	once, err := Merge(old, add)
	require.NoError(t, err)
	twice, err := Merge(once, add)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestMergeSortedness(t *testing.T) {
	old := Curve{Fields: []float64{5, 0, 2.5}, Energies: []float64{1, 2, 3}}
	add := Curve{Fields: []float64{2.5, 7, 1}, Energies: []float64{4, 5, 6}}

	got, err := Merge(old, add)
	require.NoError(t, err)
	require.Equal(t, got.Len(), len(got.Energies))
	for i := 1; i < got.Len(); i++ {
		assert.Less(t, got.Fields[i-1], got.Fields[i], "fields not strictly increasing at %d", i)
	}
}

func TestMergeRejectsMismatchedInput(t *testing.T) {
	bad := Curve{Fields: []float64{1, 2}, Energies: []float64{1}}

	_, err := Merge(bad, Curve{})
	var lerr *ErrLengthMismatch
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 2, lerr.Fields)
	assert.Equal(t, 1, lerr.Energies)

	_, err = Merge(Curve{}, bad)
	assert.ErrorAs(t, err, &lerr)
}

func TestEffectiveDipole(t *testing.T) {
	c := Curve{
		Fields:   []float64{0, 1, 2, 3},
		Energies: []float64{0, -1, -3, -4},
	}

	got, err := EffectiveDipole(c)
	require.NoError(t, err)
	assert.Equal(t, c.Fields, got.Fields)
	assert.Equal(t, []float64{0, 1.5, 1.5, 1.0}, got.Energies)
}

func TestEffectiveDipoleTwoPoints(t *testing.T) {
	c := Curve{Fields: []float64{0, 2}, Energies: []float64{0, -3}}

	got, err := EffectiveDipole(c)
	require.NoError(t, err)
	// First point is pinned to zero, last is a forward difference.
	assert.Equal(t, []float64{0, 1.5}, got.Energies)
}

func TestEffectiveDipoleInsufficientData(t *testing.T) {
	for _, c := range []Curve{
		{},
		{Fields: []float64{1}, Energies: []float64{2}},
	} {
		_, err := EffectiveDipole(c)
		var ierr *ErrInsufficientData
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, 2, ierr.Need)
	}
}
