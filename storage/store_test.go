package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starklab/starkgo/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "molecule.stark")
}

func TestSetGetArray(t *testing.T) {
	s, err := Open(tempStorePath(t), ReadWrite)
	require.NoError(t, err)
	defer s.Close()

	vals := []float64{0, 1.5, -3.25}
	require.NoError(t, s.SetArray("_1/_0/_1/_0/_0/dcfield", vals))

	got, err := s.GetArray("_1/_0/_1/_0/_0/dcfield")
	require.NoError(t, err)
	assert.Equal(t, vals, got)

	// The store hands out copies, not aliases.
	got[0] = 99
	again, err := s.GetArray("_1/_0/_1/_0/_0/dcfield")
	require.NoError(t, err)
	assert.Equal(t, vals, again)
}

func TestGetArrayNotFound(t *testing.T) {
	s, err := Open(tempStorePath(t), ReadWrite)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.GetArray("_9/_0/_0/_0/_0/dcfield")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlushAndReopen(t *testing.T) {
	path := tempStorePath(t)

	s, err := Open(path, ReadWrite)
	require.NoError(t, err)
	require.NoError(t, s.SetArray("_0/_0/_0/_0/_0/dcfield", []float64{0, 1, 2}))
	require.NoError(t, s.SetArray("_0/_0/_0/_0/_0/dcstarkenergy", []float64{0, -1, -4}))
	require.NoError(t, s.UpsertIsomerMass(0, "water", 18.0106))
	require.NoError(t, s.Close())

	r, err := Open(path, ReadOnly)
	require.NoError(t, err)
	defer r.Close()

	fields, err := r.GetArray("_0/_0/_0/_0/_0/dcfield")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, fields)

	energies, err := r.GetArray("_0/_0/_0/_0/_0/dcstarkenergy")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, -4}, energies)

	masses := r.IsomerMasses()
	require.Len(t, masses, 1)
	assert.Equal(t, IsomerMass{Index: 0, Name: "water", Mass: 18.0106}, masses[0])
}

func TestReopenKeepsCodec(t *testing.T) {
	for _, name := range []string{"none", "zstd", "lz4"} {
		t.Run(name, func(t *testing.T) {
			path := tempStorePath(t)
			c, ok := codec.ByName(name)
			require.True(t, ok)

			s, err := Open(path, ReadWrite, WithCodec(c))
			require.NoError(t, err)
			require.NoError(t, s.SetArray("_0/_0/_0/_0/_0/dcfield", []float64{1, 2, 3}))
			require.NoError(t, s.Close())

			r, err := Open(path, ReadOnly)
			require.NoError(t, err)
			defer r.Close()
			got, err := r.GetArray("_0/_0/_0/_0/_0/dcfield")
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 2, 3}, got)
		})
	}
}

func TestReadOnlyRejectsWrites(t *testing.T) {
	path := tempStorePath(t)
	s, err := Open(path, ReadWrite)
	require.NoError(t, err)
	require.NoError(t, s.SetArray("_0/_0/_0/_0/_0/dcfield", []float64{1}))
	require.NoError(t, s.Close())

	r, err := Open(path, ReadOnly)
	require.NoError(t, err)
	defer r.Close()

	assert.ErrorIs(t, r.SetArray("_0/_0/_0/_0/_0/dcfield", []float64{2}), ErrReadOnly)
	assert.ErrorIs(t, r.UpsertIsomerMass(0, "x", 1), ErrReadOnly)
}

func TestReadOnlyMissingFile(t *testing.T) {
	_, err := Open(tempStorePath(t), ReadOnly)
	assert.Error(t, err)
}

func TestUpsertIsomerMassUpdatesInPlace(t *testing.T) {
	s, err := Open(tempStorePath(t), ReadWrite)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.UpsertIsomerMass(0, "water", 18.0))
	require.NoError(t, s.UpsertIsomerMass(1, "D2O", 20.0))
	require.NoError(t, s.UpsertIsomerMass(0, "water", 18.0106))

	masses := s.IsomerMasses()
	require.Len(t, masses, 2)
	assert.Equal(t, 18.0106, masses[0].Mass)
	assert.Equal(t, "water", masses[0].Name)
}

func TestChildren(t *testing.T) {
	s, err := Open(tempStorePath(t), ReadWrite)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetArray("_0/_0/_0/_0/_0/dcfield", []float64{1}))
	require.NoError(t, s.SetArray("_0/_0/_0/_0/_0/dcstarkenergy", []float64{2}))
	require.NoError(t, s.SetArray("_1/_0/_1/_0/_0/dcfield", []float64{3}))

	groups, leaves, err := s.Children("")
	require.NoError(t, err)
	assert.Equal(t, []string{"_0", "_1"}, groups)
	assert.Empty(t, leaves)

	groups, leaves, err = s.Children("_0/_0/_0/_0/_0")
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Equal(t, []string{"dcfield", "dcstarkenergy"}, leaves)

	_, _, err = s.Children("_7")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWalkOrderIsDeterministic(t *testing.T) {
	s, err := Open(tempStorePath(t), ReadWrite)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetArray("_1/_0/_1/_0/_0/dcfield", []float64{1}))
	require.NoError(t, s.SetArray("_0/_0/_0/_0/_0/dcfield", []float64{2}))

	var paths []string
	require.NoError(t, s.Walk(func(path string, _ []float64) {
		paths = append(paths, path)
	}))
	assert.Equal(t, []string{"_0/_0/_0/_0/_0/dcfield", "_1/_0/_1/_0/_0/dcfield"}, paths)
}

func TestCorruptFileRejected(t *testing.T) {
	path := tempStorePath(t)
	s, err := Open(path, ReadWrite)
	require.NoError(t, err)
	require.NoError(t, s.SetArray("_0/_0/_0/_0/_0/dcfield", []float64{1, 2}))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xFF
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = Open(path, ReadOnly)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestBadMagicRejected(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0644))

	_, err := Open(path, ReadOnly)
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestClosedStore(t *testing.T) {
	s, err := Open(tempStorePath(t), ReadWrite)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close()) // idempotent

	_, err = s.GetArray("_0/_0/_0/_0/_0/dcfield")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.SetArray("x", nil), ErrClosed)
	assert.ErrorIs(t, s.Flush(), ErrClosed)
}

func TestFlushWithoutWritesCreatesNoFile(t *testing.T) {
	path := tempStorePath(t)
	s, err := Open(path, ReadWrite)
	require.NoError(t, err)
	require.NoError(t, s.Flush())
	require.NoError(t, s.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestEmptyArrayRoundTrip(t *testing.T) {
	path := tempStorePath(t)
	s, err := Open(path, ReadWrite)
	require.NoError(t, err)
	require.NoError(t, s.SetArray("_0/_0/_0/_0/_0/dcfield", nil))
	require.NoError(t, s.Close())

	r, err := Open(path, ReadOnly)
	require.NoError(t, err)
	defer r.Close()
	got, err := r.GetArray("_0/_0/_0/_0/_0/dcfield")
	require.NoError(t, err)
	assert.Empty(t, got)
}
