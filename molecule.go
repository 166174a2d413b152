package starkgo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/starklab/starkgo/curve"
	"github.com/starklab/starkgo/rotor"
	"github.com/starklab/starkgo/state"
	"github.com/starklab/starkgo/storage"
)

// Names of the two array leaves stored under each state path.
const (
	fieldLeaf  = "dcfield"
	energyLeaf = "dcstarkenergy"
)

// Molecule is the handle to one molecule's Stark curve storage file.
//
// It owns the backing store for its lifetime; close it on every exit path.
// Single writer per file, no internal locking.
type Molecule struct {
	store  *storage.Store
	logger *Logger

	// ids caches the set of stored state identifiers. nil until the first
	// States call; writes keep it current.
	ids *roaring64.Bitmap
}

// Open opens or creates the molecule storage file at path.
func Open(path string, opts ...Option) (*Molecule, error) {
	o := applyOptions(opts)

	mode := storage.ReadWrite
	if o.readOnly {
		mode = storage.ReadOnly
	}
	store, err := storage.Open(path, mode, storage.WithCodec(o.codec))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, path, err)
	}
	return &Molecule{store: store, logger: o.logger}, nil
}

// StarkEffect returns the stored Stark curve for the given state.
//
// Returns ErrNotFound if the state was never written and a
// CurveLengthMismatchError if the two persisted arrays disagree in length.
func (m *Molecule) StarkEffect(s state.State) (curve.Curve, error) {
	base := s.StoragePath()

	fields, err := m.store.GetArray(base + "/" + fieldLeaf)
	if err != nil {
		return curve.Curve{}, m.translateNotFound(s, err)
	}
	energies, err := m.store.GetArray(base + "/" + energyLeaf)
	if err != nil {
		return curve.Curve{}, m.translateNotFound(s, err)
	}
	if len(fields) != len(energies) {
		return curve.Curve{}, &CurveLengthMismatchError{State: s, Fields: len(fields), Energies: len(energies)}
	}
	return curve.Curve{Fields: fields, Energies: energies}, nil
}

// SetStarkEffect overwrites the stored curve for the given state.
//
// The field and energy arrays must match in length; on mismatch nothing is
// written.
func (m *Molecule) SetStarkEffect(s state.State, c curve.Curve) error {
	if err := c.Validate(); err != nil {
		var lerr *curve.ErrLengthMismatch
		if errors.As(err, &lerr) {
			return &CurveLengthMismatchError{State: s, Fields: lerr.Fields, Energies: lerr.Energies}
		}
		return err
	}
	base := s.StoragePath()
	if err := m.store.SetArray(base+"/"+fieldLeaf, c.Fields); err != nil {
		return err
	}
	if err := m.store.SetArray(base+"/"+energyLeaf, c.Energies); err != nil {
		return err
	}
	if m.ids != nil {
		m.ids.Add(s.ID())
	}
	return nil
}

// MergeStarkEffect merges newly computed samples into the stored curve for
// the given state. A missing stored curve is treated as empty.
func (m *Molecule) MergeStarkEffect(s state.State, incoming curve.Curve) error {
	existing, err := m.StarkEffect(s)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	merged, err := curve.Merge(existing, incoming)
	if err != nil {
		var lerr *curve.ErrLengthMismatch
		if errors.As(err, &lerr) {
			return &CurveLengthMismatchError{State: s, Fields: lerr.Fields, Energies: lerr.Energies}
		}
		return err
	}
	return m.SetStarkEffect(s, merged)
}

// EffectiveDipole returns the effective-dipole-moment curve of the state,
// the finite-difference field derivative of its stored Stark curve.
//
// The first point is 0, interior points are central differences and the
// last point is a forward difference (no sample exists beyond the maximum
// field to support a central estimate there).
func (m *Molecule) EffectiveDipole(s state.State) (curve.Curve, error) {
	c, err := m.StarkEffect(s)
	if err != nil {
		return curve.Curve{}, err
	}
	mueff, err := curve.EffectiveDipole(c)
	if err != nil {
		var ierr *curve.ErrInsufficientData
		if errors.As(err, &ierr) {
			return curve.Curve{}, &InsufficientDataError{State: s, Points: ierr.Points, cause: err}
		}
		return curve.Curve{}, err
	}
	return mueff, nil
}

// States enumerates every state with a complete stored curve, in the
// depth-first traversal order of the storage namespace (not sorted by
// quantum numbers). Foreign or corrupt paths are logged and skipped.
func (m *Molecule) States() ([]state.State, error) {
	return m.enumerateStates(context.Background())
}

func (m *Molecule) enumerateStates(ctx context.Context) ([]state.State, error) {
	var states []state.State
	ids := roaring64.New()

	var walkState func(prefix string, depth int) error
	walkState = func(prefix string, depth int) error {
		groups, leaves, err := m.store.Children(prefix)
		if err != nil {
			return err
		}
		if depth == 5 {
			if !contains(leaves, fieldLeaf) || !contains(leaves, energyLeaf) {
				return nil
			}
			s, err := state.FromStoragePath(prefix)
			if err != nil {
				m.logger.LogSkippedPath(ctx, prefix, err)
				return nil
			}
			states = append(states, s)
			ids.Add(s.ID())
			return nil
		}
		for _, g := range groups {
			if err := walkState(join(prefix, g), depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walkState("", 0); err != nil {
		return nil, err
	}

	m.ids = ids
	return states, nil
}

// HasState reports whether a complete curve is stored for the state.
func (m *Molecule) HasState(s state.State) bool {
	if m.ids == nil {
		if _, err := m.States(); err != nil {
			return false
		}
	}
	return m.ids.Contains(s.ID())
}

// UpsertIsomerMass records the (name, mass) pair for an isomer index,
// updating the mass in place when the index already has a row.
func (m *Molecule) UpsertIsomerMass(index int, name string, mass float64) error {
	return m.store.UpsertIsomerMass(index, name, mass)
}

// IsomerMasses returns the stored isomer-mass table.
func (m *Molecule) IsomerMasses() []storage.IsomerMass {
	return m.store.IsomerMasses()
}

// Calculate runs a full Stark calculation sweep and commits the results.
//
// For every M value and every field in the grid it invokes the solver,
// groups the returned energies by state identifier, merges each group into
// the stored curve for that state, and flushes the store before moving to
// the next M value. An interrupted run therefore loses at most one
// M sweep's worth of results.
func (m *Molecule) Calculate(ctx context.Context, solver rotor.Solver, param rotor.Parameter) error {
	if err := param.Validate(); err != nil {
		return fmt.Errorf("invalid calculation parameter for %s: %w", param.Name, err)
	}
	if err := m.UpsertIsomerMass(param.Isomer, param.Name, param.Mass); err != nil {
		return err
	}

	log := m.logger.WithMolecule(param.Name)
	for _, mval := range param.M {
		n, err := m.sweep(ctx, solver, param, mval)
		log.LogSweep(ctx, mval, n, err)
		if err != nil {
			return err
		}
	}
	return nil
}

// sweep computes, merges and flushes all curves for a single M value.
func (m *Molecule) sweep(ctx context.Context, solver rotor.Solver, param rotor.Parameter, mval int) (int, error) {
	// Group energies by state id. Within one sweep the append order is
	// the field iteration order, so each group is already sorted by field.
	energies := make(map[uint64][]float64)
	for _, field := range param.Fields {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		assignments, err := solver.Solve(ctx, param, mval, field)
		if err != nil {
			return 0, fmt.Errorf("solver failed at M=%d field=%g: %w", mval, field, err)
		}
		for _, a := range assignments {
			// JMaxCalc sizes the calculation; only states up to JMaxSave
			// are persisted.
			if a.State.J() > param.JMaxSave {
				continue
			}
			id := a.State.ID()
			energies[id] = append(energies[id], a.Energy)
		}
	}

	ids := make([]uint64, 0, len(energies))
	for id := range energies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		s, err := state.FromID(id)
		if err != nil {
			return 0, fmt.Errorf("solver returned unencodable state id %d: %w", id, err)
		}
		incoming := curve.Curve{Fields: param.Fields, Energies: energies[id]}
		if err := m.MergeStarkEffect(s, incoming); err != nil {
			return 0, err
		}
	}

	if err := m.store.Flush(); err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Flush forces pending writes to durable storage.
func (m *Molecule) Flush() error {
	return m.store.Flush()
}

// Close flushes pending writes and releases the storage file.
func (m *Molecule) Close() error {
	return m.store.Close()
}

func (m *Molecule) translateNotFound(s state.State, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, s)
	}
	return err
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
