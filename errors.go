package starkgo

import (
	"errors"
	"fmt"

	"github.com/starklab/starkgo/state"
)

var (
	// ErrNotFound is returned when no curve is stored for a state.
	ErrNotFound = errors.New("no stark curve stored for state")

	// ErrStorageUnavailable is returned when the backing storage file can
	// neither be opened nor created.
	ErrStorageUnavailable = errors.New("cannot open storage file")
)

// CurveLengthMismatchError reports a stored curve whose field and energy
// arrays differ in length. This is a corruption signal: it is surfaced to
// the caller, never silently repaired.
type CurveLengthMismatchError struct {
	State    state.State
	Fields   int
	Energies int
}

func (e *CurveLengthMismatchError) Error() string {
	return fmt.Sprintf("state %s: stored curve has %d fields but %d energies", e.State, e.Fields, e.Energies)
}

// InsufficientDataError reports too few stored samples to compute a
// derived quantity for a state.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type InsufficientDataError struct {
	State  state.State
	Points int
	cause  error
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("state %s: %d stored samples, need at least 2", e.State, e.Points)
}

func (e *InsufficientDataError) Unwrap() error { return e.cause }
