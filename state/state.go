// Package state defines the immutable quantum-state label used to key
// Stark-effect curves.
//
// A state is the 5-tuple (J, Ka, Kc, M, isomer). All five magnitudes must be
// strictly below Max. The tuple maps bijectively to a 64-bit identifier
// (base-1000 positional digits, least significant digit J) and to a
// slash-delimited storage path with one segment per quantum number.
//
// For symmetric tops only one of Ka/Kc is physically meaningful; the other
// is a placeholder. A negative Ka or Kc is recorded as a separate sign flag:
// the identifier encodes magnitudes only, plus a +1e15 offset when the flag
// is set. Consequently two states compare equal iff their five magnitudes
// and the sign flag match.
package state

import (
	"fmt"
	"strconv"
	"strings"
)

// Max is the exclusive upper bound for the absolute value of any single
// quantum number. It is also the base of the positional id encoding.
const Max = 1000

// signOffset is added to the id when Ka or Kc is negative. It equals
// Max^5, i.e. the first decimal digit above the five magnitude digits.
const signOffset = uint64(1e15)

// RangeError reports a quantum number outside [0, Max) (or outside
// (-Max, Max) for Ka/Kc) at construction.
type RangeError struct {
	Name  string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("quantum number %s=%d out of range (|%s| must be < %d)", e.Name, e.Value, e.Name, Max)
}

// PathError reports a storage path that cannot be parsed back into a state.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type PathError struct {
	Path  string
	Field string
	cause error
}

func (e *PathError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed state path %q: bad %s segment", e.Path, e.Field)
	}
	return fmt.Sprintf("malformed state path %q", e.Path)
}

func (e *PathError) Unwrap() error { return e.cause }

// Axis selects the symmetry axis whose nuclear-spin statistics forbid a
// state in NuclearSpinWeight.
type Axis string

const (
	AxisKa Axis = "Ka"
	AxisKb Axis = "Kb"
	AxisKc Axis = "Kc"
)

// State is an immutable rotational-state label.
//
// The zero value is the ground state (0,0,0,0,0).
type State struct {
	j, ka, kc, m, isomer int
	negative             bool
}

// New builds a state from explicit quantum numbers.
//
// J, M and isomer must lie in [0, Max); |Ka| and |Kc| must be below Max.
// A negative Ka or Kc sets the sign flag.
func New(j, ka, kc, m, isomer int) (State, error) {
	switch {
	case j < 0 || j >= Max:
		return State{}, &RangeError{Name: "J", Value: j}
	case ka <= -Max || ka >= Max:
		return State{}, &RangeError{Name: "Ka", Value: ka}
	case kc <= -Max || kc >= Max:
		return State{}, &RangeError{Name: "Kc", Value: kc}
	case m < 0 || m >= Max:
		return State{}, &RangeError{Name: "M", Value: m}
	case isomer < 0 || isomer >= Max:
		return State{}, &RangeError{Name: "isomer", Value: isomer}
	}
	return State{
		j:        j,
		ka:       ka,
		kc:       kc,
		m:        m,
		isomer:   isomer,
		negative: ka < 0 || kc < 0,
	}, nil
}

// MustNew is New but panics on invalid input. For tests and literals.
func MustNew(j, ka, kc, m, isomer int) State {
	s, err := New(j, ka, kc, m, isomer)
	if err != nil {
		panic(err)
	}
	return s
}

// FromID reconstructs a state from its numeric identifier.
//
// The five base-Max digits are the magnitudes of J, Ka, Kc, M and isomer;
// the next decimal digit is the sign flag. When the flag is set both K
// magnitudes come back negated, since the id does not record which of the
// two carried the sign.
func FromID(id uint64) (State, error) {
	var labels [5]int
	rest := id
	for i := range labels {
		labels[i] = int(rest % Max)
		rest /= Max
	}
	sign := rest % 10
	rest /= 10
	if rest != 0 {
		return State{}, fmt.Errorf("state id %d exceeds the encodable range", id)
	}
	if sign > 1 {
		return State{}, fmt.Errorf("state id %d has invalid sign digit %d", id, sign)
	}
	if sign == 1 {
		labels[1] = -labels[1]
		labels[2] = -labels[2]
	}
	return New(labels[0], labels[1], labels[2], labels[3], labels[4])
}

// FromStoragePath is the inverse of StoragePath.
//
// It expects exactly five segments of the form "_<digits>", with a leading
// "n" after the underscore marking a negative value.
func FromStoragePath(path string) (State, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) != 5 {
		return State{}, &PathError{Path: path}
	}
	names := [5]string{"J", "Ka", "Kc", "M", "isomer"}
	var labels [5]int
	for i, seg := range segments {
		v, err := parseSegment(seg)
		if err != nil {
			return State{}, &PathError{Path: path, Field: names[i], cause: err}
		}
		labels[i] = v
	}
	s, err := New(labels[0], labels[1], labels[2], labels[3], labels[4])
	if err != nil {
		return State{}, &PathError{Path: path, cause: err}
	}
	return s, nil
}

func parseSegment(seg string) (int, error) {
	if len(seg) < 2 || seg[0] != '_' {
		return 0, fmt.Errorf("segment %q lacks the '_' prefix", seg)
	}
	// "n" substitutes for the minus sign, which is not a valid
	// identifier character in the storage namespace.
	num := strings.Replace(seg[1:], "n", "-", 1)
	v, err := strconv.Atoi(num)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// J returns the rotational angular momentum quantum number.
func (s State) J() int { return s.j }

// Ka returns the projection quantum number on the a axis.
func (s State) Ka() int { return s.ka }

// Kc returns the projection quantum number on the c axis.
func (s State) Kc() int { return s.kc }

// M returns the lab-frame projection quantum number.
func (s State) M() int { return s.m }

// Isomer returns the conformer/isotopologue index.
func (s State) Isomer() int { return s.isomer }

// Sign returns -1 if the symmetric-top sign flag is set, +1 otherwise.
func (s State) Sign() int {
	if s.negative {
		return -1
	}
	return 1
}

// ID returns the unique numeric identifier of the state.
func (s State) ID() uint64 {
	id := uint64(0)
	base := uint64(1)
	for _, v := range [5]int{s.j, s.ka, s.kc, s.m, s.isomer} {
		id += uint64(abs(v)) * base
		base *= Max
	}
	if s.negative {
		id += signOffset
	}
	return id
}

// StoragePath returns the hierarchical storage path of the state:
// five "_<n>" segments in J/Ka/Kc/M/isomer order, negative values written
// with "n" instead of "-". Nesting by quantum number keeps all states with
// a common J (then Ka, then Kc, ...) under one subtree.
func (s State) StoragePath() string {
	segs := make([]string, 0, 5)
	for _, v := range [5]int{s.j, s.ka, s.kc, s.m, s.isomer} {
		segs = append(segs, "_"+strings.ReplaceAll(strconv.Itoa(v), "-", "n"))
	}
	return strings.Join(segs, "/")
}

// NuclearSpinWeight returns 0 for nuclear-spin-statistically forbidden
// rovibronic states on the given symmetry axis, 1 otherwise.
func (s State) NuclearSpinWeight(forbidden Axis) int {
	switch forbidden {
	case AxisKa:
		if abs(s.ka)%2 == 1 {
			return 0
		}
	case AxisKb:
		if abs(s.ka+s.kc)%2 == 1 {
			return 0
		}
	case AxisKc:
		if abs(s.kc)%2 == 1 {
			return 0
		}
	}
	return 1
}

// Equal reports whether two states label the same physical state: all five
// magnitudes and the sign flag match. The individual signs of Ka and Kc are
// not compared because the identifier cannot distinguish them.
func (s State) Equal(o State) bool {
	return s.ID() == o.ID()
}

// String renders the quantum numbers space separated, signs included.
func (s State) String() string {
	return fmt.Sprintf("%d %d %d %d %d", s.j, s.ka, s.kc, s.m, s.isomer)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
