// Package dualrail: the Encoding value and the two codec operations.

package dualrail

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/photonq/circuit"
	"github.com/katalvlaran/photonq/fock"
)

// Pair names the two modes carrying one dual-rail qubit. A photon in Zero
// encodes logical |0⟩, a photon in One encodes logical |1⟩.
type Pair struct {
	Zero circuit.Mode
	One  circuit.Mode
}

// QubitState is a logical computational-basis state, one bool per qubit
// (false = |0⟩, true = |1⟩).
type QubitState []bool

// String renders the state in ket notation, e.g. "|01⟩".
func (q QubitState) String() string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, b := range q {
		if b {
			sb.WriteString("1")
		} else {
			sb.WriteString("0")
		}
	}
	sb.WriteString("⟩")

	return sb.String()
}

// Encoding is an immutable dual-rail layout over a fixed number of modes.
// Construct with NewEncoding; the zero value is unusable.
type Encoding struct {
	modes int
	pairs []Pair
	aux   []circuit.Mode
}

// NewEncoding validates and freezes a layout: every mode in [0, modes) must
// be claimed exactly once, either by a pair rail or as an auxiliary.
//
// Errors: ErrNoPairs, ErrModeRange, ErrOverlap (a mode claimed twice,
// including Zero == One within one pair), ErrIncomplete.
func NewEncoding(modes int, pairs []Pair, aux []circuit.Mode) (*Encoding, error) {
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	claimed := make([]bool, modes)
	claim := func(m circuit.Mode) error {
		if m < 0 || int(m) >= modes {
			return fmt.Errorf("%w: mode %d with %d modes", ErrModeRange, m, modes)
		}
		if claimed[m] {
			return fmt.Errorf("%w: mode %d", ErrOverlap, m)
		}
		claimed[m] = true

		return nil
	}

	for _, p := range pairs {
		if err := claim(p.Zero); err != nil {
			return nil, err
		}
		if err := claim(p.One); err != nil {
			return nil, err
		}
	}
	for _, m := range aux {
		if err := claim(m); err != nil {
			return nil, err
		}
	}
	for m, ok := range claimed {
		if !ok {
			return nil, fmt.Errorf("%w: mode %d unclaimed", ErrIncomplete, m)
		}
	}

	e := &Encoding{
		modes: modes,
		pairs: append([]Pair(nil), pairs...),
		aux:   append([]circuit.Mode(nil), aux...),
	}

	return e, nil
}

// Modes returns the total mode count.
func (e *Encoding) Modes() int { return e.modes }

// Qubits returns the logical qubit count.
func (e *Encoding) Qubits() int { return len(e.pairs) }

// Pairs returns a copy of the qubit pair list, in qubit order.
func (e *Encoding) Pairs() []Pair { return append([]Pair(nil), e.pairs...) }

// Aux returns a copy of the auxiliary mode list.
func (e *Encoding) Aux() []circuit.Mode { return append([]circuit.Mode(nil), e.aux...) }

// ToFock returns the Fock state encoding the logical state q: one photon on
// the selected rail of each pair, vacuum everywhere else (auxiliaries
// included). Fails with ErrQubitLength when len(q) != Qubits().
func (e *Encoding) ToFock(q QubitState) (fock.State, error) {
	if len(q) != len(e.pairs) {
		return nil, fmt.Errorf("%w: got %d qubits, want %d", ErrQubitLength, len(q), len(e.pairs))
	}

	f := fock.NewState(e.modes)
	for i, p := range e.pairs {
		if q[i] {
			f[p.One] = 1
		} else {
			f[p.Zero] = 1
		}
	}

	return f, nil
}

// ToQubit decodes a Fock state back into a logical state.
//
// ok reports whether f is a codeword: exactly one photon per pair, on one
// rail, and every auxiliary mode empty. Non-codewords return ok == false
// with a nil error; post-selection treats them as discarded outcomes, not
// failures. Only a malformed f (wrong length, negative occupation) is an
// error.
func (e *Encoding) ToQubit(f fock.State) (QubitState, bool, error) {
	if len(f) != e.modes {
		return nil, false, fmt.Errorf("%w: got %d modes, want %d", ErrStateLength, len(f), e.modes)
	}
	if err := f.Validate(e.modes); err != nil {
		return nil, false, err
	}

	for _, m := range e.aux {
		if f[m] != 0 {
			return nil, false, nil
		}
	}

	q := make(QubitState, len(e.pairs))
	for i, p := range e.pairs {
		z, o := f[p.Zero], f[p.One]
		switch {
		case z == 1 && o == 0:
			q[i] = false
		case z == 0 && o == 1:
			q[i] = true
		default:
			return nil, false, nil
		}
	}

	return q, true, nil
}
