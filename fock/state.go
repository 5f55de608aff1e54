// Package fock: the State value and its validation helpers.

package fock

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxPhotons caps the photon total accepted by Amplitude. Ryser's formula
// walks 2ᵖ subsets; 30 photons keep a single amplitude around a second on
// commodity hardware, which is as far as an exact engine sensibly goes.
const MaxPhotons = 30

// State is a Fock occupation vector: State[i] photons in mode i.
// The zero-length state is valid and describes a zero-mode system.
type State []int

// NewState returns a zero-photon state over n modes.
// Panics when n is negative (programmer error).
func NewState(n int) State {
	if n < 0 {
		panic("fock: NewState: negative mode count")
	}

	return make(State, n)
}

// Total returns the photon count Σᵢ State[i].
// Meaningful only for valid states; negatives are summed as-is.
func (s State) Total() int {
	t := 0
	for _, occ := range s {
		t += occ
	}

	return t
}

// Validate checks that s has exactly n modes and no negative occupations.
func (s State) Validate(n int) error {
	if len(s) != n {
		return fmt.Errorf("%w: got %d modes, want %d", ErrLengthMismatch, len(s), n)
	}
	for i, occ := range s {
		if occ < 0 {
			return fmt.Errorf("%w: mode %d has occupation %d", ErrNegativeOccupation, i, occ)
		}
	}

	return nil
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)

	return out
}

// String renders s in ket notation, e.g. "|0,1,2⟩".
func (s State) String() string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, occ := range s {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(strconv.Itoa(occ))
	}
	sb.WriteString("⟩")

	return sb.String()
}
