// Package fock: exhaustive state enumeration.
// Stars and bars: a state of m modes with p photons corresponds to a choice
// of m−1 bar positions among p+m−1 slots. gonum's combin generator yields
// those choices in lexicographic order, which fixes our enumeration order.

package fock

import (
	"gonum.org/v1/gonum/stat/combin"
)

// Enumerate returns every Fock state of modes modes carrying exactly
// photons photons. The order is deterministic, fixed by the lexicographic
// order of the bar positions: |0,…,0,p⟩ comes first, |p,0,…,0⟩ last.
//
// The result has C(photons+modes−1, modes−1) entries. Panics when modes <= 0
// or photons < 0 (programmer error).
func Enumerate(modes, photons int) []State {
	if modes <= 0 {
		panic("fock: Enumerate: mode count must be positive")
	}
	if photons < 0 {
		panic("fock: Enumerate: photon count must be non-negative")
	}
	if modes == 1 {
		return []State{{photons}}
	}

	slots := photons + modes - 1
	bars := combin.Combinations(slots, modes-1)
	out := make([]State, 0, len(bars))
	for _, b := range bars {
		s := make(State, modes)
		prev := -1
		for i, pos := range b {
			s[i] = pos - prev - 1
			prev = pos
		}
		s[modes-1] = slots - prev - 1
		out = append(out, s)
	}

	return out
}
