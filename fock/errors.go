// Package fock: sentinel error set.

package fock

import "errors"

var (
	// ErrLengthMismatch indicates a state whose mode count differs from the
	// unitary's dimension (or from a required length).
	ErrLengthMismatch = errors.New("fock: state length does not match mode count")

	// ErrNegativeOccupation indicates a state containing a negative photon
	// count. Occupations are cardinalities; negatives are always invalid.
	ErrNegativeOccupation = errors.New("fock: negative occupation number")

	// ErrPhotonLimit indicates a photon total beyond MaxPhotons. The
	// permanent is Θ(p·2ᵖ); past the limit a single amplitude would run for
	// hours, so the request is refused up front.
	ErrPhotonLimit = errors.New("fock: photon total exceeds MaxPhotons")
)
