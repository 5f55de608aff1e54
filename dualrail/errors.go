// Package dualrail: sentinel error set.

package dualrail

import "errors"

var (
	// ErrNoPairs indicates an encoding with zero qubit pairs.
	ErrNoPairs = errors.New("dualrail: encoding needs at least one qubit pair")

	// ErrModeRange indicates a pair or auxiliary mode outside [0, modes).
	ErrModeRange = errors.New("dualrail: mode index out of range")

	// ErrOverlap indicates a mode claimed twice across pairs and auxiliaries.
	ErrOverlap = errors.New("dualrail: mode assigned more than once")

	// ErrIncomplete indicates that pairs and auxiliaries do not cover every
	// mode. Every mode must be accounted for so ToFock can produce a full
	// occupation vector.
	ErrIncomplete = errors.New("dualrail: pairs and auxiliaries do not cover all modes")

	// ErrQubitLength indicates a logical state whose qubit count differs
	// from the encoding's pair count.
	ErrQubitLength = errors.New("dualrail: qubit state length does not match pair count")

	// ErrStateLength indicates a Fock state whose mode count differs from
	// the encoding's mode count.
	ErrStateLength = errors.New("dualrail: fock state length does not match mode count")
)
