// Package unitary: sentinel error set.

package unitary

import "errors"

var (
	// ErrCircuitNil indicates that a nil *circuit.Circuit was passed in.
	ErrCircuitNil = errors.New("unitary: circuit is nil")

	// ErrNotUnitary indicates that a local component matrix, or the composed
	// global matrix, failed the U·U† = I check beyond the configured
	// tolerance. Composition aborts; no partial result is exposed.
	ErrNotUnitary = errors.New("unitary: matrix is not unitary within eps")

	// ErrBadLocal indicates a component whose local matrix has an
	// unexpected shape (neither 1×1 nor 2×2). This is a programmer error
	// surfaced as a sentinel to keep composition panic-free.
	ErrBadLocal = errors.New("unitary: local matrix has invalid shape")
)
