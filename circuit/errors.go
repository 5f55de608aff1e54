// Package circuit: sentinel error set.
// All constructors and the builder MUST return these sentinels and tests MUST
// check them via errors.Is. Panics are reserved for programmer errors in
// private helpers (there are none today).

package circuit

import "errors"

var (
	// ErrModeCount is returned when a circuit is requested with a
	// non-positive mode count.
	ErrModeCount = errors.New("circuit: mode count must be positive")

	// ErrModeRange indicates that a component references a mode outside
	// [0, N) for the circuit under construction.
	ErrModeRange = errors.New("circuit: mode index out of range")

	// ErrDegenerateSplitter indicates a beam splitter whose two target modes
	// coincide; a 2×2 mixer needs two distinct modes.
	ErrDegenerateSplitter = errors.New("circuit: beam splitter modes must differ")

	// ErrNonFinite signals a NaN or ±Inf angle/phase at construction time.
	ErrNonFinite = errors.New("circuit: parameter must be finite")

	// ErrNilCircuit indicates that a nil *Circuit was passed to a consumer.
	ErrNilCircuit = errors.New("circuit: nil circuit")

	// ErrUnknownComponent marks an unrecognized component type tag in the
	// JSON boundary format.
	ErrUnknownComponent = errors.New("circuit: unknown component type")

	// ErrBadSpec marks a structurally invalid JSON circuit specification
	// (wrong mode arity, missing fields).
	ErrBadSpec = errors.New("circuit: malformed circuit specification")
)
