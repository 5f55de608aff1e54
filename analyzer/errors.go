// Package analyzer: sentinel error set.

package analyzer

import "errors"

var (
	// ErrNoStates indicates an empty input or output state list. An empty
	// table is never what the caller wants, so it is refused outright.
	ErrNoStates = errors.New("analyzer: input and output state lists must be non-empty")

	// ErrUnknownEngine indicates an Engine value outside the declared set.
	ErrUnknownEngine = errors.New("analyzer: unknown amplitude engine")
)
