// Package analyzer: functional configuration for Distribution.

package analyzer

import (
	"math"

	"github.com/katalvlaran/photonq/unitary"
)

// Engine selects the amplitude backend.
type Engine int

// ExactPermanent is the only engine today: Ryser's formula, exact up to
// floating-point rounding. The enum exists so approximate samplers can slot
// in without changing the Distribution signature.
const ExactPermanent Engine = iota

// String returns a stable tag for the engine.
func (e Engine) String() string {
	if e == ExactPermanent {
		return "exact-permanent"
	}

	return "unknown"
}

// Defaults for the worker pool. parallelThreshold is the pair count below
// which the sequential path wins against pool startup.
const (
	DefaultMinWorkers = 2
	DefaultMaxWorkers = 8

	parallelThreshold = 16
)

const (
	panicWorkersInvalid = "analyzer: WithWorkers: need 1 <= min <= max"
	panicEpsilonInvalid = "analyzer: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	engine     Engine
	minWorkers int
	maxWorkers int
	sequential bool
	eps        float64 // forwarded to the unitarity checks
}

// WithEngine selects the amplitude backend. Unknown engines surface
// ErrUnknownEngine from Distribution, not a panic, because the value may
// come from configuration.
func WithEngine(e Engine) Option {
	return func(o *options) { o.engine = e }
}

// WithWorkers bounds the worker pool. Panics unless 1 <= min <= max.
func WithWorkers(min, max int) Option {
	if min < 1 || max < min {
		panic(panicWorkersInvalid)
	}

	return func(o *options) {
		o.minWorkers = min
		o.maxWorkers = max
	}
}

// WithSequential forces single-goroutine evaluation. Useful for
// deterministic profiling and for tiny tables.
func WithSequential() Option {
	return func(o *options) { o.sequential = true }
}

// WithEpsilon sets the tolerance used when composing and verifying the
// circuit unitary. Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

func gatherOptions(user ...Option) options {
	o := options{
		engine:     ExactPermanent,
		minWorkers: DefaultMinWorkers,
		maxWorkers: DefaultMaxWorkers,
		eps:        unitary.DefaultEpsilon,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
