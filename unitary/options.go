// Package unitary: functional configuration for composition.
// Numeric policy only — there are no behavioral switches to flip: the
// composition algorithm is fixed and deterministic.

package unitary

import "math"

// DefaultEpsilon is the non-negative tolerance used by the unitarity checks.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "unitary: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	eps    float64 // >= 0; DefaultEpsilon
	verify bool    // verify the composed product, not just the locals
}

// WithEpsilon sets the tolerance for the unitarity checks.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithNoVerify skips the final product check. The per-component local checks
// always run; this only trades the O(N³) product verification for speed on
// very wide circuits. Prefer keeping verification on.
func WithNoVerify() Option {
	return func(o *options) { o.verify = false }
}

// gatherOptions applies setters on top of the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{eps: DefaultEpsilon, verify: true}
	for _, set := range user {
		set(&o)
	}

	return o
}
