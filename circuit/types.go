// Package circuit: core types for the mode-network model.
// This file defines Mode, the closed Component variant, and the beam-splitter
// matrix conventions. Local unitaries are produced here; embedding them into
// the global mode space is the unitary package's job.

package circuit

import (
	"math"
	"math/cmplx"
)

// Mode indexes an optical mode. Valid values are integers in [0, N) for a
// circuit with N modes. Mode order is physically meaningful (it decides which
// modes sit next to each other) but carries no amplitude semantics.
type Mode int

// Convention selects how a beam splitter's angle and phase map onto its
// 2×2 local unitary. The choice is fixed per component at construction.
type Convention int

const (
	// ConventionH is the default, real symmetric convention:
	//
	//	[[ cosθ,  sinθ ],
	//	 [ sinθ, -cosθ ]]
	//
	// Reflectivity R = cos²θ. At θ = π/4 this is exactly the Hadamard
	// matrix, which is why dual-rail gate constructions prefer it.
	ConventionH Convention = iota

	// ConventionRx is the phase-carrying rotation convention:
	//
	//	[[ cosθ,            i·e^{iφ}·sinθ ],
	//	 [ i·e^{-iφ}·sinθ,  cosθ          ]]
	//
	// Reflectivity R = cos²θ. φ is the internal phase between the
	// reflected and transmitted paths; φ = 0 gives the standard
	// symmetric splitter with imaginary cross terms.
	ConventionRx
)

// String returns a stable tag for the convention ("H" / "Rx").
func (c Convention) String() string {
	if c == ConventionRx {
		return "Rx"
	}

	return "H"
}

// Component is the closed variant over passive linear-optical elements.
// Only BeamSplitter and PhaseShifter implement it; the unexported method
// seals the set so downstream code may switch exhaustively.
type Component interface {
	// TargetModes returns the modes the component acts on, in order.
	// Length is 1 for a phase shifter, 2 for a beam splitter.
	TargetModes() []Mode

	// Local returns the component's local unitary in row-major order:
	// a 1-element slice for a 1×1 matrix, a 4-element slice for 2×2.
	Local() []complex128

	// sealed closes the variant set and validates mode indices against a
	// concrete circuit width.
	sealed(n int) error
}

// BeamSplitter mixes the ordered mode pair (A, B) with mixing angle Theta
// and optional phase Phi (ConventionRx only). The ordering of A and B is
// significant: under ConventionH the second listed mode picks up the -cosθ
// diagonal entry.
type BeamSplitter struct {
	A, B  Mode
	Theta float64
	Phi   float64
	Conv  Convention
}

// NewBeamSplitter constructs a ConventionH beam splitter on the ordered
// pair (a, b) with mixing angle theta. Reflectivity is cos²theta.
//
// Errors:
//   - ErrDegenerateSplitter — a == b.
//   - ErrNonFinite          — theta is NaN or ±Inf.
func NewBeamSplitter(a, b Mode, theta float64) (BeamSplitter, error) {
	return newSplitter(a, b, theta, 0, ConventionH)
}

// NewBeamSplitterRx constructs a ConventionRx beam splitter on (a, b) with
// mixing angle theta and internal phase phi.
//
// Errors: as NewBeamSplitter, plus ErrNonFinite for a non-finite phi.
func NewBeamSplitterRx(a, b Mode, theta, phi float64) (BeamSplitter, error) {
	return newSplitter(a, b, theta, phi, ConventionRx)
}

// newSplitter is the shared validated constructor.
func newSplitter(a, b Mode, theta, phi float64, conv Convention) (BeamSplitter, error) {
	if a == b {
		return BeamSplitter{}, ErrDegenerateSplitter
	}
	if !isFinite(theta) || !isFinite(phi) {
		return BeamSplitter{}, ErrNonFinite
	}

	return BeamSplitter{A: a, B: b, Theta: theta, Phi: phi, Conv: conv}, nil
}

// TargetModes returns the ordered pair the splitter acts on.
func (bs BeamSplitter) TargetModes() []Mode { return []Mode{bs.A, bs.B} }

// Reflectivity returns cos²θ, the probability of a single photon staying on
// its input mode.
func (bs BeamSplitter) Reflectivity() float64 {
	c := math.Cos(bs.Theta)

	return c * c
}

// Local returns the 2×2 local unitary in row-major order, per Conv.
func (bs BeamSplitter) Local() []complex128 {
	c := complex(math.Cos(bs.Theta), 0)
	s := complex(math.Sin(bs.Theta), 0)

	if bs.Conv == ConventionRx {
		cross := 1i * cmplx.Exp(complex(0, bs.Phi)) * s
		crossConj := 1i * cmplx.Exp(complex(0, -bs.Phi)) * s

		return []complex128{c, cross, crossConj, c}
	}

	// ConventionH: real, symmetric, Hadamard-like.
	return []complex128{c, s, s, -c}
}

func (bs BeamSplitter) sealed(n int) error {
	if bs.A == bs.B {
		return ErrDegenerateSplitter
	}
	if !inRange(bs.A, n) || !inRange(bs.B, n) {
		return ErrModeRange
	}

	return nil
}

// PhaseShifter applies the phase e^{iφ} to a single mode M.
type PhaseShifter struct {
	M   Mode
	Phi float64
}

// NewPhaseShifter constructs a phase shifter on mode m with phase phi.
//
// Errors: ErrNonFinite when phi is NaN or ±Inf.
func NewPhaseShifter(m Mode, phi float64) (PhaseShifter, error) {
	if !isFinite(phi) {
		return PhaseShifter{}, ErrNonFinite
	}

	return PhaseShifter{M: m, Phi: phi}, nil
}

// TargetModes returns the single mode the shifter acts on.
func (ps PhaseShifter) TargetModes() []Mode { return []Mode{ps.M} }

// Local returns the 1×1 local unitary [e^{iφ}].
func (ps PhaseShifter) Local() []complex128 {
	return []complex128{cmplx.Exp(complex(0, ps.Phi))}
}

func (ps PhaseShifter) sealed(n int) error {
	if !inRange(ps.M, n) {
		return ErrModeRange
	}

	return nil
}

// inRange reports whether m is a valid mode index for an n-mode circuit.
func inRange(m Mode, n int) bool { return m >= 0 && int(m) < n }

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
