// Package circuit models a passive linear-optical network as an immutable
// sequence of local components acting on an ordered set of optical modes.
//
// 🚀 What is a mode network?
//
//	An N-mode circuit is an ordered list of components, each acting
//	unitarily on one or two modes:
//	  • BeamSplitter — mixes an ordered pair of modes with angle θ
//	    (reflectivity R = cos²θ) and an optional phase φ
//	  • PhaseShifter — applies e^{iφ} to a single mode
//
// ✨ Key guarantees:
//   - Closed component set – BeamSplitter and PhaseShifter are the only
//     implementations of Component; the variant cannot be extended from
//     outside the package, so composition code can match exhaustively.
//   - Immutability – components and circuits never change after construction;
//     a Circuit owns its component slice exclusively (defensive copies on
//     both ingestion and export).
//   - Fail-fast validation – out-of-range modes, degenerate splitter targets
//     and non-finite parameters are rejected at construction or Build time
//     with sentinel errors, never silently accepted.
//
// ⚙️ Usage:
//
//	bs, _ := circuit.NewBeamSplitter(0, 1, math.Pi/4) // 50:50 splitter
//	ps, _ := circuit.NewPhaseShifter(1, math.Pi/2)
//
//	c, err := circuit.NewBuilder(2).Add(bs).Add(ps).Build()
//	if err != nil {
//	  // ErrModeRange, ErrDegenerateSplitter, ...
//	}
//
// Application order is significant: the first component added is the first
// applied to the optical path. See package unitary for the composition
// convention.
//
// Circuits can also round-trip through a JSON boundary format (one record
// per component) via MarshalSpec / UnmarshalSpec.
package circuit
