// Package analyzer computes transition-probability tables for labelled sets
// of input and output Fock states through a circuit.
//
//	🚀 Distribution — compose the circuit once, evaluate every (input,
//	                  output) amplitude, and return an ordered Table.
//	🚀 Table        — deterministic entries, O(1) lookup by label pair,
//	                  and the post-selected probability total.
//
// ⚙️ Concurrency
//
// Each amplitude is an independent permanent evaluation, so pairs are
// fanned out over a qpool worker pool and collected back in deterministic
// order. WithSequential forces the single-goroutine path; small tables take
// it automatically because pool startup costs more than the work.
//
// ⚙️ Failure isolation
//
// A pair that cannot be evaluated (for example a photon total beyond the
// exact engine's limit) records its error in the Entry and leaves every
// other pair intact. Only malformed arguments fail the whole call.
//
// ✨ Example
//
//	table, err := analyzer.Distribution(ctx, c,
//		[]analyzer.Labeled{{Label: "|1,1⟩", State: fock.State{1, 1}}},
//		[]analyzer.Labeled{
//			{Label: "|2,0⟩", State: fock.State{2, 0}},
//			{Label: "|1,1⟩", State: fock.State{1, 1}},
//			{Label: "|0,2⟩", State: fock.State{0, 2}},
//		})
package analyzer
