// Package gates builds linear-optical realisations of logical qubit gates
// on dual-rail encodings.
//
//	🚀 Hadamard      — balanced splitter (θ = π/4) across a qubit's rails.
//	🚀 ThirdSplitter — reflectivity-1/3 splitter, the CZ building block.
//	🚀 CZ            — post-selected controlled-Z from three 1/3 splitters
//	                   and two vacuum auxiliary modes (success 1/9).
//	🚀 CNOT          — CZ wrapped in Hadamards on the target pair.
//	🚀 ShorFifteen   — the 12-mode order-finding core of Shor's algorithm
//	                   factoring 15 with a = 11.
//
// ⚙️ Post-selection
//
// CZ and CNOT are not deterministic: they act as the intended gate only on
// the outcomes where every photon stays in its qubit's rails and both
// auxiliary modes stay empty. All amplitudes in the valid subspace are
// scaled by 1/3 per gate; coincidence detection discards the rest. The
// analyzer package computes exactly these post-selected distributions.
package gates
