// Package photonq simulates passive linear-optical networks acting on
// multi-photon quantum states, and realizes gate-level quantum computation
// (Hadamard, controlled-Z) through dual-rail path encoding of qubits into
// optical modes.
//
// 🚀 What is photonq?
//
//	A deterministic, pure-Go simulation core that brings together:
//		• Mode networks: beam splitters & phase shifters composed into circuits
//		• Unitary composition: per-component 1×1/2×2 unitaries embedded into an
//		  N×N global mode unitary (gonum complex matrices)
//		• Fock amplitudes: photon-number transition amplitudes via Ryser's
//		  permanent formula, O(K·2^K) in the total photon count K
//		• Dual-rail encoding: qubit ↔ Fock bookkeeping with post-selection
//		• Distribution analysis: parallel batch evaluation of post-selected
//		  probability tables
//
// ✨ Why choose photonq?
//
//   - Exact amplitudes – no sampling, no Monte-Carlo; every number reproducible
//   - Rock-solid guarantees – unitarity validated at composition, sentinel
//     errors throughout, no global mutable state
//   - Embarrassingly parallel – amplitude calls are independent and the
//     analyzer batches them over a worker pool
//
// Under the hood, everything is organized under focused subpackages:
//
//	circuit/  — immutable mode-network model: components, builder, JSON codec
//	unitary/  — global unitary composition + unitarity validation
//	fock/     — Fock states, Ryser permanents, transition amplitudes
//	dualrail/ — path-encoded qubit ↔ Fock state mapping
//	analyzer/ — post-selected probability tables over labeled state sets
//	gates/    — Hadamard splitters, post-selected CZ/CNOT gadgets, demos
//
// Quick ASCII example (Hong–Ou–Mandel on one 50:50 splitter):
//
//	|1> ──╲  ╱── ?        two indistinguishable photons never exit
//	       ╳              on opposite sides: P(1,1) = 0,
//	|1> ──╱  ╲── ?        P(2,0) = P(0,2) = 1/2
//
// Dive into the package docs and example tests for full walkthroughs,
// including the compiled 12-mode photonic Shor(15) demonstration circuit.
//
//	go get github.com/katalvlaran/photonq
package photonq
