// Package fock models photon-number (Fock) states and computes transition
// amplitudes through a composed mode unitary.
//
// What lives here:
//
//	🚀 State       — occupation numbers per mode, |n₀,n₁,…,n_{N−1}⟩.
//	🚀 Enumerate   — all states of m modes carrying exactly p photons,
//	                 in a fixed deterministic order (stars and bars).
//	🚀 Permanent   — Ryser's formula with Gray-code updates, O(k·2ᵏ).
//	🚀 Amplitude   — ⟨out|φ(U)|in⟩ via the permanent of a repeated-index
//	                 submatrix of U, normalised by √(∏nᵢ!·∏mⱼ!).
//
// ⚙️ Conventions
//
// The unitary acts on mode operators, out = U·in, so U[i,j] is the transfer
// from input mode j to output mode i. Photon number is conserved by every
// passive circuit: when the input and output totals differ the amplitude is
// exactly 0 and no error is returned.
//
// ⚙️ Complexity
//
// Amplitude costs O(p·2ᵖ) for p photons. Totals above MaxPhotons are
// rejected with ErrPhotonLimit before any allocation.
//
// ✨ Example: the Hong–Ou–Mandel dip
//
//	bs, _ := circuit.NewBeamSplitter(0, 1, math.Pi/4)
//	c, _ := circuit.NewBuilder(2).Add(bs).Build()
//	u, _ := unitary.Compose(c)
//	a, _ := fock.Amplitude(u, fock.State{1, 1}, fock.State{1, 1})
//	// a == 0: both photons always bunch into the same output mode.
package fock
