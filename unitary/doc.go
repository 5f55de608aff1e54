// Package unitary composes a circuit's local component unitaries into the
// global N×N mode-space unitary and validates it numerically.
//
// 🚀 How composition works:
//
//	Start from the N×N identity. For every component, in listing order,
//	build the embedding E_k: identity outside the component's target modes,
//	the component's local unitary on the target-mode submatrix. Accumulate
//	by left multiplication:
//
//	  U_total = E_k · … · E_2 · E_1
//
//	so the first listed component is the first applied to the optical path
//	and amplitudes are read as U_total·|input⟩. This ordering convention is
//	fixed; permanent-based amplitude phases depend on it.
//
// ✨ Guarantees:
//   - A product of unitaries is unitary — and that is checked, not assumed:
//     every local matrix and the final product are verified against the
//     numeric tolerance (default 1e-9, WithEpsilon to adjust).
//   - Fail fast — a validation failure aborts composition with ErrNotUnitary;
//     no partial global matrix is ever exposed.
//   - Write-once — a composed Unitary is never mutated and is safe for
//     unlimited concurrent reads.
//
// ⚙️ Usage:
//
//	u, err := unitary.Compose(c)
//	if err != nil {
//	  // ErrCircuitNil or ErrNotUnitary
//	}
//	amp := u.At(1, 0) // single-photon transition entry
//
// Matrices are gonum mat.CDense under the hood; Format renders the numeric
// matrix for human inspection (a presentation nicety, not a data model).
//
// Complexity: O(len(components)·N³) time, O(N²) memory.
package unitary
