// Package unitary: composition kernel.
// Embeds each component's local unitary into the full mode space and
// accumulates the product in application order. Deterministic: fixed loop
// orders, no randomness, no global state.

package unitary

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/photonq/circuit"
)

// Compose builds the global unitary for c.
//
// Algorithm:
//  1. acc ← I_N.
//  2. For each component k in listing order: validate its local matrix
//     against eps, embed it (identity elsewhere), acc ← E_k · acc.
//  3. Verify acc·acc† = I within eps (unless WithNoVerify).
//
// Errors:
//   - ErrCircuitNil — c is nil.
//   - ErrNotUnitary — a local matrix or the product fails the check; no
//     partial result is returned.
//
// Complexity: O(len(components)·N³) time, O(N²) memory.
func Compose(c *circuit.Circuit, opts ...Option) (*Unitary, error) {
	if c == nil {
		return nil, ErrCircuitNil
	}
	o := gatherOptions(opts...)
	n := c.Modes()

	acc := identity(n)
	buf := mat.NewCDense(n, n, nil)
	for idx, comp := range c.Components() {
		if err := checkLocal(comp, o.eps); err != nil {
			return nil, fmt.Errorf("component %d: %w", idx, err)
		}

		// Left-multiply: acc ← E·acc. cmul's destination cannot alias its
		// operands, so we ping-pong between two buffers.
		cmul(buf, embed(n, comp), acc)
		acc, buf = buf, acc
	}

	u := &Unitary{n: n, m: acc}
	if o.verify {
		if defect := u.Defect(); defect > o.eps {
			return nil, fmt.Errorf("%w (defect %.3e)", ErrNotUnitary, defect)
		}
	}

	return u, nil
}

// identity returns I_n as a fresh CDense.
func identity(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// embed returns the N×N matrix that equals comp's local unitary on its
// target modes and the identity elsewhere. For a beam splitter on ordered
// modes (a, b), exactly the four entries (a,a),(a,b),(b,a),(b,b) are
// overwritten.
func embed(n int, comp circuit.Component) *mat.CDense {
	e := identity(n)
	modes := comp.TargetModes()
	local := comp.Local()
	for r, i := range modes {
		for c, j := range modes {
			e.Set(int(i), int(j), local[r*len(modes)+c])
		}
	}

	return e
}

// checkLocal verifies that comp's local matrix is unitary within eps.
// Shapes other than 1×1 / 2×2 surface ErrBadLocal.
func checkLocal(comp circuit.Component, eps float64) error {
	local := comp.Local()
	switch len(local) {
	case 1:
		if dev := cabs(local[0]*cmplx.Conj(local[0]) - 1); dev > eps {
			return ErrNotUnitary
		}
	case 4:
		// Rows of a 2×2 unitary are orthonormal.
		r0 := cabs(local[0]*cmplx.Conj(local[0]) + local[1]*cmplx.Conj(local[1]) - 1)
		r1 := cabs(local[2]*cmplx.Conj(local[2]) + local[3]*cmplx.Conj(local[3]) - 1)
		cross := cabs(local[0]*cmplx.Conj(local[2]) + local[1]*cmplx.Conj(local[3]))
		if r0 > eps || r1 > eps || cross > eps {
			return ErrNotUnitary
		}
	default:
		return ErrBadLocal
	}

	return nil
}

// cabs is a tiny alias for the complex modulus.
func cabs(v complex128) float64 { return cmplx.Abs(v) }
