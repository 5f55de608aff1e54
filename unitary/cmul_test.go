package unitary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// TestCmul_HandComputed checks the product against a worked 2×2 example
// with non-trivial imaginary parts.
func TestCmul_HandComputed(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		1 + 1i, 2,
		0, 3 - 1i,
	})
	b := mat.NewCDense(2, 2, []complex128{
		2, 1i,
		-1i, 1,
	})

	dst := mat.NewCDense(2, 2, nil)
	cmul(dst, a, b)

	// Row 0: (1+i)·2 + 2·(−i) = 2, (1+i)·i + 2·1 = 1+i.
	// Row 1: (3−i)·(−i) = −1−3i, (3−i)·1 = 3−i.
	assert.Equal(t, complex(2, 0), dst.At(0, 0))
	assert.Equal(t, complex(1, 1), dst.At(0, 1))
	assert.Equal(t, complex(-1, -3), dst.At(1, 0))
	assert.Equal(t, complex(3, -1), dst.At(1, 1))
}

// TestCmul_Identity checks that multiplying by I on either side is a no-op.
func TestCmul_Identity(t *testing.T) {
	a := mat.NewCDense(3, 3, []complex128{
		1 + 2i, 0, 3,
		4i, 5, 6 - 1i,
		7, 8i, 9,
	})
	id := identity(3)

	left := mat.NewCDense(3, 3, nil)
	cmul(left, id, a)
	right := mat.NewCDense(3, 3, nil)
	cmul(right, a, id)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(i, j), left.At(i, j), "I·a at (%d,%d)", i, j)
			assert.Equal(t, a.At(i, j), right.At(i, j), "a·I at (%d,%d)", i, j)
		}
	}
}

// TestCmul_ConjugateTransposeView checks cmul accepts gonum's H() view:
// for a unitary a, a·a† must be the identity.
func TestCmul_ConjugateTransposeView(t *testing.T) {
	h := complex(1/1.4142135623730951, 0)
	a := mat.NewCDense(2, 2, []complex128{
		h, h * 1i,
		h * 1i, h,
	})

	dst := mat.NewCDense(2, 2, nil)
	cmul(dst, a, a.H())

	assert.InDelta(t, 0, maxDeviationFromIdentity(dst, 2), 1e-15)
}
