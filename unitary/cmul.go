// Package unitary: complex matrix product.
// gonum's CDense carries no Mul of its own, so the product is written out
// here. N stays small (tens of modes), so a straightforward triple loop over
// the CMatrix interface beats pulling in a BLAS binding.

package unitary

import "gonum.org/v1/gonum/mat"

// cmul computes dst = a·b. All three must be square with dst's dimensions;
// dst must not alias a or b.
func cmul(dst *mat.CDense, a, b mat.CMatrix) {
	n, _ := dst.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum complex128
			for k := 0; k < n; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			dst.Set(i, j, sum)
		}
	}
}
