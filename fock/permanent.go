// Package fock: exact matrix permanent.
//
// Ryser's formula with Gray-code subset iteration:
//
//	perm(A) = (−1)ᵏ · Σ_{∅≠S⊆{1..k}} (−1)^{|S|} · ∏ᵢ Σ_{j∈S} aᵢⱼ
//
// Consecutive subsets differ in one column, so each step updates the k row
// sums with a single add or subtract instead of recomputing them: O(k·2ᵏ)
// total instead of O(k²·2ᵏ).

package fock

import "math/bits"

// Permanent computes the permanent of the k×k matrix a (row-major).
// The empty 0×0 matrix has permanent 1 by convention.
// Panics when len(a) != k*k or k is out of [0, 62] (programmer error; the
// Gray-code walk indexes subsets with a uint64).
func Permanent(a []complex128, k int) complex128 {
	if k < 0 || k > 62 {
		panic("fock: Permanent: order out of range")
	}
	if len(a) != k*k {
		panic("fock: Permanent: matrix is not k×k")
	}
	if k == 0 {
		return 1
	}

	rowSum := make([]complex128, k)
	var (
		total complex128
		gray  uint64
	)
	for s := uint64(1); s < uint64(1)<<k; s++ {
		next := s ^ (s >> 1)
		diff := next ^ gray
		col := bits.TrailingZeros64(diff)
		if next&diff != 0 {
			for i := 0; i < k; i++ {
				rowSum[i] += a[i*k+col]
			}
		} else {
			for i := 0; i < k; i++ {
				rowSum[i] -= a[i*k+col]
			}
		}
		gray = next

		prod := complex(1, 0)
		for i := 0; i < k; i++ {
			prod *= rowSum[i]
		}
		if bits.OnesCount64(next)&1 == 1 {
			total -= prod
		} else {
			total += prod
		}
	}

	if k&1 == 1 {
		total = -total
	}

	return total
}
