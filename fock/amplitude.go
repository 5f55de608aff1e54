// Package fock: transition amplitudes through a composed unitary.

package fock

import (
	"math"

	"github.com/katalvlaran/photonq/unitary"
)

// Amplitude returns ⟨out|φ(U)|in⟩, the probability amplitude for the input
// Fock state to scatter into the output Fock state through u.
//
// Construction: expand the output occupations into a row index list (mᵢ
// copies of row i) and the input occupations into a column index list (nⱼ
// copies of column j), take the permanent of the resulting k×k submatrix of
// U, and divide by √(∏nⱼ!·∏mᵢ!).
//
// Mismatched photon totals are not an error: passive circuits conserve
// photon number, so the amplitude is exactly 0 and err is nil.
//
// Errors:
//   - ErrLengthMismatch / ErrNegativeOccupation — a state fails validation.
//   - ErrPhotonLimit — the shared total exceeds MaxPhotons.
func Amplitude(u *unitary.Unitary, in, out State) (complex128, error) {
	n := u.Dim()
	if err := in.Validate(n); err != nil {
		return 0, err
	}
	if err := out.Validate(n); err != nil {
		return 0, err
	}

	k := in.Total()
	if k != out.Total() {
		return 0, nil
	}
	if k > MaxPhotons {
		return 0, ErrPhotonLimit
	}
	if k == 0 {
		// The vacuum maps to the vacuum with amplitude 1.
		return 1, nil
	}

	rows := expand(out, k)
	cols := expand(in, k)
	sub := make([]complex128, k*k)
	for r, i := range rows {
		for c, j := range cols {
			sub[r*k+c] = u.At(i, j)
		}
	}

	norm := math.Sqrt(occupationFactorial(in) * occupationFactorial(out))

	return Permanent(sub, k) / complex(norm, 0), nil
}

// expand flattens occupations into a repeated mode-index list of length k.
func expand(s State, k int) []int {
	idx := make([]int, 0, k)
	for mode, occ := range s {
		for c := 0; c < occ; c++ {
			idx = append(idx, mode)
		}
	}

	return idx
}

// occupationFactorial returns ∏ᵢ s[i]!.
func occupationFactorial(s State) float64 {
	prod := 1.0
	for _, occ := range s {
		for f := 2; f <= occ; f++ {
			prod *= float64(f)
		}
	}

	return prod
}
