// Package unitary: the Unitary value — a composed, read-only global matrix.

package unitary

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Unitary is the composed N×N global mode unitary. It is write-once: Compose
// is the only producer, and nothing mutates it afterwards, so a Unitary may
// be shared freely across goroutines.
type Unitary struct {
	n int
	m *mat.CDense
}

// Dim returns the mode count N.
func (u *Unitary) Dim() int { return u.n }

// At returns the matrix entry U[i,j]. Out-of-range indices panic, matching
// gonum's dense-matrix contract.
func (u *Unitary) At(i, j int) complex128 { return u.m.At(i, j) }

// CMatrix exposes the underlying matrix as a read-only gonum view for
// interoperation. Callers must not type-assert and mutate.
func (u *Unitary) CMatrix() mat.CMatrix { return u.m }

// Defect returns ‖U·U† − I‖_maxabs, the numeric distance from exact
// unitarity. Compose guarantees this is below the configured eps.
func (u *Unitary) Defect() float64 {
	prod := mat.NewCDense(u.n, u.n, nil)
	cmul(prod, u.m, u.m.H())

	return maxDeviationFromIdentity(prod, u.n)
}

// maxDeviationFromIdentity returns the largest |m[i,j] − I[i,j]|.
func maxDeviationFromIdentity(m *mat.CDense, n int) float64 {
	var maxDev float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			if d := cabs(m.At(i, j) - want); d > maxDev {
				maxDev = d
			}
		}
	}

	return maxDev
}

// Format renders the numeric matrix as aligned text with prec decimal
// places per real/imaginary part. Purely presentational: the output is for
// human inspection and is not parsed anywhere.
func Format(u *Unitary, prec int) string {
	if u == nil {
		return "<nil>"
	}
	if prec < 0 {
		prec = 0
	}

	var sb strings.Builder
	for i := 0; i < u.n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("[ ")
		for j := 0; j < u.n; j++ {
			if j > 0 {
				sb.WriteString("  ")
			}
			v := u.m.At(i, j)
			fmt.Fprintf(&sb, "%+.*f%+.*fi", prec, real(v), prec, imag(v))
		}
		sb.WriteString(" ]")
	}

	return sb.String()
}
