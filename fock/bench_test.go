package fock_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/photonq/fock"
)

// genMatrix fills a k×k complex matrix with a deterministic pattern so
// benchmark runs are comparable across machines and commits.
func genMatrix(k int) []complex128 {
	a := make([]complex128, k*k)
	for i := range a {
		x := float64(i)
		a[i] = complex(math.Sin(x*0.7), math.Cos(x*1.3)) / complex(float64(k), 0)
	}

	return a
}

func benchmarkPermanent(b *testing.B, k int) {
	a := genMatrix(k)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fock.Permanent(a, k)
	}
}

func BenchmarkPermanent10(b *testing.B) { benchmarkPermanent(b, 10) }
func BenchmarkPermanent15(b *testing.B) { benchmarkPermanent(b, 15) }
func BenchmarkPermanent20(b *testing.B) { benchmarkPermanent(b, 20) }
