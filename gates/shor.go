// Package gates: the compiled order-finding circuit for factoring 15.

package gates

import (
	"github.com/katalvlaran/photonq/circuit"
	"github.com/katalvlaran/photonq/dualrail"
)

// ShorFifteen builds the 12-mode linear-optical core of Shor's algorithm
// factoring N = 15 with base a = 11. Since 11² = 1 (mod 15), the modular
// exponentiation collapses to two controlled-NOTs, each realised as a
// post-selected CZ between Hadamards.
//
// Layout (qubit order x1, x2, f1, f2):
//
//	x1 = (1, 2)   x2 = (3, 4)   f1 = (7, 8)   f2 = (9, 10)
//	auxiliaries: 0, 6 (first CNOT), 5, 11 (second CNOT)
//
// The returned encoding starts from the logical input |x1 x2 f1 f2⟩ =
// |0001⟩; post-selected on codewords, exactly the four outcomes
// |x1, x2, x1, ¬x2⟩ survive, each with probability 1/324.
func ShorFifteen() (*circuit.Circuit, *dualrail.Encoding, error) {
	const modes = 12
	x1 := dualrail.Pair{Zero: 1, One: 2}
	x2 := dualrail.Pair{Zero: 3, One: 4}
	f1 := dualrail.Pair{Zero: 7, One: 8}
	f2 := dualrail.Pair{Zero: 9, One: 10}

	enc, err := dualrail.NewEncoding(modes,
		[]dualrail.Pair{x1, x2, f1, f2},
		[]circuit.Mode{0, 5, 6, 11})
	if err != nil {
		return nil, nil, err
	}

	b := circuit.NewBuilder(modes)
	for _, p := range []dualrail.Pair{x1, x2, f1, f2} {
		h, err := Hadamard(p.Zero, p.One)
		if err != nil {
			return nil, nil, err
		}
		b.Add(h)
	}

	// CNOT x1 → f1: the opening Hadamard on f1 is already in place.
	cz1, err := CZ(x1, f1, 0, 6)
	if err != nil {
		return nil, nil, err
	}
	b.Add(cz1...)
	hf1, err := Hadamard(f1.Zero, f1.One)
	if err != nil {
		return nil, nil, err
	}
	b.Add(hf1)

	// CNOT x2 → f2.
	cz2, err := CZ(x2, f2, 5, 11)
	if err != nil {
		return nil, nil, err
	}
	b.Add(cz2...)
	hf2, err := Hadamard(f2.Zero, f2.One)
	if err != nil {
		return nil, nil, err
	}
	b.Add(hf2)

	c, err := b.Build()
	if err != nil {
		return nil, nil, err
	}

	return c, enc, nil
}
