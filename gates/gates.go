// Package gates: gate constructors.

package gates

import (
	"math"

	"github.com/katalvlaran/photonq/circuit"
	"github.com/katalvlaran/photonq/dualrail"
)

// thetaThird gives cos²θ = 1/3, the reflectivity the post-selected CZ
// construction requires of all three of its splitters.
var thetaThird = math.Acos(1 / math.Sqrt(3))

// Hadamard returns a balanced splitter across the rails (zero, one). On a
// dual-rail qubit it acts as the logical Hadamard:
// |0⟩ → (|0⟩+|1⟩)/√2, |1⟩ → (|0⟩−|1⟩)/√2.
func Hadamard(zero, one circuit.Mode) (circuit.Component, error) {
	bs, err := circuit.NewBeamSplitter(zero, one, math.Pi/4)
	if err != nil {
		return nil, err
	}

	return bs, nil
}

// ThirdSplitter returns a splitter with reflectivity exactly 1/3 on modes
// (a, b). Its diagonal gives amplitude 1/√3 for staying, and −1/√3 for the
// second mode, which is where the CZ phase comes from.
func ThirdSplitter(a, b circuit.Mode) (circuit.Component, error) {
	bs, err := circuit.NewBeamSplitter(a, b, thetaThird)
	if err != nil {
		return nil, err
	}

	return bs, nil
}

// CZ returns the three-splitter post-selected controlled-Z between two
// dual-rail qubits, after Hofmann–Takeuchi:
//
//  1. control.Zero mixed with the empty auxControl mode,
//  2. target.One mixed with control.One (ordered so control.One takes the
//     −cosθ diagonal),
//  3. target.Zero mixed with the empty auxTarget mode.
//
// All three use reflectivity 1/3. Restricted to outcomes with one photon
// per pair and empty auxiliaries, the action is diag(1, 1, −1, 1)/3 on the
// basis |control,target⟩ ∈ {00, 01, 10, 11}: success probability 1/9 with
// a π phase on |10⟩.
//
// The six modes involved must be distinct; circuit.Builder.Add enforces
// per-component distinctness and the encoding enforces the rest.
func CZ(control, target dualrail.Pair, auxControl, auxTarget circuit.Mode) ([]circuit.Component, error) {
	damp, err := ThirdSplitter(control.Zero, auxControl)
	if err != nil {
		return nil, err
	}
	central, err := ThirdSplitter(target.One, control.One)
	if err != nil {
		return nil, err
	}
	dampT, err := ThirdSplitter(target.Zero, auxTarget)
	if err != nil {
		return nil, err
	}

	return []circuit.Component{damp, central, dampT}, nil
}

// CNOT returns CZ conjugated by Hadamards on the target pair. In the
// post-selected subspace it maps |c,t⟩ → (−1)ᶜ·|c, t⊕c⟩/3: a controlled
// NOT up to a global −1 on the control-set branch.
func CNOT(control, target dualrail.Pair, auxControl, auxTarget circuit.Mode) ([]circuit.Component, error) {
	hIn, err := Hadamard(target.Zero, target.One)
	if err != nil {
		return nil, err
	}
	cz, err := CZ(control, target, auxControl, auxTarget)
	if err != nil {
		return nil, err
	}
	hOut, err := Hadamard(target.Zero, target.One)
	if err != nil {
		return nil, err
	}

	comps := make([]circuit.Component, 0, len(cz)+2)
	comps = append(comps, hIn)
	comps = append(comps, cz...)
	comps = append(comps, hOut)

	return comps, nil
}
