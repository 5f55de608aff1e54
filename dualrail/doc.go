// Package dualrail maps logical qubits onto pairs of optical modes.
//
// A dual-rail qubit stores |0⟩ as a single photon in the pair's zero mode
// and |1⟩ as a single photon in the pair's one mode. An Encoding fixes the
// layout once: an ordered list of disjoint mode pairs plus the auxiliary
// modes that carry no logical information, together covering every mode of
// the circuit exactly once.
//
// ⚙️ Operations
//
//	🚀 ToFock  — logical basis state → the unique Fock state encoding it.
//	🚀 ToQubit — Fock state → logical state, with an ok flag: occupied
//	             auxiliary modes or malformed pairs are not errors, they are
//	             the non-codeword outcomes post-selection filters away.
//
// ✨ Example
//
//	enc, _ := dualrail.NewEncoding(4,
//		[]dualrail.Pair{{Zero: 0, One: 1}, {Zero: 2, One: 3}}, nil)
//	f, _ := enc.ToFock(dualrail.QubitState{false, true}) // |1,0,0,1⟩
//	q, ok, _ := enc.ToQubit(f)                           // {false,true}, true
package dualrail
