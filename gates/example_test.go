package gates_test

import (
	"fmt"

	"github.com/katalvlaran/photonq/dualrail"
	"github.com/katalvlaran/photonq/fock"
	"github.com/katalvlaran/photonq/gates"
	"github.com/katalvlaran/photonq/unitary"
)

// ExampleShorFifteen lists the post-selected outcomes of the order-finding
// circuit for 15 = 3·5: the function register always reads f1 = x1,
// f2 = ¬x2, and the four surviving branches are equally likely.
func ExampleShorFifteen() {
	c, enc, _ := gates.ShorFifteen()
	u, _ := unitary.Compose(c)
	in, _ := enc.ToFock(dualrail.QubitState{false, false, false, true})

	for v := 0; v < 16; v++ {
		out := dualrail.QubitState{v&8 != 0, v&4 != 0, v&2 != 0, v&1 != 0}
		fout, _ := enc.ToFock(out)
		a, _ := fock.Amplitude(u, in, fout)
		if p := real(a)*real(a) + imag(a)*imag(a); p > 1e-15 {
			fmt.Printf("%s P=%.6f\n", out, p)
		}
	}

	// Output:
	// |0001⟩ P=0.003086
	// |0100⟩ P=0.003086
	// |1011⟩ P=0.003086
	// |1110⟩ P=0.003086
}
