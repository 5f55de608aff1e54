package unitary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/photonq/circuit"
	"github.com/katalvlaran/photonq/unitary"
)

// TestCompose_NilCircuit verifies the nil sentinel.
func TestCompose_NilCircuit(t *testing.T) {
	_, err := unitary.Compose(nil)
	assert.ErrorIs(t, err, unitary.ErrCircuitNil)
}

// TestCompose_EmptyCircuit verifies that a component-free circuit composes
// to the identity.
func TestCompose_EmptyCircuit(t *testing.T) {
	c, err := circuit.NewBuilder(3).Build()
	require.NoError(t, err)

	u, err := unitary.Compose(c)
	require.NoError(t, err)
	require.Equal(t, 3, u.Dim())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, real(want), real(u.At(i, j)), 1e-15)
			assert.InDelta(t, imag(want), imag(u.At(i, j)), 1e-15)
		}
	}
}

// TestCompose_SingleSplitterEmbedding verifies that a splitter on modes
// (1,3) of a 4-mode circuit overwrites exactly the four target entries and
// leaves the rest of the identity untouched.
func TestCompose_SingleSplitterEmbedding(t *testing.T) {
	bs, err := circuit.NewBeamSplitter(1, 3, math.Pi/4)
	require.NoError(t, err)

	c, err := circuit.NewBuilder(4).Add(bs).Build()
	require.NoError(t, err)

	u, err := unitary.Compose(c)
	require.NoError(t, err)

	h := 1.0 / math.Sqrt2
	assert.InDelta(t, h, real(u.At(1, 1)), 1e-15)
	assert.InDelta(t, h, real(u.At(1, 3)), 1e-15)
	assert.InDelta(t, h, real(u.At(3, 1)), 1e-15)
	assert.InDelta(t, -h, real(u.At(3, 3)), 1e-15)

	// Untouched modes stay identity.
	assert.InDelta(t, 1, real(u.At(0, 0)), 1e-15)
	assert.InDelta(t, 1, real(u.At(2, 2)), 1e-15)
	assert.InDelta(t, 0, real(u.At(0, 2)), 1e-15)
	assert.InDelta(t, 0, real(u.At(1, 2)), 1e-15)
}

// TestCompose_OrderConvention pins the composition order: the first listed
// component is applied first, i.e. U_total = E_last·…·E_first. A splitter
// followed by a phase shifter on mode 0 must phase the splitter's output
// row, not its input column.
func TestCompose_OrderConvention(t *testing.T) {
	bs, err := circuit.NewBeamSplitter(0, 1, math.Pi/4)
	require.NoError(t, err)
	ps, err := circuit.NewPhaseShifter(0, math.Pi/2)
	require.NoError(t, err)

	c, err := circuit.NewBuilder(2).Add(bs).Add(ps).Build()
	require.NoError(t, err)

	u, err := unitary.Compose(c)
	require.NoError(t, err)

	h := 1.0 / math.Sqrt2
	// U = E_ps·E_bs: row 0 picked up the factor i, row 1 is untouched.
	assert.InDelta(t, 0, real(u.At(0, 0)), 1e-12)
	assert.InDelta(t, h, imag(u.At(0, 0)), 1e-12)
	assert.InDelta(t, h, real(u.At(1, 0)), 1e-12)
	assert.InDelta(t, 0, imag(u.At(1, 0)), 1e-12)
}

// TestCompose_UnitarityInvariant verifies ‖UU†−I‖ < 1e-9 for a circuit
// mixing both conventions and a phase shifter across 5 modes.
func TestCompose_UnitarityInvariant(t *testing.T) {
	bs1, _ := circuit.NewBeamSplitter(0, 1, 0.3)
	bs2, _ := circuit.NewBeamSplitterRx(1, 2, 1.1, 0.4)
	ps, _ := circuit.NewPhaseShifter(3, 2.2)
	bs3, _ := circuit.NewBeamSplitter(2, 4, math.Acos(1/math.Sqrt(3)))

	c, err := circuit.NewBuilder(5).Add(bs1, bs2, ps, bs3).Build()
	require.NoError(t, err)

	u, err := unitary.Compose(c)
	require.NoError(t, err)
	assert.Less(t, u.Defect(), 1e-9, "product of unitaries must stay unitary")
}

// TestCompose_WithEpsilonPanics verifies option validation panics on
// nonsensical tolerances (programmer error).
func TestCompose_WithEpsilonPanics(t *testing.T) {
	assert.Panics(t, func() { unitary.WithEpsilon(-1) })
	assert.Panics(t, func() { unitary.WithEpsilon(math.NaN()) })
}

// TestFormat_Shape verifies the presentation helper emits one bracketed row
// per mode and respects precision.
func TestFormat_Shape(t *testing.T) {
	bs, _ := circuit.NewBeamSplitter(0, 1, math.Pi/4)
	c, _ := circuit.NewBuilder(2).Add(bs).Build()
	u, err := unitary.Compose(c)
	require.NoError(t, err)

	out := unitary.Format(u, 3)
	assert.Contains(t, out, "+0.707")
	assert.Contains(t, out, "-0.707")
	assert.Equal(t, 1, countByte(out, '\n'), "two modes render as two lines")
	assert.Equal(t, "<nil>", unitary.Format(nil, 3))
}

func countByte(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}

	return n
}
