package analyzer_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/photonq/analyzer"
	"github.com/katalvlaran/photonq/circuit"
	"github.com/katalvlaran/photonq/fock"
	"github.com/katalvlaran/photonq/unitary"
)

func balancedSplitterCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()
	bs, err := circuit.NewBeamSplitter(0, 1, math.Pi/4)
	require.NoError(t, err)
	c, err := circuit.NewBuilder(2).Add(bs).Build()
	require.NoError(t, err)

	return c
}

// TestDistribution_HongOuMandel computes the canonical two-photon table and
// checks order, probabilities, lookup and the total.
func TestDistribution_HongOuMandel(t *testing.T) {
	c := balancedSplitterCircuit(t)

	inputs := []analyzer.Labeled{{Label: "|1,1⟩", State: fock.State{1, 1}}}
	outputs := []analyzer.Labeled{
		{Label: "|2,0⟩", State: fock.State{2, 0}},
		{Label: "|1,1⟩", State: fock.State{1, 1}},
		{Label: "|0,2⟩", State: fock.State{0, 2}},
	}

	table, err := analyzer.Distribution(context.Background(), c, inputs, outputs)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	entries := table.Entries()
	assert.Equal(t, "|2,0⟩", entries[0].Output)
	assert.InDelta(t, 0.5, entries[0].Probability, 1e-12)
	assert.InDelta(t, 0, entries[1].Probability, 1e-12)
	assert.InDelta(t, 0.5, entries[2].Probability, 1e-12)

	dip, ok := table.Lookup("|1,1⟩", "|1,1⟩")
	require.True(t, ok)
	assert.NoError(t, dip.Err)
	assert.InDelta(t, 0, dip.Probability, 1e-12)

	_, ok = table.Lookup("|1,1⟩", "|3,0⟩")
	assert.False(t, ok)

	assert.InDelta(t, 1, table.Total(), 1e-12)
}

// TestDistribution_ArgumentErrors covers the fail-fast paths.
func TestDistribution_ArgumentErrors(t *testing.T) {
	c := balancedSplitterCircuit(t)
	ctx := context.Background()
	good := []analyzer.Labeled{{Label: "a", State: fock.State{1, 0}}}

	_, err := analyzer.Distribution(ctx, c, nil, good)
	assert.ErrorIs(t, err, analyzer.ErrNoStates)

	_, err = analyzer.Distribution(ctx, c, good, nil)
	assert.ErrorIs(t, err, analyzer.ErrNoStates)

	_, err = analyzer.Distribution(ctx, nil, good, good)
	assert.ErrorIs(t, err, unitary.ErrCircuitNil)

	bad := []analyzer.Labeled{{Label: "b", State: fock.State{1, 0, 0}}}
	_, err = analyzer.Distribution(ctx, c, bad, good)
	assert.ErrorIs(t, err, fock.ErrLengthMismatch)

	_, err = analyzer.Distribution(ctx, c, good, good, analyzer.WithEngine(analyzer.Engine(42)))
	assert.ErrorIs(t, err, analyzer.ErrUnknownEngine)
}

// TestDistribution_PerPairIsolation verifies that a pair beyond the exact
// engine's photon limit fails alone, leaving the rest of the table intact.
func TestDistribution_PerPairIsolation(t *testing.T) {
	c, err := circuit.NewBuilder(2).Build()
	require.NoError(t, err)

	inputs := []analyzer.Labeled{
		{Label: "light", State: fock.State{1, 0}},
		{Label: "heavy", State: fock.State{31, 0}},
	}
	outputs := []analyzer.Labeled{
		{Label: "one", State: fock.State{1, 0}},
		{Label: "many", State: fock.State{0, 31}},
	}

	table, err := analyzer.Distribution(context.Background(), c, inputs, outputs)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	cell, ok := table.Lookup("light", "one")
	require.True(t, ok)
	assert.NoError(t, cell.Err)
	assert.InDelta(t, 1, cell.Probability, 1e-12)

	// Photon totals differ: a defined zero, not an error.
	cell, ok = table.Lookup("light", "many")
	require.True(t, ok)
	assert.NoError(t, cell.Err)
	assert.Equal(t, 0.0, cell.Probability)

	cell, ok = table.Lookup("heavy", "many")
	require.True(t, ok)
	assert.ErrorIs(t, cell.Err, fock.ErrPhotonLimit)
	assert.Equal(t, 0.0, cell.Probability)

	// Errored cells do not pollute the total.
	assert.InDelta(t, 1, table.Total(), 1e-12)
}

// TestDistribution_ParallelMatchesSequential fans a 36-cell table over the
// worker pool and checks it is cell-for-cell identical to the sequential
// path.
func TestDistribution_ParallelMatchesSequential(t *testing.T) {
	bs1, _ := circuit.NewBeamSplitterRx(0, 1, 0.8, 0.2)
	ps, _ := circuit.NewPhaseShifter(2, 1.1)
	bs2, _ := circuit.NewBeamSplitter(1, 2, 0.6)
	c, err := circuit.NewBuilder(3).Add(bs1, ps, bs2).Build()
	require.NoError(t, err)

	states := fock.Enumerate(3, 2)
	labeled := make([]analyzer.Labeled, 0, len(states))
	for _, s := range states {
		labeled = append(labeled, analyzer.Labeled{Label: s.String(), State: s})
	}

	seq, err := analyzer.Distribution(context.Background(), c, labeled, labeled,
		analyzer.WithSequential())
	require.NoError(t, err)

	par, err := analyzer.Distribution(context.Background(), c, labeled, labeled,
		analyzer.WithWorkers(2, 4))
	require.NoError(t, err)

	require.Equal(t, seq.Len(), par.Len())
	se, pe := seq.Entries(), par.Entries()
	for i := range se {
		assert.Equal(t, se[i].Input, pe[i].Input, "cell %d", i)
		assert.Equal(t, se[i].Output, pe[i].Output, "cell %d", i)
		assert.InDelta(t, se[i].Probability, pe[i].Probability, 1e-12, "cell %d", i)
	}

	// One input row must still be complete: Σ P = 1 for a lossless circuit.
	rowSum := 0.0
	for _, e := range pe[:len(states)] {
		rowSum += e.Probability
	}
	assert.InDelta(t, 1, rowSum, 1e-9)
}

// TestDistribution_ContextCancelled verifies the sequential path honours
// cancellation.
func TestDistribution_ContextCancelled(t *testing.T) {
	c := balancedSplitterCircuit(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := []analyzer.Labeled{{Label: "a", State: fock.State{1, 1}}}
	_, err := analyzer.Distribution(ctx, c, in, in, analyzer.WithSequential())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestOptionPanics verifies option constructors reject nonsense eagerly.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { analyzer.WithWorkers(0, 4) })
	assert.Panics(t, func() { analyzer.WithWorkers(4, 2) })
	assert.Panics(t, func() { analyzer.WithEpsilon(math.Inf(1)) })
}

// TestEngine_String pins the engine tags.
func TestEngine_String(t *testing.T) {
	assert.Equal(t, "exact-permanent", analyzer.ExactPermanent.String())
	assert.Equal(t, "unknown", fmt.Sprint(analyzer.Engine(7)))
}
