// Package analyzer: the Distribution entry point.

package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/theapemachine/qpool"

	"github.com/katalvlaran/photonq/circuit"
	"github.com/katalvlaran/photonq/fock"
	"github.com/katalvlaran/photonq/unitary"
)

// Distribution composes c once and evaluates the amplitude of every
// (input, output) pair, returning the table in deterministic order.
//
// Per-pair evaluation failures (such as fock.ErrPhotonLimit) are recorded
// in the corresponding Entry and do not fail the call. The call itself
// fails on a nil or non-unitary circuit, empty state lists, states that do
// not match the circuit's mode count, an unknown engine, or a cancelled
// context.
func Distribution(ctx context.Context, c *circuit.Circuit, inputs, outputs []Labeled, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)
	if o.engine != ExactPermanent {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEngine, int(o.engine))
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, ErrNoStates
	}

	u, err := unitary.Compose(c, unitary.WithEpsilon(o.eps))
	if err != nil {
		return nil, err
	}

	// Malformed states are caller bugs, caught before any scheduling.
	for _, l := range inputs {
		if err := l.State.Validate(u.Dim()); err != nil {
			return nil, fmt.Errorf("input %q: %w", l.Label, err)
		}
	}
	for _, l := range outputs {
		if err := l.State.Validate(u.Dim()); err != nil {
			return nil, fmt.Errorf("output %q: %w", l.Label, err)
		}
	}

	pairs := len(inputs) * len(outputs)
	if o.sequential || pairs < parallelThreshold {
		return distributeSequential(ctx, u, inputs, outputs, pairs)
	}

	return distributeParallel(ctx, u, inputs, outputs, pairs, o)
}

func distributeSequential(ctx context.Context, u *unitary.Unitary, inputs, outputs []Labeled, pairs int) (*Table, error) {
	t := newTable(pairs)
	for _, in := range inputs {
		for _, out := range outputs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			t.add(evaluate(u, in, out))
		}
	}

	return t, nil
}

func distributeParallel(ctx context.Context, u *unitary.Unitary, inputs, outputs []Labeled, pairs int, o options) (*Table, error) {
	pool := qpool.NewQ(ctx, o.minWorkers, o.maxWorkers, &qpool.Config{
		SchedulingTimeout: 30 * time.Second,
	})
	defer pool.Close()

	// Fan out in pair order; the result channels preserve that order for
	// collection, so the table stays deterministic.
	results := make([]chan qpool.QuantumValue, 0, pairs)
	idx := 0
	for _, in := range inputs {
		for _, out := range outputs {
			in, out := in, out
			id := fmt.Sprintf("amp-%d-%s-%s", idx, in.Label, out.Label)
			idx++
			results = append(results, pool.Schedule(id,
				func() (any, error) {
					return evaluate(u, in, out), nil
				},
				// A permanent evaluation is deterministic: retrying cannot
				// change the outcome, so a single attempt with a token
				// backoff replaces the pool's default policy.
				qpool.WithRetry(1, &qpool.ExponentialBackoff{Initial: time.Millisecond}),
			))
		}
	}

	t := newTable(pairs)
	pos := 0
	for _, in := range inputs {
		for _, out := range outputs {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case qv := <-results[pos]:
				pos++
				if qv.Error != nil {
					t.add(Entry{Input: in.Label, Output: out.Label, Err: qv.Error})
					continue
				}
				entry, ok := qv.Value.(Entry)
				if !ok {
					t.add(Entry{Input: in.Label, Output: out.Label,
						Err: fmt.Errorf("analyzer: unexpected result type %T", qv.Value)})
					continue
				}
				t.add(entry)
			}
		}
	}

	return t, nil
}

// evaluate computes one table cell. Amplitude errors land in the Entry.
func evaluate(u *unitary.Unitary, in, out Labeled) Entry {
	e := Entry{Input: in.Label, Output: out.Label}
	a, err := fock.Amplitude(u, in.State, out.State)
	if err != nil {
		e.Err = err

		return e
	}
	e.Amplitude = a
	e.Probability = real(a)*real(a) + imag(a)*imag(a)

	return e
}
