// Package circuit: the Circuit value and its fluent Builder.
// A Circuit is opaque, immutable data: a fixed mode count plus an ordered
// component sequence. The builder validates on Add and surfaces the first
// error from Build, so construction either yields a fully valid circuit or
// nothing at all.

package circuit

// Circuit is an immutable N-mode network: a mode count plus an ordered
// sequence of validated components. Application order is the listing order;
// the first component is the first applied to the optical path.
type Circuit struct {
	modes int
	comps []Component
}

// Modes returns the circuit's mode count N.
func (c *Circuit) Modes() int { return c.modes }

// Len returns the number of components.
func (c *Circuit) Len() int { return len(c.comps) }

// Components returns the ordered component sequence as a fresh slice; the
// caller may reorder or drop entries without affecting the circuit.
func (c *Circuit) Components() []Component {
	out := make([]Component, len(c.comps))
	copy(out, c.comps)

	return out
}

// Builder accumulates components for an N-mode circuit. It is a sticky-error
// builder: the first validation failure is remembered and returned by Build;
// every later Add becomes a no-op. Builders are not safe for concurrent use.
type Builder struct {
	modes int
	comps []Component
	err   error
}

// NewBuilder starts a builder for an n-mode circuit. A non-positive n is
// remembered as ErrModeCount and reported by Build.
func NewBuilder(n int) *Builder {
	b := &Builder{modes: n}
	if n <= 0 {
		b.err = ErrModeCount
	}

	return b
}

// Add appends components in application order, validating each against the
// circuit width. Returns the builder for chaining.
func (b *Builder) Add(cs ...Component) *Builder {
	if b.err != nil {
		return b
	}
	for _, c := range cs {
		if err := c.sealed(b.modes); err != nil {
			b.err = err

			return b
		}
		b.comps = append(b.comps, c)
	}

	return b
}

// Build finalizes the circuit. On any prior validation failure it returns
// (nil, err) — no partially valid circuit is ever exposed.
func (b *Builder) Build() (*Circuit, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Copy out of the builder so later Add calls cannot alias the circuit.
	comps := make([]Component, len(b.comps))
	copy(comps, b.comps)

	return &Circuit{modes: b.modes, comps: comps}, nil
}
