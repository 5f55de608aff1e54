// Package analyzer: the result Table.

package analyzer

import (
	"github.com/katalvlaran/photonq/fock"
)

// Labeled pairs a display label with a Fock state. The label keys the
// result table; callers typically use ket notation or a logical name like
// "|0101⟩".
type Labeled struct {
	Label string
	State fock.State
}

// Entry is one (input, output) cell of the table. When Err is non-nil the
// amplitude could not be evaluated and Amplitude/Probability are zero.
type Entry struct {
	Input       string
	Output      string
	Amplitude   complex128
	Probability float64
	Err         error
}

// Table holds the full distribution in deterministic order: inputs in
// listing order, outputs in listing order within each input.
type Table struct {
	entries []Entry
	index   map[string]int
}

func newTable(capacity int) *Table {
	return &Table{
		entries: make([]Entry, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// tableKey joins the label pair with a separator labels cannot contain
// accidentally colliding on.
func tableKey(in, out string) string { return in + "\x1f" + out }

func (t *Table) add(e Entry) {
	t.index[tableKey(e.Input, e.Output)] = len(t.entries)
	t.entries = append(t.entries, e)
}

// Entries returns a copy of all cells in deterministic order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the cell count.
func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the cell for the label pair, if present. Later duplicates
// of a label pair shadow earlier ones.
func (t *Table) Lookup(input, output string) (Entry, bool) {
	i, ok := t.index[tableKey(input, output)]
	if !ok {
		return Entry{}, false
	}

	return t.entries[i], true
}

// Total returns the sum of probabilities over all evaluated cells. For a
// post-selected analysis this is the success probability of the selection,
// at most 1 for a single input.
func (t *Table) Total() float64 {
	sum := 0.0
	for _, e := range t.entries {
		if e.Err == nil {
			sum += e.Probability
		}
	}

	return sum
}
