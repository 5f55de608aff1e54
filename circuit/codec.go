// Package circuit: JSON boundary format.
// The specification format is the artifact exchanged with external
// circuit-building collaborators: an integer mode count plus one record per
// component, in application order. It is intentionally minimal — labels,
// layout hints and rendering concerns do not belong here.

package circuit

import (
	"encoding/json"
	"fmt"
)

// Component type tags used in the JSON boundary format.
const (
	specBeamSplitter = "bs"
	specPhaseShifter = "ps"
)

// specComponent is one serialized component record.
type specComponent struct {
	Type       string  `json:"type"`
	Modes      []int   `json:"modes"`
	Theta      float64 `json:"theta,omitempty"`
	Phi        float64 `json:"phi,omitempty"`
	Convention string  `json:"convention,omitempty"`
}

// specCircuit is the serialized circuit: mode count + ordered records.
type specCircuit struct {
	Modes      int             `json:"modes"`
	Components []specComponent `json:"components"`
}

// MarshalSpec serializes c into the JSON boundary format.
//
// Errors: ErrNilCircuit for a nil receiver argument.
func MarshalSpec(c *Circuit) ([]byte, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}

	spec := specCircuit{Modes: c.modes, Components: make([]specComponent, 0, len(c.comps))}
	for _, comp := range c.comps {
		switch v := comp.(type) {
		case BeamSplitter:
			rec := specComponent{
				Type:  specBeamSplitter,
				Modes: []int{int(v.A), int(v.B)},
				Theta: v.Theta,
			}
			if v.Conv == ConventionRx {
				rec.Convention = v.Conv.String()
				rec.Phi = v.Phi
			}
			spec.Components = append(spec.Components, rec)
		case PhaseShifter:
			spec.Components = append(spec.Components, specComponent{
				Type:  specPhaseShifter,
				Modes: []int{int(v.M)},
				Phi:   v.Phi,
			})
		}
	}

	return json.MarshalIndent(spec, "", "  ")
}

// UnmarshalSpec parses the JSON boundary format and rebuilds the circuit
// through the validating builder, so a malformed specification fails with
// the same sentinels as hand construction.
//
// Errors:
//   - ErrBadSpec          — undecodable JSON or wrong mode arity for a record.
//   - ErrUnknownComponent — unrecognized type tag.
//   - builder sentinels   — ErrModeCount, ErrModeRange, ErrDegenerateSplitter, ErrNonFinite.
func UnmarshalSpec(data []byte) (*Circuit, error) {
	var spec specCircuit
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSpec, err)
	}

	b := NewBuilder(spec.Modes)
	for i, rec := range spec.Components {
		comp, err := decodeComponent(rec)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		b.Add(comp)
	}

	return b.Build()
}

// decodeComponent maps one record onto the closed component variant.
func decodeComponent(rec specComponent) (Component, error) {
	switch rec.Type {
	case specBeamSplitter:
		if len(rec.Modes) != 2 {
			return nil, ErrBadSpec
		}
		if rec.Convention == ConventionRx.String() {
			bs, err := NewBeamSplitterRx(Mode(rec.Modes[0]), Mode(rec.Modes[1]), rec.Theta, rec.Phi)
			if err != nil {
				return nil, err
			}

			return bs, nil
		}
		bs, err := NewBeamSplitter(Mode(rec.Modes[0]), Mode(rec.Modes[1]), rec.Theta)
		if err != nil {
			return nil, err
		}

		return bs, nil
	case specPhaseShifter:
		if len(rec.Modes) != 1 {
			return nil, ErrBadSpec
		}
		ps, err := NewPhaseShifter(Mode(rec.Modes[0]), rec.Phi)
		if err != nil {
			return nil, err
		}

		return ps, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, rec.Type)
	}
}
