package chart

import "math"

// Dash defines a dash pattern for stroked axis, grid and limit lines.
// The zero value is a solid line.
type Dash struct {
	// Lengths contains alternating dash/gap lengths in pixels.
	Lengths []float64

	// Phase is the starting offset into the pattern.
	Phase float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken as absolute values. A pattern whose lengths are
// all zero is treated as solid.
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
func NewDash(lengths ...float64) Dash {
	normalized := make([]float64, 0, len(lengths))
	positive := false
	for _, l := range lengths {
		l = math.Abs(l)
		if l > 0 {
			positive = true
		}
		normalized = append(normalized, l)
	}
	if !positive {
		return Dash{}
	}
	return Dash{Lengths: normalized}
}

// WithPhase returns a copy of d starting at the given phase.
func (d Dash) WithPhase(phase float64) Dash {
	if !d.IsDashed() {
		return Dash{}
	}
	lengths := make([]float64, len(d.Lengths))
	copy(lengths, d.Lengths)
	return Dash{Lengths: lengths, Phase: phase}
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d Dash) IsDashed() bool {
	for _, l := range d.Lengths {
		if l > 0 {
			return true
		}
	}
	return false
}
