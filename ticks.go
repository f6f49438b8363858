package chart

import "math"

// ComputeValues fills Entries, CenteredEntries and Decimals with ticks
// covering [min, max].
//
// The tick interval is range/LabelCount rounded to one significant digit,
// raised to Granularity when enabled, and snapped down to a multiple of 10
// when its leading digit exceeds 5. Ticks sit on multiples of the interval
// unless ForceLabels is set, in which case exactly LabelCount ticks are
// spread evenly from min to max; a single forced label sits on min.
// Decimals is the fraction digit count that tells neighboring ticks apart.
func (a *Axis) ComputeValues(min, max float64) {
	labelCount := a.LabelCount
	rng := math.Abs(max - min)

	if labelCount <= 0 || rng <= 0 || math.IsInf(rng, 0) || math.IsNaN(rng) {
		a.Entries = a.Entries[:0]
		a.CenteredEntries = a.CenteredEntries[:0]
		a.Decimals = 0
		return
	}

	interval := RoundToNextSignificant(rng / float64(labelCount))
	if a.GranularityEnabled && interval < a.Granularity {
		interval = a.Granularity
	}

	magnitude := RoundToNextSignificant(math.Pow(10, math.Floor(math.Log10(interval))))
	if sig := int(interval / magnitude); sig > 5 {
		// Magnitudes below 0.1 floor to zero; keep the interval then.
		if snapped := math.Floor(10 * magnitude); snapped > 0 {
			interval = snapped
		}
	}

	entries := a.Entries[:0]
	switch {
	case a.ForceLabels && labelCount == 1:
		interval = 0
		entries = append(entries, min)
	case a.ForceLabels:
		interval = rng / float64(labelCount-1)
		for i := 0; i < labelCount; i++ {
			entries = append(entries, clampTick(min+float64(i)*interval, min, max))
		}
	default:
		entries = appendSteppedTicks(entries, min, max, interval, a.CenterLabels)
	}
	a.Entries = entries

	a.Decimals = 0
	// Decimals carries two guard digits the labels do not need.
	if d := Decimals(interval) - 2; interval < 1 && d > 0 {
		a.Decimals = d
	}

	a.CenteredEntries = a.CenteredEntries[:0]
	if a.CenterLabels {
		offset := interval / 2
		for _, v := range entries {
			a.CenteredEntries = append(a.CenteredEntries, v+offset)
		}
	}
}

// appendSteppedTicks appends the multiples of interval inside [min, max].
// With centering one extra tick is added on each side so the centered
// labels of the outermost intervals still exist.
func appendSteppedTicks(dst []float64, min, max, interval float64, centered bool) []float64 {
	var first, last float64
	if interval != 0 {
		first = math.Ceil(min/interval) * interval
		last = NextUp(math.Floor(max/interval) * interval)
	}

	n := 0
	if centered {
		first -= interval
		n = 1
	}

	switch {
	case interval != 0 && last != first:
		for i := 0; first+float64(i)*interval <= last; i++ {
			n++
		}
	case last == first && n == 0:
		n = 1
	}

	for i := 0; i < n; i++ {
		v := first + float64(i)*interval
		if !centered {
			v = clampTick(v, min, max)
		}
		if v == 0 {
			// Normalize -0.
			v = 0
		}
		dst = append(dst, v)
	}
	return dst
}

// clampTick absorbs floating point drift that would place a tick a few
// ulps outside the range.
func clampTick(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}
