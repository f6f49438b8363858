package chart

import "unicode/utf8"

// LabelPosition selects where an axis draws its labels relative to the
// content rectangle. For vertically laid out axes Top means the right edge
// and Bottom the left edge.
type LabelPosition uint8

const (
	LabelTop LabelPosition = iota
	LabelBottom
	LabelBothSided
	LabelTopInside
	LabelBottomInside
)

// String returns the string representation of the label position.
func (p LabelPosition) String() string {
	switch p {
	case LabelTop:
		return "Top"
	case LabelBottom:
		return "Bottom"
	case LabelBothSided:
		return "BothSided"
	case LabelTopInside:
		return "TopInside"
	case LabelBottomInside:
		return "BottomInside"
	default:
		return "Unknown"
	}
}

// onTop reports whether labels are drawn along the top (or right) edge.
func (p LabelPosition) onTop() bool {
	return p == LabelTop || p == LabelTopInside || p == LabelBothSided
}

// onBottom reports whether labels are drawn along the bottom (or left) edge.
func (p LabelPosition) onBottom() bool {
	return p == LabelBottom || p == LabelBottomInside || p == LabelBothSided
}

// Label count limits enforced by SetLabelCount.
const (
	MinLabelCount = 2
	MaxLabelCount = 25
)

// Axis holds the configuration of one chart axis together with the tick
// values and label metrics derived from it on every render pass.
type Axis struct {
	Enabled        bool
	DrawLabels     bool
	DrawGridLines  bool
	DrawAxisLine   bool
	DrawLimitLines bool

	// AxisMin and AxisMax bound the data range shown when the chart is
	// fully zoomed out. Seed the ticks from them with ComputeValues.
	AxisMin float64
	AxisMax float64

	LabelFont  Font
	LabelColor Color
	// LabelRotation is the label rotation in degrees.
	LabelRotation float64
	LabelPosition LabelPosition
	XOffset       float64
	YOffset       float64

	AxisLineColor Color
	AxisLineWidth float64
	AxisLineDash  Dash

	GridColor     Color
	GridLineWidth float64
	GridLineDash  Dash

	// LabelCount is the desired number of ticks; see SetLabelCount.
	LabelCount int
	// ForceLabels spaces exactly LabelCount ticks evenly instead of
	// choosing rounded tick values.
	ForceLabels        bool
	Granularity        float64
	GranularityEnabled bool
	// CenterLabels draws labels between ticks rather than on them.
	CenterLabels bool
	// AvoidFirstLastClipping shifts the outermost labels of a horizontal
	// axis inwards when they would be cut off at the chart edge.
	AvoidFirstLastClipping bool

	// Formatter overrides the renderer's value formatter when set.
	Formatter ValueFormatter

	LimitLines []*LimitLine

	// Derived by the tick computer.
	Entries         []float64
	CenteredEntries []float64
	Decimals        int

	// Derived by the size step, in pixels.
	LabelWidth         float64
	LabelHeight        float64
	LabelRotatedWidth  float64
	LabelRotatedHeight float64

	layout         labelLayoutKey
	layoutMeasurer TextMeasurer
}

// labelLayoutKey identifies the inputs the label metrics were measured with.
type labelLayoutKey struct {
	valid       bool
	orientation Orientation
	font        Font
	rotation    float64
	offset      float64
	longest     string
}

// NewAxis returns an axis with the library defaults: everything enabled,
// six labels, labels along the top edge.
func NewAxis() *Axis {
	return &Axis{
		Enabled:        true,
		DrawLabels:     true,
		DrawGridLines:  true,
		DrawAxisLine:   true,
		DrawLimitLines: true,

		LabelFont:     DefaultFont,
		LabelColor:    Black,
		LabelPosition: LabelTop,
		XOffset:       5,
		YOffset:       4,

		AxisLineColor: Gray,
		AxisLineWidth: 0.5,
		GridColor:     Color{R: 0.5, G: 0.5, B: 0.5, A: 0.9},
		GridLineWidth: 0.5,

		LabelCount:  6,
		Granularity: 1,
	}
}

// SetLabelCount sets the desired tick count clamped to
// [MinLabelCount, MaxLabelCount] and whether the count is forced.
func (a *Axis) SetLabelCount(count int, force bool) {
	a.LabelCount = min(max(count, MinLabelCount), MaxLabelCount)
	a.ForceLabels = force
}

// SetGranularity sets the minimum interval between ticks and enables it.
func (a *Axis) SetGranularity(g float64) {
	a.Granularity = g
	a.GranularityEnabled = true
}

// AxisRange returns the width of the configured data range.
func (a *Axis) AxisRange() float64 {
	return a.AxisMax - a.AxisMin
}

// EntryCount returns the number of computed ticks.
func (a *Axis) EntryCount() int {
	return len(a.Entries)
}

// AddLimitLine appends a limit line annotation.
func (a *Axis) AddLimitLine(l *LimitLine) {
	a.LimitLines = append(a.LimitLines, l)
}

// RemoveLimitLine removes l if present.
func (a *Axis) RemoveLimitLine(l *LimitLine) {
	for i, cur := range a.LimitLines {
		if cur == l {
			a.LimitLines = append(a.LimitLines[:i], a.LimitLines[i+1:]...)
			return
		}
	}
}

// FormattedLabel returns the label text for tick i using f, or "" when i
// is out of range.
func (a *Axis) FormattedLabel(i int, f ValueFormatter) string {
	if i < 0 || i >= len(a.Entries) {
		return ""
	}
	return f.StringForValue(a.Entries[i], a)
}

// LongestLabel returns the tick label with the most characters.
func (a *Axis) LongestLabel(f ValueFormatter) string {
	var (
		longest string
		n       int
	)
	for i := range a.Entries {
		s := a.FormattedLabel(i, f)
		if c := utf8.RuneCountInString(s); c > n {
			longest, n = s, c
		}
	}
	return longest
}
