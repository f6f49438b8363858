package chart

import "math"

// LimitLabelPosition selects the corner of a limit line its label is drawn
// at.
type LimitLabelPosition uint8

const (
	LimitLabelRightTop LimitLabelPosition = iota
	LimitLabelRightBottom
	LimitLabelLeftTop
	LimitLabelLeftBottom
)

// String returns the string representation of the label position.
func (p LimitLabelPosition) String() string {
	switch p {
	case LimitLabelRightTop:
		return "RightTop"
	case LimitLabelRightBottom:
		return "RightBottom"
	case LimitLabelLeftTop:
		return "LeftTop"
	case LimitLabelLeftBottom:
		return "LeftBottom"
	default:
		return "Unknown"
	}
}

// Limit line width bounds enforced by SetLineWidth.
const (
	MinLimitLineWidth = 0.2
	MaxLimitLineWidth = 12.0
)

// LimitLine is an annotation line drawn across the content rectangle at a
// fixed data value, with an optional label at one of its corners.
type LimitLine struct {
	Enabled bool
	Limit   float64

	LineWidth float64
	LineColor Color
	Dash      Dash

	Label         string
	DrawLabel     bool
	ValueFont     Font
	ValueColor    Color
	LabelPosition LimitLabelPosition
	XOffset       float64
	YOffset       float64
}

// NewLimitLine creates an enabled limit line at limit with a red 2px stroke
// and label drawn at the right top corner.
func NewLimitLine(limit float64, label string) *LimitLine {
	return &LimitLine{
		Enabled:       true,
		Limit:         limit,
		LineWidth:     2,
		LineColor:     LimitRed,
		Label:         label,
		DrawLabel:     true,
		ValueFont:     Font{Size: 13},
		ValueColor:    Black,
		LabelPosition: LimitLabelRightTop,
		XOffset:       5,
		YOffset:       5,
	}
}

// SetLineWidth sets the stroke width clamped to
// [MinLimitLineWidth, MaxLimitLineWidth].
func (l *LimitLine) SetLineWidth(w float64) {
	l.LineWidth = math.Min(math.Max(w, MinLimitLineWidth), MaxLimitLineWidth)
}

// hasLabel reports whether a label should be drawn for l.
func (l *LimitLine) hasLabel() bool {
	return l.DrawLabel && l.Label != ""
}
