package chart

// Font describes a font by name and size in points. Resolving the name to
// an actual face is the Canvas implementation's job; an empty Name selects
// the canvas default.
type Font struct {
	Name string
	Size float64
}

// DefaultFont is the font used for axis labels unless configured otherwise.
var DefaultFont = Font{Size: 10}

// TextStyle carries the attributes of drawn text.
type TextStyle struct {
	Font  Font
	Color Color
}

// TextMeasurer measures single lines of text.
type TextMeasurer interface {
	// MeasureText returns the advance width and line height of s.
	MeasureText(s string, f Font) Size

	// LineHeight returns the distance between consecutive baselines.
	LineHeight(f Font) float64
}

// Canvas is the immediate-mode drawing surface the chart renders into.
//
// Coordinates are pixels with the origin at the top-left and Y growing
// downwards. Save and Restore bracket every transform, clip and stroke
// attribute change; implementations must restore all three.
type Canvas interface {
	TextMeasurer

	Save()
	Restore()

	Translate(x, y float64)
	Rotate(angle float64)
	ClipRect(r Rect)

	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetLineDash(d Dash)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	StrokePath()

	// DrawText draws a single line of text whose bounding box has its
	// top-left corner at p in the current user space.
	DrawText(s string, p Point, style TextStyle)
}

// strokeLine strokes a single segment from (x1, y1) to (x2, y2).
func strokeLine(c Canvas, x1, y1, x2, y2 float64) {
	c.BeginPath()
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
	c.StrokePath()
}

// applyStroke sets the stroke color, width and dash in one call.
func applyStroke(c Canvas, col Color, width float64, dash Dash) {
	c.SetStrokeColor(col)
	c.SetLineWidth(width)
	c.SetLineDash(dash)
}
