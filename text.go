package chart

// TextAlign is the horizontal alignment of text relative to its draw point.
type TextAlign uint8

const (
	// AlignLeft draws text starting at the point.
	AlignLeft TextAlign = iota
	// AlignCenter centers text horizontally on the point.
	AlignCenter
	// AlignRight draws text ending at the point.
	AlignRight
)

// String returns the string representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Common anchors for DrawTextAnchored.
//
//	(0, 0)     = top-left
//	(0.5, 0.5) = center
//	(1, 1)     = bottom-right
var (
	AnchorTopLeft = Point{X: 0, Y: 0}
	AnchorCenter  = Point{X: 0.5, Y: 0.5}
)

// DrawText draws a single line of text at p aligned horizontally by align.
// p is the top of the text; there is no vertical adjustment.
func DrawText(c Canvas, s string, p Point, align TextAlign, style TextStyle) {
	switch align {
	case AlignCenter:
		p.X -= c.MeasureText(s, style.Font).Width / 2
	case AlignRight:
		p.X -= c.MeasureText(s, style.Font).Width
	}
	c.DrawText(s, p, style)
}

// textPlacement is the resolved geometry of anchored text.
type textPlacement struct {
	// Rotate reports whether the canvas must be translated to Translate and
	// rotated before drawing.
	Rotate    bool
	Translate Point

	// Origin is the top-left of the text box in the user space active
	// while drawing: absolute when Rotate is false, relative to Translate
	// otherwise.
	Origin Point
}

// placeAnchored resolves where text of the given size lands when anchored
// at p and rotated by angle radians.
//
// Rotated text always turns around its own center. An off-center anchor
// moves the rotation center by the anchor's offset from the middle of the
// rotated bounding box so the anchor keeps its visual meaning.
func placeAnchored(size Size, p, anchor Point, angle float64) textPlacement {
	if angle == 0 {
		return textPlacement{Origin: p.Sub(size.Scale(anchor))}
	}

	translate := p
	if anchor != AnchorCenter {
		rotated := RotatedSize(size.Width, size.Height, angle)
		translate = translate.Sub(rotated.Scale(anchor.Sub(AnchorCenter)))
	}
	return textPlacement{
		Rotate:    true,
		Translate: translate,
		Origin:    size.Scale(AnchorCenter).Mul(-1),
	}
}

// DrawTextAnchored draws a single line of text so that the fractional
// anchor of its bounding box sits at p, rotated by angle radians around the
// box center.
func DrawTextAnchored(c Canvas, s string, p Point, style TextStyle, anchor Point, angle float64) {
	var size Size
	if angle != 0 || anchor != AnchorTopLeft {
		size = c.MeasureText(s, style.Font)
	}

	pl := placeAnchored(size, p, anchor, angle)
	if !pl.Rotate {
		c.DrawText(s, pl.Origin, style)
		return
	}

	c.Save()
	defer c.Restore()

	c.Translate(pl.Translate.X, pl.Translate.Y)
	c.Rotate(angle)
	c.DrawText(s, pl.Origin, style)
}

// MeasureMultilineText returns the bounding size of s wrapped to the
// constraint width. A zero constraint width disables wrapping; a positive
// constraint height drops lines that do not fit, keeping at least one.
func MeasureMultilineText(m TextMeasurer, s string, f Font, constraint Size) Size {
	return measureLines(m, layoutLines(m, s, f, constraint), f)
}

// DrawMultilineText measures s within constraint and draws it anchored and
// rotated like DrawTextAnchored.
func DrawMultilineText(c Canvas, s string, p Point, style TextStyle, constraint Size, anchor Point, angle float64) {
	lines := layoutLines(c, s, style.Font, constraint)
	drawLines(c, lines, measureLines(c, lines, style.Font), p, style, anchor, angle)
}

// DrawMultilineTextSized is DrawMultilineText with a size measured by the
// caller, typically from an earlier MeasureMultilineText call.
func DrawMultilineTextSized(c Canvas, s string, known Size, p Point, style TextStyle, constraint Size, anchor Point, angle float64) {
	drawLines(c, layoutLines(c, s, style.Font, constraint), known, p, style, anchor, angle)
}

func drawLines(c Canvas, lines []string, size Size, p Point, style TextStyle, anchor Point, angle float64) {
	if len(lines) == 0 {
		return
	}

	pl := placeAnchored(size, p, anchor, angle)
	lh := c.LineHeight(style.Font)
	if !pl.Rotate {
		drawLineStack(c, lines, pl.Origin, lh, style)
		return
	}

	c.Save()
	defer c.Restore()

	c.Translate(pl.Translate.X, pl.Translate.Y)
	c.Rotate(angle)
	drawLineStack(c, lines, pl.Origin, lh, style)
}

func drawLineStack(c Canvas, lines []string, origin Point, lineHeight float64, style TextStyle) {
	for i, line := range lines {
		if line == "" {
			continue
		}
		c.DrawText(line, Point{X: origin.X, Y: origin.Y + float64(i)*lineHeight}, style)
	}
}

func measureLines(m TextMeasurer, lines []string, f Font) Size {
	if len(lines) == 0 {
		return Size{}
	}
	var w float64
	for _, line := range lines {
		if lw := m.MeasureText(line, f).Width; lw > w {
			w = lw
		}
	}
	return Size{Width: w, Height: float64(len(lines)) * m.LineHeight(f)}
}
