package chart

import "math"

// Orientation is the direction an axis runs in.
type Orientation uint8

const (
	// Horizontal axes run along X with labels above or below the content,
	// like the X axis of a line or bar chart.
	Horizontal Orientation = iota
	// Vertical axes run along Y with labels left or right of the content,
	// like the X axis of a horizontal bar chart.
	Vertical
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Insets are distances from each side of a rectangle.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// labelLine is one row (or column) of axis labels: the fixed pixel
// coordinate perpendicular to the axis and the text anchor used there.
type labelLine struct {
	pos    float64
	anchor Point
}

// axisLayout holds everything that differs between orientations. The
// renderer drives the shared pass and asks the layout for geometry.
type axisLayout interface {
	contentExtent(vp *Viewport) float64
	fullyZoomedOut(vp *Viewport) bool
	visibleRange(vp *Viewport, t *Transformer, inverted bool) (min, max float64)

	// measure stores label metrics for a longest label of the given size.
	measure(a *Axis, size Size)
	reserve(a *Axis) Insets

	// tickPixel maps a data value to its pixel coordinate along the axis.
	tickPixel(t *Transformer, v float64) float64
	inBounds(vp *Viewport, px float64) bool
	labelPoint(fixed, px float64) Point
	labelLines(a *Axis, vp *Viewport) []labelLine
	avoidClipping(vp *Viewport, i, n int, px, width float64) float64

	gridClip(vp *Viewport, lineWidth float64) Rect
	gridLine(vp *Viewport, px float64) (Point, Point)
	axisLines(a *Axis, vp *Viewport) [][2]Point

	limitClip(vp *Viewport, lineWidth float64) Rect
	limitLine(vp *Viewport, px float64) (Point, Point)
	limitLabel(l *LimitLine, vp *Viewport, px, lineHeight float64) (Point, TextAlign)
}

func layoutFor(o Orientation) axisLayout {
	if o == Vertical {
		return verticalLayout{}
	}
	return horizontalLayout{}
}

type horizontalLayout struct{}

func (horizontalLayout) contentExtent(vp *Viewport) float64 { return vp.ContentWidth() }
func (horizontalLayout) fullyZoomedOut(vp *Viewport) bool { return vp.IsFullyZoomedOutX() }

func (horizontalLayout) visibleRange(vp *Viewport, t *Transformer, inverted bool) (float64, float64) {
	p1 := t.PixelToValue(Pt(vp.ContentLeft(), vp.ContentTop()))
	p2 := t.PixelToValue(Pt(vp.ContentRight(), vp.ContentTop()))
	if inverted {
		return p2.X, p1.X
	}
	return p1.X, p2.X
}

func (horizontalLayout) measure(a *Axis, size Size) {
	rotated := RotatedSizeDegrees(size.Width, size.Height, a.LabelRotation)
	a.LabelWidth = size.Width
	a.LabelHeight = size.Height
	a.LabelRotatedWidth = rotated.Width
	a.LabelRotatedHeight = rotated.Height
}

func (horizontalLayout) reserve(a *Axis) Insets {
	h := a.LabelRotatedHeight + a.YOffset
	var in Insets
	switch a.LabelPosition {
	case LabelTop:
		in.Top = h
	case LabelBottom:
		in.Bottom = h
	case LabelBothSided:
		in.Top, in.Bottom = h, h
	}
	return in
}

func (horizontalLayout) tickPixel(t *Transformer, v float64) float64 {
	return t.PointValueToPixel(Pt(v, 0)).X
}

func (horizontalLayout) inBounds(vp *Viewport, px float64) bool { return vp.IsInBoundsX(px) }
func (horizontalLayout) labelPoint(fixed, px float64) Point { return Pt(px, fixed) }

func (horizontalLayout) labelLines(a *Axis, vp *Viewport) []labelLine {
	top := labelLine{vp.ContentTop() - a.YOffset, Pt(0.5, 1)}
	bottom := labelLine{vp.ContentBottom() + a.YOffset, Pt(0.5, 0)}
	switch a.LabelPosition {
	case LabelTop:
		return []labelLine{top}
	case LabelTopInside:
		return []labelLine{{vp.ContentTop() + a.YOffset + a.LabelRotatedHeight, Pt(0.5, 1)}}
	case LabelBottom:
		return []labelLine{bottom}
	case LabelBottomInside:
		return []labelLine{{vp.ContentBottom() - a.YOffset - a.LabelRotatedHeight, Pt(0.5, 0)}}
	case LabelBothSided:
		return []labelLine{top, bottom}
	}
	return nil
}

// avoidClipping pulls the first label right by half its width and the last
// label left when it would run past the chart edge.
func (horizontalLayout) avoidClipping(vp *Viewport, i, n int, px, width float64) float64 {
	switch {
	case i == n-1 && n > 1:
		if width > vp.OffsetRight()*2 && px+width > vp.ChartWidth() {
			px -= width / 2
		}
	case i == 0:
		px += width / 2
	}
	return px
}

func (horizontalLayout) gridClip(vp *Viewport, lineWidth float64) Rect {
	return vp.ContentRect().Outset(lineWidth/2, 0)
}

func (horizontalLayout) gridLine(vp *Viewport, px float64) (Point, Point) {
	return Pt(px, vp.ContentBottom()), Pt(px, vp.ContentTop())
}

func (horizontalLayout) axisLines(a *Axis, vp *Viewport) [][2]Point {
	var lines [][2]Point
	if a.LabelPosition.onTop() {
		lines = append(lines, [2]Point{
			Pt(vp.ContentLeft(), vp.ContentTop()),
			Pt(vp.ContentRight(), vp.ContentTop()),
		})
	}
	if a.LabelPosition.onBottom() {
		lines = append(lines, [2]Point{
			Pt(vp.ContentLeft(), vp.ContentBottom()),
			Pt(vp.ContentRight(), vp.ContentBottom()),
		})
	}
	return lines
}

func (horizontalLayout) limitClip(vp *Viewport, lineWidth float64) Rect {
	return vp.ContentRect().Outset(lineWidth/2, 0)
}

func (horizontalLayout) limitLine(vp *Viewport, px float64) (Point, Point) {
	return Pt(px, vp.ContentBottom()), Pt(px, vp.ContentTop())
}

func (horizontalLayout) limitLabel(l *LimitLine, vp *Viewport, px, lineHeight float64) (Point, TextAlign) {
	xOffset := l.LineWidth + l.XOffset
	top := vp.ContentTop() + l.YOffset
	bottom := vp.ContentBottom() - lineHeight - l.YOffset
	switch l.LabelPosition {
	case LimitLabelRightBottom:
		return Pt(px+xOffset, bottom), AlignLeft
	case LimitLabelLeftTop:
		return Pt(px-xOffset, top), AlignRight
	case LimitLabelLeftBottom:
		return Pt(px-xOffset, bottom), AlignRight
	default:
		return Pt(px+xOffset, top), AlignLeft
	}
}

// limitLabelMargin is the fixed gap between a vertical axis' limit line
// label and the content edge.
const limitLabelMargin = 4.0

// verticalLabelPadding scales XOffset into the horizontal space reserved
// around vertical axis labels.
const verticalLabelPadding = 3.5

type verticalLayout struct{}

func (verticalLayout) contentExtent(vp *Viewport) float64 { return vp.ContentHeight() }
func (verticalLayout) fullyZoomedOut(vp *Viewport) bool { return vp.IsFullyZoomedOutY() }

func (verticalLayout) visibleRange(vp *Viewport, t *Transformer, inverted bool) (float64, float64) {
	p1 := t.PixelToValue(Pt(vp.ContentLeft(), vp.ContentBottom()))
	p2 := t.PixelToValue(Pt(vp.ContentLeft(), vp.ContentTop()))
	if inverted {
		return p2.Y, p1.Y
	}
	return p1.Y, p2.Y
}

func (verticalLayout) measure(a *Axis, size Size) {
	pad := a.XOffset * verticalLabelPadding
	rotated := RotatedSizeDegrees(size.Width, size.Height, a.LabelRotation)
	a.LabelWidth = math.Floor(size.Width + pad)
	a.LabelHeight = size.Height
	a.LabelRotatedWidth = math.Round(rotated.Width + pad)
	a.LabelRotatedHeight = math.Round(rotated.Height)
}

func (verticalLayout) reserve(a *Axis) Insets {
	w := a.LabelRotatedWidth
	var in Insets
	switch a.LabelPosition {
	case LabelTop:
		in.Right = w
	case LabelBottom:
		in.Left = w
	case LabelBothSided:
		in.Left, in.Right = w, w
	}
	return in
}

func (verticalLayout) tickPixel(t *Transformer, v float64) float64 {
	return t.PointValueToPixel(Pt(0, v)).Y
}

func (verticalLayout) inBounds(vp *Viewport, px float64) bool { return vp.IsInBoundsY(px) }
func (verticalLayout) labelPoint(fixed, px float64) Point { return Pt(fixed, px) }

func (verticalLayout) labelLines(a *Axis, vp *Viewport) []labelLine {
	top := labelLine{vp.ContentRight() + a.XOffset, Pt(0, 0.5)}
	bottom := labelLine{vp.ContentLeft() - a.XOffset, Pt(1, 0.5)}
	switch a.LabelPosition {
	case LabelTop:
		return []labelLine{top}
	case LabelTopInside:
		return []labelLine{{vp.ContentRight() - a.XOffset, Pt(1, 0.5)}}
	case LabelBottom:
		return []labelLine{bottom}
	case LabelBottomInside:
		return []labelLine{{vp.ContentLeft() + a.XOffset, Pt(0, 0.5)}}
	case LabelBothSided:
		return []labelLine{top, bottom}
	}
	return nil
}

func (verticalLayout) avoidClipping(_ *Viewport, _, _ int, px, _ float64) float64 { return px }

func (verticalLayout) gridClip(vp *Viewport, lineWidth float64) Rect {
	return vp.ContentRect().Outset(0, lineWidth/2)
}

func (verticalLayout) gridLine(vp *Viewport, px float64) (Point, Point) {
	return Pt(vp.ContentLeft(), px), Pt(vp.ContentRight(), px)
}

func (verticalLayout) axisLines(a *Axis, vp *Viewport) [][2]Point {
	var lines [][2]Point
	if a.LabelPosition.onTop() {
		lines = append(lines, [2]Point{
			Pt(vp.ContentRight(), vp.ContentTop()),
			Pt(vp.ContentRight(), vp.ContentBottom()),
		})
	}
	if a.LabelPosition.onBottom() {
		lines = append(lines, [2]Point{
			Pt(vp.ContentLeft(), vp.ContentTop()),
			Pt(vp.ContentLeft(), vp.ContentBottom()),
		})
	}
	return lines
}

func (verticalLayout) limitClip(vp *Viewport, lineWidth float64) Rect {
	return vp.ContentRect().Outset(0, lineWidth/2)
}

func (verticalLayout) limitLine(vp *Viewport, px float64) (Point, Point) {
	return Pt(vp.ContentLeft(), px), Pt(vp.ContentRight(), px)
}

func (verticalLayout) limitLabel(l *LimitLine, vp *Viewport, px, lineHeight float64) (Point, TextAlign) {
	xOffset := limitLabelMargin + l.XOffset
	yOffset := l.LineWidth + lineHeight + l.YOffset
	above := px - yOffset
	below := px + yOffset - lineHeight
	switch l.LabelPosition {
	case LimitLabelRightBottom:
		return Pt(vp.ContentRight()-xOffset, below), AlignRight
	case LimitLabelLeftTop:
		return Pt(vp.ContentLeft()+xOffset, above), AlignLeft
	case LimitLabelLeftBottom:
		return Pt(vp.ContentLeft()+xOffset, below), AlignLeft
	default:
		return Pt(vp.ContentRight()-xOffset, above), AlignRight
	}
}
