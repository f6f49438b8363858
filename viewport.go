package chart

import "math"

// Viewport describes the chart's pixel geometry: the whole chart size, the
// content rectangle data is plotted in, and the current pan/zoom state.
//
// The render pass only reads a Viewport; pan and zoom handling is expected
// to update it between passes.
type Viewport struct {
	content     Rect
	chartWidth  float64
	chartHeight float64

	touch     Matrix
	minScaleX float64
	minScaleY float64
}

// NewViewport creates a viewport for a chart of the given size whose
// content rectangle initially covers the whole chart.
func NewViewport(width, height float64) *Viewport {
	v := &Viewport{
		touch:     Identity(),
		minScaleX: 1,
		minScaleY: 1,
	}
	v.SetChartDimens(width, height)
	return v
}

// SetChartDimens resizes the chart keeping the current content offsets.
func (v *Viewport) SetChartDimens(width, height float64) {
	left, top := v.OffsetLeft(), v.OffsetTop()
	right, bottom := v.OffsetRight(), v.OffsetBottom()

	v.chartWidth = width
	v.chartHeight = height
	v.RestrainViewPort(left, top, right, bottom)
}

// RestrainViewPort sets the content rectangle by insetting the chart
// bounds by the given offsets.
func (v *Viewport) RestrainViewPort(left, top, right, bottom float64) {
	v.content = Rect{
		X:      left,
		Y:      top,
		Width:  math.Max(0, v.chartWidth-left-right),
		Height: math.Max(0, v.chartHeight-top-bottom),
	}
}

func (v *Viewport) OffsetLeft() float64 { return v.content.X }
func (v *Viewport) OffsetTop() float64 { return v.content.Y }
func (v *Viewport) OffsetRight() float64 { return v.chartWidth - v.content.Right() }
func (v *Viewport) OffsetBottom() float64 { return v.chartHeight - v.content.Bottom() }

func (v *Viewport) ContentRect() Rect { return v.content }
func (v *Viewport) ContentLeft() float64 { return v.content.Left() }
func (v *Viewport) ContentRight() float64 { return v.content.Right() }
func (v *Viewport) ContentTop() float64 { return v.content.Top() }
func (v *Viewport) ContentBottom() float64 { return v.content.Bottom() }
func (v *Viewport) ContentWidth() float64 { return v.content.Width }
func (v *Viewport) ContentHeight() float64 { return v.content.Height }
func (v *Viewport) ContentCenter() Point { return v.content.Center() }
func (v *Viewport) ChartWidth() float64 { return v.chartWidth }
func (v *Viewport) ChartHeight() float64 { return v.chartHeight }
func (v *Viewport) TouchMatrix() Matrix { return v.touch }
func (v *Viewport) ScaleX() float64 { return v.touch.ScaleX() }
func (v *Viewport) ScaleY() float64 { return v.touch.ScaleY() }
func (v *Viewport) MinimumScaleX() float64 { return v.minScaleX }
func (v *Viewport) MinimumScaleY() float64 { return v.minScaleY }
func (v *Viewport) HasChartDimens() bool { return v.chartWidth > 0 && v.chartHeight > 0 }

// SetTouchMatrix replaces the pan/zoom matrix applied in pixel space.
func (v *Viewport) SetTouchMatrix(m Matrix) {
	v.touch = m
}

// SetMinimumScale sets the smallest zoom factors; values below 1 are
// raised to 1.
func (v *Viewport) SetMinimumScale(x, y float64) {
	v.minScaleX = math.Max(1, x)
	v.minScaleY = math.Max(1, y)
}

// IsFullyZoomedOutX reports whether the chart cannot zoom out further
// horizontally.
func (v *Viewport) IsFullyZoomedOutX() bool {
	return !(v.ScaleX() > v.minScaleX || v.minScaleX > 1)
}

// IsFullyZoomedOutY reports whether the chart cannot zoom out further
// vertically.
func (v *Viewport) IsFullyZoomedOutY() bool {
	return !(v.ScaleY() > v.minScaleY || v.minScaleY > 1)
}

// IsFullyZoomedOut reports whether the chart is zoomed out on both axes.
func (v *Viewport) IsFullyZoomedOut() bool {
	return v.IsFullyZoomedOutX() && v.IsFullyZoomedOutY()
}

// The right and bottom checks truncate to two decimals and the horizontal
// checks allow one pixel of slack so values landing exactly on an edge
// after floating point mapping still count as visible.

func (v *Viewport) IsInBoundsLeft(x float64) bool {
	return v.content.Left() <= x+1
}

func (v *Viewport) IsInBoundsRight(x float64) bool {
	x = math.Floor(x*100) / 100
	return v.content.Right() >= x-1
}

func (v *Viewport) IsInBoundsTop(y float64) bool {
	return v.content.Top() <= y
}

func (v *Viewport) IsInBoundsBottom(y float64) bool {
	y = math.Floor(y*100) / 100
	return v.content.Bottom() >= y
}

func (v *Viewport) IsInBoundsX(x float64) bool {
	return v.IsInBoundsLeft(x) && v.IsInBoundsRight(x)
}

func (v *Viewport) IsInBoundsY(y float64) bool {
	return v.IsInBoundsTop(y) && v.IsInBoundsBottom(y)
}

func (v *Viewport) IsInBounds(x, y float64) bool {
	return v.IsInBoundsX(x) && v.IsInBoundsY(y)
}
