package chart

import "math"

// Transformer maps between data space and pixel space.
//
// The full value-to-pixel mapping is composed of three matrices applied in
// order: valueToPx scales data into the content size, the viewport's touch
// matrix applies pan and zoom, and offset moves the result into the content
// rectangle.
type Transformer struct {
	viewport  *Viewport
	valueToPx Matrix
	offset    Matrix
}

// NewTransformer creates a transformer bound to viewport.
// Both matrices start as identity; call PrepareMatrixValuePx and
// PrepareMatrixOffset once the data range and content rect are known.
func NewTransformer(viewport *Viewport) *Transformer {
	return &Transformer{
		viewport:  viewport,
		valueToPx: Identity(),
		offset:    Identity(),
	}
}

// PrepareMatrixValuePx prepares the matrix that maps the data rectangle
// starting at (xMin, yMin) with extents (deltaX, deltaY) onto the content
// size. Data Y grows upwards, pixel Y downwards.
func (t *Transformer) PrepareMatrixValuePx(xMin, deltaX, deltaY, yMin float64) {
	scaleX := t.viewport.ContentWidth() / deltaX
	scaleY := t.viewport.ContentHeight() / deltaY
	if math.IsInf(scaleX, 0) || math.IsNaN(scaleX) {
		scaleX = 0
	}
	if math.IsInf(scaleY, 0) || math.IsNaN(scaleY) {
		scaleY = 0
	}

	t.valueToPx = Scale(scaleX, -scaleY).Multiply(Translate(-xMin, -yMin))
}

// PrepareMatrixOffset prepares the matrix that moves scaled values into the
// content rectangle. With inverted set, data Y grows downwards from the
// content top instead of upwards from the content bottom.
func (t *Transformer) PrepareMatrixOffset(inverted bool) {
	vp := t.viewport
	if !inverted {
		t.offset = Translate(vp.OffsetLeft(), vp.ChartHeight()-vp.OffsetBottom())
		return
	}
	t.offset = Scale(1, -1).Multiply(Translate(vp.OffsetLeft(), -vp.OffsetTop()))
}

// ValueToPixelMatrix returns the combined data-to-pixel matrix.
func (t *Transformer) ValueToPixelMatrix() Matrix {
	return t.offset.Multiply(t.viewport.TouchMatrix()).Multiply(t.valueToPx)
}

// PixelToValueMatrix returns the inverse of ValueToPixelMatrix.
func (t *Transformer) PixelToValueMatrix() Matrix {
	return t.ValueToPixelMatrix().Invert()
}

// PointValueToPixel maps a data point to pixel space.
func (t *Transformer) PointValueToPixel(p Point) Point {
	return t.ValueToPixelMatrix().TransformPoint(p)
}

// PointValuesToPixel maps data points to pixel space in place.
func (t *Transformer) PointValuesToPixel(pts []Point) {
	m := t.ValueToPixelMatrix()
	for i := range pts {
		pts[i] = m.TransformPoint(pts[i])
	}
}

// PixelToValue maps a pixel point, such as a content corner or a touch
// location, back to data space.
func (t *Transformer) PixelToValue(p Point) Point {
	return t.PixelToValueMatrix().TransformPoint(p)
}
