package chart

import "reflect"

// DataSource is a read-only view of the chart data the renderer consults
// before drawing labels.
type DataSource interface {
	HasData() bool
}

// AxisRenderer computes ticks and label metrics for an Axis and draws its
// labels, gridlines, axis line and limit lines onto a Canvas.
//
// A render pass calls ComputeAxis, then ComputeSize, then the Render
// methods. Missing collaborators make the affected step a silent no-op;
// nothing in a pass returns an error.
type AxisRenderer struct {
	orientation Orientation
	layout      axisLayout

	viewport    *Viewport
	axis        *Axis
	transformer *Transformer

	opts rendererOptions
}

// NewAxisRenderer creates a renderer for axis laid out in the given
// orientation. axis and transformer may be nil; the viewport is required.
func NewAxisRenderer(o Orientation, viewport *Viewport, axis *Axis, transformer *Transformer, opts ...RendererOption) *AxisRenderer {
	options := defaultRendererOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &AxisRenderer{
		orientation: o,
		layout:      layoutFor(o),
		viewport:    viewport,
		axis:        axis,
		transformer: transformer,
		opts:        options,
	}
}

// Orientation returns the orientation the renderer was created with.
func (r *AxisRenderer) Orientation() Orientation { return r.orientation }

// Axis returns the rendered axis, possibly nil.
func (r *AxisRenderer) Axis() *Axis { return r.axis }

// ValueFormatter returns the formatter used for labels: the axis' own
// formatter if set, the renderer's otherwise.
func (r *AxisRenderer) ValueFormatter() ValueFormatter {
	if r.axis != nil && r.axis.Formatter != nil {
		return r.axis.Formatter
	}
	return r.opts.formatter
}

// ComputeAxis computes the axis ticks for the visible part of [min, max].
//
// When the content extent along the axis is at or below the minimum
// content size, or the viewport is fully zoomed out along the axis,
// nothing is computed and the previous ticks stay; seed them with
// [Axis.ComputeValues] over the full axis range. Otherwise the visible
// range is read back from the content corners through the transformer,
// swapped when inverted. Without a transformer [min, max] is used as is.
func (r *AxisRenderer) ComputeAxis(min, max float64, inverted bool) {
	a := r.axis
	if a == nil {
		Logger().Debug("chart: compute axis skipped, no axis", "orientation", r.orientation)
		return
	}

	vp := r.viewport
	if extent := r.layout.contentExtent(vp); extent <= r.opts.minContentSize {
		Logger().Debug("chart: compute axis skipped, content too small",
			"orientation", r.orientation, "extent", extent)
		return
	}

	if r.layout.fullyZoomedOut(vp) {
		Logger().Debug("chart: compute axis skipped, fully zoomed out",
			"orientation", r.orientation)
		return
	}

	if r.transformer != nil {
		min, max = r.layout.visibleRange(vp, r.transformer, inverted)
	}
	a.ComputeValues(min, max)
}

// ComputeSize measures the longest label and stores the label width,
// height and rotated size on the axis. Measuring is skipped when the
// measurer, font, rotation, offset and longest label are unchanged since
// the last call.
func (r *AxisRenderer) ComputeSize(m TextMeasurer) {
	a := r.axis
	if a == nil || m == nil {
		return
	}

	longest := a.LongestLabel(r.ValueFormatter())
	key := labelLayoutKey{
		valid:       true,
		orientation: r.orientation,
		font:        a.LabelFont,
		rotation:    a.LabelRotation,
		offset:      a.XOffset,
		longest:     longest,
	}
	if a.layout == key && sameMeasurer(a.layoutMeasurer, m) {
		return
	}

	r.layout.measure(a, m.MeasureText(longest, a.LabelFont))
	a.layout = key
	a.layoutMeasurer = m
}

// sameMeasurer reports whether a and b are the same comparable measurer.
// Measurers that cannot be compared never match.
func sameMeasurer(a, b TextMeasurer) bool {
	t := reflect.TypeOf(a)
	if t == nil || t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}

// ReservedInsets returns the space the labels need outside the content
// rectangle, based on the metrics from the last ComputeSize.
func (r *AxisRenderer) ReservedInsets() Insets {
	a := r.axis
	if a == nil || !a.Enabled || !a.DrawLabels {
		return Insets{}
	}
	return r.layout.reserve(a)
}

// GridClippingRect returns the content rectangle grown by half the grid
// line width across the axis so edge gridlines are not cut in half.
func (r *AxisRenderer) GridClippingRect() Rect {
	var w float64
	if r.axis != nil {
		w = r.axis.GridLineWidth
	}
	return r.layout.gridClip(r.viewport, w)
}

// Render draws gridlines, the axis line, labels and limit lines in that
// order.
func (r *AxisRenderer) Render(c Canvas) {
	r.RenderGridLines(c)
	r.RenderAxisLine(c)
	r.RenderAxisLabels(c)
	r.RenderLimitLines(c)
}

// RenderAxisLabels draws the tick labels at every configured label
// position. Ticks mapping outside the content bounds are skipped.
func (r *AxisRenderer) RenderAxisLabels(c Canvas) {
	a := r.axis
	if a == nil || !a.Enabled || !a.DrawLabels {
		return
	}
	if r.transformer == nil {
		Logger().Debug("chart: axis labels skipped, no transformer", "orientation", r.orientation)
		return
	}
	if r.opts.data != nil && !r.opts.data.HasData() {
		Logger().Debug("chart: axis labels skipped, no data", "orientation", r.orientation)
		return
	}

	for _, line := range r.layout.labelLines(a, r.viewport) {
		r.drawLabels(c, line.pos, line.anchor)
	}
}

// drawLabels draws one row of labels at the fixed perpendicular
// coordinate pos.
func (r *AxisRenderer) drawLabels(c Canvas, pos float64, anchor Point) {
	a := r.axis
	style := TextStyle{Font: a.LabelFont, Color: a.LabelColor}
	angle := a.LabelRotation * DegToRad
	formatter := r.ValueFormatter()

	positions := a.Entries
	if a.CenterLabels && len(a.CenteredEntries) == len(a.Entries) {
		positions = a.CenteredEntries
	}

	n := len(a.Entries)
	for i := 0; i < n; i++ {
		px := r.layout.tickPixel(r.transformer, positions[i])
		if !r.layout.inBounds(r.viewport, px) {
			continue
		}

		label := formatter.StringForValue(a.Entries[i], a)
		if label == "" {
			continue
		}

		if a.AvoidFirstLastClipping {
			width := c.MeasureText(label, a.LabelFont).Width
			px = r.layout.avoidClipping(r.viewport, i, n, px, width)
		}

		DrawTextAnchored(c, label, r.layout.labelPoint(pos, px), style, anchor, angle)
	}
}

// RenderGridLines draws one gridline per tick across the content
// rectangle, clipped to GridClippingRect.
func (r *AxisRenderer) RenderGridLines(c Canvas) {
	a := r.axis
	if a == nil || !a.Enabled || !a.DrawGridLines || r.transformer == nil {
		return
	}

	c.Save()
	defer c.Restore()

	c.ClipRect(r.GridClippingRect())
	applyStroke(c, a.GridColor, a.GridLineWidth, a.GridLineDash)

	for _, v := range a.Entries {
		px := r.layout.tickPixel(r.transformer, v)
		if !r.layout.inBounds(r.viewport, px) {
			continue
		}
		p1, p2 := r.layout.gridLine(r.viewport, px)
		strokeLine(c, p1.X, p1.Y, p2.X, p2.Y)
	}
}

// RenderAxisLine strokes the axis line along each content edge that
// carries labels.
func (r *AxisRenderer) RenderAxisLine(c Canvas) {
	a := r.axis
	if a == nil || !a.Enabled || !a.DrawAxisLine {
		return
	}

	c.Save()
	defer c.Restore()

	applyStroke(c, a.AxisLineColor, a.AxisLineWidth, a.AxisLineDash)
	for _, l := range r.layout.axisLines(a, r.viewport) {
		strokeLine(c, l[0].X, l[0].Y, l[1].X, l[1].Y)
	}
}

// RenderLimitLines draws every enabled limit line of the axis.
func (r *AxisRenderer) RenderLimitLines(c Canvas) {
	a := r.axis
	if a == nil || !a.DrawLimitLines || r.transformer == nil || len(a.LimitLines) == 0 {
		return
	}

	for _, l := range a.LimitLines {
		if l == nil || !l.Enabled {
			continue
		}
		r.renderLimitLine(c, l)
	}
}

func (r *AxisRenderer) renderLimitLine(c Canvas, l *LimitLine) {
	c.Save()
	defer c.Restore()

	c.ClipRect(r.layout.limitClip(r.viewport, l.LineWidth))

	px := r.layout.tickPixel(r.transformer, l.Limit)
	p1, p2 := r.layout.limitLine(r.viewport, px)
	applyStroke(c, l.LineColor, l.LineWidth, l.Dash)
	strokeLine(c, p1.X, p1.Y, p2.X, p2.Y)

	if !l.hasLabel() {
		return
	}
	lh := c.LineHeight(l.ValueFont)
	pt, align := r.layout.limitLabel(l, r.viewport, px, lh)
	DrawText(c, l.Label, pt, align, TextStyle{Font: l.ValueFont, Color: l.ValueColor})
}
