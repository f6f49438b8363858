// Package chart provides the axis layer of a 2D charting library.
//
// # Overview
//
// chart turns a data range into "nice" tick values, measures and places
// their labels, and draws labels, gridlines, the axis line and limit line
// annotations through a small Canvas abstraction. It does not draw data
// series; a chart built on top owns the data and calls into the axis layer
// on every render pass.
//
// # Quick Start
//
//	vp := chart.NewViewport(400, 300)
//	vp.RestrainViewPort(40, 20, 20, 30)
//
//	trans := chart.NewTransformer(vp)
//	trans.PrepareMatrixValuePx(0, 100, 50, 0)
//	trans.PrepareMatrixOffset(false)
//
//	axis := chart.NewAxis()
//	axis.LabelPosition = chart.LabelBottom
//
//	r := chart.NewAxisRenderer(chart.Horizontal, vp, axis, trans)
//	axis.ComputeValues(0, 100)
//	r.ComputeAxis(0, 100, false)
//	r.ComputeSize(canvas)
//	r.Render(canvas)
//
// Any type implementing [Canvas] can be drawn on. The recording package
// captures draw calls for tests and replay; integration/ggcanvas draws
// onto a gogpu/gg context.
//
// # Render Pass
//
// A pass runs in order:
//   - [AxisRenderer.ComputeAxis] derives Entries, CenteredEntries and
//     Decimals from the visible data range. A fully zoomed out or too
//     small viewport keeps the previous ticks.
//   - [AxisRenderer.ComputeSize] measures the longest label and stores the
//     label metrics used for layout.
//   - [AxisRenderer.Render] draws gridlines, the axis line, labels and
//     limit lines.
//
// Each step tolerates missing collaborators by doing nothing. Nothing in a
// pass returns an error; failures are reported through [Logger].
//
// # Orientation
//
// The same renderer serves both axis directions. [Horizontal] axes map
// values along X and put labels above or below the content rectangle.
// [Vertical] axes map values along Y and put labels to the right (Top) or
// left (Bottom) of it.
//
// # Coordinate System
//
// Pixel coordinates have their origin at the top-left of the chart with Y
// increasing downwards. Data values are mapped to pixels by a [Transformer]
// combining value scaling, the user's zoom and pan matrix, and the content
// offset. Angles on the public API are in degrees unless noted.
package chart
