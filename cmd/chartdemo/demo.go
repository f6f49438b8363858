package main

import (
	"golang.org/x/text/language"

	"github.com/gogpu/chart"
)

// margin is the gap kept between the chart edge and the reserved label
// space.
const margin = 12.0

// titleFont is used for the wrapped chart title.
var titleFont = chart.Font{Size: 16}

// demo holds one chart's axes and layout state.
type demo struct {
	vp    *chart.Viewport
	trans *chart.Transformer

	xAxis, yAxis *chart.Axis
	xr, yr       *chart.AxisRenderer

	titleSize chart.Size
}

func newDemo(w, h float64, tag language.Tag) *demo {
	vp := chart.NewViewport(w, h)
	vp.RestrainViewPort(margin, margin, margin, margin)
	if zoom > 1 {
		vp.SetTouchMatrix(chart.Scale(zoom, zoom))
	}

	trans := chart.NewTransformer(vp)
	formatter := chart.NewLocalizedValueFormatter(-1, tag)

	xAxis := chart.NewAxis()
	xAxis.AxisMin, xAxis.AxisMax = xRange[0], xRange[1]
	xAxis.LabelPosition = chart.LabelBottom
	xAxis.LabelRotation = rotation
	xAxis.AvoidFirstLastClipping = true
	xAxis.GridLineDash = chart.NewDash(4, 4)

	yAxis := chart.NewAxis()
	yAxis.AxisMin, yAxis.AxisMax = yRange[0], yRange[1]
	yAxis.LabelPosition = chart.LabelBottom
	yAxis.SetLabelCount(8, false)
	for _, v := range limits {
		yAxis.AddLimitLine(chart.NewLimitLine(v, formatter.StringForValue(v, nil)))
	}

	opts := []chart.RendererOption{chart.WithValueFormatter(formatter)}
	return &demo{
		vp:    vp,
		trans: trans,
		xAxis: xAxis,
		yAxis: yAxis,
		xr:    chart.NewAxisRenderer(chart.Horizontal, vp, xAxis, trans, opts...),
		yr:    chart.NewAxisRenderer(chart.Vertical, vp, yAxis, trans, opts...),
	}
}

// layout sizes the content rectangle so labels and title fit, then
// computes the final ticks.
func (d *demo) layout(m chart.TextMeasurer) {
	d.prepare()
	d.compute(m)

	if title != "" {
		d.titleSize = chart.MeasureMultilineText(m, title, titleFont,
			chart.Sz(d.vp.ChartWidth()-2*margin, 0))
	}

	xi, yi := d.xr.ReservedInsets(), d.yr.ReservedInsets()
	d.vp.RestrainViewPort(
		margin+xi.Left+yi.Left,
		margin+xi.Top+yi.Top+d.titleSize.Height,
		margin+xi.Right+yi.Right,
		margin+xi.Bottom+yi.Bottom,
	)

	d.prepare()
	d.compute(m)
}

func (d *demo) prepare() {
	d.trans.PrepareMatrixValuePx(d.xAxis.AxisMin, d.xAxis.AxisRange(), d.yAxis.AxisRange(), d.yAxis.AxisMin)
	d.trans.PrepareMatrixOffset(inverted)
}

func (d *demo) compute(m chart.TextMeasurer) {
	d.xAxis.ComputeValues(d.xAxis.AxisMin, d.xAxis.AxisMax)
	d.yAxis.ComputeValues(d.yAxis.AxisMin, d.yAxis.AxisMax)
	d.xr.ComputeAxis(d.xAxis.AxisMin, d.xAxis.AxisMax, false)
	d.yr.ComputeAxis(d.yAxis.AxisMin, d.yAxis.AxisMax, inverted)
	d.xr.ComputeSize(m)
	d.yr.ComputeSize(m)
}

func (d *demo) render(c chart.Canvas) {
	d.xr.Render(c)
	d.yr.Render(c)

	if title != "" {
		top := chart.Pt(d.vp.ChartWidth()/2, margin)
		chart.DrawMultilineTextSized(c, title, d.titleSize, top,
			chart.TextStyle{Font: titleFont, Color: chart.Black},
			chart.Sz(d.vp.ChartWidth()-2*margin, 0), chart.Pt(0.5, 0), 0)
	}
}
