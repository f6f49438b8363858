package chart

// RendererOption configures an AxisRenderer during creation.
//
// Example:
//
//	r := chart.NewAxisRenderer(chart.Horizontal, vp, axis, trans,
//	    chart.WithValueFormatter(chart.NewDefaultValueFormatter(2)),
//	    chart.WithMinContentSize(40),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for AxisRenderer creation.
type rendererOptions struct {
	formatter      ValueFormatter
	data           DataSource
	minContentSize float64
}

// DefaultMinContentSize is the content extent in pixels at or below which
// tick computation is skipped.
const DefaultMinContentSize = 10

// defaultRendererOptions returns the default renderer options. The default
// formatter is built here per renderer rather than shared.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		formatter:      NewDefaultValueFormatter(-1),
		minContentSize: DefaultMinContentSize,
	}
}

// WithValueFormatter sets the formatter used for labels of axes that do
// not set their own Formatter.
func WithValueFormatter(f ValueFormatter) RendererOption {
	return func(o *rendererOptions) {
		if f != nil {
			o.formatter = f
		}
	}
}

// WithDataSource gives the renderer a read-only view of the chart data.
// When set, axis labels are only drawn while the source reports data.
func WithDataSource(d DataSource) RendererOption {
	return func(o *rendererOptions) {
		o.data = d
	}
}

// WithMinContentSize overrides DefaultMinContentSize.
func WithMinContentSize(px float64) RendererOption {
	return func(o *rendererOptions) {
		o.minContentSize = px
	}
}
