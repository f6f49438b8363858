package recording

import "github.com/gogpu/chart"

// Option configures a Recorder during creation.
//
// Example:
//
//	dst, _ := recording.NewCanvas("gg", 800, 600)
//	rec := recording.NewRecorder(800, 600, recording.WithMeasurer(dst))
type Option func(*options)

type options struct {
	measurer chart.TextMeasurer
}

func defaultOptions() options {
	return options{measurer: Measurer{}}
}

// WithMeasurer measures text with m instead of the fixed bitmap face.
// Pass the playback target so anchored and wrapped text recorded now
// lines up when it is replayed there. A nil m keeps the default.
func WithMeasurer(m chart.TextMeasurer) Option {
	return func(o *options) {
		if m != nil {
			o.measurer = m
		}
	}
}
