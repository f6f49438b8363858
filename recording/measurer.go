package recording

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/chart"
)

// Measurer measures text with the fixed 7x13 bitmap face from
// golang.org/x/image/font/basicfont. Every rune advances 7 pixels and
// every line is 13 pixels high regardless of the requested font, which
// keeps recorded layouts identical across machines.
//
// The zero value is ready to use.
type Measurer struct{}

var _ chart.TextMeasurer = Measurer{}

// measureFace is the face every measurement uses.
var measureFace font.Face = basicfont.Face7x13

// MeasureText implements chart.TextMeasurer. The font is ignored.
func (Measurer) MeasureText(s string, _ chart.Font) chart.Size {
	adv := font.MeasureString(measureFace, s)
	return chart.Sz(float64(adv)/64, lineHeight())
}

// LineHeight implements chart.TextMeasurer. The font is ignored.
func (Measurer) LineHeight(_ chart.Font) float64 {
	return lineHeight()
}

func lineHeight() float64 {
	return float64(measureFace.Metrics().Height) / 64
}
