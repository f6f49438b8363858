package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ValueFormatter turns an axis value into label text.
type ValueFormatter interface {
	StringForValue(value float64, axis *Axis) string
}

// ValueFormatterFunc adapts a function to the ValueFormatter interface.
type ValueFormatterFunc func(value float64, axis *Axis) string

// StringForValue implements ValueFormatter.
func (f ValueFormatterFunc) StringForValue(value float64, axis *Axis) string {
	return f(value, axis)
}

// DefaultValueFormatter formats values as locale-aware decimals with a
// fixed number of fraction digits.
//
// With Decimals < 0 the digit count follows the axis' tick interval, so
// labels show exactly as many decimals as the ticks need.
type DefaultValueFormatter struct {
	Decimals int
	printer  *message.Printer
}

// NewDefaultValueFormatter creates a formatter printing with the given
// number of fraction digits in English notation.
func NewDefaultValueFormatter(decimals int) *DefaultValueFormatter {
	return NewLocalizedValueFormatter(decimals, language.English)
}

// NewLocalizedValueFormatter creates a formatter printing digits, grouping
// and decimal separators for tag.
func NewLocalizedValueFormatter(decimals int, tag language.Tag) *DefaultValueFormatter {
	return &DefaultValueFormatter{
		Decimals: decimals,
		printer:  message.NewPrinter(tag),
	}
}

// StringForValue implements ValueFormatter.
func (f *DefaultValueFormatter) StringForValue(value float64, axis *Axis) string {
	digits := f.Decimals
	if digits < 0 {
		digits = 0
		if axis != nil {
			digits = axis.Decimals
		}
	}
	return f.printer.Sprint(number.Decimal(value, number.Scale(digits)))
}
