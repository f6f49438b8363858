package chart

import (
	"fmt"
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultValueFormatter(t *testing.T) {
	axis := NewAxis()
	axis.Decimals = 2

	tests := []struct {
		name  string
		f     ValueFormatter
		value float64
		axis  *Axis
		want  string
	}{
		{"fixed decimals", NewDefaultValueFormatter(1), 50, nil, "50.0"},
		{"english grouping", NewDefaultValueFormatter(1), 1234.5, nil, "1,234.5"},
		{"german grouping", NewLocalizedValueFormatter(1, language.German), 1234.5, nil, "1.234,5"},
		{"axis decimals", NewDefaultValueFormatter(-1), 0.5, axis, "0.50"},
		{"axis decimals without axis", NewDefaultValueFormatter(-1), 7, nil, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.StringForValue(tt.value, tt.axis); got != tt.want {
				t.Errorf("StringForValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestDefaultValueFormatterTickLabels(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		want     []string
	}{
		{"halves", 0, 3, []string{"0.0", "0.5", "1.0"}},
		{"hundredths", 0, 0.25, []string{"0.00", "0.04", "0.08"}},
		{"whole", 0, 100, []string{"0", "20", "40"}},
	}

	f := NewDefaultValueFormatter(-1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAxis()
			a.ComputeValues(tt.min, tt.max)
			for i, want := range tt.want {
				if got := a.FormattedLabel(i, f); got != want {
					t.Errorf("FormattedLabel(%d) = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestValueFormatterFunc(t *testing.T) {
	f := ValueFormatterFunc(func(v float64, _ *Axis) string {
		return fmt.Sprintf("%g%%", v)
	})
	if got := f.StringForValue(25, nil); got != "25%" {
		t.Errorf("StringForValue(25) = %q, want %q", got, "25%")
	}
}

func TestAxisLabels(t *testing.T) {
	a := NewAxis()
	a.Entries = []float64{5, 1000, -20}
	f := NewDefaultValueFormatter(0)

	if got := a.FormattedLabel(1, f); got != "1,000" {
		t.Errorf("FormattedLabel(1) = %q, want %q", got, "1,000")
	}
	if got := a.FormattedLabel(3, f); got != "" {
		t.Errorf("FormattedLabel(3) = %q, want empty", got)
	}
	if got := a.LongestLabel(f); got != "1,000" {
		t.Errorf("LongestLabel() = %q, want %q", got, "1,000")
	}
}
