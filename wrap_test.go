package chart

import (
	"slices"
	"testing"
)

func TestLayoutLines(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		constraint Size
		want       []string
	}{
		{"wraps at spaces", "hello world foo", Sz(80, 0), []string{"hello world", "foo"}},
		{"mandatory break", "a\nb", Sz(0, 0), []string{"a", "b"}},
		{"zero width keeps one line", "hello world foo", Sz(0, 0), []string{"hello world foo"}},
		{"long word overflows", "supercalifragilistic tiny", Sz(50, 0), []string{"supercalifragilistic", "tiny"}},
		{"height keeps fitting lines", "a b c", Sz(7, 27), []string{"a", "b"}},
		{"height keeps at least one line", "a b c", Sz(7, 5), []string{"a"}},
		{"empty", "", Sz(80, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layoutLines(fixedMeasurer{}, tt.s, DefaultFont, tt.constraint)
			if !slices.Equal(got, tt.want) {
				t.Errorf("layoutLines(%q, %v) = %q, want %q", tt.s, tt.constraint, got, tt.want)
			}
		})
	}
}

func TestMeasureMultilineText(t *testing.T) {
	got := MeasureMultilineText(fixedMeasurer{}, "a b c", DefaultFont, Sz(7, 0))
	if want := Sz(7, 39); got != want {
		t.Errorf("MeasureMultilineText = %v, want %v", got, want)
	}
	if got := MeasureMultilineText(fixedMeasurer{}, "", DefaultFont, Sz(7, 0)); got != (Size{}) {
		t.Errorf("MeasureMultilineText(empty) = %v, want zero", got)
	}
}
