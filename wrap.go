package chart

import (
	"math"
	"strings"

	"github.com/go-text/typesetting/segmenter"
)

// layoutLines breaks s into lines no wider than constraint.Width, breaking
// only at Unicode line-break opportunities. Words wider than the constraint
// overflow on a line of their own.
func layoutLines(m TextMeasurer, s string, f Font, constraint Size) []string {
	lines := wrapText(m, s, f, constraint.Width)
	if constraint.Height > 0 && len(lines) > 1 {
		if lh := m.LineHeight(f); lh > 0 {
			fit := max(1, int(math.Floor(constraint.Height/lh)))
			if fit < len(lines) {
				lines = lines[:fit]
			}
		}
	}
	return lines
}

func wrapText(m TextMeasurer, s string, f Font, maxWidth float64) []string {
	if s == "" {
		return nil
	}

	var seg segmenter.Segmenter
	seg.Init([]rune(s))
	iter := seg.LineIterator()

	var (
		lines []string
		cur   strings.Builder
	)
	flush := func() {
		lines = append(lines, trimLineEnd(cur.String()))
		cur.Reset()
	}

	for iter.Next() {
		line := iter.Line()
		chunk := string(line.Text)
		if maxWidth > 0 && cur.Len() > 0 {
			candidate := trimLineEnd(cur.String() + chunk)
			if m.MeasureText(candidate, f).Width > maxWidth {
				flush()
			}
		}
		cur.WriteString(chunk)
		if line.IsMandatoryBreak {
			flush()
		}
	}
	if cur.Len() > 0 {
		flush()
	}
	return lines
}

func trimLineEnd(s string) string {
	return strings.TrimRight(s, " \t\r\n\u2028\u2029")
}
