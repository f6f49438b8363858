// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/recording"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 100, 50, nil},
		{"zero width", 0, 50, ErrInvalidDimensions},
		{"negative height", 100, -1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.width, tt.height)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer c.Close()
			if c.Width() != tt.width || c.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", c.Width(), c.Height(), tt.width, tt.height)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew with invalid dimensions should panic")
		}
	}()
	MustNew(0, 0)
}

func TestMeasureText(t *testing.T) {
	c := MustNew(10, 10)
	defer c.Close()

	f := chart.Font{Size: 12}
	one := c.MeasureText("1", f)
	three := c.MeasureText("100", f)

	if one.Width <= 0 {
		t.Errorf("MeasureText(\"1\").Width = %f, want > 0", one.Width)
	}
	if three.Width <= one.Width {
		t.Errorf("MeasureText(\"100\").Width = %f, want > %f", three.Width, one.Width)
	}
	if one.Height != c.LineHeight(f) {
		t.Errorf("Height = %f, want LineHeight %f", one.Height, c.LineHeight(f))
	}
	if big := c.LineHeight(chart.Font{Size: 24}); big <= c.LineHeight(f) {
		t.Errorf("LineHeight(24) = %f, want > LineHeight(12)", big)
	}
	if got := c.MeasureText("", f).Width; got != 0 {
		t.Errorf("MeasureText(\"\").Width = %f, want 0", got)
	}
}

func TestFontResolution(t *testing.T) {
	c := MustNew(10, 10)
	defer c.Close()

	if !c.HasFont(DefaultFontName) {
		t.Errorf("HasFont(%q) = false, want true", DefaultFontName)
	}
	if c.HasFont("Missing") {
		t.Error("HasFont(\"Missing\") = true, want false")
	}

	// Unknown names fall back to the default source and share its faces.
	a := c.fonts.face("Missing", 10)
	b := c.fonts.face("", 10)
	if a != b {
		t.Error("unknown and empty font names should resolve to the same face")
	}
	if zero := c.fonts.face("", 0); zero.Size() != defaultFontSize {
		t.Errorf("face size for 0 = %f, want %f", zero.Size(), defaultFontSize)
	}
}

func TestSaveRestoreStrokeState(t *testing.T) {
	c := MustNew(10, 10)
	defer c.Close()

	c.SetLineWidth(3)
	c.SetStrokeColor(chart.Gray)
	c.Save()
	c.SetLineWidth(7)
	c.SetStrokeColor(chart.LimitRed)
	c.SetLineDash(chart.NewDash(2, 2))
	c.Restore()

	if c.stroke.width != 3 {
		t.Errorf("width = %f, want 3", c.stroke.width)
	}
	if c.stroke.color != chart.Gray {
		t.Errorf("color = %v, want Gray", c.stroke.color)
	}
	if c.stroke.dash.IsDashed() {
		t.Error("dash should be solid after Restore")
	}

	// Unmatched Restore is ignored.
	c.Restore()
	if c.stroke.width != 3 {
		t.Errorf("width after unmatched Restore = %f, want 3", c.stroke.width)
	}
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestStrokePathDraws(t *testing.T) {
	c := MustNew(100, 100)
	defer c.Close()

	if !isWhite(c.Image().At(50, 49)) {
		t.Fatal("canvas should start white")
	}

	c.SetStrokeColor(chart.Black)
	c.SetLineWidth(2)
	c.BeginPath()
	c.MoveTo(10, 50)
	c.LineTo(90, 50)
	c.StrokePath()

	if isWhite(c.Image().At(50, 49)) {
		t.Error("pixel on the stroked line should not be white")
	}
	if !isWhite(c.Image().At(50, 10)) {
		t.Error("pixel away from the line should stay white")
	}
}

// inkBounds returns the bounding box of all non-white pixels.
func inkBounds(img image.Image) image.Rectangle {
	var ink image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !isWhite(img.At(x, y)) {
				ink = ink.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return ink
}

func TestDrawTextFollowsTransform(t *testing.T) {
	style := chart.TextStyle{Font: chart.Font{Size: 12}, Color: chart.Black}

	t.Run("translate", func(t *testing.T) {
		c := MustNew(300, 300)
		defer c.Close()

		size := c.MeasureText("HHHH", style.Font)
		c.Save()
		c.Translate(100, 100)
		c.DrawText("HHHH", chart.Pt(0, 0), style)
		c.Restore()

		ink := inkBounds(c.Image())
		if ink.Empty() {
			t.Fatal("no text drawn")
		}
		if ink.Min.X < 98 || ink.Min.X > 104 || ink.Min.Y < 98 || ink.Min.Y > 100+int(size.Height) {
			t.Errorf("ink starts at %v, want near (100, 100)", ink.Min)
		}
		if maxX := 100 + int(math.Ceil(size.Width)) + 2; ink.Max.X > maxX {
			t.Errorf("ink ends at x=%d, want <= %d", ink.Max.X, maxX)
		}
	})

	t.Run("rotate", func(t *testing.T) {
		c := MustNew(300, 300)
		defer c.Close()

		chart.DrawTextAnchored(c, "HHHH", chart.Pt(200, 200), style, chart.AnchorCenter, math.Pi/2)

		ink := inkBounds(c.Image())
		if ink.Empty() {
			t.Fatal("no text drawn")
		}
		cx, cy := (ink.Min.X+ink.Max.X)/2, (ink.Min.Y+ink.Max.Y)/2
		if cx < 196 || cx > 204 || cy < 196 || cy > 204 {
			t.Errorf("ink %v centered on (%d, %d), want near (200, 200)", ink, cx, cy)
		}
		if ink.Dy() <= ink.Dx() {
			t.Errorf("ink %v is wider than tall, want text running vertically", ink)
		}
	})
}

func TestOutputAfterClose(t *testing.T) {
	c := MustNew(10, 10)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("EncodePNG() output is not a PNG")
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := c.EncodePNG(&buf); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("EncodePNG() after Close error = %v, want ErrCanvasClosed", err)
	}
	if err := c.SavePNG("unused.png"); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("SavePNG() after Close error = %v, want ErrCanvasClosed", err)
	}
}

func TestRegisteredWithRecording(t *testing.T) {
	if !recording.IsRegistered("gg") {
		t.Fatal("gg canvas should be registered")
	}
	dst, err := recording.NewCanvas("gg", 40, 30)
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	c, ok := dst.(*Canvas)
	if !ok {
		t.Fatalf("NewCanvas() = %T, want *Canvas", dst)
	}
	defer c.Close()

	rec := recording.NewRecorder(40, 30)
	rec.Save()
	rec.SetLineWidth(1)
	rec.BeginPath()
	rec.MoveTo(0, 15)
	rec.LineTo(40, 15)
	rec.StrokePath()
	rec.DrawText("1", chart.Pt(2, 2), chart.TextStyle{Font: chart.DefaultFont, Color: chart.Black})
	rec.Restore()

	if err := rec.FinishRecording().Playback(c); err != nil {
		t.Errorf("Playback() error = %v", err)
	}
}
