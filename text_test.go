package chart

import (
	"math"
	"testing"
)

func TestPlaceAnchored(t *testing.T) {
	tests := []struct {
		name          string
		size          Size
		p, anchor     Point
		angle         float64
		wantRotate    bool
		wantTranslate Point
		wantOrigin    Point
	}{
		{
			name: "top left", size: Sz(20, 10), p: Pt(100, 50), anchor: AnchorTopLeft,
			wantOrigin: Pt(100, 50),
		},
		{
			name: "bottom center", size: Sz(20, 10), p: Pt(100, 50), anchor: Pt(0.5, 1),
			wantOrigin: Pt(90, 40),
		},
		{
			name: "rotated center", size: Sz(20, 10), p: Pt(100, 50), anchor: AnchorCenter, angle: math.Pi / 2,
			wantRotate: true, wantTranslate: Pt(100, 50), wantOrigin: Pt(-10, -5),
		},
		{
			name: "rotated top center", size: Sz(20, 10), p: Pt(100, 50), anchor: Pt(0.5, 0), angle: math.Pi / 2,
			wantRotate: true, wantTranslate: Pt(100, 60), wantOrigin: Pt(-10, -5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := placeAnchored(tt.size, tt.p, tt.anchor, tt.angle)
			if got.Rotate != tt.wantRotate {
				t.Fatalf("Rotate = %v, want %v", got.Rotate, tt.wantRotate)
			}
			if !approxPoint(got.Translate, tt.wantTranslate) {
				t.Errorf("Translate = %v, want %v", got.Translate, tt.wantTranslate)
			}
			if !approxPoint(got.Origin, tt.wantOrigin) {
				t.Errorf("Origin = %v, want %v", got.Origin, tt.wantOrigin)
			}
		})
	}
}

func TestDrawTextAlign(t *testing.T) {
	tests := []struct {
		align TextAlign
		want  Point
	}{
		{AlignLeft, Pt(100, 10)},
		{AlignCenter, Pt(86, 10)},
		{AlignRight, Pt(72, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			c := newTestCanvas()
			DrawText(c, "abcd", Pt(100, 10), tt.align, TextStyle{})
			if len(c.texts) != 1 {
				t.Fatalf("len(texts) = %d, want 1", len(c.texts))
			}
			if got := c.texts[0].device; !approxPoint(got, tt.want) {
				t.Errorf("text at %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawTextAnchoredRotated(t *testing.T) {
	c := newTestCanvas()
	DrawTextAnchored(c, "abc", Pt(100, 50), TextStyle{}, AnchorCenter, math.Pi/2)

	if !c.balanced() || c.saves != 1 {
		t.Errorf("saves/restores = %d/%d, want 1/1", c.saves, c.restore)
	}
	if len(c.texts) != 1 {
		t.Fatalf("len(texts) = %d, want 1", len(c.texts))
	}
	got := c.texts[0]
	if !approx(got.angle, math.Pi/2) {
		t.Errorf("angle = %v, want pi/2", got.angle)
	}
	// The 21x13 box turned a quarter has its top-left corner at the
	// top-right of the upright box around (100, 50).
	if want := Pt(106.5, 39.5); !approxPoint(got.device, want) {
		t.Errorf("device = %v, want %v", got.device, want)
	}
	if !c.m.IsIdentity() {
		t.Errorf("transform after DrawTextAnchored = %+v, want identity", c.m)
	}
}

func TestDrawTextAnchoredUnrotatedSkipsSave(t *testing.T) {
	c := newTestCanvas()
	DrawTextAnchored(c, "abc", Pt(10, 10), TextStyle{}, AnchorCenter, 0)

	if c.saves != 0 {
		t.Errorf("saves = %d, want 0", c.saves)
	}
	if want := Pt(-0.5, 3.5); !approxPoint(c.texts[0].device, want) {
		t.Errorf("device = %v, want %v", c.texts[0].device, want)
	}
}

func TestDrawMultilineText(t *testing.T) {
	c := newTestCanvas()
	DrawMultilineText(c, "hello world foo", Pt(0, 0), TextStyle{}, Sz(80, 0), AnchorTopLeft, 0)

	want := []struct {
		s string
		p Point
	}{
		{"hello world", Pt(0, 0)},
		{"foo", Pt(0, 13)},
	}
	if len(c.texts) != len(want) {
		t.Fatalf("len(texts) = %d, want %d", len(c.texts), len(want))
	}
	for i, w := range want {
		if c.texts[i].s != w.s || !approxPoint(c.texts[i].device, w.p) {
			t.Errorf("texts[%d] = %q at %v, want %q at %v", i, c.texts[i].s, c.texts[i].device, w.s, w.p)
		}
	}
}

func TestDrawMultilineTextSizedCentered(t *testing.T) {
	c := newTestCanvas()
	DrawMultilineTextSized(c, "a\nb", Sz(20, 26), Pt(50, 50), TextStyle{}, Size{}, AnchorCenter, 0)

	if len(c.texts) != 2 {
		t.Fatalf("len(texts) = %d, want 2", len(c.texts))
	}
	if got, want := c.texts[0].device, Pt(40, 37); !approxPoint(got, want) {
		t.Errorf("first line at %v, want %v", got, want)
	}
	if got, want := c.texts[1].device, Pt(40, 50); !approxPoint(got, want) {
		t.Errorf("second line at %v, want %v", got, want)
	}
}

func TestDrawMultilineTextEmpty(t *testing.T) {
	c := newTestCanvas()
	DrawMultilineText(c, "", Pt(0, 0), TextStyle{}, Size{}, AnchorCenter, math.Pi)
	if len(c.texts) != 0 || c.saves != 0 {
		t.Errorf("empty text drew %d texts with %d saves", len(c.texts), c.saves)
	}
}
