// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/recording"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when output is requested from a closed canvas.
	ErrCanvasClosed = errors.New("ggcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

	// ErrFontLoad is returned when a font source cannot be parsed.
	ErrFontLoad = errors.New("ggcanvas: font load failed")
)

// defaultFontSize is used for chart.Font values without a size.
const defaultFontSize = 10.0

func init() {
	recording.Register("gg", func(width, height int) (chart.Canvas, error) {
		return New(width, height)
	})
}

// strokeState is the stroke paint of one Save level.
type strokeState struct {
	color chart.Color
	width float64
	dash  chart.Dash
}

// Canvas draws chart output onto a gg.Context.
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
type Canvas struct {
	ctx   *gg.Context
	fonts *fontSet

	stroke strokeState
	stack  []strokeState

	width  int
	height int
	closed bool
}

var _ chart.Canvas = (*Canvas)(nil)

// New creates a Canvas of the given pixel size cleared to the background
// color (white unless WithBackground is given).
//
// Returns an error if dimensions are invalid or the default font cannot be
// loaded.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fallback := cfg.fallback
	if fallback == nil {
		src, err := loadDefaultSource()
		if err != nil {
			return nil, err
		}
		fallback = src
	}

	ctx := gg.NewContext(width, height)
	ctx.ClearWithColor(toRGBA(cfg.background))

	return &Canvas{
		ctx:    ctx,
		fonts:  newFontSet(fallback, cfg.sources),
		stroke: strokeState{color: chart.Black, width: 1},
		width:  width,
		height: height,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(width, height int, opts ...Option) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the underlying gg.Context for drawing outside the chart
// API, such as data series.
func (c *Canvas) Context() *gg.Context {
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// HasFont reports whether name resolves to a registered font source.
func (c *Canvas) HasFont(name string) bool {
	return c.fonts.has(name)
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.ctx.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.ctx.EncodePNG(w)
}

// Close releases the drawing context. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.ctx.Close()
}

// --------------------------------------------------------------------------
// chart.TextMeasurer
// --------------------------------------------------------------------------

// MeasureText returns the advance width and line height of s in f.
func (c *Canvas) MeasureText(s string, f chart.Font) chart.Size {
	face := c.fonts.face(f.Name, f.Size)
	w := face.Advance(s)
	return chart.Sz(w, face.Metrics().LineHeight())
}

// LineHeight returns the line height of f.
func (c *Canvas) LineHeight(f chart.Font) float64 {
	return c.fonts.face(f.Name, f.Size).Metrics().LineHeight()
}

// --------------------------------------------------------------------------
// State, transform and clip
// --------------------------------------------------------------------------

// Save pushes the transform, clip and stroke state.
func (c *Canvas) Save() {
	c.ctx.Push()
	c.stack = append(c.stack, c.stroke)
}

// Restore pops the state pushed by the matching Save. Without a matching
// Save it is a no-op.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.ctx.Pop()
	c.stroke = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin of user space.
func (c *Canvas) Translate(x, y float64) {
	c.ctx.Translate(x, y)
}

// Rotate rotates user space by angle radians.
func (c *Canvas) Rotate(angle float64) {
	c.ctx.Rotate(angle)
}

// ClipRect intersects the clip with r.
func (c *Canvas) ClipRect(r chart.Rect) {
	c.ctx.ClipRect(r.X, r.Y, r.Width, r.Height)
}

// --------------------------------------------------------------------------
// Stroking
// --------------------------------------------------------------------------

// SetStrokeColor sets the stroke color.
func (c *Canvas) SetStrokeColor(col chart.Color) {
	c.stroke.color = col
}

// SetLineWidth sets the stroke width.
func (c *Canvas) SetLineWidth(w float64) {
	c.stroke.width = w
}

// SetLineDash sets the dash pattern. A zero Dash strokes solid lines.
func (c *Canvas) SetLineDash(d chart.Dash) {
	c.stroke.dash = d
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.ctx.ClearPath()
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.ctx.MoveTo(x, y)
}

// LineTo adds a line segment to the current subpath.
func (c *Canvas) LineTo(x, y float64) {
	c.ctx.LineTo(x, y)
}

// StrokePath strokes the current path with the current stroke state.
// Rasterizer failures are logged at warn level.
func (c *Canvas) StrokePath() {
	c.applyStroke()
	if err := c.ctx.Stroke(); err != nil {
		chart.Logger().Warn("ggcanvas: stroke failed", "err", err)
	}
}

func (c *Canvas) applyStroke() {
	s := c.stroke
	c.ctx.SetStrokeBrush(gg.Solid(toRGBA(s.color)))
	c.ctx.SetLineWidth(s.width)
	if s.dash.IsDashed() {
		c.ctx.SetDash(s.dash.Lengths...)
		c.ctx.SetDashOffset(s.dash.Phase)
	} else {
		c.ctx.ClearDash()
	}
}

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

// DrawText draws s with its top-left corner at p in user space. gg applies
// the current transform to the glyphs, so rotated text turns with it.
func (c *Canvas) DrawText(s string, p chart.Point, style chart.TextStyle) {
	if s == "" {
		return
	}
	face := c.fonts.face(style.Font.Name, style.Font.Size)

	c.ctx.SetFont(face)
	c.ctx.SetColor(style.Color.NRGBA())
	c.ctx.DrawString(s, p.X, p.Y+face.Metrics().Ascent)
}

func toRGBA(col chart.Color) gg.RGBA {
	return gg.RGBA{R: col.R, G: col.G, B: col.B, A: col.A}
}
