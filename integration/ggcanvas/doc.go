// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas draws charts onto a gogpu/gg raster context.
//
// Canvas implements chart.Canvas on top of *gg.Context. The data flow is:
//
//	chart.AxisRenderer -> Canvas -> gg.Context -> Pixmap -> PNG
//
// # Usage
//
//	canvas, err := ggcanvas.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	renderer.ComputeSize(canvas)
//	renderer.Render(canvas)
//
//	if err := canvas.SavePNG("chart.png"); err != nil {
//	    return err
//	}
//
// # Fonts
//
// chart.Font names are resolved through a font registry. Without any
// registration every name resolves to Go Regular from
// golang.org/x/image/font/gofont. Register more sources with WithFont:
//
//	src, _ := text.NewFontSourceFromFile("Inter.ttf")
//	canvas, _ := ggcanvas.New(800, 600, ggcanvas.WithFont("Inter", src))
//
// # Stroke State
//
// gg shares one brush between fill and text and does not save paint on
// Push. Canvas keeps its own stroke color, width and dash per Save level
// and applies them right before each stroke.
//
// # Text
//
// Text is drawn in user space and gg applies the current transform to the
// glyphs, so labels rotated by the renderer turn with their box.
//
// # Registration
//
// Importing the package registers the "gg" canvas with the recording
// registry, so recordings can be replayed by name:
//
//	import _ "github.com/gogpu/chart/integration/ggcanvas"
//
//	dst, err := recording.NewCanvas("gg", 800, 600)
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
package ggcanvas
