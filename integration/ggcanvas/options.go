// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"github.com/gogpu/gg/text"

	"github.com/gogpu/chart"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := ggcanvas.New(800, 600,
//	    ggcanvas.WithBackground(chart.Hex("#fafafa")),
//	    ggcanvas.WithFont("Inter", inter),
//	)
type Option func(*config)

// config holds optional configuration for Canvas creation.
type config struct {
	background chart.Color
	sources    map[string]*text.FontSource
	fallback   *text.FontSource
}

func defaultConfig() config {
	return config{
		background: chart.White,
		sources:    make(map[string]*text.FontSource),
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c chart.Color) Option {
	return func(cfg *config) {
		cfg.background = c
	}
}

// WithFont makes src available as chart.Font{Name: name}. A nil src is
// ignored.
func WithFont(name string, src *text.FontSource) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.sources[name] = src
		}
	}
}

// WithDefaultFont replaces Go Regular as the source for unnamed and
// unknown fonts. A nil src is ignored.
func WithDefaultFont(src *text.FontSource) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.fallback = src
		}
	}
}
