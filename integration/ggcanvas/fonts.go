// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontName is the name Go Regular is available under.
const DefaultFontName = "Go Regular"

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.FontSource
	errDefaultSource  error
)

// loadDefaultSource parses Go Regular once per process.
func loadDefaultSource() (*text.FontSource, error) {
	defaultSourceOnce.Do(func() {
		defaultSource, errDefaultSource = text.NewFontSource(goregular.TTF)
		if errDefaultSource != nil {
			errDefaultSource = fmt.Errorf("%w: %s: %w", ErrFontLoad, DefaultFontName, errDefaultSource)
		}
	})
	return defaultSource, errDefaultSource
}

// faceKey identifies a face by font source and size.
type faceKey struct {
	name string
	size float64
}

// fontSet resolves chart.Font values to gg text faces.
type fontSet struct {
	sources  map[string]*text.FontSource
	fallback *text.FontSource
	faces    map[faceKey]text.Face
}

func newFontSet(fallback *text.FontSource, sources map[string]*text.FontSource) *fontSet {
	fs := &fontSet{
		sources:  make(map[string]*text.FontSource, len(sources)+1),
		fallback: fallback,
		faces:    make(map[faceKey]text.Face),
	}
	fs.sources[DefaultFontName] = fallback
	for name, src := range sources {
		fs.sources[name] = src
	}
	return fs
}

// face returns the face for name at size. Unknown names and an empty name
// use the fallback source; sizes at or below zero use defaultFontSize.
func (fs *fontSet) face(name string, size float64) text.Face {
	if size <= 0 {
		size = defaultFontSize
	}
	src, ok := fs.sources[name]
	if !ok {
		name, src = DefaultFontName, fs.fallback
	}

	key := faceKey{name: name, size: size}
	if f, ok := fs.faces[key]; ok {
		return f
	}
	f := src.Face(size)
	fs.faces[key] = f
	return f
}

// has reports whether name resolves to a registered source.
func (fs *fontSet) has(name string) bool {
	_, ok := fs.sources[name]
	return ok
}
