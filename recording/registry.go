package recording

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/chart"
)

// CanvasFactory creates a playback target of the given pixel size.
// Factories are registered via Register() and called by NewCanvas().
type CanvasFactory func(width, height int) (chart.Canvas, error)

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	canvases   = make(map[string]CanvasFactory)
)

// Register registers a canvas factory with the given name.
// This function is typically called from init() in canvas packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("gg", func(w, h int) (chart.Canvas, error) {
//	        return ggcanvas.New(w, h)
//	    })
//	}
//
// Register panics if factory is nil or the name is already registered.
func Register(name string, factory CanvasFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := canvases[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	canvases[name] = factory
}

// Unregister removes a canvas from the registry.
// If the canvas is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(canvases, name)
}

// NewCanvas creates a playback target by name.
//
//	import _ "github.com/gogpu/chart/integration/ggcanvas"
//
//	dst, err := recording.NewCanvas("gg", 800, 600)
//
// Unregistered names return an error wrapping ErrUnknownCanvas.
func NewCanvas(name string, width, height int) (chart.Canvas, error) {
	registryMu.RLock()
	factory, ok := canvases[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownCanvas, name)
	}
	return factory(width, height)
}

// Canvases returns the sorted names of registered canvases.
func Canvases() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(canvases))
	for name := range canvases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a canvas with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := canvases[name]
	return ok
}
