package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/chart"
)

// resetRegistry clears all registered canvases for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	canvases = make(map[string]CanvasFactory)
}

func newTestFactory() CanvasFactory {
	return func(w, h int) (chart.Canvas, error) {
		return NewRecorder(w, h), nil
	}
}

func TestRegisterAndNewCanvas(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", newTestFactory())

	c, err := NewCanvas("test", 30, 20)
	if err != nil {
		t.Fatalf("NewCanvas failed: %v", err)
	}
	rec, ok := c.(*Recorder)
	if !ok {
		t.Fatalf("canvas is %T, want *Recorder", c)
	}
	if rec.Width() != 30 || rec.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", rec.Width(), rec.Height())
	}
}

func TestNewCanvasUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, err := NewCanvas("nonexistent", 1, 1)
	if !errors.Is(err, ErrUnknownCanvas) {
		t.Errorf("NewCanvas() error = %v, want ErrUnknownCanvas", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil factory", func() { Register("nil", nil) }},
		{"duplicate", func() {
			Register("dup", newTestFactory())
			Register("dup", newTestFactory())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestCanvasesSortedAndUnregister(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("b", newTestFactory())
	Register("a", newTestFactory())

	names := Canvases()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Canvases() = %v, want [a b]", names)
	}

	Unregister("a")
	if IsRegistered("a") {
		t.Error("a should be unregistered")
	}
	if !IsRegistered("b") {
		t.Error("b should still be registered")
	}
	Unregister("missing")
}
