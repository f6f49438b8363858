package recording

import (
	"fmt"
	"math"

	"github.com/gogpu/chart"
)

// Recorder captures chart.Canvas calls as commands.
//
// Besides the raw call stream it tracks the current transform, clip and
// stroke attributes so every StrokePathCommand and DrawTextCommand carries
// its device space geometry. Text is measured with Measurer unless
// WithMeasurer supplies the metrics of the eventual playback target.
//
// Example:
//
//	rec := recording.NewRecorder(400, 300)
//	r := chart.NewAxisRenderer(chart.Horizontal, vp, axis, trans)
//	axis.ComputeValues(0, 100)
//	r.ComputeAxis(0, 100, false)
//	r.ComputeSize(rec)
//	r.Render(rec)
//	rendered := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	measurer chart.TextMeasurer

	width, height int
	commands      []Command

	// Current path, device space.
	path [][]chart.Point

	// Current state
	transform   chart.Matrix
	strokeColor chart.Color
	lineWidth   float64
	dash        chart.Dash
	clip        chart.Rect
	clipped     bool

	// State stack
	stateStack []recorderState
}

var _ chart.Canvas = (*Recorder)(nil)

// recorderState stores the graphics state for Save/Restore.
type recorderState struct {
	transform   chart.Matrix
	strokeColor chart.Color
	lineWidth   float64
	dash        chart.Dash
	clip        chart.Rect
	clipped     bool
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with a black 1px solid stroke, no clip and the
// identity transform.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Recorder{
		measurer:    cfg.measurer,
		width:       width,
		height:      height,
		commands:    make([]Command, 0, 128),
		transform:   chart.Identity(),
		strokeColor: chart.Black,
		lineWidth:   1,
		stateStack:  make([]recorderState, 0, 8),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int {
	return len(r.stateStack)
}

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() chart.Matrix {
	return r.transform
}

// MeasureText implements chart.TextMeasurer.
func (r *Recorder) MeasureText(s string, f chart.Font) chart.Size {
	return r.measurer.MeasureText(s, f)
}

// LineHeight implements chart.TextMeasurer.
func (r *Recorder) LineHeight(f chart.Font) float64 {
	return r.measurer.LineHeight(f)
}

// FinishRecording returns a Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save saves the transform, clip and stroke attributes to the stack.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, recorderState{
		transform:   r.transform,
		strokeColor: r.strokeColor,
		lineWidth:   r.lineWidth,
		dash:        r.dash,
		clip:        r.clip,
		clipped:     r.clipped,
	})
	r.commands = append(r.commands, SaveCommand{})
}

// Restore restores the previously saved graphics state.
// If the state stack is empty, this is a no-op.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		chart.Logger().Debug("recording: restore without save")
		return
	}

	state := r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]

	r.transform = state.transform
	r.strokeColor = state.strokeColor
	r.lineWidth = state.lineWidth
	r.dash = state.dash
	r.clip = state.clip
	r.clipped = state.clipped

	r.commands = append(r.commands, RestoreCommand{})
}

// --------------------------------------------------------------------------
// Transform and Clip
// --------------------------------------------------------------------------

// Translate applies a translation to the transformation matrix.
func (r *Recorder) Translate(x, y float64) {
	r.transform = r.transform.Multiply(chart.Translate(x, y))
	r.commands = append(r.commands, TranslateCommand{X: x, Y: y})
}

// Rotate applies a rotation (angle in radians).
func (r *Recorder) Rotate(angle float64) {
	r.transform = r.transform.Multiply(chart.Rotate(angle))
	r.commands = append(r.commands, RotateCommand{Angle: angle})
}

// ClipRect intersects the clip with rect. Under rotation the clip is
// tracked as the device space bounding box of rect.
func (r *Recorder) ClipRect(rect chart.Rect) {
	device := r.deviceBounds(rect)
	if r.clipped {
		device = intersect(r.clip, device)
	}
	r.clip = device
	r.clipped = true
	r.commands = append(r.commands, ClipRectCommand{Rect: rect, Device: device})
}

func (r *Recorder) deviceBounds(rect chart.Rect) chart.Rect {
	corners := [4]chart.Point{
		chart.Pt(rect.Left(), rect.Top()),
		chart.Pt(rect.Right(), rect.Top()),
		chart.Pt(rect.Right(), rect.Bottom()),
		chart.Pt(rect.Left(), rect.Bottom()),
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := r.transform.TransformPoint(c)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return chart.NewRect(minX, minY, maxX-minX, maxY-minY)
}

func intersect(a, b chart.Rect) chart.Rect {
	left := math.Max(a.Left(), b.Left())
	top := math.Max(a.Top(), b.Top())
	right := math.Min(a.Right(), b.Right())
	bottom := math.Min(a.Bottom(), b.Bottom())
	return chart.NewRect(left, top, math.Max(right-left, 0), math.Max(bottom-top, 0))
}

// --------------------------------------------------------------------------
// Style
// --------------------------------------------------------------------------

// SetStrokeColor sets the stroke color.
func (r *Recorder) SetStrokeColor(c chart.Color) {
	r.strokeColor = c
	r.commands = append(r.commands, SetStrokeColorCommand{Color: c})
}

// SetLineWidth sets the stroke line width.
func (r *Recorder) SetLineWidth(w float64) {
	r.lineWidth = w
	r.commands = append(r.commands, SetLineWidthCommand{Width: w})
}

// SetLineDash sets the dash pattern.
func (r *Recorder) SetLineDash(d chart.Dash) {
	r.dash = d
	r.commands = append(r.commands, SetLineDashCommand{Dash: d})
}

// --------------------------------------------------------------------------
// Path Building
// --------------------------------------------------------------------------

// BeginPath discards the current path.
func (r *Recorder) BeginPath() {
	r.path = nil
	r.commands = append(r.commands, BeginPathCommand{})
}

// MoveTo starts a new subpath at (x, y).
func (r *Recorder) MoveTo(x, y float64) {
	p := chart.Pt(x, y)
	r.path = append(r.path, []chart.Point{r.transform.TransformPoint(p)})
	r.commands = append(r.commands, MoveToCommand{Point: p})
}

// LineTo adds a segment to (x, y). Without a current subpath it behaves
// like MoveTo.
func (r *Recorder) LineTo(x, y float64) {
	p := chart.Pt(x, y)
	dp := r.transform.TransformPoint(p)
	if n := len(r.path); n > 0 {
		r.path[n-1] = append(r.path[n-1], dp)
	} else {
		r.path = append(r.path, []chart.Point{dp})
	}
	r.commands = append(r.commands, LineToCommand{Point: p})
}

// StrokePath strokes the current path with the current stroke attributes.
// The path is kept; BeginPath discards it.
func (r *Recorder) StrokePath() {
	subpaths := make([][]chart.Point, len(r.path))
	for i, sp := range r.path {
		subpaths[i] = append([]chart.Point(nil), sp...)
	}
	r.commands = append(r.commands, StrokePathCommand{
		Subpaths: subpaths,
		Color:    r.strokeColor,
		Width:    r.lineWidth,
		Dash:     r.dash,
		Clip:     r.clip,
		Clipped:  r.clipped,
	})
}

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

// DrawText records s with its top-left corner at p.
func (r *Recorder) DrawText(s string, p chart.Point, style chart.TextStyle) {
	r.commands = append(r.commands, DrawTextCommand{
		Text:     s,
		Position: p,
		Style:    style,
		Device:   r.transform.TransformPoint(p),
		Angle:    math.Atan2(r.transform.D, r.transform.A),
		Size:     r.MeasureText(s, style.Font),
	})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any chart.Canvas.
type Recording struct {
	width, height int
	commands      []Command
}

// NewRecording creates a Recording from an existing command list.
// The slice is copied.
func NewRecording(width, height int, cmds []Command) *Recording {
	return &Recording{
		width:    width,
		height:   height,
		commands: append([]Command(nil), cmds...),
	}
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Strokes returns every StrokePathCommand in recording order.
func (r *Recording) Strokes() []StrokePathCommand {
	var out []StrokePathCommand
	for _, cmd := range r.commands {
		if c, ok := cmd.(StrokePathCommand); ok {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns every DrawTextCommand in recording order.
func (r *Recording) Texts() []DrawTextCommand {
	var out []DrawTextCommand
	for _, cmd := range r.commands {
		if c, ok := cmd.(DrawTextCommand); ok {
			out = append(out, c)
		}
	}
	return out
}

// Balanced reports whether every Save has a matching Restore.
func (r *Recording) Balanced() bool {
	return r.depth() == 0
}

func (r *Recording) depth() int {
	depth := 0
	for _, cmd := range r.commands {
		switch cmd.(type) {
		case SaveCommand:
			depth++
		case RestoreCommand:
			depth--
		}
	}
	return depth
}

// Playback replays the recording to dst.
//
// Playback returns ErrNilCanvas for a nil dst and ErrUnbalancedState when
// the recording leaves a Save unmatched; nothing is replayed in either case.
func (r *Recording) Playback(dst chart.Canvas) error {
	if dst == nil {
		return ErrNilCanvas
	}
	if d := r.depth(); d != 0 {
		return fmt.Errorf("%w: %d unmatched saves", ErrUnbalancedState, d)
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			dst.Save()
		case RestoreCommand:
			dst.Restore()
		case TranslateCommand:
			dst.Translate(c.X, c.Y)
		case RotateCommand:
			dst.Rotate(c.Angle)
		case ClipRectCommand:
			dst.ClipRect(c.Rect)
		case SetStrokeColorCommand:
			dst.SetStrokeColor(c.Color)
		case SetLineWidthCommand:
			dst.SetLineWidth(c.Width)
		case SetLineDashCommand:
			dst.SetLineDash(c.Dash)
		case BeginPathCommand:
			dst.BeginPath()
		case MoveToCommand:
			dst.MoveTo(c.Point.X, c.Point.Y)
		case LineToCommand:
			dst.LineTo(c.Point.X, c.Point.Y)
		case StrokePathCommand:
			dst.StrokePath()
		case DrawTextCommand:
			dst.DrawText(c.Text, c.Position, c.Style)
		default:
			return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd.Type())
		}
	}
	return nil
}
