package recording

import "github.com/gogpu/chart"

// CommandType identifies the type of a command.
// Each command type corresponds to one chart.Canvas call.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save current state
	CmdRestore                      // Restore previous state
	CmdTranslate                    // Translate user space
	CmdRotate                       // Rotate user space
	CmdClipRect                     // Intersect clip with a rectangle

	// Style commands
	CmdSetStrokeColor // Set stroke color
	CmdSetLineWidth   // Set stroke line width
	CmdSetLineDash    // Set dash pattern

	// Path commands
	CmdBeginPath // Start a new path
	CmdMoveTo    // Start a subpath
	CmdLineTo    // Extend the current subpath

	// Drawing commands
	CmdStrokePath // Stroke the current path
	CmdDrawText   // Draw a line of text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdTranslate:      "Translate",
	CmdRotate:         "Rotate",
	CmdClipRect:       "ClipRect",
	CmdSetStrokeColor: "SetStrokeColor",
	CmdSetLineWidth:   "SetLineWidth",
	CmdSetLineDash:    "SetLineDash",
	CmdBeginPath:      "BeginPath",
	CmdMoveTo:         "MoveTo",
	CmdLineTo:         "LineTo",
	CmdStrokePath:     "StrokePath",
	CmdDrawText:       "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current graphics state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved graphics state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TranslateCommand moves the user space origin.
type TranslateCommand struct {
	X, Y float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// RotateCommand rotates user space.
type RotateCommand struct {
	// Angle is the rotation in radians.
	Angle float64
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// ClipRectCommand intersects the clip with a rectangle.
type ClipRectCommand struct {
	// Rect is the rectangle in user space as passed by the caller.
	Rect chart.Rect
	// Device is the bounding box of Rect in device space.
	Device chart.Rect
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetStrokeColorCommand sets the stroke color.
type SetStrokeColorCommand struct {
	Color chart.Color
}

// Type implements Command.
func (SetStrokeColorCommand) Type() CommandType { return CmdSetStrokeColor }

// SetLineWidthCommand sets the stroke line width.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// SetLineDashCommand sets the dash pattern. A zero Dash is solid.
type SetLineDashCommand struct {
	Dash chart.Dash
}

// Type implements Command.
func (SetLineDashCommand) Type() CommandType { return CmdSetLineDash }

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand starts a new subpath at a user space point.
type MoveToCommand struct {
	Point chart.Point
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a straight segment to a user space point.
type LineToCommand struct {
	Point chart.Point
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// StrokePathCommand strokes the current path.
//
// Besides marking the stroke, it snapshots everything needed to inspect the
// result without replaying state: the path in device space and the stroke
// attributes and clip in effect.
type StrokePathCommand struct {
	// Subpaths holds each subpath's points in device space.
	Subpaths [][]chart.Point

	Color chart.Color
	Width float64
	Dash  chart.Dash

	// Clip is the device space clip in effect. Clipped is false when no
	// ClipRect is active.
	Clip    chart.Rect
	Clipped bool
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// Segments returns the stroked segments as point pairs in device space.
func (c StrokePathCommand) Segments() [][2]chart.Point {
	var segs [][2]chart.Point
	for _, sp := range c.Subpaths {
		for i := 1; i < len(sp); i++ {
			segs = append(segs, [2]chart.Point{sp[i-1], sp[i]})
		}
	}
	return segs
}

// DrawTextCommand draws a single line of text.
type DrawTextCommand struct {
	Text string
	// Position is the top-left of the text in user space as passed by the
	// caller.
	Position chart.Point
	Style    chart.TextStyle

	// Device is Position mapped to device space.
	Device chart.Point
	// Angle is the rotation of user space in radians when the text was
	// drawn.
	Angle float64
	// Size is the measured size of Text.
	Size chart.Size
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
