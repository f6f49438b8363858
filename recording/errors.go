package recording

import "errors"

// Sentinel errors returned by Playback and the canvas registry.
var (
	// ErrNilCanvas is returned when Playback is given a nil canvas.
	ErrNilCanvas = errors.New("recording: nil canvas")

	// ErrUnbalancedState is returned when a recording leaves Save calls
	// without a matching Restore.
	ErrUnbalancedState = errors.New("recording: unbalanced save/restore")

	// ErrUnknownCommand is returned when Playback meets a command type it
	// cannot replay.
	ErrUnknownCommand = errors.New("recording: unknown command")

	// ErrUnknownCanvas is returned by NewCanvas for unregistered names.
	ErrUnknownCanvas = errors.New("recording: unknown canvas")
)
