// Package recording captures chart drawing as typed commands.
//
// A Recorder implements chart.Canvas. Instead of drawing it appends one
// command per call, so a render pass can be inspected, compared and
// replayed later. Each stroke and text command also carries its device
// space geometry, which makes the recorder the canvas of choice for tests.
//
// # Architecture
//
//   - Recorder: captures chart.Canvas calls and tracks the graphics state
//   - Recording: the finished, immutable command list
//   - Registry: named factories for playback targets
//
// Design follows Cairo's approach of typed command structs for
// inspectability rather than a binary serialization format.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(400, 300)
//	renderer.ComputeSize(rec)
//	renderer.Render(rec)
//	r := rec.FinishRecording()
//
//	for _, t := range r.Texts() {
//	    fmt.Println(t.Text, t.Device)
//	}
//
// # Playback
//
// A Recording replays onto any chart.Canvas. Canvas packages register a
// factory under a name so targets can be chosen at runtime:
//
//	import _ "github.com/gogpu/chart/integration/ggcanvas"
//
//	dst, err := recording.NewCanvas("gg", r.Width(), r.Height())
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(dst); err != nil {
//	    return err
//	}
//
// # Text Measurement
//
// Recorder measures text with Measurer, a fixed 7x13 bitmap face, so layout
// computed against a Recorder is identical on every machine. When the
// recording is meant for a specific target, WithMeasurer makes the
// recorder use that target's metrics instead:
//
//	rec := recording.NewRecorder(w, h, recording.WithMeasurer(dst))
//
// # Thread Safety
//
// Recorder is not safe for concurrent use. A finished Recording may be
// read and played back concurrently. The registry is safe for concurrent
// use.
package recording
