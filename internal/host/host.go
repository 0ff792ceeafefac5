// Package host declares the boundary between the alignment engine and
// the application that owns the viewport: reading and writing the view
// orientation, supplying reference frames, and driving per-frame ticks.
package host

import (
	"time"

	"viewalign/internal/frame"
	"viewalign/internal/mathutil"
)

// View is the host's viewport orientation state. SetOrientation must be
// a single atomic assignment of a unit rotation; the engine never
// leaves the view in a partially written state.
type View interface {
	Orientation() mathutil.Quat
	SetOrientation(mathutil.Quat)
}

// FrameSource supplies a reference frame on demand. An absent frame is
// reported through the bool, not an error: a trigger whose source is
// unavailable is a silent no-op.
type FrameSource interface {
	ActiveFrame() (frame.Frame, bool)
}

// FrameSourceFunc adapts a function to the FrameSource interface.
type FrameSourceFunc func() (frame.Frame, bool)

func (fn FrameSourceFunc) ActiveFrame() (frame.Frame, bool) {
	return fn()
}

// TickFunc is a per-frame callback. It must not block; the scheduler
// calls it once per tick with the current time.
type TickFunc func(now time.Time)

// TickHandle identifies a registered callback.
type TickHandle int64

// Scheduler is the host's cooperative tick source. Registration and
// ticking happen on the host's update goroutine; the engine never
// spawns its own.
type Scheduler interface {
	Register(fn TickFunc) TickHandle
	Unregister(TickHandle)
}
