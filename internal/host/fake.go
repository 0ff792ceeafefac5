package host

import (
	"time"

	"viewalign/internal/frame"
	"viewalign/internal/mathutil"
)

// Fake is a self-contained host for tests and offline capture: a
// manual-clock scheduler, a recording view, and settable frame sources.
type Fake struct {
	*TickList

	clock       time.Time
	orientation mathutil.Quat
	writes      int

	custom *frame.Frame
	cursor *frame.Frame
}

// NewFake starts the clock at an arbitrary fixed instant so tests are
// reproducible.
func NewFake() *Fake {
	return &Fake{
		TickList:    NewTickList(),
		clock:       time.Unix(1000, 0),
		orientation: mathutil.QuatIdentity(),
	}
}

// Now returns the fake clock's current time.
func (f *Fake) Now() time.Time {
	return f.clock
}

// Step advances the clock by dt and runs one tick.
func (f *Fake) Step(dt time.Duration) {
	f.clock = f.clock.Add(dt)
	f.Run(f.clock)
}

func (f *Fake) Orientation() mathutil.Quat {
	return f.orientation
}

func (f *Fake) SetOrientation(q mathutil.Quat) {
	f.orientation = q
	f.writes++
}

// Writes reports how many times the view orientation was set.
func (f *Fake) Writes() int {
	return f.writes
}

// SetCustomFrame installs (or, with nil, clears) the custom-orientation
// source's frame.
func (f *Fake) SetCustomFrame(fr *frame.Frame) {
	f.custom = fr
}

// SetCursorFrame installs (or, with nil, clears) the cursor source's
// frame.
func (f *Fake) SetCursorFrame(fr *frame.Frame) {
	f.cursor = fr
}

// CustomSource returns the custom-orientation frame source.
func (f *Fake) CustomSource() FrameSource {
	return FrameSourceFunc(func() (frame.Frame, bool) {
		if f.custom == nil {
			return frame.Frame{}, false
		}
		return *f.custom, true
	})
}

// CursorSource returns the cursor frame source.
func (f *Fake) CursorSource() FrameSource {
	return FrameSourceFunc(func() (frame.Frame, bool) {
		if f.cursor == nil {
			return frame.Frame{}, false
		}
		return *f.cursor, true
	})
}
