package transition

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"viewalign/internal/host"
	"viewalign/internal/mathutil"
)

// DefaultBaseDuration is the time a full 180° turn takes when no fixed
// duration is configured; smaller arcs scale down proportionally.
const DefaultBaseDuration = 240 * time.Millisecond

// Options selects how a single alignment is applied.
type Options struct {
	// Smooth selects animated slerp; false snaps instantly.
	Smooth bool
	// Duration forces a fixed transition length. Zero means
	// angle-scaled: DefaultBaseDuration · arc/π.
	Duration time.Duration
	// Easing defaults to SCurve when nil.
	Easing Easing
	// Now anchors the transition's start time. Zero means time.Now();
	// hosts with their own clock (tests, offline capture) pass it in.
	Now time.Time
}

// Handle reports the fate of one Begin call. Its flags are written only
// from the host's tick goroutine and are stable once Done or Cancelled
// returns true.
type Handle struct {
	done      bool
	cancelled bool
}

// Done reports normal completion: the view sits exactly on the
// destination.
func (h *Handle) Done() bool { return h.done }

// Cancelled reports that the transition was replaced or cancelled
// before reaching its destination.
func (h *Handle) Cancelled() bool { return h.cancelled }

// state is the single in-flight transition.
type state struct {
	start    mathutil.Quat
	dest     mathutil.Quat
	began    time.Time
	duration time.Duration
	easing   Easing
	handle   *Handle
}

// Driver owns the view orientation for the duration of an alignment.
// At most one transition is ever active: a Begin during a running
// transition replaces it, continuing from the live interpolated
// orientation. Confined to the host's tick goroutine; no locking.
type Driver struct {
	view  host.View
	sched host.Scheduler
	log   zerolog.Logger

	active *state
	tick   host.TickHandle
}

// NewDriver creates a driver bound to the host's view and scheduler.
func NewDriver(view host.View, sched host.Scheduler, log zerolog.Logger) *Driver {
	return &Driver{view: view, sched: sched, log: log}
}

// Running reports whether a transition is in flight.
func (d *Driver) Running() bool {
	return d.active != nil
}

// Begin applies the destination orientation: instantly when
// Options.Smooth is false or the remaining arc is negligible, otherwise
// as a tick-driven slerp. If a transition is already running it is
// cancelled and the new one starts from the current interpolated
// orientation, so the view never jumps.
func (d *Driver) Begin(start, dest mathutil.Quat, opts Options) *Handle {
	dest = dest.Normalize()

	if d.active != nil {
		// Re-trigger: continue from wherever the view is right now.
		start = d.view.Orientation()
		d.stop(true)
		d.log.Debug().Msg("transition replaced in flight")
	}

	handle := &Handle{}

	if !opts.Smooth {
		d.view.SetOrientation(dest)
		handle.done = true
		return handle
	}

	angle := mathutil.QuatAngle(start, dest)
	duration := opts.Duration
	if duration == 0 {
		duration = time.Duration(float64(DefaultBaseDuration) * angle / math.Pi)
	}
	if angle < 1e-9 || duration <= 0 {
		// Nothing to animate; complete immediately with an exact write.
		d.view.SetOrientation(dest)
		handle.done = true
		return handle
	}

	began := opts.Now
	if began.IsZero() {
		began = time.Now()
	}
	easing := opts.Easing
	if easing == nil {
		easing = SCurve
	}

	d.active = &state{
		start:    start.Normalize(),
		dest:     dest,
		began:    began,
		duration: duration,
		easing:   easing,
		handle:   handle,
	}
	d.tick = d.sched.Register(d.Tick)
	return handle
}

// Tick advances the active transition to the given time: one slerp and
// one view write, O(1). Idempotent once idle. On reaching t=1 the view
// is set to exactly the destination and the driver deregisters itself.
func (d *Driver) Tick(now time.Time) {
	s := d.active
	if s == nil {
		return
	}

	t := float64(now.Sub(s.began)) / float64(s.duration)
	if t >= 1 {
		d.view.SetOrientation(s.dest)
		s.handle.done = true
		d.stop(false)
		return
	}
	if t < 0 {
		t = 0
	}
	d.view.SetOrientation(mathutil.Slerp(s.start, s.dest, s.easing(t)))
}

// Cancel discards the active transition, if any. The view stays at its
// current interpolated orientation.
func (d *Driver) Cancel() {
	if d.active == nil {
		return
	}
	d.stop(true)
	d.log.Debug().Msg("transition cancelled")
}

func (d *Driver) stop(cancelled bool) {
	if cancelled {
		d.active.handle.cancelled = true
	}
	d.active = nil
	d.sched.Unregister(d.tick)
}
