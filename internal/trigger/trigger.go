// Package trigger is the flat invocation surface of the alignment
// engine: six faces times two reference-frame sources, reachable from
// menu items or key bindings.
package trigger

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"viewalign/internal/align"
	"viewalign/internal/frame"
	"viewalign/internal/host"
	"viewalign/internal/transition"
)

// Source selects which reference frame an alignment reads.
type Source int

const (
	SourceCustom Source = iota
	SourceCursor
)

func (s Source) String() string {
	if s == SourceCursor {
		return "cursor"
	}
	return "custom"
}

// Settings is the per-trigger configuration, read fresh on every
// invocation.
type Settings struct {
	Smooth   bool
	Duration time.Duration
}

// Aligner wires the resolver and the transition driver to a concrete
// host.
type Aligner struct {
	view     host.View
	sources  map[Source]host.FrameSource
	driver   *transition.Driver
	settings func() Settings
	now      func() time.Time
	log      zerolog.Logger
}

// NewAligner builds the trigger surface. settings is called once per
// trigger; now supplies the transition start time (nil means
// time.Now, hosts with their own clock pass theirs).
func NewAligner(
	view host.View,
	custom, cursor host.FrameSource,
	driver *transition.Driver,
	settings func() Settings,
	now func() time.Time,
	log zerolog.Logger,
) *Aligner {
	if now == nil {
		now = time.Now
	}
	return &Aligner{
		view: view,
		sources: map[Source]host.FrameSource{
			SourceCustom: custom,
			SourceCursor: cursor,
		},
		driver:   driver,
		settings: settings,
		now:      now,
		log:      log,
	}
}

// Align aligns the view to the requested face of the source's frame.
// A missing frame is a no-op (nil handle, nil error); an invalid frame
// returns an error wrapping frame.ErrInvalid and leaves the view
// untouched. The smooth/duration settings are read at trigger time.
func (a *Aligner) Align(src Source, face align.Face) (*transition.Handle, error) {
	source, ok := a.sources[src]
	if !ok || source == nil {
		return nil, nil
	}

	fr, ok := source.ActiveFrame()
	if !ok {
		// No active frame for this source: silent no-op by product
		// behavior, not an error.
		a.log.Debug().Stringer("source", src).Stringer("face", face).
			Msg("alignment skipped, no reference frame")
		return nil, nil
	}

	dest, err := align.Resolve(fr, face)
	if err != nil {
		a.log.Warn().Stringer("source", src).Stringer("face", face).Err(err).
			Msg("alignment aborted")
		return nil, fmt.Errorf("trigger: %s %s: %w", src, face, err)
	}

	cfg := a.settings()
	handle := a.driver.Begin(a.view.Orientation(), dest, transition.Options{
		Smooth:   cfg.Smooth,
		Duration: cfg.Duration,
		Now:      a.now(),
	})
	return handle, nil
}

// Cancel stops any in-flight transition, leaving the view where it is.
func (a *Aligner) Cancel() {
	a.driver.Cancel()
}

// IsInvalidFrame reports whether err came from frame validation.
func IsInvalidFrame(err error) bool {
	return errors.Is(err, frame.ErrInvalid)
}
