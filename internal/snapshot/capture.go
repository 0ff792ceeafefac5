// Package snapshot renders an alignment transition offline: the driver
// runs against a fake host at a fixed tick rate and every tick's
// orientation is rasterized to a WebP frame.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/rs/zerolog"

	"viewalign/internal/align"
	"viewalign/internal/frame"
	"viewalign/internal/gizmo"
	"viewalign/internal/host"
	"viewalign/internal/mathutil"
	"viewalign/internal/transition"
)

// Config holds all shared resources for one capture run.
type Config struct {
	Frame    frame.Frame
	Face     align.Face
	Start    mathutil.Quat
	Smooth   bool
	Duration time.Duration // 0 = angle-scaled default
	TickRate int           // ticks per second

	Size        int
	Supersample int
	Workers     int
	Backdrop    *image.NRGBA // optional, composited behind the gizmo
	OutputDir   string
}

// Result holds the outcome of encoding one frame.
type Result struct {
	Index int
	Path  string
	Error string
}

// maxTicks caps runaway simulations (a 10 s transition at 240 Hz).
const maxTicks = 2400

// Sequence simulates the transition and returns the orientation written
// on every tick, starting with the start orientation and ending exactly
// on the destination.
func Sequence(cfg Config, log zerolog.Logger) ([]mathutil.Quat, error) {
	fake := host.NewFake()
	fake.SetOrientation(cfg.Start)

	dest, err := align.Resolve(cfg.Frame, cfg.Face)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	driver := transition.NewDriver(fake, fake, log)
	handle := driver.Begin(cfg.Start, dest, transition.Options{
		Smooth:   cfg.Smooth,
		Duration: cfg.Duration,
		Now:      fake.Now(),
	})

	rate := cfg.TickRate
	if rate <= 0 {
		rate = 60
	}
	dt := time.Second / time.Duration(rate)

	frames := []mathutil.Quat{cfg.Start}
	for !handle.Done() && len(frames) < maxTicks {
		fake.Step(dt)
		frames = append(frames, fake.Orientation())
	}
	if !handle.Done() {
		return nil, fmt.Errorf("snapshot: transition did not complete within %d ticks", maxTicks)
	}
	if last := frames[len(frames)-1]; mathutil.QuatAngle(last, dest) > 1e-9 {
		// Instant mode produces no ticks; record the destination.
		frames = append(frames, dest)
	}
	return frames, nil
}

// Capture simulates the transition and encodes every frame as
// OutputDir/frame_NNNN.webp using a worker pool.
func Capture(cfg Config, log zerolog.Logger) ([]Result, error) {
	frames, err := Sequence(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("snapshot: create output dir: %w", err)
	}

	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = encodeFrame(cfg, idx, frames[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results, nil
}

func encodeFrame(cfg Config, idx int, view mathutil.Quat) Result {
	opts := gizmo.Options{
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Labels:      true,
	}
	if cfg.Backdrop == nil {
		opts.Background = &color.NRGBA{28, 30, 36, 255}
	}

	img := gizmo.Render(view, cfg.Frame, opts)

	if cfg.Backdrop != nil {
		img = composite(cfg.Backdrop, img)
	}

	path := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.webp", idx))
	f, err := os.Create(path)
	if err != nil {
		return Result{Index: idx, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Index: idx, Error: fmt.Sprintf("webp encode: %v", err)}
	}
	return Result{Index: idx, Path: path}
}

// composite draws fg over bg, both sized to fg's bounds.
func composite(bg, fg *image.NRGBA) *image.NRGBA {
	b := fg.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, bg, bg.Bounds().Min, draw.Src)
	draw.Draw(out, b, fg, b.Min, draw.Over)
	return out
}
