// Package gizmo renders the alignment gizmo — a wireframe cube plus the
// reference frame's axis triad — through a view orientation into an
// image, for snapshots and the terminal demo.
package gizmo

import "math"

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// Plot writes one pixel if it passes the depth test. Larger camera-Z is
// nearer (orthographic camera looking along −Z).
func (fb *FrameBuffer) Plot(x, y int, z float64, r, g, b, a uint8) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if z < fb.ZBuf[i] {
		return
	}
	fb.ZBuf[i] = z
	ci := i * 4
	fb.Color[ci] = r
	fb.Color[ci+1] = g
	fb.Color[ci+2] = b
	fb.Color[ci+3] = a
}

// DrawLine rasterizes a depth-interpolated line between two projected
// points with the given stroke width in pixels.
func (fb *FrameBuffer) DrawLine(x0, y0, z0, x1, y1, z1 float64, width int, r, g, b, a uint8) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1

	half := width / 2
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := x0 + dx*t
		y := y0 + dy*t
		z := z0 + (z1-z0)*t

		xi, yi := int(x+0.5), int(y+0.5)
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				fb.Plot(xi+ox, yi+oy, z, r, g, b, a)
			}
		}
	}
}
