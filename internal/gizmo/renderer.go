package gizmo

import (
	"image"
	"image/color"

	"viewalign/internal/frame"
	"viewalign/internal/mathutil"
)

// Options control the rendered output.
type Options struct {
	Size        int // output edge length in pixels
	Supersample int // render at Size·Supersample, then downsample
	// Background fills the canvas when non-nil; nil renders on
	// transparency so callers can composite a backdrop underneath.
	Background *color.NRGBA
	// Labels draws axis letters at the triad tips.
	Labels bool
}

// axis colors follow the usual viewport convention: X red, Y green,
// Z blue, dimmed for the wireframe cube.
var (
	colX    = [4]uint8{235, 80, 80, 255}
	colY    = [4]uint8{110, 220, 90, 255}
	colZ    = [4]uint8{90, 140, 245, 255}
	colCube = [4]uint8{150, 150, 160, 255}
)

// cube corners (±0.5) and the 12 edges connecting them.
var cubeCorners = [8]mathutil.Vec3{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// axisLen is the triad arm length relative to the unit cube.
const axisLen = 0.85

// worldSpan is the fixed orthographic extent; everything drawn fits a
// sphere of this diameter.
const worldSpan = 2.1

// Render draws the wireframe cube and the reference frame's axis triad
// as seen through the view orientation.
func Render(view mathutil.Quat, ref frame.Frame, opts Options) *image.NRGBA {
	size := opts.Size
	if size <= 0 {
		size = 256
	}
	ss := opts.Supersample
	if ss <= 0 {
		ss = 2
	}
	renderSize := size * ss

	// World → camera: the view quaternion maps camera space to world,
	// so the inverse brings world points in front of the camera.
	inv := view.Normalize().Conjugate()

	margin := 16 * ss
	scale := float64(renderSize-2*margin) / worldSpan
	half := float64(renderSize) / 2

	project := func(v mathutil.Vec3) (float64, float64, float64) {
		c := inv.RotateVec(v)
		return half + c[0]*scale, half - c[1]*scale, c[2]
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	stroke := ss

	// Cube wireframe
	for _, e := range cubeEdges {
		x0, y0, z0 := project(cubeCorners[e[0]])
		x1, y1, z1 := project(cubeCorners[e[1]])
		fb.DrawLine(x0, y0, z0, x1, y1, z1, stroke, colCube[0], colCube[1], colCube[2], colCube[3])
	}

	// Reference frame triad, drawn last-but-depth-tested so it reads
	// through the cube correctly.
	ox, oy, oz := project(mathutil.Vec3{})
	type arm struct {
		dir mathutil.Vec3
		col [4]uint8
	}
	arms := []arm{
		{ref.Right().Scale(axisLen), colX},
		{ref.Forward().Scale(axisLen), colY},
		{ref.Up().Scale(axisLen), colZ},
	}
	tips := make([][3]float64, len(arms))
	for i, a := range arms {
		tx, ty, tz := project(a.dir)
		fb.DrawLine(ox, oy, oz, tx, ty, tz, stroke*2, a.col[0], a.col[1], a.col[2], a.col[3])
		tips[i] = [3]float64{tx, ty, tz}
	}

	hi := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(hi.Pix, fb.Color)

	img := Downsample(hi, size)

	if opts.Background != nil {
		img = flatten(img, *opts.Background)
	}

	if opts.Labels {
		labels := []string{"X", "Y", "Z"}
		for i, tip := range tips {
			drawLabel(img, int(tip[0])/ss+4, int(tip[1])/ss-4, labels[i],
				color.NRGBA{arms[i].col[0], arms[i].col[1], arms[i].col[2], 255})
		}
	}

	return img
}

// flatten composites src over a solid background.
func flatten(src *image.NRGBA, bg color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			a := float64(src.Pix[i+3]) / 255
			dst.Pix[i] = uint8(float64(src.Pix[i])*a + float64(bg.R)*(1-a) + 0.5)
			dst.Pix[i+1] = uint8(float64(src.Pix[i+1])*a + float64(bg.G)*(1-a) + 0.5)
			dst.Pix[i+2] = uint8(float64(src.Pix[i+2])*a + float64(bg.B)*(1-a) + 0.5)
			dst.Pix[i+3] = 255
		}
	}
	return dst
}
