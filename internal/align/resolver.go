package align

import (
	"math"

	"viewalign/internal/frame"
	"viewalign/internal/mathutil"
)

// upDegenerate is the |cos| threshold beyond which the screen-up axis
// is considered parallel to the look direction. Orthonormal frames can
// never reach it; frames that scrape past the validation tolerance can.
const upDegenerate = 1 - 1e-6

// Resolve computes the camera orientation that views frame f from the
// given face: the camera looks along the face's signed frame axis with
// the frame's natural screen-up for that face. The frame is validated
// first; on failure the error wraps frame.ErrInvalid and no orientation
// is produced.
func Resolve(f frame.Frame, face Face) (mathutil.Quat, error) {
	if err := f.Validate(frame.DefaultTolerance); err != nil {
		return mathutil.QuatIdentity(), err
	}

	m := mathutil.Mat3Mul(f.Basis, face.matrix())

	look := m.Col(2).Scale(-1) // camera looks along its local −Z
	up := m.Col(1)
	if math.Abs(look.Dot(up)) > upDegenerate {
		m = reorient(f, look)
	}

	return mathutil.Mat3ToQuat(m), nil
}

// LookDir returns the world-space direction the camera faces after
// Resolve(f, face): the signed frame axis for that face.
func LookDir(f frame.Frame, face Face) mathutil.Vec3 {
	switch face {
	case Top:
		return f.Up().Scale(-1)
	case Bottom:
		return f.Up()
	case Front:
		return f.Forward()
	case Back:
		return f.Forward().Scale(-1)
	case Right:
		return f.Right().Scale(-1)
	default: // Left
		return f.Right()
	}
}

// reorient rebuilds a camera basis for a degenerate up axis, picking a
// replacement screen-up from the frame's axes in fixed priority order:
// forward, then right, then up.
func reorient(f frame.Frame, look mathutil.Vec3) mathutil.Mat3 {
	look = look.Normalize()
	var up mathutil.Vec3
	for _, cand := range []mathutil.Vec3{f.Forward(), f.Right(), f.Up()} {
		if math.Abs(cand.Dot(look)) < upDegenerate {
			up = cand
			break
		}
	}

	z := look.Scale(-1)
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return mathutil.Mat3FromCols(x, y, z)
}
