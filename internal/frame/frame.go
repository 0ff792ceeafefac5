// Package frame defines the reference frames a viewport can align to:
// a right-handed orthonormal basis supplied by the host (custom
// transform orientation or scene-cursor orientation) or loaded from a
// named preset library.
package frame

import (
	"errors"
	"fmt"
	"math"

	"viewalign/internal/mathutil"
)

// ErrInvalid reports a basis that is not a right-handed orthonormal
// rotation within tolerance.
var ErrInvalid = errors.New("frame: invalid reference frame")

// DefaultTolerance bounds the acceptable drift of basis lengths and
// pairwise dot products. Host-supplied matrices accumulate float error,
// so this is looser than machine epsilon but tight enough to reject
// sheared or scaled bases.
const DefaultTolerance = 1e-4

// Frame is a reference frame: an orthonormal 3×3 basis whose columns
// are the frame's right (X), forward (Y) and up (Z) axes in world
// space. Z-up, matching the conventions of the viewport it orients.
type Frame struct {
	Basis mathutil.Mat3
}

// Identity returns the world-aligned frame.
func Identity() Frame {
	return Frame{Basis: mathutil.Mat3Identity()}
}

// FromMat3 wraps an existing basis matrix. No validation is performed;
// call Validate before trusting host-supplied data.
func FromMat3(m mathutil.Mat3) Frame {
	return Frame{Basis: m}
}

// FromQuat builds a frame from a unit rotation.
func FromQuat(q mathutil.Quat) Frame {
	return Frame{Basis: mathutil.QuatToMat3(q.Normalize())}
}

// FromEuler builds a frame from XYZ Euler angles in degrees, composed
// Rz·Ry·Rx.
func FromEuler(xDeg, yDeg, zDeg float64) Frame {
	rx := mathutil.RotX(mathutil.Deg2Rad(xDeg))
	ry := mathutil.RotY(mathutil.Deg2Rad(yDeg))
	rz := mathutil.RotZ(mathutil.Deg2Rad(zDeg))
	return Frame{Basis: mathutil.Mat3Mul(mathutil.Mat3Mul(rz, ry), rx)}
}

// FromAxes builds a frame from explicit basis vectors and validates it.
func FromAxes(right, forward, up mathutil.Vec3) (Frame, error) {
	f := Frame{Basis: mathutil.Mat3FromCols(right, forward, up)}
	if err := f.Validate(DefaultTolerance); err != nil {
		return Frame{}, err
	}
	return f, nil
}

func (f Frame) Right() mathutil.Vec3   { return f.Basis.Col(0) }
func (f Frame) Forward() mathutil.Vec3 { return f.Basis.Col(1) }
func (f Frame) Up() mathutil.Vec3      { return f.Basis.Col(2) }

// Quat returns the frame's basis as a unit rotation.
func (f Frame) Quat() mathutil.Quat {
	return mathutil.Mat3ToQuat(f.Basis)
}

// Validate checks that the basis is orthonormal and right-handed within
// tol. The returned error wraps ErrInvalid and names the property that
// failed.
func (f Frame) Validate(tol float64) error {
	axes := [3]mathutil.Vec3{f.Right(), f.Forward(), f.Up()}
	names := [3]string{"right", "forward", "up"}

	for i, a := range axes {
		if math.Abs(a.Len()-1) > tol {
			return fmt.Errorf("%w: %s axis has length %.6f", ErrInvalid, names[i], a.Len())
		}
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if d := math.Abs(axes[i].Dot(axes[j])); d > tol {
				return fmt.Errorf("%w: %s and %s axes not perpendicular (dot %.6f)",
					ErrInvalid, names[i], names[j], d)
			}
		}
	}
	if det := f.Basis.Det(); det < 0 {
		return fmt.Errorf("%w: left-handed basis (det %.6f)", ErrInvalid, det)
	}
	return nil
}
