package mathutil

import "math"

// Quat represents a unit rotation quaternion (x, y, z, w).
type Quat [4]float64

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// EulerToQuat converts Euler XYZ (radians) to a quaternion.
func EulerToQuat(rx, ry, rz float64) Quat {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return Quat{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

func (q Quat) Len() float64 {
	return math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// Normalize returns q scaled to unit length. The zero quaternion
// normalizes to identity.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l < 1e-12 {
		return QuatIdentity()
	}
	return Quat{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

func (q Quat) Neg() Quat {
	return Quat{-q[0], -q[1], -q[2], -q[3]}
}

// Conjugate returns the inverse rotation for unit q.
func (q Quat) Conjugate() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

func QuatDot(a, b Quat) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// QuatMul returns the composed rotation a·b (b applied first).
func QuatMul(a, b Quat) Quat {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return Quat{
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

// RotateVec rotates v by the unit quaternion q.
func (q Quat) RotateVec(v Vec3) Vec3 {
	u := Vec3{q[0], q[1], q[2]}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q[3])).Add(u.Cross(t))
}

// QuatAngle returns the rotation angle in radians [0, π] needed to get
// from a to b, insensitive to the sign convention of either operand.
func QuatAngle(a, b Quat) float64 {
	d := math.Abs(QuatDot(a, b))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

// Slerp interpolates from a to b along the shortest great-circle arc.
// When the operands point to opposite hemispheres, b is negated first
// so the sweep never exceeds 180°. t is clamped to [0, 1]; t=0 yields a.
// Nearly-coincident rotations fall back to normalized lerp, which is
// numerically stable where the sine denominator vanishes.
func Slerp(a, b Quat, t float64) Quat {
	if t <= 0 {
		return a
	}

	d := QuatDot(a, b)
	if d < 0 {
		b = b.Neg()
		d = -d
	}
	if t >= 1 {
		return b
	}

	if d > 0.9995 {
		return Quat{
			a[0] + t*(b[0]-a[0]),
			a[1] + t*(b[1]-a[1]),
			a[2] + t*(b[2]-a[2]),
			a[3] + t*(b[3]-a[3]),
		}.Normalize()
	}

	theta := math.Acos(d)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return Quat{
		wa*a[0] + wb*b[0],
		wa*a[1] + wb*b[1],
		wa*a[2] + wb*b[2],
		wa*a[3] + wb*b[3],
	}.Normalize()
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Mat3ToQuat converts a rotation matrix to a unit quaternion using
// Shepperd's method: branch on the largest diagonal term so the
// divisor stays well away from zero.
func Mat3ToQuat(m Mat3) Quat {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]

	tr := m00 + m11 + m22
	var q Quat
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2 // 4w
		q = Quat{(m21 - m12) / s, (m02 - m20) / s, (m10 - m01) / s, s / 4}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2 // 4x
		q = Quat{s / 4, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2 // 4y
		q = Quat{(m01 + m10) / s, s / 4, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2 // 4z
		q = Quat{(m02 + m20) / s, (m12 + m21) / s, s / 4, (m10 - m01) / s}
	}
	return q.Normalize()
}

// QuatFromAxisAngle builds a rotation of angle radians around axis.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	axis = axis.Normalize()
	s := math.Sin(angle / 2)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, math.Cos(angle / 2)}
}

// AxisAngle decomposes a unit quaternion into a rotation axis and an
// angle in radians [0, π]. The identity rotation reports the Z axis.
func (q Quat) AxisAngle() (Vec3, float64) {
	if q[3] < 0 {
		q = q.Neg()
	}
	w := q[3]
	if w > 1 {
		w = 1
	}
	angle := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)
	if s < 1e-9 {
		return Vec3{0, 0, 1}, 0
	}
	return Vec3{q[0] / s, q[1] / s, q[2] / s}, angle
}
