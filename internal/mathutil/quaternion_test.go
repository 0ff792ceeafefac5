package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleRotations covers all Shepperd branches: identity (trace 3),
// 180° turns around each axis (negative trace) and generic rotations.
func sampleRotations() []Quat {
	return []Quat{
		QuatIdentity(),
		EulerToQuat(math.Pi, 0, 0),
		EulerToQuat(0, math.Pi, 0),
		EulerToQuat(0, 0, math.Pi),
		EulerToQuat(0.3, -1.1, 2.0),
		EulerToQuat(-2.5, 0.4, 0.9),
		EulerToQuat(1.0, 1.0, 1.0),
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := EulerToQuat(0.2, 0.3, -0.4)
	b := EulerToQuat(-1.0, 0.5, 2.2)

	assert.Equal(t, a, Slerp(a, b, 0))
	assert.InDelta(t, 0, QuatAngle(Slerp(a, b, 1), b), 1e-12)

	// Degenerate pair: no motion, no NaN.
	same := Slerp(a, a, 0.5)
	assert.InDelta(t, 0, QuatAngle(same, a), 1e-12)
}

func TestSlerpShortestArc(t *testing.T) {
	a := EulerToQuat(0, 0, 0.1)
	b := EulerToQuat(0.4, -0.8, 1.9)
	total := QuatAngle(a, b)
	require.Less(t, total, math.Pi+1e-9)

	for _, dest := range []Quat{b, b.Neg()} {
		prev := a
		var swept float64
		for i := 1; i <= 50; i++ {
			cur := Slerp(a, dest, float64(i)/50)
			assert.InDelta(t, 1, cur.Len(), 1e-9)
			swept += QuatAngle(prev, cur)
			prev = cur
		}
		// Negating the destination must not send the interpolation the
		// long way around.
		assert.InDelta(t, total, swept, 1e-6)
	}
}

func TestMat3QuatRoundtrip(t *testing.T) {
	for _, q := range sampleRotations() {
		back := Mat3ToQuat(QuatToMat3(q))
		assert.InDeltaf(t, 0, QuatAngle(q, back), 1e-9, "rotation %v", q)
	}
}

func TestRotateVecMatchesMatrix(t *testing.T) {
	vecs := []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.3, -0.7, 0.2}}
	for _, q := range sampleRotations() {
		m := QuatToMat3(q)
		for _, v := range vecs {
			got := q.RotateVec(v)
			want := m.MulVec3(v)
			for k := 0; k < 3; k++ {
				assert.InDelta(t, want[k], got[k], 1e-9)
			}
		}
	}
}

func TestQuatAngleSignInsensitive(t *testing.T) {
	a := EulerToQuat(0.5, 0.5, 0.5)
	b := EulerToQuat(-0.2, 1.1, 0.3)

	assert.InDelta(t, QuatAngle(a, b), QuatAngle(a, b.Neg()), 1e-12)
	assert.InDelta(t, QuatAngle(a, b), QuatAngle(a.Neg(), b), 1e-12)
	assert.InDelta(t, 0, QuatAngle(a, a.Neg()), 1e-12)
}

func TestAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, 1.2)
	axis, angle := q.AxisAngle()
	assert.InDelta(t, 1.2, angle, 1e-9)
	assert.InDelta(t, 1, axis[2], 1e-9)

	_, zero := QuatIdentity().AxisAngle()
	assert.Zero(t, zero)
}

func TestFaceMatricesOrthonormal(t *testing.T) {
	faces := map[string]Mat3{
		"top":    FaceTopMat,
		"bottom": FaceBottomMat,
		"front":  FaceFrontMat,
		"back":   FaceBackMat,
		"right":  FaceRightMat,
		"left":   FaceLeftMat,
	}
	for name, m := range faces {
		assert.InDeltaf(t, 1, m.Det(), 1e-9, "face %s", name)
		for i := 0; i < 3; i++ {
			assert.InDeltaf(t, 1, m.Col(i).Len(), 1e-9, "face %s col %d", name, i)
			for j := i + 1; j < 3; j++ {
				assert.InDeltaf(t, 0, m.Col(i).Dot(m.Col(j)), 1e-9, "face %s cols %d,%d", name, i, j)
			}
		}
	}
}
