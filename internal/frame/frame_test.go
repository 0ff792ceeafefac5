package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewalign/internal/mathutil"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		frame   Frame
		wantErr bool
	}{
		{name: "identity", frame: Identity()},
		{name: "rotated", frame: FromEuler(25, -40, 110)},
		{name: "near unit drift", frame: FromMat3(mathutil.Mat3{
			1 + 1e-6, 0, 0,
			0, 1, 0,
			0, 0, 1,
		})},
		{name: "scaled axis", frame: FromMat3(mathutil.Mat3{
			2, 0, 0,
			0, 1, 0,
			0, 0, 1,
		}), wantErr: true},
		{name: "sheared", frame: FromMat3(mathutil.Mat3{
			1, 0.5, 0,
			0, 1, 0,
			0, 0, 1,
		}), wantErr: true},
		{name: "left-handed mirror", frame: FromMat3(mathutil.Mat3Diag(-1, 1, 1)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.frame.Validate(DefaultTolerance)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromAxes(t *testing.T) {
	f, err := FromAxes(
		mathutil.Vec3{1, 0, 0},
		mathutil.Vec3{0, 1, 0},
		mathutil.Vec3{0, 0, 1},
	)
	require.NoError(t, err)
	assert.Equal(t, Identity(), f)

	_, err = FromAxes(
		mathutil.Vec3{1, 0, 0},
		mathutil.Vec3{1, 0, 0},
		mathutil.Vec3{0, 0, 1},
	)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestQuatRoundtrip(t *testing.T) {
	f := FromEuler(30, -15, 60)
	back := FromQuat(f.Quat())
	for i := range f.Basis {
		assert.InDelta(t, f.Basis[i], back.Basis[i], 1e-9)
	}
}

func TestAxisAccessors(t *testing.T) {
	f := Identity()
	assert.Equal(t, mathutil.Vec3{1, 0, 0}, f.Right())
	assert.Equal(t, mathutil.Vec3{0, 1, 0}, f.Forward())
	assert.Equal(t, mathutil.Vec3{0, 0, 1}, f.Up())
}
