package mathutil

import "math"

// Precomputed viewpoint matrices. Post-multiplying a reference frame by
// one of these yields the camera orientation that faces the named side
// of the frame: the camera looks along its local −Z with local +Y as
// screen up, so FaceTop (identity) looks straight down the frame's
// up axis with the frame's forward axis pointing to the top of the
// screen.
var (
	FaceTopMat    = Mat3Identity()
	FaceBottomMat = RotX(math.Pi)
	FaceFrontMat  = RotX(math.Pi / 2)
	FaceBackMat   = Mat3Mul(RotX(math.Pi/2), RotY(math.Pi))
	FaceRightMat  = Mat3Mul(RotX(math.Pi/2), RotY(math.Pi/2))
	FaceLeftMat   = Mat3Mul(RotX(math.Pi/2), RotY(-math.Pi/2))
)
