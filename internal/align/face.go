// Package align resolves a reference frame and a requested face into
// the camera orientation that views the frame from that side.
package align

import (
	"fmt"
	"strings"

	"viewalign/internal/mathutil"
)

// Face names one of the six canonical view directions relative to a
// reference frame.
type Face int

const (
	Top Face = iota
	Bottom
	Front
	Back
	Right
	Left
)

var faceNames = [...]string{"top", "bottom", "front", "back", "right", "left"}

func (f Face) String() string {
	if f < Top || f > Left {
		return fmt.Sprintf("face(%d)", int(f))
	}
	return faceNames[f]
}

// ParseFace converts a face name (case-insensitive) to a Face.
func ParseFace(s string) (Face, error) {
	for i, n := range faceNames {
		if strings.EqualFold(s, n) {
			return Face(i), nil
		}
	}
	return Top, fmt.Errorf("align: unknown face %q", s)
}

// Opposite returns the face on the other side of the frame.
func (f Face) Opposite() Face {
	switch f {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Front:
		return Back
	case Back:
		return Front
	case Right:
		return Left
	default:
		return Right
	}
}

// Faces lists all six faces in menu order.
func Faces() []Face {
	return []Face{Top, Bottom, Front, Back, Right, Left}
}

// matrix returns the precomputed viewpoint rotation for f.
func (f Face) matrix() mathutil.Mat3 {
	switch f {
	case Bottom:
		return mathutil.FaceBottomMat
	case Front:
		return mathutil.FaceFrontMat
	case Back:
		return mathutil.FaceBackMat
	case Right:
		return mathutil.FaceRightMat
	case Left:
		return mathutil.FaceLeftMat
	default:
		return mathutil.FaceTopMat
	}
}
