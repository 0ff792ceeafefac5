// Package transition animates the viewport from one orientation to
// another: an instant snap, or a slerp driven by the host's per-frame
// tick until the destination is reached exactly.
package transition

import "math"

// Easing remaps linear progress [0, 1] to eased progress. Curves must
// be monotonic with e(0)=0 and e(1)=1.
type Easing func(t float64) float64

// SCurve is the default ease-in-ease-out curve, a half sine wave:
// (1 + sin((t − 0.5)·π)) / 2. Its derivative vanishes at both ends.
func SCurve(t float64) float64 {
	return (1 + math.Sin((t-0.5)*math.Pi)) / 2
}

// Linear is the identity curve.
func Linear(t float64) float64 {
	return t
}
