package hypercube

import (
	vmath "github.com/voxfell/hyperspin/pkg/math"
)

// Focal distances for the two perspective divisions. Matched to the camera
// offsets so a unit shape roughly fills the unit square before screen
// scaling.
const (
	FocalW = 3.0
	FocalZ = 3.0
)

// Project maps a rotated, camera-translated point down to viewport
// coordinates centered on the origin. The w division foreshortens x and y,
// the z division foreshortens them again, then the result is scaled to the
// viewport. The depth coordinates are consumed by their own stage, not
// rescaled by the previous one; otherwise the w division would cancel out
// of the final position entirely.
//
// An axis that is exactly zero is unused in the current dimension (the
// camera translation keeps active depth axes at 1 or above), so its
// division stage is bypassed rather than computed.
func Project(v vmath.Vec4, width, height int) vmath.Vec2 {
	x, y := v.X, v.Y
	if v.W != 0 {
		k := FocalW / v.W
		x *= k
		y *= k
	}
	if v.Z != 0 {
		k := FocalZ / v.Z
		x *= k
		y *= k
	}
	s := float64(min(width, height)) / 2
	return vmath.Vec2{X: x * s, Y: y * s}
}
