package hypercube

import (
	"math"
	"math/rand"

	vmath "github.com/voxfell/hyperspin/pkg/math"
)

const (
	// VelocityRange bounds the angular velocity drawn for each rotation
	// plane, in radians per second. The draw is symmetric around zero.
	VelocityRange = 1.0

	// CameraZ and CameraW translate the rotated shape in front of the
	// projection origin. The shape radius never exceeds 2 (sqrt of the
	// dimension), so the depth divisors stay at 1 or above.
	CameraZ = 3.0
	CameraW = 3.0
)

// Plane is a pair of coordinate axes rotated independently of all other
// planes.
type Plane struct {
	I, J int
}

// Planes enumerates the rotation planes of a dimension: pairs (i, j) with
// i < j < dim, i outer, j inner. Velocity assignment and rotation
// application both rely on this order.
func Planes(dim int) []Plane {
	planes := make([]Plane, 0, PlaneCount(dim))
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			planes = append(planes, Plane{I: i, J: j})
		}
	}
	return planes
}

// PlaneCount returns C(dim, 2).
func PlaneCount(dim int) int {
	return dim * (dim - 1) / 2
}

// Rotor spins points through every rotation plane of a dimension. Each
// plane keeps one angular velocity for the whole session; only the elapsed
// time input changes between frames.
type Rotor struct {
	dim        int
	planes     []Plane
	velocities []float64
}

// NewRotor draws one velocity per plane from rng, uniform in
// [-VelocityRange, VelocityRange).
func NewRotor(dim int, rng *rand.Rand) *Rotor {
	planes := Planes(dim)
	vel := make([]float64, len(planes))
	for i := range vel {
		vel[i] = (rng.Float64()*2 - 1) * VelocityRange
	}
	return &Rotor{dim: dim, planes: planes, velocities: vel}
}

// NewRotorWithVelocities builds a rotor with explicit per-plane velocities,
// matching the Planes enumeration order. len(vel) must equal PlaneCount(dim).
func NewRotorWithVelocities(dim int, vel []float64) *Rotor {
	return &Rotor{dim: dim, planes: Planes(dim), velocities: vel}
}

// Velocities returns the per-plane angular velocities in plane order.
func (r *Rotor) Velocities() []float64 {
	return r.velocities
}

// Apply rotates v in every plane at the given elapsed time (milliseconds),
// plane by plane in enumeration order, then translates the active depth
// axes in front of the camera. Pure with respect to the rotor state.
func (r *Rotor) Apply(v vmath.Vec4, elapsedMS float64) vmath.Vec4 {
	secs := elapsedMS / 1000
	for p, plane := range r.planes {
		theta := r.velocities[p] * secs
		sin, cos := math.Sincos(theta)
		a := v.Axis(plane.I)
		b := v.Axis(plane.J)
		v = v.SetAxis(plane.I, a*cos-b*sin)
		v = v.SetAxis(plane.J, a*sin+b*cos)
	}
	if r.dim >= 3 {
		v.Z += CameraZ
	}
	if r.dim >= 4 {
		v.W += CameraW
	}
	return v
}
