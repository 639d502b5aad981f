package math

import "math"

// Vec4 is a 4D vector. Axes beyond the active dimension stay at zero.
type Vec4 struct {
	X, Y, Z, W float64
}

// Axis returns component i (0=X, 1=Y, 2=Z, 3=W).
func (v Vec4) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

// SetAxis returns a copy with component i replaced.
func (v Vec4) SetAxis(i int, val float64) Vec4 {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	case 2:
		v.Z = val
	default:
		v.W = val
	}
	return v
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Lerp returns the linear interpolation between v and other at t in [0,1].
func (v Vec4) Lerp(other Vec4, t float64) Vec4 {
	return v.Add(other.Sub(v).Scale(t))
}
