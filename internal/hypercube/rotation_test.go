package hypercube

import (
	"math"
	"math/rand"
	"testing"

	vmath "github.com/voxfell/hyperspin/pkg/math"
)

func TestPlaneCount(t *testing.T) {
	wants := map[int]int{2: 1, 3: 3, 4: 6}
	for dim, want := range wants {
		if got := PlaneCount(dim); got != want {
			t.Errorf("PlaneCount(%d) = %d, want %d", dim, got, want)
		}
		if got := len(Planes(dim)); got != want {
			t.Errorf("len(Planes(%d)) = %d, want %d", dim, got, want)
		}
	}
}

func TestPlanesOrder(t *testing.T) {
	want := []Plane{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	got := Planes(4)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Planes(4)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRotorVelocityRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for dim := MinDimension; dim <= MaxDimension; dim++ {
		r := NewRotor(dim, rng)
		if len(r.Velocities()) != PlaneCount(dim) {
			t.Fatalf("dim %d: %d velocities, want %d", dim, len(r.Velocities()), PlaneCount(dim))
		}
		for i, v := range r.Velocities() {
			if v < -VelocityRange || v >= VelocityRange {
				t.Errorf("dim %d plane %d: velocity %v outside ±%v", dim, i, v, VelocityRange)
			}
		}
	}
}

func TestZeroVelocitiesIsIdentity(t *testing.T) {
	for dim := MinDimension; dim <= MaxDimension; dim++ {
		r := NewRotorWithVelocities(dim, make([]float64, PlaneCount(dim)))
		for i := 0; i < VertexCount(dim); i++ {
			v := Vertex(i, dim)
			got := r.Apply(v, 5000)
			want := v
			if dim >= 3 {
				want.Z += CameraZ
			}
			if dim >= 4 {
				want.W += CameraW
			}
			if got != want {
				t.Errorf("dim %d vertex %d: Apply = %v, want %v", dim, i, got, want)
			}
		}
	}
}

func TestFullCyclePeriodicity(t *testing.T) {
	// With every velocity at 1 rad/s, advancing by 2*pi seconds completes a
	// full turn in every plane.
	for dim := MinDimension; dim <= MaxDimension; dim++ {
		vel := make([]float64, PlaneCount(dim))
		for i := range vel {
			vel[i] = 1
		}
		r := NewRotorWithVelocities(dim, vel)
		const t0 = 1234.5
		const cycle = 2 * math.Pi * 1000
		for i := 0; i < VertexCount(dim); i++ {
			v := Vertex(i, dim)
			a := r.Apply(v, t0)
			b := r.Apply(v, t0+cycle)
			if d := a.Sub(b).Length(); d > 1e-9 {
				t.Errorf("dim %d vertex %d: drift %g after full cycle", dim, i, d)
			}
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for dim := MinDimension; dim <= MaxDimension; dim++ {
		r := NewRotor(dim, rng)
		for i := 0; i < VertexCount(dim); i++ {
			v := Vertex(i, dim)
			got := r.Apply(v, 3333)
			if dim >= 3 {
				got.Z -= CameraZ
			}
			if dim >= 4 {
				got.W -= CameraW
			}
			if d := math.Abs(got.Length() - v.Length()); d > 1e-9 {
				t.Errorf("dim %d vertex %d: length drift %g", dim, i, d)
			}
		}
	}
}

func TestCameraTranslationPerDimension(t *testing.T) {
	tests := []struct {
		dim          int
		wantZ, wantW float64
	}{
		{2, 0, 0},
		{3, CameraZ, 0},
		{4, CameraZ, CameraW},
	}
	for _, tt := range tests {
		r := NewRotorWithVelocities(tt.dim, make([]float64, PlaneCount(tt.dim)))
		got := r.Apply(vmath.Vec4{}, 0)
		if got.Z != tt.wantZ || got.W != tt.wantW {
			t.Errorf("dim %d: origin translated to %v, want z=%v w=%v", tt.dim, got, tt.wantZ, tt.wantW)
		}
	}
}
