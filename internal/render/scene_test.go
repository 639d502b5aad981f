package render

import (
	"testing"

	"github.com/voxfell/hyperspin/internal/hypercube"
)

func TestNewSceneRejectsBadDimension(t *testing.T) {
	for _, dim := range []int{0, 1, 5, -3} {
		if _, err := NewScene(dim, 1); err == nil {
			t.Errorf("NewScene(%d) accepted an invalid dimension", dim)
		}
	}
}

func TestSetDimensionRerollsAndResets(t *testing.T) {
	scene := mustScene(t, 4)
	scene.Depth().Observe(1)
	scene.Depth().Observe(5)

	if err := scene.SetDimension(3); err != nil {
		t.Fatalf("SetDimension(3): %v", err)
	}
	if scene.Dimension() != 3 {
		t.Errorf("Dimension = %d, want 3", scene.Dimension())
	}
	if got := len(scene.Rotor().Velocities()); got != hypercube.PlaneCount(3) {
		t.Errorf("%d velocities, want %d", got, hypercube.PlaneCount(3))
	}
	if _, _, ok := scene.Depth().Bounds(); ok {
		t.Error("depth range survived a dimension change")
	}
}

func TestSetDimensionKeepsStateOnError(t *testing.T) {
	scene := mustScene(t, 4)
	if err := scene.SetDimension(7); err == nil {
		t.Fatal("SetDimension(7) did not fail")
	}
	if scene.Dimension() != 4 {
		t.Errorf("Dimension = %d after failed change, want 4", scene.Dimension())
	}
}

func TestClockWarmupClamp(t *testing.T) {
	scene := mustScene(t, 2)
	if got := scene.Elapsed(); got != 0 {
		t.Errorf("Elapsed at start = %v, want 0", got)
	}

	scene.Advance(400)
	if got := scene.Elapsed(); got != 0 {
		t.Errorf("Elapsed during warmup = %v, want 0", got)
	}

	scene.Advance(900)
	if got := scene.Elapsed(); got != 300 {
		t.Errorf("Elapsed after warmup = %v, want 300", got)
	}

	// The clock keeps running across a dimension change.
	if err := scene.SetDimension(4); err != nil {
		t.Fatalf("SetDimension(4): %v", err)
	}
	if got := scene.Elapsed(); got != 300 {
		t.Errorf("Elapsed after dimension change = %v, want 300", got)
	}
}

func TestSeedReproducesVelocities(t *testing.T) {
	a := mustSceneSeed(t, 4, 99)
	b := mustSceneSeed(t, 4, 99)
	va, vb := a.Rotor().Velocities(), b.Rotor().Velocities()
	for i := range va {
		if va[i] != vb[i] {
			t.Fatalf("velocity %d differs across equal seeds: %v vs %v", i, va[i], vb[i])
		}
	}
}

func mustSceneSeed(t *testing.T, dim int, seed int64) *Scene {
	t.Helper()
	s, err := NewScene(dim, seed)
	if err != nil {
		t.Fatalf("NewScene(%d, %d): %v", dim, seed, err)
	}
	return s
}
