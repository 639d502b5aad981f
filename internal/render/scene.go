package render

import (
	"fmt"
	"math/rand"

	"github.com/voxfell/hyperspin/internal/hypercube"
)

// warmupMS delays the rotation start so the shape is readable for a moment
// after launch. The clock keeps accumulating during the warmup; only the
// rotation input is clamped.
const warmupMS = 1000.0

// Scene holds all state that survives between frames: the active dimension,
// the per-plane rotation velocities, the observed depth bounds and the
// animation clock. Single writer, driven by the render loop.
type Scene struct {
	// EdgeShading subdivides edges and strokes them with depth-derived
	// opacity and width.
	EdgeShading bool
	// FaceFill additionally fills every face as a translucent quad.
	FaceFill bool

	dim   int
	rotor *hypercube.Rotor
	depth hypercube.DepthRange
	clock float64
	rng   *rand.Rand
}

// NewScene creates a scene at the given dimension. The seed feeds the
// rotation velocity draws; equal seeds reproduce the same animation.
func NewScene(dim int, seed int64) (*Scene, error) {
	s := &Scene{rng: rand.New(rand.NewSource(seed))}
	if err := s.SetDimension(dim); err != nil {
		return nil, err
	}
	return s, nil
}

// SetDimension switches the active dimension, re-rolls the per-plane
// rotation velocities and resets the depth bounds. The clock keeps running.
func (s *Scene) SetDimension(dim int) error {
	if !hypercube.ValidDimension(dim) {
		return fmt.Errorf("unsupported dimension %d, want %d..%d",
			dim, hypercube.MinDimension, hypercube.MaxDimension)
	}
	s.dim = dim
	s.rotor = hypercube.NewRotor(dim, s.rng)
	s.depth.Reset()
	return nil
}

// Dimension returns the active dimension.
func (s *Scene) Dimension() int {
	return s.dim
}

// Advance accumulates elapsed wall time in milliseconds. The first frame of
// a session passes zero.
func (s *Scene) Advance(dtMS float64) {
	s.clock += dtMS
}

// Elapsed returns the clamped clock that drives rotation: accumulated time
// minus the warmup delay, floored at zero.
func (s *Scene) Elapsed() float64 {
	e := s.clock - warmupMS
	if e < 0 {
		return 0
	}
	return e
}

// Rotor returns the rotation transform for the current dimension.
func (s *Scene) Rotor() *hypercube.Rotor {
	return s.rotor
}

// Depth returns the session depth bounds used by edge shading.
func (s *Scene) Depth() *hypercube.DepthRange {
	return &s.depth
}
