package render

import (
	"github.com/voxfell/hyperspin/internal/hypercube"
	vmath "github.com/voxfell/hyperspin/pkg/math"
)

// Plain-edge stroke and face fill parameters. The shaded path derives its
// own opacity and width per sub-segment.
const (
	plainWidth   = 2.0
	plainOpacity = 0.7
	faceOpacity  = 0.08
)

// Renderer draws one scene frame at a time onto a surface. It keeps no
// state of its own; everything per-session lives in the Scene.
type Renderer struct{}

// New creates a frame renderer.
func New() *Renderer {
	return &Renderer{}
}

// Frame renders the scene once: clear, rotate every vertex at the current
// clamped clock, then fill faces (optional) and stroke edges.
func (r *Renderer) Frame(scene *Scene, surf Surface) {
	surf.Clear()

	width, height := surf.Size()
	dim := scene.Dimension()
	rotor := scene.Rotor()
	elapsed := scene.Elapsed()

	// Rotate each vertex once; edges and faces index into the slice.
	rotated := make([]vmath.Vec4, hypercube.VertexCount(dim))
	for i := range rotated {
		rotated[i] = rotor.Apply(hypercube.Vertex(i, dim), elapsed)
	}

	if scene.FaceFill {
		for _, f := range hypercube.Faces(dim) {
			quad := [4]vmath.Vec2{
				hypercube.Project(rotated[f.A], width, height),
				hypercube.Project(rotated[f.B], width, height),
				hypercube.Project(rotated[f.C], width, height),
				hypercube.Project(rotated[f.D], width, height),
			}
			surf.FillQuad(quad, faceOpacity)
		}
	}

	for _, e := range hypercube.Edges(dim) {
		a, b := rotated[e.A], rotated[e.B]
		if scene.EdgeShading {
			r.shadedEdge(scene, surf, a, b, width, height)
			continue
		}
		surf.StrokeLine(
			hypercube.Project(a, width, height),
			hypercube.Project(b, width, height),
			plainWidth, plainOpacity,
		)
	}
}

// shadedEdge strokes an edge as SubSegments pieces, interpolated in the
// post-rotation space so the depth gradient follows the edge through 3D,
// not across the screen.
func (r *Renderer) shadedEdge(scene *Scene, surf Surface, a, b vmath.Vec4, width, height int) {
	depth := scene.Depth()
	prev := a
	prevPt := hypercube.Project(a, width, height)
	for i := 1; i <= hypercube.SubSegments; i++ {
		t := float64(i) / hypercube.SubSegments
		cur := a.Lerp(b, t)
		curPt := hypercube.Project(cur, width, height)

		// One depth sample per sub-segment, taken at its start.
		depth.Observe(prev.Z)
		opacity, strokeWidth := depth.Shade(prev.Z)
		surf.StrokeLine(prevPt, curPt, strokeWidth, opacity)

		prev, prevPt = cur, curPt
	}
}
