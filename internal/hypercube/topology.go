// Package hypercube generates and transforms N-dimensional hypercube geometry.
package hypercube

import (
	vmath "github.com/voxfell/hyperspin/pkg/math"
)

// Supported dimension range. Axes above MaxDimension do not exist; axes
// between the active dimension and MaxDimension are held at zero.
const (
	MinDimension = 2
	MaxDimension = 4
)

// Edge joins two vertices whose index bit-vectors differ in exactly one bit.
type Edge struct {
	A, B int
}

// Face is a planar quadrilateral. Corners are ordered so that walking
// A→B→C→D traces a simple loop, never the diagonal.
type Face struct {
	A, B, C, D int
}

// ValidDimension reports whether dim is a renderable hypercube dimension.
func ValidDimension(dim int) bool {
	return dim >= MinDimension && dim <= MaxDimension
}

// VertexCount returns the number of vertices, 2^dim.
func VertexCount(dim int) int {
	return 1 << dim
}

// Vertex decodes a vertex index into coordinates. Bit a of the index picks
// the sign on axis a (0 → -1, 1 → +1); axes at or above dim stay zero.
func Vertex(index, dim int) vmath.Vec4 {
	var v vmath.Vec4
	for axis := 0; axis < dim; axis++ {
		if index>>axis&1 == 1 {
			v = v.SetAxis(axis, 1)
		} else {
			v = v.SetAxis(axis, -1)
		}
	}
	return v
}

// Edges returns every edge of the dim-cube exactly once, dim*2^(dim-1) in
// total. Pairs are emitted with A < B, ascending in A then axis.
func Edges(dim int) []Edge {
	edges := make([]Edge, 0, dim<<(dim-1))
	for i := 0; i < VertexCount(dim); i++ {
		for axis := 0; axis < dim; axis++ {
			j := i ^ 1<<axis
			if i < j {
				edges = append(edges, Edge{A: i, B: j})
			}
		}
	}
	return edges
}

// Faces returns every square face of the dim-cube exactly once,
// C(dim,2)*2^(dim-2) in total. For a base vertex i and axis pair a < b the
// corners are i, i^(1<<a), i^(1<<a)^(1<<b), i^(1<<b); emitting only when the
// base vertex has both axis bits clear keeps each face unique and gives every
// loop the same winding.
func Faces(dim int) []Face {
	var faces []Face
	for i := 0; i < VertexCount(dim); i++ {
		for a := 0; a < dim; a++ {
			for b := a + 1; b < dim; b++ {
				j := i ^ 1<<a
				k := i ^ 1<<b
				l := j ^ 1<<b
				if i < j && j < k && k < l {
					faces = append(faces, Face{A: i, B: j, C: l, D: k})
				}
			}
		}
	}
	return faces
}
