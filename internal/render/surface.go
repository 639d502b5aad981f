// Package render owns the per-session scene state and draws hypercube
// frames onto a 2D surface.
package render

import (
	"image"

	vmath "github.com/voxfell/hyperspin/pkg/math"
)

// Surface is the 2D drawing target for the frame renderer. Coordinates are
// centered on the viewport; the implementation carries the center offset as
// its own translation.
type Surface interface {
	// Size returns the viewport size in pixels.
	Size() (width, height int)
	// Clear erases the whole surface to its background color.
	Clear()
	// StrokeLine draws one segment with the given stroke width and the
	// surface's edge color at the given opacity.
	StrokeLine(a, b vmath.Vec2, width, opacity float64)
	// FillQuad fills a quadrilateral with the surface's face color at the
	// given opacity.
	FillQuad(quad [4]vmath.Vec2, opacity float64)
}

// FrameImager is a Surface whose rendered pixels can be read back, used by
// the offline exporters.
type FrameImager interface {
	Surface
	Image() image.Image
}
