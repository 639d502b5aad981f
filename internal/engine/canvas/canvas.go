// Package canvas implements the render surface on a software 2D context.
package canvas

import (
	"image"

	"github.com/gogpu/gg"

	vmath "github.com/voxfell/hyperspin/pkg/math"
)

// Style holds the surface colors. Stroke and fill opacity from the renderer
// multiply into the alpha channels.
type Style struct {
	Background gg.RGBA
	Edge       gg.RGBA
	Face       gg.RGBA
}

// DefaultStyle returns the stock dark theme.
func DefaultStyle() Style {
	return Style{
		Background: gg.RGBA{R: 0.04, G: 0.05, B: 0.09, A: 1},
		Edge:       gg.RGBA{R: 0.55, G: 0.78, B: 1, A: 1},
		Face:       gg.RGBA{R: 0.3, G: 0.55, B: 0.95, A: 1},
	}
}

// Canvas wraps a software gg context as the renderer's drawing surface.
// Renderer coordinates are centered on the viewport; the context transform
// carries the center offset so the projection never sees it.
type Canvas struct {
	dc     *gg.Context
	style  Style
	width  int
	height int
}

// New creates a canvas of the given pixel size.
func New(width, height int, style Style) *Canvas {
	c := &Canvas{style: style}
	c.Resize(width, height)
	return c
}

// Resize replaces the backing context. Contents are lost; the next frame
// redraws everything anyway.
func (c *Canvas) Resize(width, height int) {
	if c.dc != nil {
		_ = c.dc.Close()
	}
	c.dc = gg.NewContext(width, height)
	c.dc.Translate(float64(width)/2, float64(height)/2)
	c.dc.SetLineCap(gg.LineCapRound)
	c.width = width
	c.height = height
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(c.style.Background)
}

// StrokeLine draws one segment in the edge color.
func (c *Canvas) StrokeLine(a, b vmath.Vec2, width, opacity float64) {
	col := c.style.Edge
	c.dc.SetRGBA(col.R, col.G, col.B, col.A*opacity)
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(a.X, a.Y)
	c.dc.LineTo(b.X, b.Y)
	_ = c.dc.Stroke()
}

// FillQuad fills a quadrilateral in the face color.
func (c *Canvas) FillQuad(quad [4]vmath.Vec2, opacity float64) {
	col := c.style.Face
	c.dc.SetRGBA(col.R, col.G, col.B, col.A*opacity)
	c.dc.MoveTo(quad[0].X, quad[0].Y)
	for _, p := range quad[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	_ = c.dc.Fill()
}

// Image returns the rendered frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Pixels returns the raw RGBA bytes and row pitch for texture upload.
func (c *Canvas) Pixels() ([]byte, int) {
	img := c.dc.Image().(*image.RGBA)
	return img.Pix, img.Stride
}

// Close releases the backing context.
func (c *Canvas) Close() error {
	if c.dc == nil {
		return nil
	}
	return c.dc.Close()
}
