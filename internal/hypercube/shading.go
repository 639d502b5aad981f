package hypercube

// SubSegments is the number of linear pieces a shaded edge is split into.
// Each piece gets its own depth-derived opacity and width, which fakes a
// depth gradient along the edge without occlusion testing.
const SubSegments = 10

// Shading output ranges. Depth maps inverted: the nearest observed depth
// gets the top of both ranges.
const (
	minOpacity = 0.1
	maxOpacity = 0.7
	minWidth   = 2.0
	maxWidth   = 3.0
)

// DepthRange tracks the running minimum and maximum depth sampled during a
// session. The range only widens; Reset is called on dimension change, never
// mid-session.
type DepthRange struct {
	min, max float64
	seen     bool
}

// Observe widens the range to include depth.
func (r *DepthRange) Observe(depth float64) {
	if !r.seen {
		r.min, r.max, r.seen = depth, depth, true
		return
	}
	if depth < r.min {
		r.min = depth
	}
	if depth > r.max {
		r.max = depth
	}
}

// Bounds returns the observed minimum and maximum, and whether any depth
// has been observed yet.
func (r *DepthRange) Bounds() (min, max float64, ok bool) {
	return r.min, r.max, r.seen
}

// Reset forgets all observed depths.
func (r *DepthRange) Reset() {
	*r = DepthRange{}
}

// Shade maps a depth sample to stroke opacity and width. Smaller depth is
// nearer to the camera and shades stronger. While the range is empty or
// degenerate (dimension 2 keeps depth constant) the sample counts as
// nearest.
func (r *DepthRange) Shade(depth float64) (opacity, width float64) {
	t := 1.0
	if r.seen && r.max > r.min {
		t = (r.max - depth) / (r.max - r.min)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return minOpacity + t*(maxOpacity-minOpacity), minWidth + t*(maxWidth-minWidth)
}
