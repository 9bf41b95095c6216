package sim

import "github.com/vovakirdan/tui-slicer/internal/core"

// CollisionDetector tests bodies against the newest trail segments.
type CollisionDetector struct {
	Segments int  // How many of the most recent segments are swept
	Tap      bool // Whether a lone sample counts as a cut
}

// Hits reports whether a circle at center with the given radius is cut by pts.
// Segments are tested newest first and the first hit wins.
func (c CollisionDetector) Hits(pts []TrailPoint, center core.Vec2, radius float64) bool {
	n := len(pts)
	if n == 0 {
		return false
	}
	if n == 1 {
		return c.Tap && core.DistSq(pts[0].Pos, center) <= radius*radius
	}

	tested := 0
	for i := n - 1; i > 0 && tested < c.Segments; i-- {
		if core.SegmentIntersectsCircle(pts[i-1].Pos, pts[i].Pos, center, radius) {
			return true
		}
		tested++
	}
	return false
}
