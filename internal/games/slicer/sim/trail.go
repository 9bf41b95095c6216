package sim

import "github.com/vovakirdan/tui-slicer/internal/core"

// TrailPoint is one pointer sample with its remaining life in ticks.
type TrailPoint struct {
	Pos  core.Vec2
	Life int
}

// Trail is the decaying buffer of recent pointer samples, oldest first.
// Decay runs once per tick and ignores the time scale.
type Trail struct {
	points    []TrailPoint
	life      int
	maxPoints int
}

// NewTrail creates a trail whose samples live for life ticks.
// maxPoints caps the buffer; zero or less means no cap.
func NewTrail(life, maxPoints int) *Trail {
	if life < 1 {
		life = 1
	}
	return &Trail{
		points:    make([]TrailPoint, 0, 32),
		life:      life,
		maxPoints: maxPoints,
	}
}

// Add appends a sample. Non-finite coordinates are rejected and Add returns false.
func (t *Trail) Add(p core.Vec2) bool {
	if !p.IsFinite() {
		return false
	}
	t.points = append(t.points, TrailPoint{Pos: p, Life: t.life})

	if t.maxPoints > 0 && len(t.points) > t.maxPoints {
		drop := len(t.points) - t.maxPoints
		t.points = append(t.points[:0], t.points[drop:]...)
	}
	return true
}

// Decay ages every sample by one tick and prunes the expired ones.
func (t *Trail) Decay() {
	kept := t.points[:0]
	for _, p := range t.points {
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	t.points = kept
}

// Points returns a copy of the samples, oldest first.
func (t *Trail) Points() []TrailPoint {
	out := make([]TrailPoint, len(t.points))
	copy(out, t.points)
	return out
}

// Len returns the number of live samples.
func (t *Trail) Len() int {
	return len(t.points)
}

// Clear drops every sample.
func (t *Trail) Clear() {
	t.points = t.points[:0]
}
