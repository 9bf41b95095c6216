package sim

// Snapshot is a read-only copy of everything a renderer or HUD needs.
// Mutating it never affects the simulation.
type Snapshot struct {
	State        State
	Reason       EndReason
	Tick         int
	Score        int
	Lives        int
	HighScore    int
	NewHighScore bool
	Combo        int
	Level        float64
	TimeScale    float64
	Freeze       int // Ticks left on the freeze effect
	Width        float64
	Height       float64

	Entities  []Entity
	Debris    []Debris
	Particles []Particle
	Texts     []FloatingText
	Trail     []TrailPoint
}

// Snapshot copies the current world.
func (s *Simulation) Snapshot() Snapshot {
	r := s.round
	return Snapshot{
		State:        s.state,
		Reason:       r.Reason,
		Tick:         r.Tick,
		Score:        r.Score,
		Lives:        r.Lives,
		HighScore:    r.HighScore,
		NewHighScore: r.NewHighScore,
		Combo:        s.combo.Count(),
		Level:        r.Level,
		TimeScale:    s.effect.TimeScale(),
		Freeze:       s.effect.Remaining(),
		Width:        s.width,
		Height:       s.height,
		Entities:     append([]Entity(nil), s.entities...),
		Debris:       append([]Debris(nil), s.debris...),
		Particles:    append([]Particle(nil), s.particles...),
		Texts:        append([]FloatingText(nil), s.texts...),
		Trail:        s.trail.Points(),
	}
}
