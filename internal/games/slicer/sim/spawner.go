package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
)

// Spawner decides when to throw and what to throw.
type Spawner struct {
	cfg        config.SlicerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	lastSpawn  int
	nextID     uint64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.SlicerConfig, diff *config.DifficultyManager, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:        cfg,
		difficulty: diff,
		rng:        rng,
		nextID:     1,
	}
}

// Reset restarts the interval countdown. Entity IDs keep increasing.
func (s *Spawner) Reset() {
	s.lastSpawn = 0
}

// Interval returns the spawn interval in ticks at the given score.
func (s *Spawner) Interval(score int) int {
	sp := s.cfg.Spawn
	reduction := 0
	if sp.IntervalScoreStep > 0 {
		reduction = score / sp.IntervalScoreStep
	}
	return max(sp.MinInterval, sp.BaseInterval-reduction)
}

// Update emits a new entity when the interval has elapsed.
// Nothing is emitted for a non-positive viewport.
func (s *Spawner) Update(tick, score int, level, width, height float64) (Entity, bool) {
	if width <= 0 || height <= 0 {
		return Entity{}, false
	}
	if tick-s.lastSpawn < s.Interval(score) {
		return Entity{}, false
	}
	s.lastSpawn = tick
	return s.throw(level, width, height), true
}

// throw builds one entity launched from the bottom edge.
func (s *Spawner) throw(level, width, height float64) Entity {
	sp := s.cfg.Spawn
	ph := s.cfg.Physics

	e := Entity{ID: s.nextID, Kind: KindProjectile}
	s.nextID++

	hazardChance := s.difficulty.HazardChance(sp.HazardChanceBase, sp.HazardChanceMax, level)
	if s.rng.Float64() < hazardChance {
		e.Kind = KindHazard
		e.Radius = s.cfg.Entities.HazardRadius
	} else {
		e.Subtype = pickSubtype(s.rng.Float64(), sp)
		e.Radius = s.cfg.Entities.ProjectileRadius
	}

	// Horizontal launch position, centered when the viewport is narrower than the body
	x := width / 2
	if span := width - 2*e.Radius; span > 0 {
		x = e.Radius + s.rng.Float64()*span
	}
	e.Pos = core.V(x, height)

	ref := ph.ReferenceHeight
	if ref <= 0 {
		ref = height
	}
	speed := s.difficulty.Speed(ph.LaunchSpeed, level) * math.Sqrt(height/ref)
	vy := -speed

	// Aim toward the center so the apex lands inside the playfield
	ticksToApex := speed / ph.Gravity
	vx := (width/2 - x) / ticksToApex * ph.CenterPull
	vx += (s.rng.Float64()*2 - 1) * ph.HorizontalJitter
	e.Vel = core.V(vx, vy)

	e.RotationRate = (s.rng.Float64()*2 - 1) * ph.MaxRotationRate
	return e
}
