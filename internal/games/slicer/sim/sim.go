package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/logging"
)

// Options configures a Simulation. A zero Config selects
// config.DefaultSlicerConfig(); any other Config must pass Validate.
type Options struct {
	Config config.SlicerConfig
	Seed   int64
	Store  HighScoreStore // May be nil
	Cues   Cues           // May be nil
	Hooks  Hooks
	Logger *log.Logger // May be nil
}

// Simulation is the whole game world. It is owned by a single goroutine:
// Tick, AddTrailPoint and the state commands must not be called concurrently.
type Simulation struct {
	cfg        config.SlicerConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	spawner    *Spawner
	physics    Integrator
	detector   CollisionDetector
	trail      *Trail
	combo      *ComboTracker
	effect     *EffectController

	store  HighScoreStore
	cues   Cues
	hooks  Hooks
	logger *log.Logger

	state  State
	round  Round
	width  float64
	height float64

	entities  []Entity
	debris    []Debris
	particles []Particle
	texts     []FloatingText
}

// New creates a simulation in StateStart. Invalid configs are rejected with
// an error wrapping config.ErrInvalidConfig.
func New(opts Options) (*Simulation, error) {
	cfg := opts.Config
	if cfg == (config.SlicerConfig{}) {
		cfg = config.DefaultSlicerConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	diff := config.NewDifficultyManager(cfg.Difficulty)

	s := &Simulation{
		cfg:        cfg,
		rng:        rng,
		difficulty: diff,
		spawner:    NewSpawner(cfg, diff, rng),
		physics:    Integrator{Gravity: cfg.Physics.Gravity, Drag: cfg.Effects.ParticleDrag},
		detector:   CollisionDetector{Segments: cfg.Trail.SweepSegments, Tap: cfg.Trail.TapSlices},
		trail:      NewTrail(cfg.Trail.Life, cfg.Trail.MaxPoints),
		combo:      NewComboTracker(cfg.Scoring.ComboWindow),
		effect:     NewEffectController(cfg.Effects.FreezeDuration, cfg.Effects.FreezeTimeScale),
		store:      opts.Store,
		cues:       opts.Cues,
		hooks:      opts.Hooks,
		logger:     opts.Logger,
		state:      StateStart,
	}
	if s.cues == nil {
		s.cues = noCues{}
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	s.round = newRound(cfg.Gameplay.Lives, 0, diff.Level(0, 0))
	return s, nil
}

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.SlicerConfig {
	return s.cfg
}

// SetViewport sets the playfield size in simulation units. Any values are
// accepted; a non-positive size suppresses spawning and bottom-edge checks.
func (s *Simulation) SetViewport(width, height float64) {
	s.width = width
	s.height = height
}

// Viewport returns the playfield size.
func (s *Simulation) Viewport() (width, height float64) {
	return s.width, s.height
}

// State returns the state machine position.
func (s *Simulation) State() State {
	return s.state
}

// Round returns a copy of the round counters.
func (s *Simulation) Round() Round {
	return s.round
}

// Start begins the first round.
func (s *Simulation) Start() error {
	if s.state != StateStart {
		return fmt.Errorf("%w: start while %s", ErrInvalidTransition, s.state)
	}
	s.beginRound()
	return nil
}

// Restart begins a fresh round after a game over.
func (s *Simulation) Restart() error {
	if s.state != StateGameOver {
		return fmt.Errorf("%w: restart while %s", ErrInvalidTransition, s.state)
	}
	s.beginRound()
	return nil
}

// beginRound reinitializes every per-round value and enters StatePlaying.
func (s *Simulation) beginRound() {
	best := 0
	if s.store != nil {
		v, err := s.store.HighScore()
		if err != nil {
			s.logger.Warn("could not read high score", "err", err)
		} else {
			best = v
		}
	}

	s.round = newRound(s.cfg.Gameplay.Lives, best, s.difficulty.Level(0, 0))
	s.entities = s.entities[:0]
	s.debris = s.debris[:0]
	s.particles = s.particles[:0]
	s.texts = s.texts[:0]
	s.trail.Clear()
	s.combo.Reset()
	s.effect.Reset()
	s.spawner.Reset()
	s.state = StatePlaying
}

// AddTrailPoint feeds one pointer sample. Samples are only taken while
// playing, and non-finite samples are rejected.
func (s *Simulation) AddTrailPoint(p core.Vec2) bool {
	if s.state != StatePlaying {
		return false
	}
	return s.trail.Add(p)
}

// Tick advances the world by one fixed step. Outside StatePlaying it does nothing.
func (s *Simulation) Tick() {
	if s.state != StatePlaying {
		return
	}
	r := &s.round

	s.trail.Decay()

	if e, ok := s.spawner.Update(r.Tick, r.Score, r.Level, s.width, s.height); ok {
		s.entities = append(s.entities, e)
		s.cues.Cue(Cue{Kind: CueThrow})
	}

	s.integrate(s.effect.TimeScale())

	s.collide()
	if s.state != StatePlaying {
		return
	}

	s.resolveBounds()
	if s.state != StatePlaying {
		return
	}
	s.cullCosmetics()

	s.effect.Advance()
	s.combo.Expire(r.Tick)

	r.Tick++
	r.Level = s.difficulty.Level(r.Score, r.Tick)
}

func (s *Simulation) integrate(ts float64) {
	for i := range s.entities {
		s.physics.Entity(&s.entities[i], ts)
	}
	for i := range s.debris {
		s.physics.Debris(&s.debris[i], ts)
	}
	for i := range s.particles {
		s.physics.Particle(&s.particles[i], ts)
	}
	for i := range s.texts {
		s.physics.Text(&s.texts[i], ts)
	}
}

// collide cuts every live entity touched by the trail. A hazard ends the
// round on the spot and the remaining entities are left unprocessed.
func (s *Simulation) collide() {
	pts := s.trail.points
	if len(pts) == 0 {
		return
	}

	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Sliced || !s.detector.Hits(pts, e.Pos, e.Radius) {
			kept = append(kept, e)
			continue
		}
		e.Sliced = true

		if e.Kind == KindHazard {
			s.detonate(e)
			s.endRound(EndHazard)
			return
		}
		s.slice(e)
	}
	s.entities = kept
}

// slice scores a projectile and turns it into debris and sparks.
func (s *Simulation) slice(e Entity) {
	r := &s.round
	sc := s.cfg.Scoring
	info := e.Subtype.Info()

	count := s.combo.Hit(r.Tick)
	points := sc.BaseScore + ComboBonus(count, sc.ComboBonusStep) + e.Subtype.Bonus(sc)
	r.award(points)
	s.cues.Cue(Cue{Kind: CueSlice})

	textColor := core.ColorBrightWhite
	if info.Rarity == RarityGolden {
		textColor = core.ColorGold
	}
	s.addText(e.Pos, fmt.Sprintf("+%d", points), textColor)

	if count >= 2 {
		s.cues.Cue(Cue{Kind: CueCombo, Count: count})
		s.addText(e.Pos.Add(core.V(0, -4)), fmt.Sprintf("COMBO x%d", count), core.ColorBrightMagenta)
	}
	if info.Freeze {
		s.effect.Trigger()
		s.cues.Cue(Cue{Kind: CueFreeze})
		s.addText(e.Pos.Add(core.V(0, -8)), "FREEZE!", core.ColorIce)
	}

	s.split(e)
	s.burst(e.Pos, s.cfg.Effects.ParticleCount, s.cfg.Effects.ParticleSpeed, info.Flesh, '•')
}

// split replaces a cut projectile with two halves flying apart sideways.
func (s *Simulation) split(e Entity) {
	fx := s.cfg.Effects
	for _, side := range [...]Side{SideLeft, SideRight} {
		dir := float64(side)
		s.debris = append(s.debris, Debris{
			Pos:          e.Pos.Add(core.V(dir*e.Radius*0.5, 0)),
			Vel:          e.Vel.Add(core.V(dir*fx.DebrisSpread, 0)),
			Radius:       e.Radius,
			Subtype:      e.Subtype,
			Rotation:     e.Rotation,
			RotationRate: e.RotationRate + dir*0.05,
			Life:         fx.DebrisLife,
			Side:         side,
		})
	}
}

// detonate shows the hazard blowing up.
func (s *Simulation) detonate(e Entity) {
	s.cues.Cue(Cue{Kind: CueHazard})
	fx := s.cfg.Effects
	s.burst(e.Pos, fx.ParticleCount*2, fx.ParticleSpeed*1.5, core.ColorOrange, '*')
	s.addText(e.Pos, "BOOM", core.ColorBrightRed)
}

func (s *Simulation) burst(at core.Vec2, n int, speed float64, color core.Color, glyph rune) {
	life := s.cfg.Effects.ParticleLife
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + s.rng.Float64()*0.5
		v := speed * (0.5 + 0.5*s.rng.Float64())
		s.particles = append(s.particles, Particle{
			Pos:     at,
			Vel:     core.V(math.Cos(angle)*v, math.Sin(angle)*v),
			Life:    life,
			MaxLife: life,
			Color:   color,
			Glyph:   glyph,
		})
	}
}

func (s *Simulation) addText(at core.Vec2, text string, color core.Color) {
	s.texts = append(s.texts, FloatingText{
		Pos:   at,
		Vel:   core.V(0, -0.15),
		Text:  text,
		Life:  s.cfg.Effects.TextLife,
		Color: color,
	})
}

// resolveBounds removes entities that fell past the bottom edge.
// An uncut projectile costs a life and breaks the combo.
func (s *Simulation) resolveBounds() {
	if s.height <= 0 {
		return
	}

	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Pos.Y <= s.height+e.Radius {
			kept = append(kept, e)
			continue
		}
		if e.Kind != KindProjectile || e.Sliced {
			continue
		}

		s.combo.Reset()
		if s.round.loseLife() {
			s.endRound(EndOutOfLives)
			return
		}
	}
	s.entities = kept
}

// cullCosmetics drops expired or off-screen debris, particles and texts.
func (s *Simulation) cullCosmetics() {
	debris := s.debris[:0]
	for _, d := range s.debris {
		if d.Life > 0 && (s.height <= 0 || d.Pos.Y <= s.height+2*d.Radius) {
			debris = append(debris, d)
		}
	}
	s.debris = debris

	particles := s.particles[:0]
	for _, p := range s.particles {
		if p.Life > 0 && (s.height <= 0 || p.Pos.Y <= s.height) {
			particles = append(particles, p)
		}
	}
	s.particles = particles

	texts := s.texts[:0]
	for _, t := range s.texts {
		if t.Life > 0 {
			texts = append(texts, t)
		}
	}
	s.texts = texts
}

// endRound moves to StateGameOver exactly once per round.
func (s *Simulation) endRound(reason EndReason) {
	if s.state != StatePlaying {
		return
	}
	s.state = StateGameOver

	r := &s.round
	r.Reason = reason
	s.entities = s.entities[:0]
	s.trail.Clear()

	if r.Score > r.HighScore {
		r.HighScore = r.Score
		r.NewHighScore = true
		if s.store != nil {
			if err := s.store.SetHighScore(r.Score); err != nil {
				s.logger.Warn("could not save high score", "score", r.Score, "err", err)
			}
		}
	}

	s.logger.Debug("round over", "reason", reason, "score", r.Score, "ticks", r.Tick)
	if s.hooks.OnGameOver != nil {
		s.hooks.OnGameOver(r.Score)
	}
}
