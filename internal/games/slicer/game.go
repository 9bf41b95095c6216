// Package slicer implements Slicer, a swipe-to-cut arcade game.
// Fruit is thrown up from the bottom of the terminal and the player slices it
// by dragging the mouse. Cutting a bomb ends the round.
//
// The rules live in the sim subpackage; this package adapts the simulation to
// the platform's registry.Game contract and draws it into a core.Screen.
package slicer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer/sim"
	"github.com/vovakirdan/tui-slicer/internal/logging"
	"github.com/vovakirdan/tui-slicer/internal/registry"
)

// ID is the registry and score-storage identifier of the game.
const ID = "slicer"

// Options configures a Game.
type Options struct {
	Config config.SlicerConfig // Zero value selects the defaults
	Store  sim.HighScoreStore  // May be nil
	Logger *log.Logger         // May be nil
}

// Game hosts one Slicer simulation. Step is the frame: it fires the driver's
// pending tick, so pausing is just stopping the driver.
type Game struct {
	opts   Options
	logger *log.Logger

	sim    *sim.Simulation
	sched  *sim.ManualScheduler
	driver *sim.Driver

	pending []core.Vec2 // Pointer samples waiting for the next tick
	paused  bool
	bell    bool
	screenW int
	screenH int
}

// New creates a game. Reset must be called before the first Step.
// The config is checked here so that Reset cannot fail later.
func New(opts Options) (*Game, error) {
	if opts.Config == (config.SlicerConfig{}) {
		opts.Config = config.DefaultSlicerConfig()
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("slicer: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{opts: opts, logger: logger}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Slicer"
}

// SetStore attaches high-score persistence. It takes effect on the next round.
func (g *Game) SetStore(store registry.ScoreStore) {
	g.opts.Store = store
}

// SetLogger replaces the logger. It takes effect on the next Reset.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger != nil {
		g.logger = logger
		g.opts.Logger = logger
	}
}

// Reset builds a fresh simulation waiting on its title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s, err := sim.New(sim.Options{
		Config: g.opts.Config,
		Seed:   cfg.Seed,
		Store:  g.opts.Store,
		Cues:   gameCues{g: g, log: logCues{logger: g.logger}},
		Hooks: sim.Hooks{OnGameOver: func(score int) {
			g.logger.Info("round over", "score", score)
		}},
		Logger: g.logger,
	})
	if err != nil {
		// Unreachable with a config accepted by New
		g.logger.Error("cannot reset game", "err", err)
		return
	}
	g.sim = s
	g.sched = &sim.ManualScheduler{}
	g.driver = sim.NewDriver(g.sim, g.sched)
	g.driver.BeforeTick = g.feed

	g.pending = g.pending[:0]
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the playfield to a new terminal size without ending the round.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.sim != nil {
		g.sim.SetViewport(float64(w), float64(2*h))
	}
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.bell = false

	switch g.sim.State() {
	case sim.StateStart:
		if in.Has(core.ActionStart) || in.Has(core.ActionConfirm) {
			g.begin(g.sim.Start)
		}
	case sim.StateGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionStart) {
			g.begin(g.sim.Restart)
		}
	case sim.StatePlaying:
		if in.Has(core.ActionPause) {
			g.togglePause()
		}
	}

	if !g.paused {
		g.pending = append(g.pending, in.Pointer...)
	}
	g.sched.Fire()

	return core.StepResult{State: g.State(), Bell: g.bell}
}

// begin runs a state command and starts the driver on success.
func (g *Game) begin(cmd func() error) {
	if err := cmd(); err != nil {
		g.logger.Debug("ignored command", "err", err)
		return
	}
	g.paused = false
	g.pending = g.pending[:0]
	g.driver.Run()
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.driver.Stop()
		g.pending = g.pending[:0]
	} else if !g.driver.Running() {
		g.driver.Run()
	}
}

// feed hands buffered pointer samples to the simulation right before a tick.
func (g *Game) feed(s *sim.Simulation) {
	for _, p := range g.pending {
		s.AddTrailPoint(p)
	}
	g.pending = g.pending[:0]
}

// Snapshot exposes the simulation for hosts that draw it themselves.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	r := g.sim.Round()
	state := g.sim.State()
	return core.GameState{
		Score:     r.Score,
		HighScore: r.HighScore,
		Lives:     r.Lives,
		Started:   state != sim.StateStart,
		Paused:    g.paused,
		GameOver:  state == sim.StateGameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		g, err := New(Options{})
		if err != nil {
			panic(err) // The built-in defaults always validate
		}
		return g
	})
}
