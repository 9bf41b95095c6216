package slicer

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer/sim"
	"github.com/vovakirdan/tui-slicer/internal/logging"
)

// HeadlessOptions configures an autopilot run without a terminal.
type HeadlessOptions struct {
	Config   config.SlicerConfig
	Seed     int64
	Width    int // Terminal columns to emulate
	Height   int // Terminal rows to emulate
	MaxTicks int // Stop after this many ticks; 0 plays until game over
	Interval time.Duration
	Store    sim.HighScoreStore
	Logger   *log.Logger
}

// HeadlessResult summarizes a finished run.
type HeadlessResult struct {
	Score        int
	HighScore    int
	NewHighScore bool
	Ticks        int
	Swipes       int
	Reason       sim.EndReason
	Cues         map[sim.CueKind]int
}

// RunHeadless plays one round with the autopilot on a LoopScheduler.
func RunHeadless(ctx context.Context, opts HeadlessOptions) (HeadlessResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	rec := &sim.CueRecorder{}
	s, err := sim.New(sim.Options{
		Config: opts.Config,
		Seed:   opts.Seed,
		Store:  opts.Store,
		Cues:   rec,
		Logger: logger,
	})
	if err != nil {
		return HeadlessResult{}, err
	}
	s.SetViewport(float64(opts.Width), float64(2*opts.Height))
	if err := s.Start(); err != nil {
		return HeadlessResult{}, err
	}

	bot := NewAutopilot()
	sched := sim.NewLoopScheduler(opts.Interval)
	driver := sim.NewDriver(s, sched)
	driver.BeforeTick = bot.Feed
	driver.AfterTick = func(s *sim.Simulation) {
		if opts.MaxTicks > 0 && s.Round().Tick >= opts.MaxTicks {
			driver.Stop()
		}
	}
	driver.Run()

	err = sched.Run(ctx)

	r := s.Round()
	res := HeadlessResult{
		Score:        r.Score,
		HighScore:    r.HighScore,
		NewHighScore: r.NewHighScore,
		Ticks:        r.Tick,
		Swipes:       bot.Swipes,
		Reason:       r.Reason,
		Cues:         make(map[sim.CueKind]int),
	}
	for _, kind := range []sim.CueKind{sim.CueSlice, sim.CueCombo, sim.CueHazard, sim.CueFreeze, sim.CueThrow} {
		res.Cues[kind] = rec.Count(kind)
	}
	logger.Debug("headless run finished", "score", res.Score, "ticks", res.Ticks, "reason", res.Reason)
	return res, err
}
