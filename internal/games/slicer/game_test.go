package slicer

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer/sim"
	"github.com/vovakirdan/tui-slicer/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func mustGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func startFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionStart)
	return in
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatal("slicer should register itself")
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Slicer" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestStartAndTick(t *testing.T) {
	g := mustGame(t, Options{})
	g.Reset(testRuntime())

	if g.State().Started {
		t.Fatal("game should wait on the title screen")
	}
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 0 {
		t.Error("no ticks should run before start")
	}

	res := g.Step(startFrame())
	if !res.State.Started || res.State.GameOver {
		t.Fatalf("unexpected state after start: %+v", res.State)
	}
	for i := 0; i < 9; i++ {
		g.Step(core.NewInputFrame())
	}
	if got := g.Snapshot().Tick; got != 10 {
		t.Errorf("tick = %d, expected 10", got)
	}
	if g.State().Lives != config.DefaultSlicerConfig().Gameplay.Lives {
		t.Errorf("lives = %d", g.State().Lives)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	g := mustGame(t, Options{})
	g.Reset(testRuntime())
	g.Step(startFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	tick := g.Snapshot().Tick

	in := core.NewInputFrame()
	in.AddPointer(core.V(10, 10))
	for i := 0; i < 5; i++ {
		g.Step(in)
	}
	if g.Snapshot().Tick != tick {
		t.Error("ticks should not run while paused")
	}
	if len(g.Snapshot().Trail) != 0 {
		t.Error("samples should be dropped while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("game should resume")
	}
	if g.Snapshot().Tick != tick+1 {
		t.Errorf("tick = %d, expected %d", g.Snapshot().Tick, tick+1)
	}
}

func TestPointerSamplesReachTrail(t *testing.T) {
	g := mustGame(t, Options{})
	g.Reset(testRuntime())
	g.Step(startFrame())

	in := core.NewInputFrame()
	in.AddPointer(core.V(5, 5))
	in.AddPointer(core.V(6, 5))
	g.Step(in)

	if got := len(g.Snapshot().Trail); got != 2 {
		t.Errorf("trail has %d points, expected 2", got)
	}
}

// bombsOnly throws a bomb every tick.
func bombsOnly() config.SlicerConfig {
	cfg := config.DefaultSlicerConfig()
	cfg.Spawn.BaseInterval = 1
	cfg.Spawn.MinInterval = 1
	cfg.Spawn.HazardChanceBase = 0.99
	cfg.Spawn.HazardChanceMax = 0.99
	return cfg
}

func TestHazardRingsBellAndEndsRound(t *testing.T) {
	g := mustGame(t, Options{Config: bombsOnly()})
	g.Reset(testRuntime())
	g.Step(startFrame())

	var target sim.Entity
	found := false
	for i := 0; i < 20 && !found; i++ {
		g.Step(core.NewInputFrame())
		for _, e := range g.Snapshot().Entities {
			if e.Kind == sim.KindHazard {
				target, found = e, true
				break
			}
		}
	}
	if !found {
		t.Fatal("expected a bomb in flight")
	}

	in := core.NewInputFrame()
	in.AddPointer(core.V(0, target.Pos.Y))
	in.AddPointer(core.V(80, target.Pos.Y))
	res := g.Step(in)

	if !res.Bell {
		t.Error("detonation should ring the bell")
	}
	if !res.State.GameOver {
		t.Fatal("cutting a bomb should end the round")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res = g.Step(restart)
	if res.State.GameOver || res.Bell {
		t.Errorf("restart should begin a quiet new round, got %+v", res)
	}
}

func TestRenderScreens(t *testing.T) {
	g := mustGame(t, Options{})
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "S L I C E R") {
		t.Error("title screen should show the game name")
	}

	g.Step(startFrame())
	g.Render(screen)
	out := screen.String()
	if strings.Contains(out, "S L I C E R") {
		t.Error("title box should disappear once playing")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD should show the score, got %q", screen.Row(0))
	}
	if strings.Count(screen.Row(0), string(LifeChar)) != 3 {
		t.Errorf("HUD should show three lives, got %q", screen.Row(0))
	}
}

func TestRenderEntitiesAndTrail(t *testing.T) {
	cfg := config.DefaultSlicerConfig()
	cfg.Spawn.BaseInterval = 1
	cfg.Spawn.MinInterval = 1
	g := mustGame(t, Options{Config: cfg})
	g.Reset(testRuntime())
	g.Step(startFrame())
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	drawn := 0
	for y := 1; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if screen.Get(x, y) != ' ' {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("entities in flight should be drawn")
	}

	// Fruit has not risen this far yet, so the blade is drawn on empty sky
	in := core.NewInputFrame()
	in.AddPointer(core.V(2, 5))
	in.AddPointer(core.V(3, 5))
	g.Step(in)
	g.Render(screen)

	if screen.Get(3, 2) != TrailHeadChar {
		t.Errorf("trail head should be drawn at the newest sample, got %q", screen.Get(3, 2))
	}
	if screen.Get(2, 2) != TrailChar {
		t.Errorf("trail body should be drawn behind the head, got %q", screen.Get(2, 2))
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := mustGame(t, Options{})
	g.Reset(testRuntime())
	g.Step(startFrame())
	for i := 0; i < 29; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Resize(120, 40)
	snap := g.Snapshot()
	if snap.Tick != 30 {
		t.Errorf("resize should keep the round, tick = %d", snap.Tick)
	}
	if snap.Width != 120 || snap.Height != 80 {
		t.Errorf("viewport = %vx%v, expected 120x80", snap.Width, snap.Height)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSlicerConfig()
	cfg.Effects.FreezeTimeScale = 0

	if _, err := New(Options{Config: cfg}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
	}
}
