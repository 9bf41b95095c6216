package slicer

import (
	"testing"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer/sim"
)

func runAutopilot(t *testing.T, cfg config.SlicerConfig, seed int64, ticks int) (sim.Snapshot, *Autopilot) {
	t.Helper()
	s, err := sim.New(sim.Options{Config: cfg, Seed: seed})
	if err != nil {
		t.Fatalf("sim.New() failed: %v", err)
	}
	s.SetViewport(80, 48)
	s.Start()

	bot := NewAutopilot()
	sched := &sim.ManualScheduler{}
	d := sim.NewDriver(s, sched)
	d.BeforeTick = bot.Feed
	d.Run()

	for i := 0; i < ticks && sched.Fire(); i++ {
	}
	return s.Snapshot(), bot
}

func TestAutopilotScoresWithoutBombs(t *testing.T) {
	cfg := config.DefaultSlicerConfig()
	cfg.Spawn.HazardChanceBase = 0
	cfg.Spawn.HazardChanceMax = 0

	snap, bot := runAutopilot(t, cfg, 7, 3000)
	if bot.Swipes == 0 {
		t.Fatal("autopilot never swiped")
	}
	if snap.Score == 0 {
		t.Error("autopilot should cut some fruit")
	}
}

func TestAutopilotDeterministic(t *testing.T) {
	cfg := config.DefaultSlicerConfig()
	a, botA := runAutopilot(t, cfg, 2024, 4000)
	b, botB := runAutopilot(t, cfg, 2024, 4000)

	if a.Score != b.Score || a.Tick != b.Tick || botA.Swipes != botB.Swipes {
		t.Errorf("seeded runs differ: score %d/%d tick %d/%d swipes %d/%d",
			a.Score, b.Score, a.Tick, b.Tick, botA.Swipes, botB.Swipes)
	}
}
