package sim

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

func TestDriverReschedulesWhilePlaying(t *testing.T) {
	s := newPlaying(t, quietConfig(), Options{})
	sched := &ManualScheduler{}
	d := NewDriver(s, sched)

	d.Run()
	if !sched.Pending() {
		t.Fatal("Run should request the first tick")
	}

	for i := 0; i < 10; i++ {
		if !sched.Fire() {
			t.Fatalf("tick %d was not requested", i)
		}
	}
	if s.Round().Tick != 10 {
		t.Errorf("tick = %d, expected 10", s.Round().Tick)
	}
	if sched.Requests != 11 {
		t.Errorf("requests = %d, expected 11", sched.Requests)
	}
}

func TestDriverStopsOnGameOver(t *testing.T) {
	s := newPlaying(t, quietConfig(), Options{})
	sched := &ManualScheduler{}
	d := NewDriver(s, sched)

	d.BeforeTick = func(s *Simulation) {
		if s.Round().Tick == 3 {
			s.entities = append(s.entities, bomb(40, 20))
			s.AddTrailPoint(core.V(30, 20))
			s.AddTrailPoint(core.V(50, 20))
		}
	}
	ticks := 0
	d.AfterTick = func(*Simulation) { ticks++ }

	d.Run()
	for sched.Fire() {
	}

	if s.State() != StateGameOver {
		t.Fatalf("state = %s, expected game over", s.State())
	}
	if ticks != 4 {
		t.Errorf("ran %d ticks, expected 4", ticks)
	}
	if d.Running() || sched.Pending() {
		t.Error("driver should stop requesting ticks after game over")
	}
	if sched.Cancels != 1 {
		t.Errorf("cancels = %d, expected 1", sched.Cancels)
	}
}

func TestDriverStopAndResume(t *testing.T) {
	s := newPlaying(t, quietConfig(), Options{})
	sched := &ManualScheduler{}
	d := NewDriver(s, sched)

	d.Run()
	sched.Fire()
	d.Stop()
	if sched.Pending() || d.Running() {
		t.Fatal("Stop should cancel the pending tick")
	}
	if sched.Fire() {
		t.Error("nothing should fire while stopped")
	}

	d.Run()
	sched.Fire()
	if s.Round().Tick != 2 {
		t.Errorf("tick = %d, expected 2", s.Round().Tick)
	}
}

func TestDriverIgnoresRunOutsidePlay(t *testing.T) {
	s := mustNew(t, Options{Config: quietConfig()})
	sched := &ManualScheduler{}
	NewDriver(s, sched).Run()

	if sched.Pending() {
		t.Error("Run should not request ticks before the round starts")
	}
}

func TestLoopSchedulerRunsUntilGameOver(t *testing.T) {
	s := newPlaying(t, quietConfig(), Options{})
	sched := NewLoopScheduler(0)
	d := NewDriver(s, sched)
	d.BeforeTick = func(s *Simulation) {
		if s.Round().Tick == 100 {
			s.entities = append(s.entities, bomb(40, 20))
			s.AddTrailPoint(core.V(30, 20))
			s.AddTrailPoint(core.V(50, 20))
		}
	}

	d.Run()
	if err := sched.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}
	if s.State() != StateGameOver || s.Round().Tick != 100 {
		t.Errorf("expected game over at tick 100, got %s at %d", s.State(), s.Round().Tick)
	}
}

func TestLoopSchedulerHonorsContext(t *testing.T) {
	s := newPlaying(t, quietConfig(), Options{})
	sched := NewLoopScheduler(time.Millisecond)
	d := NewDriver(s, sched)
	d.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := sched.Run(ctx); err != context.DeadlineExceeded {
		t.Errorf("Run() = %v, expected deadline exceeded", err)
	}
	if s.Round().Tick == 0 {
		t.Error("some ticks should have run before the deadline")
	}
}
