package slicer

import (
	"math"

	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer/sim"
)

// Autopilot is a simple bot that swipes through fruit near the top of its arc
// and refuses any swipe a bomb could drift into while the trail is alive.
// It is deterministic, so a seeded headless run always plays the same game.
type Autopilot struct {
	cooldown int
	Swipes   int
}

// NewAutopilot creates a bot.
func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Feed adds at most one swipe per call. Use it as a sim.Driver BeforeTick hook.
func (a *Autopilot) Feed(s *sim.Simulation) {
	if a.cooldown > 0 {
		a.cooldown--
		return
	}

	snap := s.Snapshot()
	if snap.State != sim.StatePlaying || len(snap.Trail) > 0 {
		return
	}

	target, ok := pickTarget(snap)
	if !ok {
		return
	}

	life := float64(s.Config().Trail.Life)
	reach := target.Radius + 2
	swipes := [][2]core.Vec2{
		{core.V(target.Pos.X-reach, target.Pos.Y), core.V(target.Pos.X+reach, target.Pos.Y)},
		{core.V(target.Pos.X, target.Pos.Y-reach), core.V(target.Pos.X, target.Pos.Y+reach)},
	}

	for _, sw := range swipes {
		if !safeSwipe(snap, sw[0], sw[1], life) {
			continue
		}
		s.AddTrailPoint(sw[0])
		s.AddTrailPoint(sw[1])
		a.Swipes++
		a.cooldown = int(life) + 1
		return
	}
}

// pickTarget prefers the projectile closest to its apex in the upper part of the field.
func pickTarget(snap sim.Snapshot) (sim.Entity, bool) {
	var best sim.Entity
	found := false
	for _, e := range snap.Entities {
		if e.Kind != sim.KindProjectile || e.Sliced || e.Pos.Y > snap.Height*0.75 || e.Pos.Y < 2 {
			continue
		}
		if !found || math.Abs(e.Vel.Y) < math.Abs(best.Vel.Y) {
			best = e
			found = true
		}
	}
	return best, found
}

// safeSwipe reports whether no hazard can reach segment a-b within life ticks.
func safeSwipe(snap sim.Snapshot, a, b core.Vec2, life float64) bool {
	for _, e := range snap.Entities {
		if e.Kind != sim.KindHazard {
			continue
		}
		margin := e.Radius + e.Vel.Len()*life + 1
		if core.PointSegmentDistSq(e.Pos, a, b) <= margin*margin {
			return false
		}
	}
	return true
}
