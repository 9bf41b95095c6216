package sim

import (
	"context"
	"sync"
	"time"
)

// Scheduler is provided by the host. RequestTick asks for fn to run once on
// the simulation's goroutine at the next frame; Cancel drops any pending request.
type Scheduler interface {
	RequestTick(fn func())
	Cancel()
}

// Driver runs a Simulation on a host Scheduler. It requests one tick at a
// time and stops requesting once the round is no longer playing.
type Driver struct {
	sim     *Simulation
	sched   Scheduler
	running bool

	// BeforeTick, if set, runs before every tick. Hosts use it to feed input.
	BeforeTick func(s *Simulation)
	// AfterTick, if set, runs after every tick.
	AfterTick func(s *Simulation)
}

// NewDriver binds a simulation to a scheduler.
func NewDriver(s *Simulation, sched Scheduler) *Driver {
	return &Driver{sim: s, sched: sched}
}

// Run starts requesting ticks. It is a no-op unless the simulation is playing.
func (d *Driver) Run() {
	if d.running || d.sim.State() != StatePlaying {
		return
	}
	d.running = true
	d.sched.RequestTick(d.step)
}

// Stop cancels the pending tick, e.g. to pause.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.sched.Cancel()
}

// Running reports whether the driver has a tick in flight.
func (d *Driver) Running() bool {
	return d.running
}

func (d *Driver) step() {
	if !d.running {
		return
	}
	if d.BeforeTick != nil {
		d.BeforeTick(d.sim)
	}
	d.sim.Tick()
	if d.AfterTick != nil {
		d.AfterTick(d.sim)
	}
	if !d.running {
		return // stopped from a hook
	}

	if d.sim.State() != StatePlaying {
		d.running = false
		d.sched.Cancel()
		return
	}
	d.sched.RequestTick(d.step)
}

// ManualScheduler runs ticks only when Fire is called. Used by tests and
// by hosts that already own a frame loop.
type ManualScheduler struct {
	pending  func()
	Requests int
	Cancels  int
}

// RequestTick stores fn until the next Fire.
func (m *ManualScheduler) RequestTick(fn func()) {
	m.pending = fn
	m.Requests++
}

// Cancel drops the pending request.
func (m *ManualScheduler) Cancel() {
	m.pending = nil
	m.Cancels++
}

// Pending reports whether a tick is waiting.
func (m *ManualScheduler) Pending() bool {
	return m.pending != nil
}

// Fire runs the pending tick, if any, and reports whether one ran.
func (m *ManualScheduler) Fire() bool {
	fn := m.pending
	if fn == nil {
		return false
	}
	m.pending = nil
	fn()
	return true
}

// LoopScheduler runs requested ticks on the goroutine that calls Run, paced by
// a ticker. An interval of zero or less runs ticks back to back.
type LoopScheduler struct {
	interval time.Duration

	mu      sync.Mutex
	pending func()
}

// NewLoopScheduler creates a scheduler firing at most once per interval.
func NewLoopScheduler(interval time.Duration) *LoopScheduler {
	return &LoopScheduler{interval: interval}
}

// RequestTick queues fn for the next frame.
func (l *LoopScheduler) RequestTick(fn func()) {
	l.mu.Lock()
	l.pending = fn
	l.mu.Unlock()
}

// Cancel drops the queued tick. Run returns once nothing is queued.
func (l *LoopScheduler) Cancel() {
	l.mu.Lock()
	l.pending = nil
	l.mu.Unlock()
}

func (l *LoopScheduler) take() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn := l.pending
	l.pending = nil
	return fn
}

// Run fires queued ticks until none is queued or ctx is done.
func (l *LoopScheduler) Run(ctx context.Context) error {
	if l.interval <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn := l.take()
			if fn == nil {
				return nil
			}
			fn()
		}
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn := l.take()
			if fn == nil {
				return nil
			}
			fn()
		}
	}
}
