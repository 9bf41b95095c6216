package sim

// EffectController owns the freeze effect: a single countdown that slows
// physics while it runs. Triggers refresh the countdown, they never stack.
type EffectController struct {
	duration  int
	slow      float64
	remaining int
	fresh     bool // Triggered during the current tick
}

// NewEffectController creates a controller. slow must lie in (0, 1).
func NewEffectController(duration int, slow float64) *EffectController {
	return &EffectController{duration: duration, slow: slow}
}

// Trigger (re)starts the freeze at full duration. The tick that triggers it
// is not counted, so the next duration ticks all run slowed.
func (e *EffectController) Trigger() {
	e.remaining = e.duration
	e.fresh = e.duration > 0
}

// Advance counts the freeze down by one tick.
func (e *EffectController) Advance() {
	if e.fresh {
		e.fresh = false
		return
	}
	if e.remaining > 0 {
		e.remaining--
	}
}

// Remaining returns the ticks left on the freeze.
func (e *EffectController) Remaining() int {
	return e.remaining
}

// Active reports whether the freeze is running.
func (e *EffectController) Active() bool {
	return e.remaining > 0
}

// TimeScale returns the physics multiplier for the current tick.
func (e *EffectController) TimeScale() float64 {
	if e.remaining > 0 {
		return e.slow
	}
	return 1
}

// Reset stops the freeze.
func (e *EffectController) Reset() {
	e.remaining = 0
	e.fresh = false
}
