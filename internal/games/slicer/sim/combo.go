package sim

// ComboTracker counts consecutive cuts that land within the combo window.
// The window is measured in ticks and is not affected by the time scale.
type ComboTracker struct {
	window  int
	count   int
	lastHit int
}

// NewComboTracker creates a tracker with the given window in ticks.
func NewComboTracker(window int) *ComboTracker {
	return &ComboTracker{window: window}
}

// Hit records a cut at tick and returns the new count.
func (c *ComboTracker) Hit(tick int) int {
	if c.count > 0 && tick-c.lastHit <= c.window {
		c.count++
	} else {
		c.count = 1
	}
	c.lastHit = tick
	return c.count
}

// Expire drops the count once the window since the last cut has passed.
func (c *ComboTracker) Expire(tick int) {
	if c.count > 0 && tick-c.lastHit > c.window {
		c.count = 0
	}
}

// Reset clears the count, e.g. after a life is lost.
func (c *ComboTracker) Reset() {
	c.count = 0
}

// Count returns the current combo count.
func (c *ComboTracker) Count() int {
	return c.count
}

// ComboBonus returns the extra points for a cut landing at the given count.
func ComboBonus(count, step int) int {
	if count < 2 {
		return 0
	}
	return (count - 1) * step
}
