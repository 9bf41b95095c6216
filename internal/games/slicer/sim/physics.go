package sim

import "math"

// Integrator advances bodies with symplectic Euler scaled by the time scale.
type Integrator struct {
	Gravity float64
	Drag    float64 // Particle velocity multiplier per unscaled tick
}

// Entity moves a throwable one step.
func (in Integrator) Entity(e *Entity, ts float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(ts))
	e.Vel.Y += in.Gravity * ts
	e.Rotation += e.RotationRate * ts
}

// Debris moves a cut half one step and ages it.
func (in Integrator) Debris(d *Debris, ts float64) {
	d.Pos = d.Pos.Add(d.Vel.Scale(ts))
	d.Vel.Y += in.Gravity * ts
	d.Rotation += d.RotationRate * ts
	d.Life--
}

// Particle moves a spark one step. Sparks fall at half gravity and lose speed to drag.
func (in Integrator) Particle(p *Particle, ts float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(ts))
	p.Vel.Y += in.Gravity * 0.5 * ts
	if in.Drag > 0 && in.Drag < 1 {
		p.Vel = p.Vel.Scale(math.Pow(in.Drag, ts))
	}
	p.Life--
}

// Text drifts a popup at constant velocity.
func (in Integrator) Text(t *FloatingText, ts float64) {
	t.Pos = t.Pos.Add(t.Vel.Scale(ts))
	t.Life--
}
