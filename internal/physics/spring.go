// Package physics implements the critically-damped spring integrator that
// drives all panel motion. The integration step is a pure function so the
// animation math can be exercised without a running frame clock.
package physics

import "github.com/bnema/nowbar/internal/geometry"

// TickRate is the fixed simulation rate in Hz.
const TickRate = 60

// Dt is the fixed integration timestep in seconds.
const Dt = 1.0 / TickRate

// Convergence thresholds. Once the position is within SettleDistance of the
// target and the speed drops below SettleSpeed, the animation snaps exactly
// to the target and stops.
const (
	SettleDistance = 0.5 // px
	SettleSpeed    = 5.0 // px/s
)

// Params are the spring coefficients for one animation.
type Params struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Snap is the preset for corner snapping, edge hiding and restoring.
var Snap = Params{Stiffness: 280, Damping: 24, Mass: 1}

// Peek is the stiffer preset for the hover-peek micro-motion.
var Peek = Params{Stiffness: 500, Damping: 30, Mass: 1}

// Step advances the spring by one timestep using semi-implicit Euler:
// velocity is updated from the current force first, then position is
// updated from the new velocity.
func Step(pos, target geometry.Point, vel geometry.Vec, p Params, dt float64) (geometry.Point, geometry.Vec) {
	force := target.Sub(pos).Scale(p.Stiffness).Add(vel.Scale(-p.Damping))
	vel = vel.Add(force.Scale(dt / p.Mass))
	pos = pos.Add(vel.Scale(dt))
	return pos, vel
}

// Settled reports whether the spring has converged on its target.
func Settled(pos, target geometry.Point, vel geometry.Vec) bool {
	return geometry.Dist(pos, target) < SettleDistance && vel.Len() < SettleSpeed
}
