package panel

import (
	"github.com/bnema/nowbar/internal/geometry"
	"github.com/bnema/nowbar/internal/physics"
)

// springAnim is the state of the single in-flight spring animation. There
// is never more than one: starting a new animation overwrites this record
// and restarts the shared ticker.
type springAnim struct {
	target  geometry.Point
	vel     geometry.Vec
	params  physics.Params
	running bool
}

// startAnimation begins a spring animation toward target, replacing any
// animation already in flight.
func (c *Controller) startAnimation(target geometry.Point, vel geometry.Vec, params physics.Params) {
	c.anim = springAnim{
		target:  target,
		vel:     vel,
		params:  params,
		running: true,
	}
	c.state = stateAnimating
	c.ticker.Start(c.tick)
}

// cancelAnimation stops the in-flight animation, leaving the window at its
// current position.
func (c *Controller) cancelAnimation() {
	if !c.anim.running {
		return
	}
	c.ticker.Stop()
	c.anim.running = false
	if c.state == stateAnimating {
		c.state = stateIdle
	}
}

// tick advances the spring by one fixed timestep. Returns false once the
// animation has converged, which removes the tick source.
func (c *Controller) tick() bool {
	if !c.anim.running {
		return false
	}

	pos, vel := physics.Step(c.win.Origin(), c.anim.target, c.anim.vel, c.anim.params, physics.Dt)
	c.anim.vel = vel

	if physics.Settled(pos, c.anim.target, vel) {
		c.win.SetOrigin(c.anim.target)
		c.anim.running = false
		if c.state == stateAnimating {
			c.state = stateIdle
		}
		c.log.Debug().
			Float64("x", c.anim.target.X).
			Float64("y", c.anim.target.Y).
			Msg("animation settled")
		return false
	}

	c.win.SetOrigin(pos)
	return true
}
