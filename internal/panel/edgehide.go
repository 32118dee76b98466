package panel

import (
	"math"

	"github.com/bnema/nowbar/internal/geometry"
	"github.com/bnema/nowbar/internal/physics"
)

// Edge identifies the screen edge the window is hidden against.
type Edge int

// Edges.
const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
)

// String returns the edge name for logging.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "none"
	}
}

// Edge-hide tuning.
const (
	// edgeProximity is how close in px the window must be to a side edge
	// at gesture end for hiding to be considered.
	edgeProximity = 20.0
	// hideDominance is the |vx| / |vy| ratio the release velocity must
	// exceed.
	hideDominance = 0.8
	// hideMinSpeed is the minimum |vx| in px/s toward the edge.
	hideMinSpeed = 50.0
	// peekDistance is how far in px the window slides further into view
	// while the pointer hovers the hidden sliver.
	peekDistance = 30.0
)

// hideEligibleEdge is the edge-hide predicate, evaluated only at two-finger
// gesture end: the window must rest within edgeProximity of a side edge of
// the visible frame and the release velocity must be horizontal-dominant,
// faster than hideMinSpeed and pointed at that edge. The left edge is
// additionally unavailable while the compositor reserves it.
func (c *Controller) hideEligibleEdge(v geometry.Vec) Edge {
	visible, ok := c.visibleFrame()
	if !ok {
		return EdgeNone
	}
	if math.Abs(v.X) <= hideDominance*math.Abs(v.Y) || math.Abs(v.X) <= hideMinSpeed {
		return EdgeNone
	}

	f := c.frame()
	switch {
	case v.X < 0 && f.MinX()-visible.MinX() < edgeProximity:
		if c.hooks.leftEdgeReserved() {
			return EdgeNone
		}
		return EdgeLeft
	case v.X > 0 && visible.MaxX()-f.MaxX() < edgeProximity:
		return EdgeRight
	default:
		return EdgeNone
	}
}

// hideToEdge animates the window into the hidden position against edge,
// leaving only the configured sliver visible. v is the release velocity
// that made the gesture eligible.
func (c *Controller) hideToEdge(edge Edge, v geometry.Vec) {
	target, ok := c.hiddenOrigin(edge)
	if !ok {
		return
	}

	c.setEdgeHidden(true, edge)
	c.startAnimation(target, v, physics.Snap)
	c.log.Debug().Stringer("edge", edge).Msg("hiding to edge")
}

// restoreFromEdge animates the window back fully on screen and swallows the
// triggering click.
func (c *Controller) restoreFromEdge() {
	target, ok := c.restoredOrigin(c.hiddenEdge)
	if !ok {
		return
	}

	c.peeking = false
	c.setEdgeHidden(false, EdgeNone)
	c.startAnimation(target, geometry.Vec{}, physics.Snap)
	c.log.Debug().Msg("restoring from edge")
}

// hiddenOrigin computes the resting origin for the hidden state: only
// EdgeHiddenVisibleWidth px remain on screen, vertically clamped to
// whichever screen half the window center currently occupies, inset by
// CornerMargin.
func (c *Controller) hiddenOrigin(edge Edge) (geometry.Point, bool) {
	visible, ok := c.visibleFrame()
	if !ok {
		return geometry.Point{}, false
	}
	size := c.win.Size()

	var x float64
	switch edge {
	case EdgeLeft:
		x = visible.MinX() - size.W + c.opts.EdgeHiddenVisibleWidth
	case EdgeRight:
		x = visible.MaxX() - c.opts.EdgeHiddenVisibleWidth
	default:
		return geometry.Point{}, false
	}

	y := visible.MinY() + c.opts.CornerMargin
	if c.frame().Center().Y >= visible.MidY() {
		y = visible.MaxY() - size.H - c.opts.CornerMargin
	}
	return geometry.Point{X: x, Y: y}, true
}

// restoredOrigin is where the window lands when un-hiding: fully on screen
// against the same edge, inset by CornerMargin, keeping its current y.
func (c *Controller) restoredOrigin(edge Edge) (geometry.Point, bool) {
	visible, ok := c.visibleFrame()
	if !ok {
		return geometry.Point{}, false
	}
	size := c.win.Size()

	var x float64
	switch edge {
	case EdgeLeft:
		x = visible.MinX() + c.opts.CornerMargin
	case EdgeRight:
		x = visible.MaxX() - size.W - c.opts.CornerMargin
	default:
		return geometry.Point{}, false
	}
	return geometry.Point{X: x, Y: c.win.Origin().Y}, true
}

// startPeek slides the window peekDistance px further into view with the
// fast spring preset.
func (c *Controller) startPeek() {
	base, ok := c.hiddenOrigin(c.hiddenEdge)
	if !ok {
		return
	}

	target := base
	switch c.hiddenEdge {
	case EdgeLeft:
		target.X += peekDistance
	case EdgeRight:
		target.X -= peekDistance
	}

	c.peeking = true
	c.startAnimation(target, c.anim.vel, physics.Peek)
	c.log.Debug().Stringer("edge", c.hiddenEdge).Msg("peek started")
}

// endPeek reverses the peek back to the fully-hidden offset.
func (c *Controller) endPeek() {
	base, ok := c.hiddenOrigin(c.hiddenEdge)
	if !ok {
		return
	}

	c.peeking = false
	c.startAnimation(base, c.anim.vel, physics.Peek)
	c.log.Debug().Msg("peek ended")
}

// setEdgeHidden flips the hidden state and fires the change callback on
// every transition.
func (c *Controller) setEdgeHidden(hidden bool, edge Edge) {
	changed := c.edgeHidden != hidden
	c.edgeHidden = hidden
	c.hiddenEdge = edge
	if changed && c.hooks.OnEdgeHiddenChanged != nil {
		c.hooks.OnEdgeHiddenChanged(hidden)
	}
}

// snapToCorner projects the landing position from the release velocity and
// animates to the nearest quadrant corner.
func (c *Controller) snapToCorner(v geometry.Vec) {
	visible, ok := c.visibleFrame()
	if !ok {
		return
	}

	projected := c.frame().Center().Add(v.Scale(c.opts.ProjectionFactor))
	target := geometry.CornerOrigin(projected, visible, c.win.Size(), c.opts.CornerMargin)
	c.startAnimation(target, v, physics.Snap)
	c.log.Debug().
		Float64("target_x", target.X).
		Float64("target_y", target.Y).
		Msg("snapping to corner")
}
