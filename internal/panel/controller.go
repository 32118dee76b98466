package panel

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/nowbar/internal/geometry"
	"github.com/bnema/nowbar/internal/logging"
)

// controlStripHeight is the window-bottom band reserved for playback
// controls; pointer events there are never intercepted.
const controlStripHeight = 100.0

type state int

const (
	stateIdle state = iota
	stateDragging
	stateScrollDragging
	stateAnimating
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateDragging:
		return "dragging"
	case stateScrollDragging:
		return "scroll-dragging"
	case stateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// Controller owns the floating panel window and is its sole frame writer.
//
// All methods must be called on the GUI main loop: input handling, spring
// ticks and state mutation are single-threaded by design, so the controller
// carries no locks.
type Controller struct {
	win    Window
	ticker FrameTicker
	opts   Options
	hooks  Hooks

	log zerolog.Logger
	now func() time.Time

	state state
	drag  dragSession

	gesture scrollGesture

	anim springAnim

	edgeHidden bool
	hiddenEdge Edge
	peeking    bool
}

// New creates a controller for the given window. The ticker drives the
// spring simulation; the controller stops it whenever no animation is in
// flight.
func New(ctx context.Context, win Window, ticker FrameTicker, opts Options, hooks Hooks) *Controller {
	log := logging.FromContext(ctx)

	return &Controller{
		win:    win,
		ticker: ticker,
		opts:   opts.normalized(),
		hooks:  hooks,
		log:    log.With().Str("component", "panel-controller").Logger(),
		now:    time.Now,
	}
}

// Apply replaces the controller tuning. Safe to call mid-session; the new
// values take effect from the next gesture or animation.
func (c *Controller) Apply(opts Options) {
	c.opts = opts.normalized()
	c.log.Debug().
		Float64("corner_margin", c.opts.CornerMargin).
		Float64("projection_factor", c.opts.ProjectionFactor).
		Float64("edge_hidden_visible_width", c.opts.EdgeHiddenVisibleWidth).
		Bool("snap_to_corners", c.opts.SnapToCorners).
		Msg("panel options applied")
}

// IsEdgeHidden reports whether the window is parked against a screen edge.
func (c *Controller) IsEdgeHidden() bool { return c.edgeHidden }

// HiddenEdge returns which edge the window is hidden against, or EdgeNone.
func (c *Controller) HiddenEdge() Edge { return c.hiddenEdge }

// frame returns the window's current screen rectangle.
func (c *Controller) frame() geometry.Rect {
	return geometry.NewRect(c.win.Origin(), c.win.Size())
}

// visibleFrame returns the screen's usable area. ok is false when the
// window has no screen yet, in which case the caller must skip the
// operation with no state change.
func (c *Controller) visibleFrame() (geometry.Rect, bool) {
	screen, ok := c.win.Screen()
	if !ok {
		return geometry.Rect{}, false
	}
	return screen.VisibleFrame(), true
}

// inControlStrip reports whether p falls in the bottom control band of the
// window.
func (c *Controller) inControlStrip(p geometry.Point) bool {
	f := c.frame()
	return f.Contains(p) && p.Y >= f.MaxY()-controlStripHeight
}

// PointerDown handles a pointer press at screen point p. It returns true
// when the event is consumed; false means the host must pass it through to
// the content view unmodified.
func (c *Controller) PointerDown(p geometry.Point) bool {
	if c.edgeHidden {
		// Clicking the sliver restores the window; the click itself is
		// swallowed so it never reaches the content underneath.
		c.restoreFromEdge()
		return true
	}

	if c.hooks.interactiveAt(p) || c.inControlStrip(p) {
		return false
	}

	c.cancelAnimation()
	c.notifyDragStarted()

	c.drag = newDragSession(p, c.win.Origin(), c.now())
	c.state = stateDragging
	c.log.Debug().Float64("x", p.X).Float64("y", p.Y).Msg("drag started")
	return true
}

// PointerDragged handles pointer motion while the button is held.
func (c *Controller) PointerDragged(p geometry.Point) {
	if c.state != stateDragging {
		return
	}
	c.drag.record(p, c.now())

	if !c.drag.moved && c.drag.displacement(p) < clickThreshold {
		return
	}
	c.drag.moved = true
	c.win.SetOrigin(c.drag.startOrigin.Add(p.Sub(c.drag.startPointer)))
}

// PointerUp ends a drag. It returns true when the event is consumed; a
// sub-threshold movement counts as a click and is passed through. Pointer
// release never triggers a snap or hide decision; the window stays exactly
// where it was released.
func (c *Controller) PointerUp(p geometry.Point) bool {
	if c.state != stateDragging {
		return false
	}
	c.state = stateIdle

	if !c.drag.moved && c.drag.displacement(p) < clickThreshold {
		c.log.Debug().Msg("drag below click threshold, passing through")
		return false
	}

	v := c.drag.velocity()
	c.log.Debug().
		Float64("vx", v.X).
		Float64("vy", v.Y).
		Msg("drag released")
	return true
}

// PointerMoved handles hover motion (no button held). While the window is
// edge-hidden, entering its mostly-offscreen frame starts the peek
// animation and leaving it reverses it. Peeking is purely cosmetic and
// does not change the hidden state.
func (c *Controller) PointerMoved(p geometry.Point) {
	if !c.edgeHidden {
		return
	}
	inside := c.frame().Contains(p)
	switch {
	case inside && !c.peeking:
		c.startPeek()
	case !inside && c.peeking:
		c.endPeek()
	}
}

// notifyDragStarted fires the drag-state callback, always with false.
func (c *Controller) notifyDragStarted() {
	if c.hooks.OnDragStateChanged != nil {
		c.hooks.OnDragStateChanged(false)
	}
}
