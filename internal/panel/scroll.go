package panel

import (
	"math"

	"github.com/bnema/nowbar/internal/geometry"
	"github.com/bnema/nowbar/internal/physics"
)

// Scroll gesture tuning.
const (
	// horizontalDominance is the |dx| / |dy| ratio above which a scroll
	// event counts as horizontal.
	horizontalDominance = 1.5
	// gestureSwitchDistance is the accumulated horizontal travel in px
	// after which a pass-through gesture may switch to moving the window.
	gestureSwitchDistance = 30.0
)

// ScrollPhase marks the position of an event inside a discrete two-finger
// gesture.
type ScrollPhase int

// Gesture phases.
const (
	ScrollBegan ScrollPhase = iota
	ScrollChanged
	ScrollEnded
)

// ScrollEvent is one two-finger trackpad event. Dx/Dy are the per-event
// scrolling deltas in px.
type ScrollEvent struct {
	Phase ScrollPhase
	Dx    float64
	Dy    float64
}

// gestureState tags where the disambiguation machine is within one
// began..ended gesture.
type gestureState int

const (
	// gestureIdle: no gesture in flight.
	gestureIdle gestureState = iota
	// gestureAwaiting: gesture started on a non-home page, direction not
	// yet decided.
	gestureAwaiting
	// gestureWindowDrag: the remainder of the gesture moves the window.
	gestureWindowDrag
	// gesturePassThrough: the remainder of the gesture belongs to the
	// content view.
	gesturePassThrough
)

// scrollGesture is the per-gesture disambiguation state, reset at every
// began/ended boundary.
type scrollGesture struct {
	st       gestureState
	accum    geometry.Vec
	velocity geometry.Vec
	// triggeredManualScroll is set when this gesture's first horizontal
	// movement only requested manual-scroll mode. Such a gesture never
	// moves the window, even past the switch distance: hiding requires a
	// second, independent gesture.
	triggeredManualScroll bool
}

func (g *scrollGesture) reset() {
	*g = scrollGesture{}
}

// Scroll feeds one two-finger event into the controller. It returns true
// when the event is consumed (the window moved or will move); false means
// the host must let the content view scroll normally.
//
// Phases are not fully trusted: a changed event without a prior began
// initializes the gesture defensively instead of being dropped.
func (c *Controller) Scroll(ev ScrollEvent) bool {
	if c.edgeHidden || c.state == stateDragging {
		return false
	}

	switch ev.Phase {
	case ScrollBegan:
		return c.scrollBegan(ev)
	case ScrollChanged:
		return c.scrollChanged(ev)
	case ScrollEnded:
		return c.scrollEnded()
	default:
		return false
	}
}

func (c *Controller) scrollBegan(ev ScrollEvent) bool {
	c.gesture.reset()

	if c.hooks.page() == PageHome {
		// On the home page any two-finger delta moves the window.
		c.beginScrollDrag()
	} else {
		c.gesture.st = gestureAwaiting
	}

	if ev.Dx != 0 || ev.Dy != 0 {
		return c.scrollChanged(ev)
	}
	return c.gesture.st == gestureWindowDrag
}

func (c *Controller) scrollChanged(ev ScrollEvent) bool {
	if c.gesture.st == gestureIdle {
		// Missing began: degrade to a fresh gesture rather than crash
		// into stale state.
		return c.scrollBegan(ev)
	}

	c.gesture.accum = c.gesture.accum.Add(geometry.Vec{X: ev.Dx, Y: ev.Dy})

	switch c.gesture.st {
	case gestureAwaiting:
		return c.disambiguate(ev)
	case gestureWindowDrag:
		c.applyScrollDelta(ev)
		return true
	case gesturePassThrough:
		return c.maybeSwitchToWindowDrag(ev)
	default:
		return false
	}
}

// disambiguate decides the fate of a non-home-page gesture from its first
// directional event.
func (c *Controller) disambiguate(ev ScrollEvent) bool {
	if !horizontalDominant(ev.Dx, ev.Dy) {
		// Vertical movement drives the content's own scrolling.
		if ev.Dx != 0 || ev.Dy != 0 {
			c.gesture.st = gesturePassThrough
		}
		return false
	}

	if !c.hooks.manualScrolling() {
		// First horizontal flick only arms manual-scroll mode; the user
		// is browsing, not hiding. The whole gesture passes through.
		c.gesture.st = gesturePassThrough
		c.gesture.triggeredManualScroll = true
		if c.hooks.OnTriggerManualScroll != nil {
			c.hooks.OnTriggerManualScroll()
		}
		c.log.Debug().Msg("horizontal gesture armed manual scroll")
		return false
	}

	c.beginScrollDrag()
	c.applyScrollDelta(ev)
	return true
}

// maybeSwitchToWindowDrag lets a pass-through gesture take over the window
// once it has clearly turned into a horizontal swipe. Gestures that armed
// manual scroll themselves stay pass-through until they end.
func (c *Controller) maybeSwitchToWindowDrag(ev ScrollEvent) bool {
	if c.gesture.triggeredManualScroll || !c.hooks.manualScrolling() {
		return false
	}
	if math.Abs(c.gesture.accum.X) <= gestureSwitchDistance {
		return false
	}
	if !horizontalDominant(c.gesture.accum.X, c.gesture.accum.Y) {
		return false
	}

	c.beginScrollDrag()
	c.applyScrollDelta(ev)
	return true
}

func (c *Controller) scrollEnded() bool {
	st := c.gesture.st
	v := c.gesture.velocity
	c.gesture.reset()

	// A pointer drag may have taken over mid-gesture; only a live scroll
	// drag gets a release decision.
	if st != gestureWindowDrag || c.state != stateScrollDragging {
		return false
	}

	c.state = stateIdle

	if edge := c.hideEligibleEdge(v); edge != EdgeNone {
		c.hideToEdge(edge, v)
		return true
	}
	if c.opts.SnapToCorners {
		c.snapToCorner(v)
	}
	return true
}

// beginScrollDrag transitions into window-moving mode for the rest of the
// gesture.
func (c *Controller) beginScrollDrag() {
	c.cancelAnimation()
	c.notifyDragStarted()
	c.state = stateScrollDragging
	c.gesture.st = gestureWindowDrag
	c.log.Debug().Stringer("page", c.hooks.page()).Msg("scroll drag started")
}

// applyScrollDelta moves the window by one event's delta and refreshes the
// release-velocity estimate. The estimate extrapolates the per-event delta
// to px/s assuming the host delivers events at ~60 Hz.
func (c *Controller) applyScrollDelta(ev ScrollEvent) {
	d := geometry.Vec{X: ev.Dx, Y: ev.Dy}.Scale(c.opts.ScrollSensitivity)
	c.win.SetOrigin(c.win.Origin().Add(d))
	c.gesture.velocity = d.Scale(physics.TickRate)
}

func horizontalDominant(dx, dy float64) bool {
	return math.Abs(dx) > horizontalDominance*math.Abs(dy)
}
