// Package panel implements the snappable floating-panel controller: it
// interprets raw pointer and two-finger scroll input aimed at the mini
// player, distinguishes "move the window" from "interact with the content",
// and produces window motion (free drag, fling-to-corner, edge-hide,
// edge-peek) through a spring simulation.
//
// The package has no GTK dependency. The GUI host is reached through the
// Window, Screen and FrameTicker interfaces so the whole state machine can
// be unit tested without a display, mirroring the widget abstractions in
// internal/ui.
package panel

import "github.com/bnema/nowbar/internal/geometry"

// Page identifies which logical page of the player the content view is
// currently showing. Scroll gestures are interpreted differently on the
// home page than on the lyrics/queue pages.
type Page int

// Logical pages.
const (
	PageHome Page = iota
	PageLyrics
	PageQueue
)

// String returns the page name for logging.
func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageLyrics:
		return "lyrics"
	case PageQueue:
		return "queue"
	default:
		return "unknown"
	}
}

// Window is the floating window the controller owns. Only the controller is
// permitted to set the origin programmatically; the host toolkit's own
// window-drag machinery must stay disabled.
type Window interface {
	Origin() geometry.Point
	SetOrigin(p geometry.Point)
	Size() geometry.Size

	// Screen returns the display the window is attached to. When ok is
	// false the window has no screen yet and any geometry-dependent
	// operation is skipped for that event.
	Screen() (Screen, bool)
}

// Screen exposes the usable display area.
type Screen interface {
	VisibleFrame() geometry.Rect
}

// FrameTicker drives the spring simulation at a fixed 60 Hz. Start replaces
// any previously running tick source; the callback returns false to stop.
type FrameTicker interface {
	Start(fn func() bool)
	Stop()
}

// Options tunes the controller. Out-of-range values are replaced by
// defaults; a zero CornerMargin or ProjectionFactor is valid.
type Options struct {
	// CornerMargin is the gap in px kept between the window and the screen
	// edge when snapped to a corner.
	CornerMargin float64
	// ProjectionFactor is the fraction of the release velocity used to
	// project the landing position before choosing the nearest corner.
	ProjectionFactor float64
	// EdgeHiddenVisibleWidth is the sliver in px left visible when the
	// window is hidden against a side edge.
	EdgeHiddenVisibleWidth float64
	// SnapToCorners enables corner snapping after a two-finger fling.
	SnapToCorners bool
	// ScrollSensitivity scales two-finger deltas into window movement.
	ScrollSensitivity float64
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		CornerMargin:           20,
		ProjectionFactor:       0.15,
		EdgeHiddenVisibleWidth: 8,
		SnapToCorners:          true,
		ScrollSensitivity:      1.0,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.CornerMargin < 0 {
		o.CornerMargin = d.CornerMargin
	}
	if o.ProjectionFactor < 0 || o.ProjectionFactor > 1 {
		o.ProjectionFactor = d.ProjectionFactor
	}
	if o.EdgeHiddenVisibleWidth <= 0 {
		o.EdgeHiddenVisibleWidth = d.EdgeHiddenVisibleWidth
	}
	if o.ScrollSensitivity <= 0 {
		o.ScrollSensitivity = d.ScrollSensitivity
	}
	return o
}

// Hooks are the injection points crossing the component boundary. All are
// optional; nil hooks degrade to safe defaults (no interactive views, home
// page, manual scroll off, left edge available).
type Hooks struct {
	// OnDragStateChanged fires synchronously at the start of any drag or
	// scroll-drag, always with false, so the presentation layer can
	// suppress hover-only UI during manipulation.
	OnDragStateChanged func(isHovering bool)
	// OnEdgeHiddenChanged fires on every hide/restore transition.
	OnEdgeHiddenChanged func(isHidden bool)
	// OnTriggerManualScroll asks the content view to enter manual-scroll
	// mode without moving the window.
	OnTriggerManualScroll func()

	// CurrentPage reports which logical page is showing.
	CurrentPage func() Page
	// IsManualScrolling reports whether the content view is mid
	// manual-scroll.
	IsManualScrolling func() bool
	// IsInteractiveAt reports whether the given screen point hits a
	// button, slider or other view tagged non-draggable.
	IsInteractiveAt func(p geometry.Point) bool
	// IsLeftEdgeReserved reports whether the compositor reserves the left
	// screen edge (a stage-manager-style strip), which disables hiding
	// against it.
	IsLeftEdgeReserved func() bool
}

func (h Hooks) page() Page {
	if h.CurrentPage == nil {
		return PageHome
	}
	return h.CurrentPage()
}

func (h Hooks) manualScrolling() bool {
	return h.IsManualScrolling != nil && h.IsManualScrolling()
}

func (h Hooks) interactiveAt(p geometry.Point) bool {
	return h.IsInteractiveAt != nil && h.IsInteractiveAt(p)
}

func (h Hooks) leftEdgeReserved() bool {
	return h.IsLeftEdgeReserved != nil && h.IsLeftEdgeReserved()
}
