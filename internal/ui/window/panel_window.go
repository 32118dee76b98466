// Package window provides the GTK implementation of the panel host: a
// floating mini-player widget positioned on a screen-filling canvas.
package window

import (
	"context"

	"github.com/jwijenbergh/puregotk/v4/graphene"
	"github.com/jwijenbergh/puregotk/v4/gtk"
	"github.com/rs/zerolog"

	"github.com/bnema/nowbar/internal/geometry"
	"github.com/bnema/nowbar/internal/logging"
	"github.com/bnema/nowbar/internal/panel"
)

const windowTitle = "Nowbar"

// Default panel dimensions; the aspect ratio is fixed by the player layout.
const (
	defaultPanelWidth  = 300
	defaultPanelHeight = 380
)

// PanelWindow hosts the floating panel. The panel widget floats on a
// gtk.Fixed canvas that fills the application window, so the controller can
// place it anywhere, including mostly off-canvas for the edge-hidden state.
// GTK's own window dragging is never engaged; this adapter is the sole
// frame writer.
//
// PanelWindow implements panel.Window and panel.Screen.
type PanelWindow struct {
	window *gtk.ApplicationWindow
	canvas *gtk.Fixed
	body   *gtk.Box

	origin geometry.Point
	size   geometry.Size

	interactive []*gtk.Widget

	logger zerolog.Logger
}

var (
	_ panel.Window = (*PanelWindow)(nil)
	_ panel.Screen = (*PanelWindow)(nil)
)

// New creates the panel window attached to app.
func New(ctx context.Context, app *gtk.Application) (*PanelWindow, error) {
	log := logging.FromContext(ctx)

	pw := &PanelWindow{
		size:   geometry.Size{W: defaultPanelWidth, H: defaultPanelHeight},
		logger: log.With().Str("component", "panel-window").Logger(),
	}

	pw.window = gtk.NewApplicationWindow(app)
	if pw.window == nil {
		return nil, ErrWindowCreationFailed
	}

	pw.window.SetTitle(windowTitle)
	pw.window.Maximize()

	pw.canvas = gtk.NewFixed()
	if pw.canvas == nil {
		pw.window.Unref()
		return nil, ErrWidgetCreationFailed("canvas")
	}
	pw.canvas.SetHexpand(true)
	pw.canvas.SetVexpand(true)
	pw.canvas.SetVisible(true)

	pw.body = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if pw.body == nil {
		pw.canvas.Unref()
		pw.window.Unref()
		return nil, ErrWidgetCreationFailed("body")
	}
	pw.body.SetSizeRequest(defaultPanelWidth, defaultPanelHeight)
	pw.body.SetVisible(true)
	pw.body.AddCssClass("nowbar-panel")

	pw.canvas.Put(&pw.body.Widget, pw.origin.X, pw.origin.Y)
	pw.window.SetChild(&pw.canvas.Widget)

	return pw, nil
}

// Origin returns the panel's current canvas position.
func (pw *PanelWindow) Origin() geometry.Point {
	return pw.origin
}

// SetOrigin moves the panel. Negative coordinates are allowed so the panel
// can hang off the canvas edge.
func (pw *PanelWindow) SetOrigin(p geometry.Point) {
	pw.origin = p
	pw.canvas.Move(&pw.body.Widget, p.X, p.Y)
}

// Size returns the fixed panel dimensions.
func (pw *PanelWindow) Size() geometry.Size {
	return pw.size
}

// Screen returns the display geometry provider. ok is false until the
// canvas has been allocated.
func (pw *PanelWindow) Screen() (panel.Screen, bool) {
	if pw.canvas.GetAllocatedWidth() <= 0 || pw.canvas.GetAllocatedHeight() <= 0 {
		return nil, false
	}
	return pw, true
}

// VisibleFrame reports the usable canvas area in canvas coordinates.
func (pw *PanelWindow) VisibleFrame() geometry.Rect {
	return geometry.Rect{
		W: float64(pw.canvas.GetAllocatedWidth()),
		H: float64(pw.canvas.GetAllocatedHeight()),
	}
}

// MarkInteractive registers a child widget whose hits must pass through to
// the content instead of starting a window drag (buttons, sliders, views
// tagged non-draggable).
func (pw *PanelWindow) MarkInteractive(w *gtk.Widget) {
	if w == nil {
		return
	}
	pw.interactive = append(pw.interactive, w)
}

// IsInteractiveAt reports whether p (canvas coordinates) falls inside a
// registered interactive widget.
func (pw *PanelWindow) IsInteractiveAt(p geometry.Point) bool {
	for _, w := range pw.interactive {
		if r, ok := pw.widgetRect(w); ok && r.Contains(p) {
			return true
		}
	}
	return false
}

// widgetRect computes a widget's rectangle in canvas coordinates.
func (pw *PanelWindow) widgetRect(w *gtk.Widget) (geometry.Rect, bool) {
	srcPoint := &graphene.Point{X: 0, Y: 0}
	outPoint := &graphene.Point{}

	if !w.ComputePoint(&pw.canvas.Widget, srcPoint, outPoint) {
		return geometry.Rect{}, false
	}
	return geometry.Rect{
		X: float64(outPoint.X),
		Y: float64(outPoint.Y),
		W: float64(w.GetAllocatedWidth()),
		H: float64(w.GetAllocatedHeight()),
	}, true
}

// Body returns the panel content container for the player UI to populate.
func (pw *PanelWindow) Body() *gtk.Box {
	return pw.body
}

// Canvas returns the screen-filling canvas; input controllers attach here
// so their coordinates match the controller's screen space.
func (pw *PanelWindow) Canvas() *gtk.Fixed {
	return pw.canvas
}

// Show makes the window visible.
func (pw *PanelWindow) Show() {
	pw.window.Present()
}

// Destroy cleans up window resources.
func (pw *PanelWindow) Destroy() {
	pw.interactive = nil
	if pw.body != nil {
		pw.body.Unref()
		pw.body = nil
	}
	if pw.canvas != nil {
		pw.canvas.Unref()
		pw.canvas = nil
	}
	if pw.window != nil {
		pw.window.Destroy()
		pw.window = nil
	}
}

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

// Error constants.
var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}
