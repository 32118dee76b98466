// Package input bridges GTK event controllers to the panel controller. All
// handlers attach at the capture phase so the panel sees pointer and scroll
// input before GTK's normal dispatch, and deny the event sequence whenever
// the controller decides the content should receive it.
package input

import (
	"context"

	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/nowbar/internal/geometry"
	"github.com/bnema/nowbar/internal/logging"
	"github.com/bnema/nowbar/internal/panel"
)

// PointerHandler feeds pointer press/drag/release events into the panel
// controller.
type PointerHandler struct {
	drag *gtk.GestureDrag

	// Callback retention: must stay reachable by Go GC.
	beginCb  func(gtk.GestureDrag, float64, float64)
	updateCb func(gtk.GestureDrag, float64, float64)
	endCb    func(gtk.GestureDrag, float64, float64)

	controller *panel.Controller
	start      geometry.Point

	ctx context.Context
}

// NewPointerHandler creates a pointer handler for the panel controller.
func NewPointerHandler(ctx context.Context, controller *panel.Controller) *PointerHandler {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating pointer handler")

	return &PointerHandler{
		ctx:        ctx,
		controller: controller,
	}
}

// AttachTo attaches the handler to a GTK widget, normally the screen-level
// canvas so event coordinates match the controller's screen space.
func (h *PointerHandler) AttachTo(widget *gtk.Widget) {
	log := logging.FromContext(h.ctx)

	if widget == nil {
		log.Error().Msg("cannot attach pointer handler to nil widget")
		return
	}

	h.drag = gtk.NewGestureDrag()
	if h.drag == nil {
		log.Error().Msg("failed to create drag gesture")
		return
	}
	h.drag.SetPropagationPhase(gtk.PhaseCaptureValue)

	h.beginCb = func(_ gtk.GestureDrag, x, y float64) {
		h.handleBegin(geometry.Point{X: x, Y: y})
	}
	h.drag.ConnectDragBegin(&h.beginCb)

	h.updateCb = func(_ gtk.GestureDrag, dx, dy float64) {
		h.controller.PointerDragged(h.start.Add(geometry.Vec{X: dx, Y: dy}))
	}
	h.drag.ConnectDragUpdate(&h.updateCb)

	h.endCb = func(_ gtk.GestureDrag, dx, dy float64) {
		h.handleEnd(h.start.Add(geometry.Vec{X: dx, Y: dy}))
	}
	h.drag.ConnectDragEnd(&h.endCb)

	widget.AddController(&h.drag.EventController)

	log.Debug().Msg("pointer handler attached to widget")
}

// handleBegin claims or denies the event sequence based on the controller's
// decision. Denied sequences reach the content widgets unmodified.
func (h *PointerHandler) handleBegin(p geometry.Point) {
	h.start = p
	if h.controller.PointerDown(p) {
		h.drag.SetState(gtk.EventSequenceClaimedValue)
	} else {
		h.drag.SetState(gtk.EventSequenceDeniedValue)
	}
}

// handleEnd finishes the drag. A sub-threshold movement is reported as not
// consumed, so the press is replayed to the content as a click.
func (h *PointerHandler) handleEnd(p geometry.Point) {
	if !h.controller.PointerUp(p) {
		h.drag.SetState(gtk.EventSequenceDeniedValue)
	}
}

// Detach removes the handler.
// Note: GTK handles cleanup when the widget is destroyed,
// but we clear our reference here.
func (h *PointerHandler) Detach() {
	h.drag = nil
	h.beginCb = nil
	h.updateCb = nil
	h.endCb = nil
}
