package input

import (
	"context"

	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/nowbar/internal/geometry"
	"github.com/bnema/nowbar/internal/logging"
	"github.com/bnema/nowbar/internal/panel"
)

// MotionHandler streams hover motion into the panel controller. The
// controller uses it to start and reverse the edge-peek animation while
// the window is hidden.
type MotionHandler struct {
	motionCtrl *gtk.EventControllerMotion

	// Callback retention: must stay reachable by Go GC.
	motionCb func(gtk.EventControllerMotion, float64, float64)

	controller *panel.Controller

	ctx context.Context
}

// NewMotionHandler creates a hover-motion handler for the panel controller.
func NewMotionHandler(ctx context.Context, controller *panel.Controller) *MotionHandler {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating motion handler")

	return &MotionHandler{
		ctx:        ctx,
		controller: controller,
	}
}

// AttachTo attaches the handler to a GTK widget, normally the screen-level
// canvas.
func (h *MotionHandler) AttachTo(widget *gtk.Widget) {
	log := logging.FromContext(h.ctx)

	if widget == nil {
		log.Error().Msg("cannot attach motion handler to nil widget")
		return
	}

	h.motionCtrl = gtk.NewEventControllerMotion()
	if h.motionCtrl == nil {
		log.Error().Msg("failed to create motion controller")
		return
	}

	h.motionCb = func(_ gtk.EventControllerMotion, x, y float64) {
		h.controller.PointerMoved(geometry.Point{X: x, Y: y})
	}
	h.motionCtrl.ConnectMotion(&h.motionCb)

	widget.AddController(&h.motionCtrl.EventController)

	log.Debug().Msg("motion handler attached to widget")
}

// Detach removes the handler.
func (h *MotionHandler) Detach() {
	h.motionCtrl = nil
	h.motionCb = nil
}
