package input

import (
	"context"

	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/nowbar/internal/logging"
	"github.com/bnema/nowbar/internal/panel"
)

// ScrollHandler feeds two-finger scroll events, with their begin/changed/
// end phases, into the panel controller.
type ScrollHandler struct {
	scrollCtrl *gtk.EventControllerScroll

	// Callback retention: must stay reachable by Go GC.
	beginCb  func(gtk.EventControllerScroll)
	scrollCb func(gtk.EventControllerScroll, float64, float64) bool
	endCb    func(gtk.EventControllerScroll)

	controller *panel.Controller

	ctx context.Context
}

// NewScrollHandler creates a scroll handler for the panel controller.
func NewScrollHandler(ctx context.Context, controller *panel.Controller) *ScrollHandler {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating scroll handler")

	return &ScrollHandler{
		ctx:        ctx,
		controller: controller,
	}
}

// AttachTo attaches the handler to a GTK widget, normally the panel body so
// only gestures over the player reach the controller.
func (h *ScrollHandler) AttachTo(widget *gtk.Widget) {
	log := logging.FromContext(h.ctx)

	if widget == nil {
		log.Error().Msg("cannot attach scroll handler to nil widget")
		return
	}

	h.scrollCtrl = gtk.NewEventControllerScroll(gtk.EventControllerScrollBothAxesValue)
	if h.scrollCtrl == nil {
		log.Error().Msg("failed to create scroll controller")
		return
	}
	h.scrollCtrl.SetPropagationPhase(gtk.PhaseCaptureValue)

	h.beginCb = func(_ gtk.EventControllerScroll) {
		h.controller.Scroll(panel.ScrollEvent{Phase: panel.ScrollBegan})
	}
	h.scrollCtrl.ConnectScrollBegin(&h.beginCb)

	h.scrollCb = func(_ gtk.EventControllerScroll, dx, dy float64) bool {
		// Returning false lets the event continue to the content view.
		return h.controller.Scroll(panel.ScrollEvent{
			Phase: panel.ScrollChanged,
			Dx:    dx,
			Dy:    dy,
		})
	}
	h.scrollCtrl.ConnectScroll(&h.scrollCb)

	h.endCb = func(_ gtk.EventControllerScroll) {
		h.controller.Scroll(panel.ScrollEvent{Phase: panel.ScrollEnded})
	}
	h.scrollCtrl.ConnectScrollEnd(&h.endCb)

	widget.AddController(&h.scrollCtrl.EventController)

	log.Debug().Msg("scroll handler attached to widget")
}

// Detach removes the handler.
func (h *ScrollHandler) Detach() {
	h.scrollCtrl = nil
	h.beginCb = nil
	h.scrollCb = nil
	h.endCb = nil
}
