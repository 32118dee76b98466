// Package mainloop provides GLib main-loop scheduling helpers: the frame
// ticker that drives the panel spring animation and a coalescer for bursts
// of same-key tasks posted from outside the loop.
package mainloop

import (
	"github.com/jwijenbergh/puregotk/v4/glib"

	"github.com/bnema/nowbar/internal/physics"
)

// frameInterval is the tick period in ms for the 60 Hz simulation.
const frameInterval = 1000 / physics.TickRate

// FrameTicker is the glib-backed panel.FrameTicker. It owns a single
// timeout source: starting a new tick replaces the previous one, which is
// what enforces the one-animation-at-a-time invariant at the timer level.
//
// Not safe for concurrent use; call only from the GTK main loop.
type FrameTicker struct {
	sourceID uint32

	// Callback retention: must stay reachable by Go GC.
	cb glib.SourceFunc
}

// NewFrameTicker creates an idle ticker.
func NewFrameTicker() *FrameTicker {
	return &FrameTicker{}
}

// Start begins invoking fn every frame until it returns false. Any
// previously running tick source is removed first.
func (t *FrameTicker) Start(fn func() bool) {
	t.Stop()

	t.cb = glib.SourceFunc(func(_ uintptr) bool {
		if fn() {
			return true
		}
		t.sourceID = 0
		return false
	})
	t.sourceID = glib.TimeoutAdd(uint32(frameInterval), &t.cb, 0)
}

// Stop removes the tick source if one is running.
func (t *FrameTicker) Stop() {
	if t.sourceID == 0 {
		return
	}
	glib.SourceRemove(t.sourceID)
	t.sourceID = 0
}
