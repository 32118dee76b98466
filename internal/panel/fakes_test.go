package panel

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/nowbar/internal/geometry"
)

// fakeScreen is a hand-rolled Screen for tests.
type fakeScreen struct {
	frame geometry.Rect
}

func (s *fakeScreen) VisibleFrame() geometry.Rect { return s.frame }

// fakeWindow records frame mutations. A nil screen simulates a window not
// yet attached to a display.
type fakeWindow struct {
	origin geometry.Point
	size   geometry.Size
	screen *fakeScreen

	setOriginCalls int
}

func (w *fakeWindow) Origin() geometry.Point { return w.origin }

func (w *fakeWindow) SetOrigin(p geometry.Point) {
	w.origin = p
	w.setOriginCalls++
}

func (w *fakeWindow) Size() geometry.Size { return w.size }

func (w *fakeWindow) Screen() (Screen, bool) {
	if w.screen == nil {
		return nil, false
	}
	return w.screen, true
}

// fakeTicker lets tests drive the 60 Hz simulation by hand.
type fakeTicker struct {
	fn      func() bool
	running bool
	starts  int
	stops   int
}

func (t *fakeTicker) Start(fn func() bool) {
	t.fn = fn
	t.running = true
	t.starts++
}

func (t *fakeTicker) Stop() {
	t.fn = nil
	t.running = false
	t.stops++
}

// step advances the simulation by one frame.
func (t *fakeTicker) step() {
	if !t.running || t.fn == nil {
		return
	}
	if !t.fn() {
		t.fn = nil
		t.running = false
	}
}

// run steps until the animation stops or maxSteps frames elapse, returning
// the number of frames executed.
func (t *fakeTicker) run(maxSteps int) int {
	for i := 0; i < maxSteps; i++ {
		if !t.running {
			return i
		}
		t.step()
	}
	return maxSteps
}

// fakeClock replaces the controller's wall clock for velocity math.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// testRig bundles a controller with its collaborators and captured
// callback activity.
type testRig struct {
	c      *Controller
	win    *fakeWindow
	ticker *fakeTicker
	clock  *fakeClock

	page            Page
	manualScrolling bool
	leftReserved    bool
	interactive     []geometry.Rect

	dragStateChanges   []bool
	edgeHiddenChanges  []bool
	manualScrollCalls  int
	autoEnterManual    bool // flip manualScrolling on once triggered
}

func newTestRig(t *testing.T, opts Options) *testRig {
	t.Helper()

	rig := &testRig{
		win: &fakeWindow{
			origin: geometry.Point{X: 100, Y: 100},
			size:   geometry.Size{W: 300, H: 380},
			screen: &fakeScreen{frame: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		},
		ticker: &fakeTicker{},
		clock:  &fakeClock{t: time.Unix(1000, 0)},
		page:   PageHome,
	}

	hooks := Hooks{
		OnDragStateChanged: func(h bool) { rig.dragStateChanges = append(rig.dragStateChanges, h) },
		OnEdgeHiddenChanged: func(h bool) {
			rig.edgeHiddenChanges = append(rig.edgeHiddenChanges, h)
		},
		OnTriggerManualScroll: func() {
			rig.manualScrollCalls++
			if rig.autoEnterManual {
				rig.manualScrolling = true
			}
		},
		CurrentPage:       func() Page { return rig.page },
		IsManualScrolling: func() bool { return rig.manualScrolling },
		IsInteractiveAt: func(p geometry.Point) bool {
			for _, r := range rig.interactive {
				if r.Contains(p) {
					return true
				}
			}
			return false
		},
		IsLeftEdgeReserved: func() bool { return rig.leftReserved },
	}

	rig.c = New(context.Background(), rig.win, rig.ticker, opts, hooks)
	rig.c.now = rig.clock.now
	return rig
}

// dragPointer performs a full pointer drag through the given points, one
// frame apart.
func (rig *testRig) dragPointer(points ...geometry.Point) bool {
	if !rig.c.PointerDown(points[0]) {
		return false
	}
	for _, p := range points[1:] {
		rig.clock.advance(16 * time.Millisecond)
		rig.c.PointerDragged(p)
	}
	return rig.c.PointerUp(points[len(points)-1])
}

// flick runs a complete two-finger gesture with the given per-event deltas.
func (rig *testRig) flick(deltas ...geometry.Vec) bool {
	rig.c.Scroll(ScrollEvent{Phase: ScrollBegan})
	for _, d := range deltas {
		rig.c.Scroll(ScrollEvent{Phase: ScrollChanged, Dx: d.X, Dy: d.Y})
	}
	return rig.c.Scroll(ScrollEvent{Phase: ScrollEnded})
}
