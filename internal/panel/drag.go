package panel

import (
	"time"

	"github.com/bnema/nowbar/internal/geometry"
)

// dragSampleCap bounds the pointer history kept for velocity estimation.
const dragSampleCap = 5

// clickThreshold is the total displacement in px below which a
// pointer-down/up pair is treated as a click rather than a drag.
const clickThreshold = 3.0

type dragSample struct {
	pos geometry.Point
	at  time.Time
}

// dragSession is the transient record of one pointer drag: the starting
// pointer/frame positions plus a short ring buffer of (position, time)
// samples. Created on pointer-down, discarded on pointer-up.
type dragSession struct {
	startPointer geometry.Point
	startOrigin  geometry.Point

	// moved latches once the pointer has traveled past the click
	// threshold; until then the window does not follow, so a click never
	// nudges the frame.
	moved bool

	samples [dragSampleCap]dragSample
	head    int
	count   int
}

func newDragSession(pointer, origin geometry.Point, at time.Time) dragSession {
	d := dragSession{startPointer: pointer, startOrigin: origin}
	d.record(pointer, at)
	return d
}

// record appends a pointer sample, evicting the oldest once the buffer is
// full.
func (d *dragSession) record(p geometry.Point, at time.Time) {
	d.samples[d.head] = dragSample{pos: p, at: at}
	d.head = (d.head + 1) % dragSampleCap
	if d.count < dragSampleCap {
		d.count++
	}
}

// displacement returns the total pointer travel from the start of the drag.
func (d *dragSession) displacement(p geometry.Point) float64 {
	return geometry.Dist(p, d.startPointer)
}

// velocity estimates the release velocity in px/s from the oldest and
// newest retained samples. Returns zero when the history spans no
// measurable time.
func (d *dragSession) velocity() geometry.Vec {
	if d.count < 2 {
		return geometry.Vec{}
	}
	newestIdx := (d.head - 1 + dragSampleCap) % dragSampleCap
	oldestIdx := (d.head - d.count + dragSampleCap) % dragSampleCap
	newest := d.samples[newestIdx]
	oldest := d.samples[oldestIdx]

	dt := newest.at.Sub(oldest.at).Seconds()
	if dt <= 0 {
		return geometry.Vec{}
	}
	return newest.pos.Sub(oldest.pos).Scale(1 / dt)
}
