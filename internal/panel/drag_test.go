package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/nowbar/internal/geometry"
)

func TestDragSessionVelocityFromSamples(t *testing.T) {
	start := time.Unix(1000, 0)
	d := newDragSession(geometry.Point{X: 0, Y: 0}, geometry.Point{}, start)

	// Four more samples, 10ms apart, 5px right each: 500 px/s.
	for i := 1; i <= 4; i++ {
		d.record(
			geometry.Point{X: float64(i) * 5},
			start.Add(time.Duration(i)*10*time.Millisecond),
		)
	}

	v := d.velocity()
	assert.InDelta(t, 500, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)
}

func TestDragSessionVelocityUsesOnlyRecentSamples(t *testing.T) {
	start := time.Unix(1000, 0)
	d := newDragSession(geometry.Point{X: 0, Y: 0}, geometry.Point{}, start)

	// A slow opening phase that the ring buffer must forget.
	for i := 1; i <= 10; i++ {
		d.record(
			geometry.Point{X: float64(i)},
			start.Add(time.Duration(i)*100*time.Millisecond),
		)
	}
	// A fast finish: 20px per 10ms over the last retained window.
	base := d.samples[(d.head-1+dragSampleCap)%dragSampleCap]
	for i := 1; i <= dragSampleCap; i++ {
		d.record(
			geometry.Point{X: base.pos.X + float64(i)*20},
			base.at.Add(time.Duration(i)*10*time.Millisecond),
		)
	}

	v := d.velocity()
	assert.InDelta(t, 2000, v.X, 1e-9,
		"velocity reflects the retained window only, not the whole drag")
}

func TestDragSessionVelocityDegenerateCases(t *testing.T) {
	start := time.Unix(1000, 0)

	d := newDragSession(geometry.Point{X: 50, Y: 50}, geometry.Point{}, start)
	assert.Zero(t, d.velocity(), "a single sample has no velocity")

	// Two samples at the same instant.
	d.record(geometry.Point{X: 60, Y: 50}, start)
	assert.Zero(t, d.velocity())
}

func TestDragSessionDisplacement(t *testing.T) {
	d := newDragSession(geometry.Point{X: 10, Y: 10}, geometry.Point{}, time.Unix(1000, 0))

	assert.InDelta(t, 5, d.displacement(geometry.Point{X: 13, Y: 14}), 1e-9)
	assert.Zero(t, d.displacement(geometry.Point{X: 10, Y: 10}))
}

func TestAnimationReplacementKeepsSingleTickSource(t *testing.T) {
	rig := newTestRig(t, DefaultOptions())

	// Two opposing flicks in a row: the second snap replaces the first
	// mid-flight.
	rig.flick(geometry.Vec{X: 80, Y: 30})
	rig.ticker.step()
	firstTarget := rig.c.anim.target

	rig.flick(geometry.Vec{X: -80, Y: -30})
	assert.NotEqual(t, firstTarget, rig.c.anim.target)
	assert.Equal(t, 1, rig.ticker.stops, "flick start cancels the animation once")

	rig.ticker.run(3600)
	assert.False(t, rig.ticker.running)
	assert.Equal(t, rig.c.anim.target, rig.win.origin, "settle lands exactly on target")
}
