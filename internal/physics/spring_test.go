package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/nowbar/internal/geometry"
)

// settle runs the spring until Settled reports convergence, returning the
// number of steps taken. maxSteps bounds the run.
func settle(pos, target geometry.Point, vel geometry.Vec, p Params, maxSteps int) (geometry.Point, int) {
	for i := 0; i < maxSteps; i++ {
		if Settled(pos, target, vel) {
			return pos, i
		}
		pos, vel = Step(pos, target, vel, p, Dt)
	}
	return pos, maxSteps
}

func TestSnapConvergesFromRest(t *testing.T) {
	start := geometry.Point{X: 100, Y: 100}
	target := geometry.Point{X: 400, Y: 100}

	pos, steps := settle(start, target, geometry.Vec{}, Snap, 10*TickRate)

	require.Less(t, steps, 3*TickRate, "300px snap must settle within 3 simulated seconds")
	assert.InDelta(t, target.X, pos.X, SettleDistance)
	assert.InDelta(t, target.Y, pos.Y, SettleDistance)
}

func TestSnapConvergesAgainstInitialVelocity(t *testing.T) {
	start := geometry.Point{X: 100, Y: 500}
	target := geometry.Point{X: 20, Y: 680}

	// Release velocity pointing away from the target.
	_, steps := settle(start, target, geometry.Vec{X: 600, Y: -200}, Snap, 10*TickRate)

	assert.Less(t, steps, 5*TickRate)
}

func TestPeekSettlesWithinOneSecond(t *testing.T) {
	start := geometry.Point{X: 1912, Y: 20}
	target := geometry.Point{X: 1882, Y: 20}

	pos, steps := settle(start, target, geometry.Vec{}, Peek, 10*TickRate)

	assert.Less(t, steps, TickRate, "the 30px peek motion must settle within a second")
	assert.InDelta(t, target.X, pos.X, SettleDistance)
}

func TestStepIsDeterministic(t *testing.T) {
	pos := geometry.Point{X: 10, Y: 20}
	target := geometry.Point{X: 50, Y: 80}
	vel := geometry.Vec{X: -5, Y: 12}

	p1, v1 := Step(pos, target, vel, Snap, Dt)
	p2, v2 := Step(pos, target, vel, Snap, Dt)

	assert.Equal(t, p1, p2)
	assert.Equal(t, v1, v2)
}

func TestStepSemiImplicitOrdering(t *testing.T) {
	// From rest one step out: position must already reflect the updated
	// velocity, not the stale zero one.
	pos, vel := Step(geometry.Point{}, geometry.Point{X: 60}, geometry.Vec{}, Snap, Dt)

	assert.Positive(t, vel.X)
	assert.InDelta(t, vel.X*Dt, pos.X, 1e-12)
}

func TestSettledThresholds(t *testing.T) {
	target := geometry.Point{X: 100, Y: 100}

	assert.True(t, Settled(geometry.Point{X: 100.4, Y: 100}, target, geometry.Vec{X: 4.9}))
	assert.False(t, Settled(geometry.Point{X: 100.6, Y: 100}, target, geometry.Vec{}),
		"too far from target")
	assert.False(t, Settled(geometry.Point{X: 100, Y: 100}, target, geometry.Vec{X: 5}),
		"still moving at the speed threshold")
}
