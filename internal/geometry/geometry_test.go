package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdgesAndCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 300, H: 380}

	assert.Equal(t, 10.0, r.MinX())
	assert.Equal(t, 310.0, r.MaxX())
	assert.Equal(t, 20.0, r.MinY())
	assert.Equal(t, 400.0, r.MaxY())
	assert.Equal(t, Point{X: 160, Y: 210}, r.Center())
	assert.Equal(t, Point{X: 10, Y: 20}, r.Origin())
	assert.Equal(t, Size{W: 300, H: 380}, r.Size())
}

func TestRectContainsHalfOpen(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 100}

	assert.True(t, r.Contains(Point{X: 0, Y: 0}), "left/top edges are inside")
	assert.True(t, r.Contains(Point{X: 99.9, Y: 99.9}))
	assert.False(t, r.Contains(Point{X: 100, Y: 50}), "right edge is outside")
	assert.False(t, r.Contains(Point{X: 50, Y: 100}), "bottom edge is outside")
	assert.False(t, r.Contains(Point{X: -0.1, Y: 50}))
}

func TestCornerOriginQuadrants(t *testing.T) {
	visible := Rect{X: 0, Y: 0, W: 1920, H: 1080}
	size := Size{W: 300, H: 380}
	const margin = 20.0

	tests := []struct {
		name   string
		center Point
		want   Point
	}{
		{"top-left", Point{X: 100, Y: 100}, Point{X: 20, Y: 20}},
		{"top-right", Point{X: 1800, Y: 100}, Point{X: 1600, Y: 20}},
		{"bottom-left", Point{X: 100, Y: 1000}, Point{X: 20, Y: 680}},
		{"bottom-right", Point{X: 1800, Y: 1000}, Point{X: 1600, Y: 680}},
		// Exactly on a midpoint resolves to the right/bottom side.
		{"dead center", Point{X: 960, Y: 540}, Point{X: 1600, Y: 680}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CornerOrigin(tt.center, visible, size, margin))
		})
	}
}

func TestCornerOriginRespectsVisibleOffset(t *testing.T) {
	// A visible frame that does not start at the screen origin, as with a
	// top panel bar reserving 40px.
	visible := Rect{X: 0, Y: 40, W: 1920, H: 1040}
	size := Size{W: 300, H: 380}

	got := CornerOrigin(Point{X: 100, Y: 100}, visible, size, 20)
	assert.Equal(t, Point{X: 20, Y: 60}, got)
}

func TestVectorOps(t *testing.T) {
	assert.Equal(t, Vec{X: 3, Y: 4}, Point{X: 5, Y: 6}.Sub(Point{X: 2, Y: 2}))
	assert.Equal(t, Point{X: 8, Y: 10}, Point{X: 5, Y: 6}.Add(Vec{X: 3, Y: 4}))
	assert.Equal(t, 5.0, Vec{X: 3, Y: 4}.Len())
	assert.Equal(t, 5.0, Dist(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}))
	assert.Equal(t, Vec{X: -6, Y: -8}, Vec{X: 3, Y: 4}.Scale(-2))
}
