// Package geometry provides the screen-space value types used by the panel
// controller. All coordinates are in logical pixels with the origin at the
// top-left of the screen, Y growing downward (GTK convention).
package geometry

import "math"

// Point is a position in screen coordinates.
type Point struct {
	X, Y float64
}

// Vec is a displacement or velocity in screen coordinates.
type Vec struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle defined by its top-left origin and size.
type Rect struct {
	X, Y, W, H float64
}

// Add offsets the point by a vector.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the distance between two points.
func Dist(p, q Point) float64 {
	return p.Sub(q).Len()
}

// Add sums two vectors.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale multiplies both components by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// NewRect builds a rectangle from an origin and a size.
func NewRect(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.W, H: size.H}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// MinX returns the left edge coordinate.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MinY returns the top edge coordinate.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// MidX returns the horizontal midpoint.
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// MidY returns the vertical midpoint.
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Center returns the rectangle center point.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// Contains reports whether p lies inside the rectangle. Points on the
// left/top edges are inside, points on the right/bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// CornerOrigin returns the window origin that places a window of the given
// size in the quadrant corner of visible that contains center, inset by
// margin on both axes. Selection compares center against the visible frame
// midpoints, so the result depends only on the quadrant, not on where the
// window currently sits.
func CornerOrigin(center Point, visible Rect, size Size, margin float64) Point {
	var o Point
	if center.X < visible.MidX() {
		o.X = visible.MinX() + margin
	} else {
		o.X = visible.MaxX() - size.W - margin
	}
	if center.Y < visible.MidY() {
		o.Y = visible.MinY() + margin
	} else {
		o.Y = visible.MaxY() - size.H - margin
	}
	return o
}
