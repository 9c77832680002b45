package canvas

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate, either on screen or in content space.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by k on both axes.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Floor rounds both coordinates down to integers.
func (p Point) Floor() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// Distance returns the euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is the extent of a note in content space.
type Size struct {
	W, H float64
}

// Transform is the single affine transform applied to the content layer:
// translate(X, Y) followed by scale(Scale).
type Transform struct {
	X, Y  float64
	Scale float64

	// Animated is false while a pan or drag is in progress so the view
	// follows the pointer without easing.
	Animated bool
}

// Apply maps a content-space point to screen space.
func (t Transform) Apply(p Point) Point {
	return Point{X: p.X*t.Scale + t.X, Y: p.Y*t.Scale + t.Y}
}

// String renders the transform in CSS notation.
func (t Transform) String() string {
	return fmt.Sprintf("translate(%gpx, %gpx) scale(%g)", t.X, t.Y, t.Scale)
}
