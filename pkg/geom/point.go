// pkg/geom/point.go
package geom

import "math"

// Sqrt3 is used by the hex tessellation strides.
var Sqrt3 = math.Sqrt(3)

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp выполняет линейную интерполяцию между точками
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Clamp01 clamps v into [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if v > 0 {
		if v > 1 {
			return 1
		}
		return v
	}
	return 0
}

// Wrap maps v into [0, size) treating the axis as a torus.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	if v >= 0 && v < size {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// v+size can round up to size for tiny negative v
	if v >= size {
		v = 0
	}
	return v
}

// Reflect bounces v off the walls of [0, size). It returns the new coordinate
// and whether the direction of travel must be inverted.
func Reflect(v, size float64) (float64, bool) {
	if size <= 0 {
		return 0, false
	}
	switch {
	case v < 0:
		v = -v
	case v >= size:
		v = 2*size - v
	default:
		return v, false
	}
	// very large overshoots are clamped instead of bounced twice
	if v < 0 {
		v = 0
	}
	if v >= size {
		v = math.Nextafter(size, 0)
	}
	return v, true
}
