// pkg/geom/polyline.go
package geom

import "errors"

// ErrDegeneratePath is reported by Validate for paths with no length.
var ErrDegeneratePath = errors.New("geom: path has zero total length")

// Polyline is an ordered path starting at Start and passing through every
// waypoint in turn.
type Polyline struct {
	Start     Point
	Waypoints []Point
}

// Length returns the sum of the segment lengths, Start included.
func (p Polyline) Length() float64 {
	total := 0.0
	last := p.Start
	for _, w := range p.Waypoints {
		total += Distance(last, w)
		last = w
	}
	return total
}

// End returns the last waypoint, or Start for a path without waypoints.
func (p Polyline) End() Point {
	if len(p.Waypoints) == 0 {
		return p.Start
	}
	return p.Waypoints[len(p.Waypoints)-1]
}

// Points returns Start followed by the waypoints.
func (p Polyline) Points() []Point {
	pts := make([]Point, 0, len(p.Waypoints)+1)
	pts = append(pts, p.Start)
	return append(pts, p.Waypoints...)
}

// Validate reports ErrDegeneratePath when the path has zero length.
func (p Polyline) Validate() error {
	if p.Length() == 0 {
		return ErrDegeneratePath
	}
	return nil
}

// PointAt returns the point at fraction f of the total length. f is clamped
// into [0, 1]. A zero-length path always yields Start.
func (p Polyline) PointAt(f float64) Point {
	pt, _ := p.walk(f, nil)
	return pt
}

// Prefix returns the vertices of the part of the path whose cumulative length
// is f × total: Start, every waypoint fully covered, then the interpolated end
// point. It is empty when f is 0 or the path is degenerate.
func (p Polyline) Prefix(f float64) []Point {
	f = Clamp01(f)
	if f == 0 || p.Length() == 0 {
		return nil
	}
	pts := make([]Point, 0, len(p.Waypoints)+1)
	pts = append(pts, p.Start)
	_, pts = p.walk(f, pts)
	return pts
}

// walk locates fraction f along the path. When acc is non-nil every vertex
// passed on the way (and the final point, if it is not a vertex) is appended.
func (p Polyline) walk(f float64, acc []Point) (Point, []Point) {
	f = Clamp01(f)
	total := p.Length()
	if total == 0 {
		return p.Start, acc
	}
	if f == 1 {
		end := p.End()
		if acc != nil {
			acc = append(acc, p.Waypoints...)
		}
		return end, acc
	}

	target := f * total
	travelled := 0.0
	last := p.Start
	for _, w := range p.Waypoints {
		seg := Distance(last, w)
		if seg > 0 && travelled+seg > target {
			pt := Lerp(last, w, (target-travelled)/seg)
			if acc != nil && target > travelled {
				acc = append(acc, pt)
			}
			return pt, acc
		}
		travelled += seg
		last = w
		if acc != nil {
			acc = append(acc, w)
		}
	}
	return last, acc
}

// PathPointAt is the free-function form of Polyline.PointAt.
func PathPointAt(waypoints []Point, start Point, f float64) Point {
	return Polyline{Start: start, Waypoints: waypoints}.PointAt(f)
}
