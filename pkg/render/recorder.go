// pkg/render/recorder.go
package render

import (
	"image/color"
	"sort"

	"go-decryptviz/pkg/geom"
)

// OpKind names a Canvas call.
type OpKind string

const (
	OpClear          OpKind = "clear"
	OpStrokePolygon  OpKind = "stroke-polygon"
	OpStrokePolyline OpKind = "stroke-polyline"
	OpStrokeLine     OpKind = "stroke-line"
	OpFillCircle     OpKind = "fill-circle"
	OpStrokeCircle   OpKind = "stroke-circle"
	OpFillBand       OpKind = "fill-band"
	OpFillRect       OpKind = "fill-rect"
	OpText           OpKind = "text"
)

// Op is one recorded draw call.
type Op struct {
	Kind   OpKind
	Points []geom.Point
	Radius float64
	Width  float64
	Glow   float64
	Color  color.RGBA
	Text   string
}

// Recorder is a Canvas that keeps every call instead of drawing. It backs the
// headless `stats` command and the layer tests.
type Recorder struct {
	W, H int
	Ops  []Op
}

var _ Canvas = (*Recorder)(nil)

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

// Reset drops every recorded op.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the ops matching keep.
func (r *Recorder) Filter(keep func(Op) bool) []Op {
	var out []Op
	for _, op := range r.Ops {
		if keep(op) {
			out = append(out, op)
		}
	}
	return out
}

// Histogram returns op counts keyed by kind, with the kinds sorted.
func (r *Recorder) Histogram() ([]OpKind, map[OpKind]int) {
	counts := make(map[OpKind]int)
	for _, op := range r.Ops {
		counts[op.Kind]++
	}
	kinds := make([]OpKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds, counts
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) StrokePolygon(pts []geom.Point, width float64, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePolygon, Points: clonePoints(pts), Width: width, Color: clr})
}

func (r *Recorder) StrokePolyline(pts []geom.Point, width float64, clr color.RGBA, glow float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePolyline, Points: clonePoints(pts), Width: width, Color: clr, Glow: glow})
}

func (r *Recorder) StrokeLine(a, b geom.Point, width float64, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, Points: []geom.Point{a, b}, Width: width, Color: clr})
}

func (r *Recorder) FillCircle(c geom.Point, radius float64, clr color.RGBA, glow float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Points: []geom.Point{c}, Radius: radius, Color: clr, Glow: glow})
}

func (r *Recorder) StrokeCircle(c geom.Point, radius, width float64, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, Points: []geom.Point{c}, Radius: radius, Width: width, Color: clr})
}

func (r *Recorder) FillBand(y, halfHeight float64, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillBand, Points: []geom.Point{{X: 0, Y: y}}, Radius: halfHeight, Color: clr})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Points: []geom.Point{{X: x, Y: y}, {X: x + w, Y: y + h}}, Color: clr})
}

func (r *Recorder) Text(s string, x, y, size float64, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Points: []geom.Point{{X: x, Y: y}}, Radius: size, Color: clr, Text: s})
}

func clonePoints(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	copy(out, pts)
	return out
}
