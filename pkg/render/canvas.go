// pkg/render/canvas.go
package render

import (
	"image/color"

	"go-decryptviz/pkg/geom"
)

// Canvas is the drawing surface the animation layers render into. Widths and
// radii are in surface pixels; glow is the blur radius of a soft halo drawn
// under a shape (0 disables it).
type Canvas interface {
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	// Clear erases the whole surface to transparent.
	Clear()
	// StrokePolygon strokes a closed outline through pts.
	StrokePolygon(pts []geom.Point, width float64, clr color.RGBA)
	// StrokePolyline strokes an open path with round joins and caps.
	StrokePolyline(pts []geom.Point, width float64, clr color.RGBA, glow float64)
	// StrokeLine strokes a single segment.
	StrokeLine(a, b geom.Point, width float64, clr color.RGBA)
	// FillCircle fills a disk, optionally with a halo in the same colour.
	FillCircle(c geom.Point, radius float64, clr color.RGBA, glow float64)
	// StrokeCircle strokes a ring.
	StrokeCircle(c geom.Point, radius, width float64, clr color.RGBA)
	// FillBand fills a full-width horizontal stripe centred on y whose alpha
	// ramps from 0 at both edges to clr.A in the middle.
	FillBand(y, halfHeight float64, clr color.RGBA)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, clr color.RGBA)
	// Text draws a single line of text with its top-left corner at (x, y).
	Text(s string, x, y, size float64, clr color.RGBA)
}
