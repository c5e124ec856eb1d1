// internal/system/layer.go
package system

import (
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/pkg/render"
)

// Layer is one visual subsystem of a surface. Reset rebuilds its spatial
// state for a viewport and mode; Frame advances it by one tick and draws it.
type Layer interface {
	Reset(width, height float64, mode component.Mode)
	Frame(c render.Canvas, now time.Time, in component.Inputs)
}

// millis returns the wall-clock time in milliseconds as a float, the unit the
// time-driven pulses are expressed in.
func millis(now time.Time) float64 {
	return float64(now.UnixNano()) / float64(time.Millisecond)
}
