// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/pkg/geom"
	"go-decryptviz/pkg/render"
)

// ModeIndicator кружок режима в углу экрана, вздрагивающий при смене режима.
type ModeIndicator struct {
	X, Y       float64
	Radius     float64
	LastChange time.Time
}

func NewModeIndicator(x, y, radius float64) *ModeIndicator {
	return &ModeIndicator{X: x, Y: y, Radius: radius}
}

// Scale коэффициент «отдачи» после смены режима: 1.3 сразу, затем к 1.
func (i *ModeIndicator) Scale(now time.Time) float64 {
	if i.LastChange.IsZero() {
		return 1
	}
	elapsed := now.Sub(i.LastChange).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

// Draw отрисовывает индикатор
func (i *ModeIndicator) Draw(c render.Canvas, mode component.Mode, now time.Time) {
	clr := config.Violet
	if mode == component.Active {
		clr = config.Cyan
	}
	r := i.Radius * i.Scale(now)
	c.FillCircle(geom.Pt(i.X, i.Y), r, clr, r)
	c.StrokeCircle(geom.Pt(i.X, i.Y), r, 1, color.RGBA{255, 255, 255, 255})
}

// HandleChange запоминает момент смены режима.
func (i *ModeIndicator) HandleChange(now time.Time) {
	i.LastChange = now
}
