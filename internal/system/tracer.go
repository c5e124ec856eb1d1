// internal/system/tracer.go
package system

import (
	"math"
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/pkg/geom"
	"go-decryptviz/pkg/render"
)

// PathFor строит фиксированный маршрут трассировщика для вьюпорта w×h.
func PathFor(w, h float64) geom.Polyline {
	return geom.Polyline{
		Start: geom.Pt(0.1*w, 0.3*h),
		Waypoints: []geom.Point{
			geom.Pt(0.3*w, 0.3*h),
			geom.Pt(0.3*w, 0.5*h),
			geom.Pt(0.1*w, 0.5*h),
			geom.Pt(0.1*w, 0.7*h),
			geom.Pt(0.9*w, 0.7*h),
		},
	}
}

// Echo это один «хвостовой» маркер позади основного.
type Echo struct {
	At     geom.Point
	Radius float64
	Alpha  float64
}

// ProgressTracer рисует путь расшифровки, растущий вместе с прогрессом.
type ProgressTracer struct {
	path geom.Polyline
}

func NewProgressTracer() *ProgressTracer {
	return &ProgressTracer{}
}

// Path возвращает текущий маршрут.
func (t *ProgressTracer) Path() geom.Polyline {
	return t.path
}

// Reset пересчитывает маршрут под новый размер. Режим трассировщику не важен.
func (t *ProgressTracer) Reset(width, height float64, _ component.Mode) {
	t.path = PathFor(width, height)
}

// Marker возвращает позицию основного маркера для доли f.
func (t *ProgressTracer) Marker(f float64) geom.Point {
	return t.path.PointAt(f)
}

// Echoes возвращает отстающие маркеры для доли f, ближайший первым.
func (t *ProgressTracer) Echoes(f float64) []Echo {
	echoes := make([]Echo, 0, config.EchoCount)
	for k := 1; k <= config.EchoCount; k++ {
		echoes = append(echoes, Echo{
			At:     t.path.PointAt(math.Max(0, f-config.EchoSpacing*float64(k))),
			Radius: float64(4 - k),
			Alpha:  0.6 - 0.2*float64(k),
		})
	}
	return echoes
}

// SuccessRing радиус пульсирующего кольца вокруг финального маркера.
func SuccessRing(now time.Time) float64 {
	return config.SuccessRingRadius * (math.Sin(millis(now)/config.NodePulsePeriodMs)*0.3 + 0.7)
}

func (t *ProgressTracer) Frame(c render.Canvas, now time.Time, in component.Inputs) {
	// контур всего маршрута рисуется всегда
	c.StrokePolyline(t.path.Points(), config.TracerGuideWidth, render.WithAlpha(config.Cyan, config.TracerGuideAlpha), 0)

	f := in.Fraction()
	if f == 0 {
		return
	}
	c.StrokePolyline(t.path.Prefix(f), config.TracerWidth, config.Cyan, config.TracerGlow)

	if f >= 1 {
		end := t.path.End()
		c.FillCircle(end, config.SuccessRadius, config.Success, config.SuccessGlow)
		c.StrokeCircle(end, SuccessRing(now), config.SuccessRingWidth, config.Success)
		return
	}

	// эхо под основным маркером
	for _, e := range t.Echoes(f) {
		if e.Radius <= 0 || e.Alpha <= 0 {
			continue
		}
		c.FillCircle(e.At, e.Radius, render.WithAlpha(config.Magenta, e.Alpha), 0)
	}
	m := t.Marker(f)
	c.FillCircle(m, config.MarkerRadius, config.Magenta, config.MarkerGlow)
	c.FillCircle(m, config.MarkerInnerRadius, config.White, 0)
}
