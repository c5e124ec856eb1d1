// internal/ui/progress_bar.go
package ui

import (
	"go-decryptviz/internal/config"
	"go-decryptviz/pkg/render"
)

// ProgressBar полоса прогресса с делениями.
type ProgressBar struct {
	X, Y          float64
	Width, Height float64
	Ticks         int
}

func NewProgressBar(x, y, width, height float64) *ProgressBar {
	return &ProgressBar{X: x, Y: y, Width: width, Height: height, Ticks: config.ProgressBarTicks}
}

// FillWidth ширина заполненной части для прогресса p.
func (b *ProgressBar) FillWidth(p float64) float64 {
	return b.Width * p / 100
}

// Draw рисует фон, заполнение и деления. Деления на границах не рисуются.
func (b *ProgressBar) Draw(c render.Canvas, p float64) {
	c.FillRect(b.X, b.Y, b.Width, b.Height, render.DarkenColor(config.Violet))
	if w := b.FillWidth(p); w > 0 {
		fill := config.Cyan
		if p >= 100 {
			fill = config.Success
		}
		c.FillRect(b.X, b.Y, w, b.Height, fill)
	}

	tick := render.WithAlpha(config.BackgroundColor, 0.8)
	for i := 1; i < b.Ticks; i++ {
		x := b.X + b.Width*float64(i)/float64(b.Ticks)
		c.FillRect(x-0.5, b.Y, 1, b.Height, tick)
	}
}
