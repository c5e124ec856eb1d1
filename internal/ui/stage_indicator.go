// internal/ui/stage_indicator.go
package ui

import (
	"image/color"

	"go-decryptviz/internal/config"
	"go-decryptviz/pkg/render"
)

// StageCaption подпись этапа расшифровки для прогресса p.
func StageCaption(p float64) string {
	switch {
	case p < 25:
		return "Initializing quantum processors..."
	case p < 50:
		return "Analyzing encryption pattern..."
	case p < 75:
		return "Validating cryptographic key..."
	case p < 95:
		return "Breaking encryption matrix..."
	default:
		return "Finalizing decryption..."
	}
}

// StageIndicator выводит подпись этапа с обводкой.
type StageIndicator struct {
	X, Y             float64
	FontSize         float64
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewStageIndicator создает новый индикатор этапа.
func NewStageIndicator(x, y, fontSize float64) *StageIndicator {
	return &StageIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            config.TextLightColor,
		OutlineColor:     config.BackgroundColor,
		OutlineThickness: 1,
	}
}

// Draw отрисовывает подпись для прогресса p.
func (i *StageIndicator) Draw(c render.Canvas, p float64) {
	text := StageCaption(p)

	// Рисуем обводку
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			c.Text(text, i.X+float64(x), i.Y+float64(y), i.FontSize, i.OutlineColor)
		}
	}

	c.Text(text, i.X, i.Y, i.FontSize, i.Color)
}
