// internal/ui/hud.go
package ui

import (
	"fmt"
	"math"
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/internal/event"
	"go-decryptviz/internal/system"
	"go-decryptviz/pkg/render"
)

const SuccessText = "DECRYPTION SUCCESSFUL"

// ToastText текст всплывающего сообщения во время расшифровки.
func ToastText(p float64) string {
	return fmt.Sprintf("BREAKING ENCRYPTION MATRIX... %d%%", int(math.Floor(component.ClampProgress(p))))
}

// HUD оверлей поверх сцены: тост, подпись этапа, полоса прогресса,
// индикатор режима и вспышка успеха.
type HUD struct {
	indicator *ModeIndicator
	stage     *StageIndicator
	bar       *ProgressBar
	flash     *system.FlashEffect
	clock     func() time.Time
}

// NewHUD раскладывает элементы под экран width×height.
func NewHUD(width, height int) *HUD {
	m := config.HUDMargin
	w := float64(width)
	h := float64(height)
	return &HUD{
		indicator: NewModeIndicator(w-m, m, config.IndicatorRadius),
		stage:     NewStageIndicator(m, h-m-config.ProgressBarHeight-config.CaptionFontSize-8, config.CaptionFontSize),
		bar:       NewProgressBar(m, h-m-config.ProgressBarHeight, w-2*m, config.ProgressBarHeight),
		flash:     system.NewFlashEffect(config.SuccessFlashDuration),
		clock:     time.Now,
	}
}

// Attach подписывает HUD на события контроллера.
func (h *HUD) Attach(d *event.Dispatcher) {
	d.SubscribeAll(h, event.ModeChanged, event.ProgressCompleted)
}

func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.ModeChanged:
		h.indicator.HandleChange(h.clock())
	case event.ProgressCompleted:
		h.flash.Trigger()
	}
}

// Flash возвращает вспышку успеха.
func (h *HUD) Flash() *system.FlashEffect {
	return h.flash
}

// Update продвигает таймеры HUD.
func (h *HUD) Update(deltaTime float64) {
	h.flash.Update(deltaTime)
}

// Draw рисует HUD для входов in.
func (h *HUD) Draw(c render.Canvas, in component.Inputs, now time.Time) {
	h.indicator.Draw(c, in.Mode, now)

	if in.Mode == component.Active {
		m := config.HUDMargin
		c.Text(ToastText(in.Progress), m, m, config.ToastFontSize, config.Cyan)
		h.stage.Draw(c, in.Progress)
		h.bar.Draw(c, component.ClampProgress(in.Progress))
	}

	if h.flash.Active() {
		w, _ := c.Size()
		x := float64(w)/2 - float64(len(SuccessText))*config.ToastFontSize*0.3
		c.Text(SuccessText, x, config.HUDMargin*3, config.ToastFontSize, render.WithAlpha(config.Success, h.flash.Intensity()))
	}
}
