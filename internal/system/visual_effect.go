// internal/system/visual_effect.go
package system

import "time"

// FlashEffect таймер затухающей вспышки: запускается Trigger, гаснет за
// Duration.
type FlashEffect struct {
	Duration  float64 // секунды
	Remaining float64
}

// NewFlashEffect создает вспышку заданной длительности.
func NewFlashEffect(d time.Duration) *FlashEffect {
	return &FlashEffect{Duration: d.Seconds()}
}

// Trigger перезапускает вспышку с полной яркостью.
func (f *FlashEffect) Trigger() {
	f.Remaining = f.Duration
}

// Update уменьшает оставшееся время вспышки.
func (f *FlashEffect) Update(deltaTime float64) {
	if f.Remaining <= 0 {
		return
	}
	f.Remaining -= deltaTime
	if f.Remaining < 0 {
		f.Remaining = 0
	}
}

// Active сообщает, видна ли вспышка.
func (f *FlashEffect) Active() bool {
	return f.Remaining > 0
}

// Intensity яркость от 1 (только что запущена) до 0 (погасла).
func (f *FlashEffect) Intensity() float64 {
	if f.Duration <= 0 {
		return 0
	}
	return f.Remaining / f.Duration
}
