// internal/app/listener.go
package app

import (
	"log"

	"go-decryptviz/internal/event"
)

// LogListener пишет в лог события контроллера.
type LogListener struct{}

// Attach подписывает слушатель на все события контроллера.
func (l *LogListener) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l, event.ModeChanged, event.SurfaceResized, event.ProgressCompleted, event.SurfaceMissing)
}

func (l *LogListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.ModeChange:
		log.Printf("[app] mode %v -> %v", data.From, data.To)
	case event.Resize:
		log.Printf("[app] %s resized to %dx%d", data.Surface, data.Width, data.Height)
	case event.Missing:
		// уже залогировано циклом кадра
	default:
		log.Printf("[app] %s", e.Type)
	}
}
