// internal/event/types.go
package event

import "go-decryptviz/internal/component"

const (
	ModeChanged       EventType = "ModeChanged"       // режим idle/active сменился
	SurfaceResized    EventType = "SurfaceResized"    // поверхность пересобрана под новый размер
	ProgressCompleted EventType = "ProgressCompleted" // прогресс впервые достиг 100
	SurfaceMissing    EventType = "SurfaceMissing"    // поверхность не подключена, кадры не планируются
	DecryptStarted    EventType = "DecryptStarted"
	DecryptFailed     EventType = "DecryptFailed"
)

// ModeChange полезная нагрузка ModeChanged.
type ModeChange struct {
	From, To component.Mode
}

// Resize полезная нагрузка SurfaceResized.
type Resize struct {
	Surface       string
	Width, Height int
}

// Missing полезная нагрузка SurfaceMissing.
type Missing struct {
	Surface string
	Err     error
}
