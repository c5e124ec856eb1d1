// internal/demo/decryptor.go
package demo

import (
	"log"
	"math"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/internal/event"
)

// Target принимает оба входа анимации. Его реализует app.Controller.
type Target interface {
	SetMode(m component.Mode)
	SetProgress(p float64)
}

// Phase этап имитации расшифровки.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWorking
	PhaseHolding   // прогресс 100, ждём перед возвратом в простой
	PhaseResetting // уже idle, ждём перед обнулением прогресса
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWorking:
		return "working"
	case PhaseHolding:
		return "holding"
	case PhaseResetting:
		return "resetting"
	}
	return "unknown"
}

// Decryptor имитирует фоновую расшифровку: поднимает прогресс по таймеру,
// после завершения работы держит 100 % и возвращает сцену в простой.
type Decryptor struct {
	cfg    config.DemoConfig
	target Target
	events *event.Dispatcher

	phase     Phase
	elapsed   float64
	tickTimer float64
	progress  float64
}

func NewDecryptor(cfg config.DemoConfig, target Target, events *event.Dispatcher) *Decryptor {
	return &Decryptor{cfg: cfg, target: target, events: events}
}

func (d *Decryptor) Phase() Phase       { return d.phase }
func (d *Decryptor) Progress() float64 { return d.progress }

// Start запускает расшифровку. Во время уже идущей ничего не делает.
func (d *Decryptor) Start() bool {
	if d.phase == PhaseWorking || d.phase == PhaseHolding {
		return false
	}
	d.phase = PhaseWorking
	d.elapsed, d.tickTimer = 0, 0
	d.setProgress(0)
	d.target.SetMode(component.Active)
	log.Printf("[demo] decrypt started")
	d.emit(event.DecryptStarted, nil)
	return true
}

// Fail прерывает расшифровку: прогресс в 0, сцена в простой.
func (d *Decryptor) Fail(reason error) {
	if d.phase == PhaseIdle {
		return
	}
	d.phase = PhaseIdle
	d.setProgress(0)
	d.target.SetMode(component.Idle)
	log.Printf("[demo] decrypt failed: %v", reason)
	d.emit(event.DecryptFailed, reason)
}

// Update продвигает имитацию на deltaTime секунд.
func (d *Decryptor) Update(deltaTime float64) {
	switch d.phase {
	case PhaseWorking:
		d.tickTimer += deltaTime
		interval := d.cfg.Interval.Seconds()
		for d.tickTimer >= interval && d.progress < 100 {
			d.tickTimer -= interval
			d.setProgress(math.Min(100, d.progress+d.cfg.Step))
		}
		d.elapsed += deltaTime
		if d.elapsed >= d.cfg.Work.Seconds() {
			d.setProgress(100)
			d.phase = PhaseHolding
			d.elapsed = 0
		}
	case PhaseHolding:
		d.elapsed += deltaTime
		if d.elapsed >= d.cfg.Hold.Seconds() {
			d.target.SetMode(component.Idle)
			d.phase = PhaseResetting
			d.elapsed = 0
		}
	case PhaseResetting:
		d.elapsed += deltaTime
		if d.elapsed >= d.cfg.Reset.Seconds() {
			d.setProgress(0)
			d.phase = PhaseIdle
			log.Printf("[demo] decrypt cycle finished")
		}
	}
}

func (d *Decryptor) setProgress(p float64) {
	d.progress = p
	d.target.SetProgress(p)
}

func (d *Decryptor) emit(t event.EventType, data interface{}) {
	if d.events != nil {
		d.events.Emit(t, data)
	}
}
