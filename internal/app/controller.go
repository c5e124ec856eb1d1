// internal/app/controller.go
package app

import (
	"log"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/internal/event"
	"go-decryptviz/internal/state"
	"go-decryptviz/internal/system"
	"go-decryptviz/internal/utils"
)

const (
	BackgroundSurface = "background"
	ForegroundSurface = "foreground"
)

// Controller owns the two frame loops and the animation state behind them.
// All methods must be called from the frame thread.
type Controller struct {
	cfg    *config.Config
	sched  Scheduler
	events *event.Dispatcher
	sm     *state.StateMachine

	inputs    component.Inputs
	mounted   bool
	completed bool

	hex       *system.HexField
	particles *system.ParticleField
	circuit   *system.CircuitGraph
	tracer    *system.ProgressTracer

	background *surfaceLoop
	foreground *surfaceLoop
}

// NewController wires the layers onto the background and foreground surfaces.
// Nothing runs until Mount.
func NewController(cfg *config.Config, rng *utils.PRNGService, sched Scheduler, events *event.Dispatcher, background, foreground Surface) *Controller {
	if events == nil {
		events = event.NewDispatcher()
	}
	c := &Controller{
		cfg:       cfg,
		sched:     sched,
		events:    events,
		hex:       system.NewHexField(cfg, rng),
		particles: system.NewParticleField(cfg, rng),
		circuit:   system.NewCircuitGraph(cfg, rng),
		tracer:    system.NewProgressTracer(),
	}
	c.sm = state.NewStateMachine(c)
	c.background = &surfaceLoop{
		name:    BackgroundSurface,
		surface: background,
		ctrl:    c,
		layers: []layerEntry{
			{layer: c.hex},
			{layer: c.particles},
		},
	}
	c.foreground = &surfaceLoop{
		name:    ForegroundSurface,
		surface: foreground,
		ctrl:    c,
		layers: []layerEntry{
			{layer: c.circuit},
			{layer: c.tracer, visible: component.Inputs.TracerVisible},
		},
	}
	return c
}

// Events returns the dispatcher the controller reports to.
func (c *Controller) Events() *event.Dispatcher {
	return c.events
}

// Mount registers the resize listeners, builds the scene for the current mode
// and starts both loops. Mounting twice is a no-op.
func (c *Controller) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	for _, l := range c.loops() {
		l.stopped = false
		l.missing = false
		if l.surface != nil {
			l.removeResize = l.surface.OnResize(l.onResize)
		}
	}
	c.sm.SetState(state.ForMode(c.inputs.Mode, c))
	log.Printf("[app] mounted in %v mode", c.inputs.Mode)
}

// Unmount cancels both loops and removes both resize listeners. No frame
// callback runs after it returns.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	for _, l := range c.loops() {
		l.stop()
	}
	c.sm.SetState(nil)
	log.Printf("[app] unmounted")
}

// Mounted reports whether the loops are live.
func (c *Controller) Mounted() bool {
	return c.mounted
}

// Rebuild re-initialises the spatial state of both surfaces for mode and
// restarts their loops. It is the Enter action of the mode states.
func (c *Controller) Rebuild(mode component.Mode) {
	for _, l := range c.loops() {
		l.restart(mode)
	}
}

// SetMode switches between idle and active. The switch takes effect at the
// next frame boundary with freshly built state.
func (c *Controller) SetMode(m component.Mode) {
	from := c.inputs.Mode
	c.inputs.Mode = m
	if !c.mounted {
		return
	}
	if c.sm.Switch(m) {
		c.events.Emit(event.ModeChanged, event.ModeChange{From: from, To: m})
	}
}

// SetProgress stores the clamped progress for the next frame. It never
// re-initialises anything.
func (c *Controller) SetProgress(p float64) {
	p = component.ClampProgress(p)
	c.inputs.Progress = p
	switch {
	case p >= 100 && !c.completed:
		c.completed = true
		c.events.Emit(event.ProgressCompleted, p)
	case p < 100:
		c.completed = false
	}
}

// Inputs returns the values the next frame will read.
func (c *Controller) Inputs() component.Inputs {
	return c.inputs
}

// Frames returns how many frames the named surface has drawn.
func (c *Controller) Frames(surface string) int {
	for _, l := range c.loops() {
		if l.name == surface {
			return l.frames
		}
	}
	return 0
}

func (c *Controller) HexField() *system.HexField        { return c.hex }
func (c *Controller) Particles() *system.ParticleField  { return c.particles }
func (c *Controller) Circuit() *system.CircuitGraph     { return c.circuit }
func (c *Controller) Tracer() *system.ProgressTracer    { return c.tracer }
func (c *Controller) StateMachine() *state.StateMachine { return c.sm }

func (c *Controller) loops() [2]*surfaceLoop {
	return [2]*surfaceLoop{c.background, c.foreground}
}
