// internal/app/loop.go
package app

import (
	"log"
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/event"
	"go-decryptviz/internal/system"
)

// layerEntry is a layer plus an optional per-frame visibility predicate.
type layerEntry struct {
	layer   system.Layer
	visible func(component.Inputs) bool
}

// surfaceLoop is the self-rescheduling frame loop of one surface.
type surfaceLoop struct {
	name    string
	surface Surface
	layers  []layerEntry
	ctrl    *Controller

	pending      FrameID
	scheduled    bool
	stopped      bool
	missing      bool // already reported as missing
	removeResize func()
	frames       int
}

// restart cancels the pending frame, rebuilds every layer for the current
// surface size and schedules the next frame. A missing surface is reported
// once and leaves the loop idle.
func (l *surfaceLoop) restart(mode component.Mode) {
	l.cancel()
	if l.stopped {
		return
	}
	w, h, err := l.size()
	if err != nil {
		l.reportMissing(err)
		return
	}
	l.missing = false
	for _, e := range l.layers {
		e.layer.Reset(float64(w), float64(h), mode)
	}
	l.schedule()
}

func (l *surfaceLoop) size() (int, int, error) {
	if l.surface == nil || l.surface.Canvas() == nil {
		return 0, 0, ErrMissingSurface
	}
	w, h := l.surface.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, ErrMissingSurface
	}
	return w, h, nil
}

func (l *surfaceLoop) reportMissing(err error) {
	if l.missing {
		return
	}
	l.missing = true
	log.Printf("[app] %s: %v, frames paused", l.name, err)
	l.ctrl.events.Emit(event.SurfaceMissing, event.Missing{Surface: l.name, Err: err})
}

func (l *surfaceLoop) schedule() {
	l.pending = l.ctrl.sched.RequestFrame(l.tick)
	l.scheduled = true
}

func (l *surfaceLoop) cancel() {
	if l.scheduled {
		l.ctrl.sched.CancelFrame(l.pending)
		l.scheduled = false
	}
}

// tick draws one frame and asks for the next one.
func (l *surfaceLoop) tick(now time.Time) {
	l.scheduled = false
	if l.stopped {
		return
	}
	canvas := l.surface.Canvas()
	if canvas == nil {
		l.reportMissing(ErrMissingSurface)
		return
	}

	in := l.ctrl.inputs
	canvas.Clear()
	for _, e := range l.layers {
		if e.visible != nil && !e.visible(in) {
			continue
		}
		e.layer.Frame(canvas, now, in)
	}
	l.frames++

	if !l.stopped {
		l.schedule()
	}
}

func (l *surfaceLoop) onResize(w, h int) {
	if l.stopped {
		return
	}
	l.restart(l.ctrl.sm.Mode())
	if !l.missing {
		l.ctrl.events.Emit(event.SurfaceResized, event.Resize{Surface: l.name, Width: w, Height: h})
	}
}

func (l *surfaceLoop) stop() {
	l.stopped = true
	l.cancel()
	if l.removeResize != nil {
		l.removeResize()
		l.removeResize = nil
	}
}
