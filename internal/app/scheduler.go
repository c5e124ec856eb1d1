// internal/app/scheduler.go
package app

import (
	"sort"
	"time"

	"go-decryptviz/pkg/render"
)

// FrameID identifies a pending frame request.
type FrameID uint64

// FrameFunc is invoked once per requested frame with the frame timestamp.
type FrameFunc func(now time.Time)

// Scheduler hands out "call me on the next frame" slots. The ebiten host and
// ManualScheduler implement it.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// Surface is a drawable area owned by one frame loop.
type Surface interface {
	// Canvas returns nil while the surface is not attached.
	Canvas() render.Canvas
	Size() (width, height int)
	// OnResize registers fn and returns a function that removes it.
	OnResize(fn func(width, height int)) (remove func())
}

// ManualScheduler queues frame requests until Advance runs them. It backs the
// headless stats command and the controller tests.
type ManualScheduler struct {
	next    FrameID
	pending map[FrameID]FrameFunc
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[FrameID]FrameFunc)}
}

func (s *ManualScheduler) RequestFrame(fn FrameFunc) FrameID {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *ManualScheduler) CancelFrame(id FrameID) {
	delete(s.pending, id)
}

// Pending returns the number of queued requests.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Advance runs every request queued before the call, in request order, and
// returns how many ran. Requests made by the callbacks wait for the next
// Advance; requests cancelled by an earlier callback are skipped.
func (s *ManualScheduler) Advance(now time.Time) int {
	ids := make([]FrameID, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ran := 0
	for _, id := range ids {
		fn, ok := s.pending[id]
		if !ok {
			continue
		}
		delete(s.pending, id)
		fn(now)
		ran++
	}
	return ran
}

// StaticSurface is a Surface over a fixed canvas. Attach, Detach and Resize
// drive it by hand.
type StaticSurface struct {
	canvas    render.Canvas
	w, h      int
	nextID    int
	listeners map[int]func(int, int)
}

func NewStaticSurface(c render.Canvas, w, h int) *StaticSurface {
	return &StaticSurface{canvas: c, w: w, h: h, listeners: make(map[int]func(int, int))}
}

func (s *StaticSurface) Canvas() render.Canvas { return s.canvas }

func (s *StaticSurface) Size() (int, int) { return s.w, s.h }

func (s *StaticSurface) OnResize(fn func(int, int)) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Listeners returns the number of registered resize listeners.
func (s *StaticSurface) Listeners() int {
	return len(s.listeners)
}

// Resize changes the size and notifies the listeners.
func (s *StaticSurface) Resize(w, h int) {
	s.w, s.h = w, h
	s.notify()
}

// Detach drops the canvas; frames find no surface until Attach.
func (s *StaticSurface) Detach() {
	s.canvas = nil
}

// Attach sets the canvas and notifies the listeners as a resize would.
func (s *StaticSurface) Attach(c render.Canvas) {
	s.canvas = c
	s.notify()
}

func (s *StaticSurface) notify() {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := s.listeners[id]; ok {
			fn(s.w, s.h)
		}
	}
}
