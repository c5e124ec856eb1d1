package event

import (
	"testing"

	"go-decryptviz/internal/component"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

// unsubscriber снимает себя с подписки прямо во время доставки.
type unsubscriber struct {
	d    *Dispatcher
	hits int
}

func (u *unsubscriber) OnEvent(e Event) {
	u.hits++
	u.d.Unsubscribe(e.Type, u)
}

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(ModeChanged, a)
	d.SubscribeAll(b, ModeChanged, ProgressCompleted)

	d.Emit(ModeChanged, ModeChange{From: component.Idle, To: component.Active})
	d.Emit(ProgressCompleted, nil)
	d.Emit(SurfaceResized, Resize{Surface: "background", Width: 10, Height: 20})

	if len(a.got) != 1 {
		t.Fatalf("Expected 1 event for a, got %d", len(a.got))
	}
	change, ok := a.got[0].Data.(ModeChange)
	if !ok || change.To != component.Active {
		t.Errorf("unexpected payload %#v", a.got[0].Data)
	}
	if len(b.got) != 2 || b.got[1].Type != ProgressCompleted {
		t.Errorf("Expected ModeChanged then ProgressCompleted for b, got %v", b.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(SurfaceMissing, a)
	d.Subscribe(SurfaceMissing, b)
	d.Unsubscribe(SurfaceMissing, a)
	d.Unsubscribe(SurfaceMissing, &recorder{}) // не подписан

	d.Emit(SurfaceMissing, Missing{Surface: "foreground"})
	if len(a.got) != 0 || len(b.got) != 1 {
		t.Errorf("Expected only b to receive, got a=%d b=%d", len(a.got), len(b.got))
	}
	if n := d.Listeners(SurfaceMissing); n != 1 {
		t.Errorf("Expected 1 listener, got %d", n)
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	u := &unsubscriber{d: d}
	after := &recorder{}
	d.Subscribe(DecryptStarted, u)
	d.Subscribe(DecryptStarted, after)

	d.Emit(DecryptStarted, nil)
	d.Emit(DecryptStarted, nil)

	if u.hits != 1 {
		t.Errorf("Expected self-removing listener to fire once, got %d", u.hits)
	}
	if len(after.got) != 2 {
		t.Errorf("Expected the next listener to see both events, got %d", len(after.got))
	}
}
