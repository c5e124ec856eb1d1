package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/internal/event"
	"go-decryptviz/pkg/render"
)

func TestStageCaption(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0, "Initializing quantum processors..."},
		{24.9, "Initializing quantum processors..."},
		{25, "Analyzing encryption pattern..."},
		{50, "Validating cryptographic key..."},
		{75, "Breaking encryption matrix..."},
		{94, "Breaking encryption matrix..."},
		{95, "Finalizing decryption..."},
		{100, "Finalizing decryption..."},
	}
	for _, tt := range tests {
		if got := StageCaption(tt.p); got != tt.want {
			t.Errorf("StageCaption(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestToastText(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0, "BREAKING ENCRYPTION MATRIX... 0%"},
		{42.7, "BREAKING ENCRYPTION MATRIX... 42%"},
		{130, "BREAKING ENCRYPTION MATRIX... 100%"},
	}
	for _, tt := range tests {
		if got := ToastText(tt.p); got != tt.want {
			t.Errorf("ToastText(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	b := NewProgressBar(10, 10, 200, 6)
	if got := b.FillWidth(50); got != 100 {
		t.Errorf("Expected fill 100 at 50%%, got %v", got)
	}

	rec := render.NewRecorder(300, 100)
	b.Draw(rec, 0)
	// фон и 9 делений, без заполнения
	if got := rec.Count(render.OpFillRect); got != 10 {
		t.Errorf("Expected 10 rects at 0%%, got %d", got)
	}

	rec.Reset()
	b.Draw(rec, 100)
	rects := rec.Filter(func(op render.Op) bool { return op.Kind == render.OpFillRect })
	if len(rects) != 11 || rects[1].Color != config.Success {
		t.Errorf("Expected a success-coloured fill at 100%%, got %+v", rects)
	}
}

func TestModeIndicatorScale(t *testing.T) {
	i := NewModeIndicator(0, 0, 8)
	now := time.Unix(100, 0)
	if i.Scale(now) != 1 {
		t.Error("Expected scale 1 before any change")
	}
	i.HandleChange(now)
	if got := i.Scale(now); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("Expected scale 1.3 right after a change, got %v", got)
	}
	if got := i.Scale(now.Add(2 * time.Second)); got > 1.0001 {
		t.Errorf("Expected scale to settle near 1, got %v", got)
	}
}

func TestHUDDraw(t *testing.T) {
	h := NewHUD(800, 600)
	rec := render.NewRecorder(800, 600)
	now := time.Unix(100, 0)

	h.Draw(rec, component.Inputs{Mode: component.Idle, Progress: 40}, now)
	if rec.Count(render.OpText) != 0 || rec.Count(render.OpFillRect) != 0 {
		t.Error("Expected only the mode indicator in idle mode")
	}

	rec.Reset()
	h.Draw(rec, component.Inputs{Mode: component.Active, Progress: 40}, now)
	var toast, caption bool
	for _, op := range rec.Ops {
		if op.Kind != render.OpText {
			continue
		}
		if op.Text == "BREAKING ENCRYPTION MATRIX... 40%" {
			toast = true
		}
		if op.Text == "Analyzing encryption pattern..." && op.Color == config.TextLightColor {
			caption = true
		}
	}
	if !toast || !caption {
		t.Errorf("Expected toast and caption, got toast=%v caption=%v", toast, caption)
	}
}

func TestHUDSuccessFlash(t *testing.T) {
	d := event.NewDispatcher()
	h := NewHUD(800, 600)
	h.Attach(d)
	rec := render.NewRecorder(800, 600)
	now := time.Unix(100, 0)

	countFlash := func() int {
		n := 0
		for _, op := range rec.Ops {
			if op.Kind == render.OpText && strings.HasPrefix(op.Text, "DECRYPTION") {
				n++
			}
		}
		return n
	}

	d.Emit(event.ProgressCompleted, 100.0)
	h.Draw(rec, component.Inputs{Mode: component.Active, Progress: 100}, now)
	if countFlash() != 1 {
		t.Fatalf("Expected the success flash after completion, got %d", countFlash())
	}

	h.Update(1.9)
	if !h.Flash().Active() {
		t.Error("Expected the flash to last 2s")
	}
	h.Update(0.2)
	rec.Reset()
	h.Draw(rec, component.Inputs{Mode: component.Idle}, now)
	if countFlash() != 0 {
		t.Error("Expected the flash gone after 2s")
	}
}

func TestHUDModeChangeBumpsIndicator(t *testing.T) {
	d := event.NewDispatcher()
	h := NewHUD(800, 600)
	fixed := time.Unix(500, 0)
	h.clock = func() time.Time { return fixed }
	h.Attach(d)

	d.Emit(event.ModeChanged, event.ModeChange{From: component.Idle, To: component.Active})
	if got := h.indicator.Scale(fixed); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("Expected indicator bump, got scale %v", got)
	}
}
