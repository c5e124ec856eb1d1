// internal/component/mode.go
package component

import (
	"fmt"
	"math"
	"strings"
)

// Mode is the visual mode requested by the caller.
type Mode int

const (
	Idle Mode = iota
	Active
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "idle" or "active" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "idle":
		return Idle, nil
	case "active":
		return Active, nil
	}
	return Idle, fmt.Errorf("unknown mode %q (want idle or active)", s)
}

// Inputs are the two external signals, snapshotted by each frame.
type Inputs struct {
	Mode     Mode
	Progress float64
}

// ClampProgress maps any value into [0, 100]; NaN becomes 0.
func ClampProgress(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Fraction returns Progress/100.
func (in Inputs) Fraction() float64 {
	return ClampProgress(in.Progress) / 100
}

// TracerVisible reports whether the progress overlay is drawn this frame.
func (in Inputs) TracerVisible() bool {
	return in.Mode == Active && ClampProgress(in.Progress) > 0
}
