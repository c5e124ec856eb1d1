package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-decryptviz/internal/component"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Idle.Particles != 25 || cfg.Active.Particles != 50 {
		t.Errorf("particle counts = %d/%d, want 25/50", cfg.Idle.Particles, cfg.Active.Particles)
	}
	if cfg.Idle.Nodes != 25 || cfg.Active.Nodes != 45 {
		t.Errorf("node counts = %d/%d, want 25/45", cfg.Idle.Nodes, cfg.Active.Nodes)
	}
	if cfg.ConnectionRadius != 150 {
		t.Errorf("connection radius = %v, want 150", cfg.ConnectionRadius)
	}
}

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.For(component.Active); got != cfg.Active {
		t.Error("For(Active) should return active params")
	}
	if got := cfg.For(component.Idle); got != cfg.Idle {
		t.Error("For(Idle) should return idle params")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"zero hex size", func(c *Config) { c.Hex.Size = 0 }, "hex.size"},
		{"negative window", func(c *Config) { c.Window.Width = -1 }, "window size"},
		{"bad pulse chance", func(c *Config) { c.Active.PulseChance = 2 }, "pulse_chance"},
		{"negative count", func(c *Config) { c.Idle.Nodes = -3 }, "counts"},
		{"zero radius", func(c *Config) { c.ConnectionRadius = 0 }, "connection_radius"},
		{"zero demo interval", func(c *Config) { c.Demo.Interval = 0 }, "demo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("error %q does not mention %q", err, tt.errSub)
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viz.yaml")
	data := `
seed: 42
hex:
  size: 20
active:
  particles: 80
demo:
  interval: 35ms
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 42 || cfg.Hex.Size != 20 || cfg.Active.Particles != 80 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Demo.Interval != 35*time.Millisecond {
		t.Errorf("demo interval = %v, want 35ms", cfg.Demo.Interval)
	}
	// untouched fields keep their defaults
	if cfg.Idle.Particles != 25 || cfg.Active.Nodes != 45 {
		t.Errorf("defaults lost: idle particles %d, active nodes %d", cfg.Idle.Particles, cfg.Active.Nodes)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("hex:\n  size: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 7
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Seed != 7 || loaded.Demo.Hold != cfg.Demo.Hold {
		t.Errorf("loaded %+v, want seed 7 and hold %v", loaded, cfg.Demo.Hold)
	}
}
