// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/pkg/render"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	WindowTitle  = "Neural Decryption Matrix"

	HexSize        = 30.0
	HexSpeedMin    = 0.002
	HexSpeedJitter = 0.003

	ConnectionRadius = 150.0

	ParticleTrailOffset = 3.0 // trail sits this many velocity steps behind
	ParticleTrailScale  = 0.5
	ParticleTrailAlpha  = 0x66

	ScanSpeed      = 100.0 // pixels per second
	ScanHalfHeight = 50.0
	ScanAlpha      = 0.3

	EdgeBaseOpacity = 0.2
	PulseRadius     = 3.0
	PulseGlow       = 10.0
	PulsePeriod     = time.Second

	NodePulsePeriodMs = 200.0
	NodeInnerScale    = 0.6
	NodeRingScale     = 1.5
	NodeRingWidth     = 2.0
	NodeRingAlpha     = 0x33

	TracerWidth       = 3.0
	TracerGlow        = 25.0
	TracerGuideWidth  = 1.0
	TracerGuideAlpha  = 0.15
	MarkerRadius      = 8.0
	MarkerInnerRadius = 4.0
	MarkerGlow        = 20.0
	EchoCount         = 3
	EchoSpacing       = 0.02
	SuccessRadius     = 10.0
	SuccessGlow       = 25.0
	SuccessRingRadius = 15.0
	SuccessRingWidth  = 2.0

	MaxDeltaTime = 0.06

	// HUD
	HUDMargin            = 24.0
	ToastFontSize        = 20.0
	CaptionFontSize      = 14.0
	ProgressBarHeight    = 6.0
	ProgressBarTicks     = 10
	IndicatorRadius      = 8.0
	SuccessFlashDuration = 2 * time.Second
)

var (
	BackgroundColor = render.MustHex("#0a0616")
	Cyan            = render.MustHex("#00fff9")
	Magenta         = render.MustHex("#ff006e")
	Violet          = render.MustHex("#8b5cf6")
	Blue            = render.MustHex("#3b82f6")
	Success         = render.MustHex("#00ff88")
	White           = color.RGBA{255, 255, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}

	// ActiveParticleColors палитра частиц во время расшифровки
	ActiveParticleColors = []color.RGBA{Cyan, Magenta, Violet}
)

// ModeParams are the density, speed and styling knobs that differ between
// idle and active mode.
type ModeParams struct {
	Particles     int     `yaml:"particles"`
	ParticleSpeed float64 `yaml:"particle_speed"`
	ParticleGlow  float64 `yaml:"particle_glow"`
	Nodes         int     `yaml:"nodes"`
	NodeSpeed     float64 `yaml:"node_speed"`
	NodeGlow      float64 `yaml:"node_glow"`
	HexOpacity    float64 `yaml:"hex_opacity"`
	HexLineWidth  float64 `yaml:"hex_line_width"`
	EdgeOpacity   float64 `yaml:"edge_opacity"` // multiplier on the distance falloff
	EdgeWidth     float64 `yaml:"edge_width"`
	PulseChance   float64 `yaml:"pulse_chance"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type HexConfig struct {
	Size        float64 `yaml:"size"`
	SpeedMin    float64 `yaml:"speed_min"`
	SpeedJitter float64 `yaml:"speed_jitter"`
}

// DemoConfig drives the simulated decryption used by the demo binary.
type DemoConfig struct {
	Step     float64       `yaml:"step"`
	Interval time.Duration `yaml:"interval"`
	Work     time.Duration `yaml:"work"`
	Hold     time.Duration `yaml:"hold"`
	Reset    time.Duration `yaml:"reset"`
}

type Config struct {
	Seed             int64        `yaml:"seed"`
	Window           WindowConfig `yaml:"window"`
	Hex              HexConfig    `yaml:"hex"`
	ConnectionRadius float64      `yaml:"connection_radius"`
	Idle             ModeParams   `yaml:"idle"`
	Active           ModeParams   `yaml:"active"`
	Demo             DemoConfig   `yaml:"demo"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  WindowTitle,
		},
		Hex: HexConfig{
			Size:        HexSize,
			SpeedMin:    HexSpeedMin,
			SpeedJitter: HexSpeedJitter,
		},
		ConnectionRadius: ConnectionRadius,
		Idle: ModeParams{
			Particles:     25,
			ParticleSpeed: 0.5,
			ParticleGlow:  5,
			Nodes:         25,
			NodeSpeed:     1,
			NodeGlow:      10,
			HexOpacity:    0.08,
			HexLineWidth:  1,
			EdgeOpacity:   1,
			EdgeWidth:     1.5,
			PulseChance:   0,
		},
		Active: ModeParams{
			Particles:     50,
			ParticleSpeed: 1.5,
			ParticleGlow:  10,
			Nodes:         45,
			NodeSpeed:     3,
			NodeGlow:      20,
			HexOpacity:    0.2,
			HexLineWidth:  1.5,
			EdgeOpacity:   3,
			EdgeWidth:     2.5,
			PulseChance:   0.05,
		},
		Demo: DemoConfig{
			Step:     2,
			Interval: 70 * time.Millisecond,
			Work:     2500 * time.Millisecond,
			Hold:     1500 * time.Millisecond,
			Reset:    1500 * time.Millisecond,
		},
	}
}

// For returns the parameters of mode m.
func (c *Config) For(m component.Mode) ModeParams {
	if m == component.Active {
		return c.Active
	}
	return c.Idle
}

// Validate rejects values the layers cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Hex.Size <= 0 {
		errs = append(errs, fmt.Errorf("hex.size must be positive, got %v", c.Hex.Size))
	}
	if c.Hex.SpeedMin < 0 || c.Hex.SpeedJitter < 0 {
		errs = append(errs, errors.New("hex speeds must not be negative"))
	}
	if c.ConnectionRadius <= 0 {
		errs = append(errs, fmt.Errorf("connection_radius must be positive, got %v", c.ConnectionRadius))
	}
	for name, p := range map[string]ModeParams{"idle": c.Idle, "active": c.Active} {
		if p.Particles < 0 || p.Nodes < 0 {
			errs = append(errs, fmt.Errorf("%s: counts must not be negative", name))
		}
		if p.PulseChance < 0 || p.PulseChance > 1 {
			errs = append(errs, fmt.Errorf("%s: pulse_chance must be in [0,1], got %v", name, p.PulseChance))
		}
	}
	if c.Demo.Step <= 0 || c.Demo.Interval <= 0 {
		errs = append(errs, errors.New("demo step and interval must be positive"))
	}
	return errors.Join(errs...)
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
