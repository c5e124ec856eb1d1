// internal/system/particles.go
package system

import (
	"math"
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/internal/utils"
	"go-decryptviz/pkg/geom"
	"go-decryptviz/pkg/render"
)

// ParticleField is the set of drifting energy particles with toroidal wrap.
// In active mode it also owns the scan band.
type ParticleField struct {
	cfg           *config.Config
	rng           *utils.PRNGService
	mode          component.Mode
	width, height float64
	particles     []component.Particle
}

func NewParticleField(cfg *config.Config, rng *utils.PRNGService) *ParticleField {
	return &ParticleField{cfg: cfg, rng: rng}
}

// Particles exposes the live particles.
func (f *ParticleField) Particles() []component.Particle {
	return f.particles
}

func (f *ParticleField) Reset(width, height float64, mode component.Mode) {
	f.mode = mode
	f.width, f.height = width, height
	params := f.cfg.For(mode)

	f.particles = make([]component.Particle, 0, params.Particles)
	for i := 0; i < params.Particles; i++ {
		p := component.Particle{
			X:      f.rng.Float64() * width,
			Y:      f.rng.Float64() * height,
			VX:     f.rng.Centered(params.ParticleSpeed),
			VY:     f.rng.Centered(params.ParticleSpeed),
			Radius: f.rng.Range(1, 2),
			Color:  config.Violet,
			Life:   1,
		}
		if mode == component.Active {
			p.Color = f.rng.PickColor(config.ActiveParticleColors)
		}
		f.particles = append(f.particles, p)
	}
}

// Step advects every particle by its velocity and wraps it back into the
// viewport.
func (f *ParticleField) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X = geom.Wrap(p.X+p.VX, f.width)
		p.Y = geom.Wrap(p.Y+p.VY, f.height)
	}
}

// ScanY returns the centre of the scan band at time now. The band moves at a
// fixed speed, so it loops once per height/speed seconds.
func (f *ParticleField) ScanY(now time.Time) float64 {
	if f.height <= 0 {
		return 0
	}
	seconds := float64(now.UnixNano()) / float64(time.Second)
	return math.Mod(seconds*config.ScanSpeed, f.height)
}

func (f *ParticleField) Frame(c render.Canvas, now time.Time, _ component.Inputs) {
	f.Step()

	active := f.mode == component.Active
	glow := f.cfg.For(f.mode).ParticleGlow
	for _, p := range f.particles {
		c.FillCircle(geom.Pt(p.X, p.Y), p.Radius, p.Color, glow)
		if active {
			trail := geom.Pt(p.X-p.VX*config.ParticleTrailOffset, p.Y-p.VY*config.ParticleTrailOffset)
			tc := p.Color
			tc.A = config.ParticleTrailAlpha
			c.FillCircle(trail, p.Radius*config.ParticleTrailScale, tc, 0)
		}
	}

	if active {
		c.FillBand(f.ScanY(now), config.ScanHalfHeight, render.WithAlpha(config.Cyan, config.ScanAlpha))
	}
}
