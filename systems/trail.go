// Package systems provides the particle simulations behind the page effects.
package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/particlefx/config"
)

// TrailParticle is a short-lived particle emitted at the pointer.
type TrailParticle struct {
	X, Y    float32
	VX, VY  float32
	Life    int32 // remaining ticks; removed the tick it reaches 0
	MaxLife int32
	Size    float32
}

// LifeRatio returns remaining life as a fraction of MaxLife.
func (p *TrailParticle) LifeRatio() float32 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float32(p.Life) / float32(p.MaxLife)
}

// TrailParams is the immutable configuration of a TrailSystem.
type TrailParams struct {
	MaxParticles   int
	Lifespan       int32
	Size           float32
	SpawnRate      int
	SpawnThreshold float32
	Jitter         float32
	InitialSpeed   float32
	Gravity        float32
}

// TrailParamsFromConfig builds trail parameters from loaded config.
func TrailParamsFromConfig(c config.TrailConfig) TrailParams {
	return TrailParams{
		MaxParticles:   c.MaxParticles,
		Lifespan:       int32(c.Lifespan),
		Size:           float32(c.Size),
		SpawnRate:      c.SpawnRate,
		SpawnThreshold: float32(c.SpawnThreshold),
		Jitter:         float32(c.Jitter),
		InitialSpeed:   float32(c.InitialSpeed),
		Gravity:        float32(c.Gravity),
	}
}

// TrailSystem visualizes pointer motion as a fading particle trail.
// Particles are kept in insertion order, oldest first.
type TrailSystem struct {
	params    TrailParams
	rng       *rand.Rand
	particles []TrailParticle

	// Pointer position now and at the last tick. The difference is the
	// displacement a tick consumes.
	curX, curY   float32
	lastX, lastY float32

	spawned int // total particles emitted, for telemetry
}

// NewTrailSystem creates a trail system. Non-positive limits are clamped to 1.
func NewTrailSystem(params TrailParams, rng *rand.Rand) *TrailSystem {
	if params.MaxParticles < 1 {
		params.MaxParticles = 1
	}
	if params.Lifespan < 1 {
		params.Lifespan = 1
	}
	if params.SpawnRate < 1 {
		params.SpawnRate = 1
	}
	if params.Size <= 0 {
		params.Size = 1
	}
	return &TrailSystem{
		params:    params,
		rng:       rng,
		particles: make([]TrailParticle, 0, params.MaxParticles+params.SpawnRate),
	}
}

// OnPointerMove records a new pointer position in screen coordinates.
func (s *TrailSystem) OnPointerMove(x, y float32) {
	s.curX = x
	s.curY = y
}

// Displacement returns how far the pointer moved since the last tick.
func (s *TrailSystem) Displacement() float32 {
	dx := s.curX - s.lastX
	dy := s.curY - s.lastY
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Update runs one tick: spawn, cap, advance, prune.
func (s *TrailSystem) Update() {
	if s.Displacement() > s.params.SpawnThreshold {
		s.spawn()
	}
	s.lastX = s.curX
	s.lastY = s.curY

	// Newest particles always survive the cap.
	if excess := len(s.particles) - s.params.MaxParticles; excess > 0 {
		n := copy(s.particles, s.particles[excess:])
		s.particles = s.particles[:n]
	}

	alive := 0
	for i := range s.particles {
		p := &s.particles[i]

		p.X += p.VX
		p.Y += p.VY
		p.VY += s.params.Gravity
		p.Life--

		if p.Life <= 0 {
			continue
		}

		s.particles[alive] = s.particles[i]
		alive++
	}
	s.particles = s.particles[:alive]
}

func (s *TrailSystem) spawn() {
	jitter := s.params.Jitter
	speed := s.params.InitialSpeed
	for i := 0; i < s.params.SpawnRate; i++ {
		s.particles = append(s.particles, TrailParticle{
			X:       s.curX + (s.rng.Float32()-0.5)*2*jitter,
			Y:       s.curY + (s.rng.Float32()-0.5)*2*jitter,
			VX:      (s.rng.Float32() - 0.5) * 2 * speed,
			VY:      (s.rng.Float32() - 0.5) * 2 * speed,
			Life:    s.params.Lifespan,
			MaxLife: s.params.Lifespan,
			Size:    s.params.Size * (0.5 + s.rng.Float32()*0.5),
		})
	}
	s.spawned += s.params.SpawnRate
}

// Particles returns the live particles, oldest first. The slice is owned by
// the system and is only valid until the next Update.
func (s *TrailSystem) Particles() []TrailParticle {
	return s.particles
}

// Count returns the current number of live particles.
func (s *TrailSystem) Count() int {
	return len(s.particles)
}

// Spawned returns the total number of particles emitted so far.
func (s *TrailSystem) Spawned() int {
	return s.spawned
}

// Params returns the system configuration.
func (s *TrailSystem) Params() TrailParams {
	return s.params
}

// Clear drops every particle without touching the pointer state.
func (s *TrailSystem) Clear() {
	s.particles = s.particles[:0]
}
