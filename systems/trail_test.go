package systems

import (
	"math"
	"math/rand"
	"testing"
)

func newTestTrail(maxParticles, spawnRate int, lifespan int32) *TrailSystem {
	return NewTrailSystem(TrailParams{
		MaxParticles:   maxParticles,
		Lifespan:       lifespan,
		Size:           4,
		SpawnRate:      spawnRate,
		SpawnThreshold: 2,
		Jitter:         5,
		InitialSpeed:   1,
		Gravity:        0.1,
	}, rand.New(rand.NewSource(1)))
}

func TestTrailSpawnThreshold(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
		want   int
	}{
		{"stationary", 0, 0, 0},
		{"below threshold", 1, 1, 0},
		{"exactly threshold", 2, 0, 0},
		{"above threshold", 10, 0, 3},
		{"diagonal above threshold", 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestTrail(100, 3, 60)
			s.OnPointerMove(50, 50)
			s.Update()
			s.Clear()

			s.OnPointerMove(50+tt.dx, 50+tt.dy)
			s.Update()
			if got := s.Count(); got != tt.want {
				t.Errorf("spawned %d particles, want %d", got, tt.want)
			}
		})
	}
}

func TestTrailDisplacementIsCumulativeBetweenTicks(t *testing.T) {
	s := newTestTrail(100, 2, 60)

	// Several small moves between two frames add up.
	s.OnPointerMove(1, 0)
	s.OnPointerMove(2, 0)
	s.OnPointerMove(3, 0)
	if d := s.Displacement(); math.Abs(float64(d-3)) > 1e-6 {
		t.Errorf("displacement = %v, want 3", d)
	}
	s.Update()
	if s.Count() != 2 {
		t.Errorf("count = %d, want 2", s.Count())
	}

	// The tick consumed the displacement.
	if d := s.Displacement(); d != 0 {
		t.Errorf("displacement after tick = %v, want 0", d)
	}
}

func TestTrailLifeDecrementsByOne(t *testing.T) {
	s := newTestTrail(100, 2, 3)
	s.OnPointerMove(100, 0)
	s.Update()

	for _, want := range []int32{2, 1} {
		for _, p := range s.Particles() {
			if p.Life != want {
				t.Fatalf("life = %d, want %d", p.Life, want)
			}
			if p.MaxLife != 3 {
				t.Fatalf("max life = %d, want 3", p.MaxLife)
			}
		}
		if want == 2 {
			s.Update()
		}
	}

	// Third tick takes life to 0: gone the same tick.
	s.Update()
	if s.Count() != 0 {
		t.Errorf("count = %d, want 0 once life reaches 0", s.Count())
	}
}

func TestTrailCapDropsOldest(t *testing.T) {
	const lifespan = 100
	s := newTestTrail(5, 2, lifespan)

	x := float32(0)
	for tick := 0; tick < 10; tick++ {
		x += 10
		s.OnPointerMove(x, 0)
		s.Update()

		ps := s.Particles()
		if len(ps) > 5 {
			t.Fatalf("tick %d: count %d exceeds cap 5", tick, len(ps))
		}

		// Oldest first: remaining life never decreases along the slice.
		for i := 1; i < len(ps); i++ {
			if ps[i].Life < ps[i-1].Life {
				t.Fatalf("tick %d: insertion order broken at %d (%d < %d)", tick, i, ps[i].Life, ps[i-1].Life)
			}
		}

		// The newest batch always survives.
		for _, p := range ps[len(ps)-2:] {
			if p.Life != lifespan-1 {
				t.Fatalf("tick %d: newest particle life = %d, want %d", tick, p.Life, lifespan-1)
			}
		}
	}
}

func TestTrailGravityBias(t *testing.T) {
	s := newTestTrail(10, 1, 60)
	s.OnPointerMove(100, 100)
	s.Update()

	before := s.Particles()[0]
	s.Update()
	after := s.Particles()[0]

	if dv := after.VY - before.VY; math.Abs(float64(dv-0.1)) > 1e-5 {
		t.Errorf("vy delta = %v, want 0.1", dv)
	}
	if dx := after.X - before.X; math.Abs(float64(dx-before.VX)) > 1e-5 {
		t.Errorf("x advanced by %v, want vx %v", dx, before.VX)
	}
	if after.VX != before.VX {
		t.Errorf("vx changed from %v to %v", before.VX, after.VX)
	}
}

func TestTrailSpawnRanges(t *testing.T) {
	s := newTestTrail(1000, 200, 60)
	s.OnPointerMove(500, 300)
	s.Update()

	for _, p := range s.Particles() {
		// One tick of advance on top of ±5 jitter with ±1 velocity.
		if math.Abs(float64(p.X-500)) > 6 || math.Abs(float64(p.Y-300)) > 6.1 {
			t.Fatalf("particle at (%v,%v) too far from pointer", p.X, p.Y)
		}
		if p.Size < 2 || p.Size > 4 {
			t.Fatalf("size %v outside [0.5, 1.0] x 4", p.Size)
		}
		if math.Abs(float64(p.VX)) > 1 {
			t.Fatalf("vx %v outside ±1", p.VX)
		}
	}
}

func TestTrailJumpThenHold(t *testing.T) {
	const lifespan = 4
	s := newTestTrail(5, 2, lifespan)

	s.OnPointerMove(0, 0)
	s.OnPointerMove(100, 0)
	s.Update()
	if s.Count() != 2 {
		t.Fatalf("after jump: count = %d, want 2", s.Count())
	}

	want := []int{2, 2, 0, 0, 0}
	for i, w := range want {
		s.Update()
		if s.Count() != w {
			t.Errorf("hold tick %d: count = %d, want %d", i+1, s.Count(), w)
		}
	}
	if s.Spawned() != 2 {
		t.Errorf("spawned = %d, want 2 (no respawn while holding)", s.Spawned())
	}
}

func TestTrailZeroParticlesIsSteadyState(t *testing.T) {
	s := newTestTrail(5, 2, 10)
	for i := 0; i < 10; i++ {
		s.Update()
	}
	if s.Count() != 0 {
		t.Errorf("count = %d, want 0 without pointer movement", s.Count())
	}
}

func TestTrailClampsParams(t *testing.T) {
	s := NewTrailSystem(TrailParams{}, rand.New(rand.NewSource(1)))
	p := s.Params()
	if p.MaxParticles != 1 || p.Lifespan != 1 || p.SpawnRate != 1 || p.Size != 1 {
		t.Errorf("params not clamped: %+v", p)
	}
}

func TestTrailLifeRatio(t *testing.T) {
	p := TrailParticle{Life: 15, MaxLife: 60}
	if r := p.LifeRatio(); r != 0.25 {
		t.Errorf("LifeRatio = %v, want 0.25", r)
	}
	zero := TrailParticle{}
	if zero.LifeRatio() != 0 {
		t.Error("LifeRatio with zero MaxLife should be 0")
	}
}
