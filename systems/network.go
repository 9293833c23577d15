package systems

import (
	"math"
	"math/rand"
	"sort"

	"github.com/pthm-cable/particlefx/config"
)

// NetworkParticle is a long-lived particle of the background mesh.
type NetworkParticle struct {
	X, Y   float32
	VX, VY float32
	Radius float32
}

// Connection is an edge between two particles closer than the connection distance.
// A is always less than B.
type Connection struct {
	A, B  int
	Dist  float32
	Alpha float32 // 1 at distance 0, falling linearly to 0 at the threshold
}

// NetworkParams configures a NetworkSystem.
type NetworkParams struct {
	BaseCount          int
	AreaUnit           float32
	Speed              float32
	ConnectionDistance float32
	ParticleSize       float32
	PointerRadius      float32
	Repel              bool
	AttractStrength    float32
	RepelStrength      float32
	Damping            float32
	MinSpeed           float32
	SpatialIndex       bool
}

// NetworkParamsFromConfig builds network parameters from loaded config.
func NetworkParamsFromConfig(c config.NetworkConfig) NetworkParams {
	return NetworkParams{
		BaseCount:          c.BaseCount,
		AreaUnit:           float32(c.AreaUnit),
		Speed:              float32(c.Speed),
		ConnectionDistance: float32(c.ConnectionDistance),
		ParticleSize:       float32(c.ParticleSize),
		PointerRadius:      float32(c.PointerRadius),
		Repel:              c.Repel,
		AttractStrength:    float32(c.AttractStrength),
		RepelStrength:      float32(c.RepelStrength),
		Damping:            float32(c.Damping),
		MinSpeed:           float32(c.MinSpeed),
		SpatialIndex:       c.SpatialIndex,
	}
}

// NetworkSystem maintains a population of particles bouncing inside the
// viewport, with an optional pointer force field.
type NetworkSystem struct {
	params    NetworkParams
	rng       *rand.Rand
	particles []NetworkParticle
	pointer   PointerState

	width, height float32

	grid       *SpatialGrid
	candidates []int
}

// NewNetworkSystem creates an empty network. Call Resize to seed particles.
// Non-positive distances and radii are clamped to 1.
func NewNetworkSystem(params NetworkParams, rng *rand.Rand) *NetworkSystem {
	if params.BaseCount < 1 {
		params.BaseCount = 1
	}
	if params.AreaUnit <= 0 {
		params.AreaUnit = 1
	}
	if params.ConnectionDistance <= 0 {
		params.ConnectionDistance = 1
	}
	if params.PointerRadius <= 0 {
		params.PointerRadius = 1
	}
	if params.ParticleSize <= 0 {
		params.ParticleSize = 1
	}
	return &NetworkSystem{
		params: params,
		rng:    rng,
	}
}

// PopulationFor returns the particle count for a width x height area.
func (s *NetworkSystem) PopulationFor(width, height float32) int {
	area := float64(width) * float64(height)
	if area <= 0 {
		return 0
	}
	return int(math.Floor(area / float64(s.params.AreaUnit) * float64(s.params.BaseCount)))
}

// Resize sets the logical bounds and reseeds the whole population.
// No particle survives a resize.
func (s *NetworkSystem) Resize(width, height float32) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = width
	s.height = height

	n := s.PopulationFor(width, height)
	s.particles = make([]NetworkParticle, n)
	for i := range s.particles {
		s.particles[i] = NetworkParticle{
			X:      s.rng.Float32() * width,
			Y:      s.rng.Float32() * height,
			VX:     s.randomVelocity(),
			VY:     s.randomVelocity(),
			Radius: s.params.ParticleSize,
		}
	}

	if s.params.SpatialIndex && width > 0 && height > 0 {
		s.grid = NewSpatialGrid(width, height, s.params.ConnectionDistance)
	} else {
		s.grid = nil
	}
}

// Restore replaces the population with a saved one, keeping the given bounds.
// Particles are copied; positions outside the bounds are clamped.
func (s *NetworkSystem) Restore(width, height float32, particles []NetworkParticle) {
	s.width = width
	s.height = height
	s.particles = append(s.particles[:0:0], particles...)
	for i := range s.particles {
		p := &s.particles[i]
		p.X = clampf(p.X, 0, width)
		p.Y = clampf(p.Y, 0, height)
	}
	if s.params.SpatialIndex && width > 0 && height > 0 {
		s.grid = NewSpatialGrid(width, height, s.params.ConnectionDistance)
	} else {
		s.grid = nil
	}
}

// SetBaseCount changes the density constant. It takes effect on the next Resize.
func (s *NetworkSystem) SetBaseCount(n int) {
	if n < 1 {
		n = 1
	}
	s.params.BaseCount = n
}

// OnPointerMove records the pointer in field-local coordinates.
func (s *NetworkSystem) OnPointerMove(x, y float32) {
	s.pointer.Set(x, y)
}

// OnPointerLeave disables the pointer force.
func (s *NetworkSystem) OnPointerLeave() {
	s.pointer.Clear()
}

// Pointer returns the cached pointer state.
func (s *NetworkSystem) Pointer() PointerState {
	return s.pointer
}

// SetRepel switches between attract and repel interaction.
func (s *NetworkSystem) SetRepel(repel bool) {
	s.params.Repel = repel
}

// Repel reports whether the pointer pushes particles away.
func (s *NetworkSystem) Repel() bool {
	return s.params.Repel
}

// Update runs one physics step: force, integrate, reflect, damp, floor.
func (s *NetworkSystem) Update() {
	p := s.params
	w, h := s.width, s.height

	for i := range s.particles {
		pt := &s.particles[i]

		if s.pointer.Active {
			dx := s.pointer.X - pt.X
			dy := s.pointer.Y - pt.Y
			dist := distance(s.pointer.X, s.pointer.Y, pt.X, pt.Y)
			if dist < p.PointerRadius {
				force := (p.PointerRadius - dist) / p.PointerRadius
				angle := math.Atan2(float64(dy), float64(dx))
				cos := float32(math.Cos(angle))
				sin := float32(math.Sin(angle))
				if p.Repel {
					pt.VX -= cos * force * p.RepelStrength
					pt.VY -= sin * force * p.RepelStrength
				} else {
					pt.VX += cos * force * p.AttractStrength
					pt.VY += sin * force * p.AttractStrength
				}
			}
		}

		pt.X += pt.VX
		pt.Y += pt.VY

		if pt.X < 0 || pt.X > w {
			pt.VX = -pt.VX
			pt.X = clampf(pt.X, 0, w)
		}
		if pt.Y < 0 || pt.Y > h {
			pt.VY = -pt.VY
			pt.Y = clampf(pt.Y, 0, h)
		}

		pt.VX *= p.Damping
		pt.VY *= p.Damping

		// Keeps the mesh from visually stalling under damping.
		if absf(pt.VX) < p.MinSpeed {
			pt.VX = s.randomVelocity()
		}
		if absf(pt.VY) < p.MinSpeed {
			pt.VY = s.randomVelocity()
		}
	}
}

// Connections appends every edge shorter than the connection distance to dst,
// ordered by (A, B), and returns the extended slice.
func (s *NetworkSystem) Connections(dst []Connection) []Connection {
	if s.grid != nil {
		return s.connectionsGrid(dst)
	}
	return s.connectionsPairwise(dst)
}

func (s *NetworkSystem) connectionsPairwise(dst []Connection) []Connection {
	for i := 0; i < len(s.particles); i++ {
		for j := i + 1; j < len(s.particles); j++ {
			if c, ok := s.connect(i, j); ok {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

func (s *NetworkSystem) connectionsGrid(dst []Connection) []Connection {
	s.grid.Clear()
	for i := range s.particles {
		s.grid.Insert(i, s.particles[i].X, s.particles[i].Y)
	}

	for i := range s.particles {
		pt := &s.particles[i]
		s.candidates = s.grid.NearbyAfter(s.candidates[:0], pt.X, pt.Y, i)
		sort.Ints(s.candidates)
		for _, j := range s.candidates {
			if c, ok := s.connect(i, j); ok {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

func (s *NetworkSystem) connect(i, j int) (Connection, bool) {
	a := &s.particles[i]
	b := &s.particles[j]
	dist := distance(a.X, a.Y, b.X, b.Y)
	if dist >= s.params.ConnectionDistance {
		return Connection{}, false
	}
	return Connection{
		A:     i,
		B:     j,
		Dist:  dist,
		Alpha: 1 - dist/s.params.ConnectionDistance,
	}, true
}

// Particles returns the live population. The slice is owned by the system.
func (s *NetworkSystem) Particles() []NetworkParticle {
	return s.particles
}

// Count returns the population size.
func (s *NetworkSystem) Count() int {
	return len(s.particles)
}

// Bounds returns the logical width and height.
func (s *NetworkSystem) Bounds() (float32, float32) {
	return s.width, s.height
}

// Params returns the current parameters.
func (s *NetworkSystem) Params() NetworkParams {
	return s.params
}

func (s *NetworkSystem) randomVelocity() float32 {
	return (s.rng.Float32() - 0.5) * s.params.Speed
}
