package renderer

import (
	"image/color"

	"github.com/pthm-cable/particlefx/systems"
	"github.com/pthm-cable/particlefx/theme"
)

// trailPeakAlpha is the centre opacity of a particle at full life.
const trailPeakAlpha = 0.8

// TrailRenderer renders cursor trail particles as fading radial discs.
type TrailRenderer struct {
	color color.RGBA
}

// NewTrailRenderer creates a trail renderer drawing in c.
func NewTrailRenderer(c color.RGBA) *TrailRenderer {
	return &TrailRenderer{color: c}
}

// SetColor changes the trail colour; the next Draw uses it.
func (r *TrailRenderer) SetColor(c color.RGBA) {
	r.color = c
}

// Color returns the current trail colour.
func (r *TrailRenderer) Color() color.RGBA {
	return r.color
}

// Draw renders all particles. Both radius and opacity shrink linearly with
// remaining life.
func (r *TrailRenderer) Draw(c Canvas, particles []systems.TrailParticle) {
	if !drawable(c) {
		return
	}
	for i := range particles {
		p := &particles[i]

		lifeRatio := p.LifeRatio()
		size := p.Size * lifeRatio
		if size <= 0 {
			continue
		}

		inner := theme.WithAlpha(r.color, lifeRatio*trailPeakAlpha)
		outer := theme.WithAlpha(r.color, 0)
		c.FillRadial(p.X, p.Y, size, inner, outer)
	}
}

// NetworkRenderer renders the background mesh: edges first, then particles.
type NetworkRenderer struct {
	palette   theme.Palette
	lineWidth float32
}

// NewNetworkRenderer creates a network renderer.
func NewNetworkRenderer(palette theme.Palette, lineWidth float32) *NetworkRenderer {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	return &NetworkRenderer{palette: palette, lineWidth: lineWidth}
}

// SetPalette mutates the colours in place; the next Draw picks them up.
func (r *NetworkRenderer) SetPalette(p theme.Palette) {
	r.palette = p
}

// Palette returns the current palette.
func (r *NetworkRenderer) Palette() theme.Palette {
	return r.palette
}

// Draw renders connections then particles.
func (r *NetworkRenderer) Draw(c Canvas, particles []systems.NetworkParticle, edges []systems.Connection) {
	if !drawable(c) {
		return
	}

	for _, e := range edges {
		a := &particles[e.A]
		b := &particles[e.B]
		c.StrokeLine(a.X, a.Y, b.X, b.Y, r.lineWidth, theme.WithAlpha(r.palette.Line, e.Alpha))
	}

	for i := range particles {
		p := &particles[i]
		c.FillCircle(p.X, p.Y, p.Radius, r.palette.Particle)
	}
}
