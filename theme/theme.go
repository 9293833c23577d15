// Package theme selects colour palettes for the light and dark page themes.
package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme identifies the active page theme.
type Theme uint8

const (
	Dark Theme = iota
	Light
)

// String returns the theme identifier used on the wire and in config.
func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Parse converts a theme identifier. Unknown identifiers are an error.
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown theme %q", s)
}

// Palette is the set of colours a field draws with.
type Palette struct {
	Particle   color.RGBA
	Line       color.RGBA
	Background color.RGBA
}

// Palettes holds one palette per theme.
type Palettes struct {
	Dark  Palette
	Light Palette
}

// For returns the palette for the given theme.
func (p Palettes) For(t Theme) Palette {
	if t == Light {
		return p.Light
	}
	return p.Dark
}

// NewPalettes builds palettes from hex colour strings.
func NewPalettes(darkFG, lightFG, darkBG, lightBG string) (Palettes, error) {
	df, err := ParseHex(darkFG)
	if err != nil {
		return Palettes{}, fmt.Errorf("dark colour: %w", err)
	}
	lf, err := ParseHex(lightFG)
	if err != nil {
		return Palettes{}, fmt.Errorf("light colour: %w", err)
	}
	db, err := ParseHex(darkBG)
	if err != nil {
		return Palettes{}, fmt.Errorf("dark background: %w", err)
	}
	lb, err := ParseHex(lightBG)
	if err != nil {
		return Palettes{}, fmt.Errorf("light background: %w", err)
	}
	return Palettes{
		Dark:  Palette{Particle: df, Line: df, Background: db},
		Light: Palette{Particle: lf, Line: lf, Background: lb},
	}, nil
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(a * 255)
	return c
}
