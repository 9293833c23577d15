// Package viewport tracks a drawing surface's layout box and pixel density.
package viewport

import "math"

// Viewport describes where a field's drawing surface sits on screen.
// Fields simulate in logical units; the device surface is logical size
// multiplied by the pixel ratio.
type Viewport struct {
	// Origin of the surface in screen coordinates
	X, Y float32

	// Logical (layout) size
	Width, Height float32

	// Device pixels per logical pixel
	PixelRatio float32

	// Set by Resize, cleared by TakeResize
	pending bool
}

// New creates a viewport. A non-positive pixel ratio is treated as 1.
// The new viewport starts with a pending resize so the first frame seeds
// its fields.
func New(x, y, width, height, pixelRatio float32) *Viewport {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &Viewport{
		X:          x,
		Y:          y,
		Width:      nonNegative(width),
		Height:     nonNegative(height),
		PixelRatio: pixelRatio,
		pending:    true,
	}
}

// Resize records a new layout size and pixel ratio. It only marks the
// viewport as pending; the caller reseeds fields once via TakeResize.
// Returns whether anything changed.
func (v *Viewport) Resize(width, height, pixelRatio float32) bool {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	width = nonNegative(width)
	height = nonNegative(height)
	if width == v.Width && height == v.Height && pixelRatio == v.PixelRatio {
		return false
	}
	v.Width = width
	v.Height = height
	v.PixelRatio = pixelRatio
	v.pending = true
	return true
}

// Invalidate marks the viewport pending without changing its size, so the
// next frame reseeds its fields.
func (v *Viewport) Invalidate() {
	v.pending = true
}

// TakeResize reports whether a resize is pending and clears it.
// Bursts of Resize calls between two frames collapse into one.
func (v *Viewport) TakeResize() bool {
	p := v.pending
	v.pending = false
	return p
}

// Pending reports whether a resize is waiting to be applied.
func (v *Viewport) Pending() bool {
	return v.pending
}

// DeviceSize returns the backing surface size in device pixels.
func (v *Viewport) DeviceSize() (w, h int32) {
	w = int32(math.Round(float64(v.Width * v.PixelRatio)))
	h = int32(math.Round(float64(v.Height * v.PixelRatio)))
	return w, h
}

// ToLocal converts screen coordinates into surface-local logical coordinates.
func (v *Viewport) ToLocal(sx, sy float32) (lx, ly float32) {
	return sx - v.X, sy - v.Y
}

// ToScreen converts surface-local logical coordinates into screen coordinates.
func (v *Viewport) ToScreen(lx, ly float32) (sx, sy float32) {
	return lx + v.X, ly + v.Y
}

// Contains reports whether a local point lies on the surface.
func (v *Viewport) Contains(lx, ly float32) bool {
	return lx >= 0 && ly >= 0 && lx <= v.Width && ly <= v.Height
}

// Area returns the logical area.
func (v *Viewport) Area() float32 {
	return v.Width * v.Height
}

// Empty reports whether the surface has no drawable area.
func (v *Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

func nonNegative(v float32) float32 {
	if v < 0 || v != v {
		return 0
	}
	return v
}
