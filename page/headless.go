package page

import (
	"math"

	"github.com/pthm-cable/particlefx/config"
	"github.com/pthm-cable/particlefx/renderer"
)

// Headless drives a page without a window. Frames are recorded instead of
// drawn and the pointer traces a Lissajous curve across the viewport.
type Headless struct {
	page   *Page
	canvas *renderer.Recorder

	freqX, freqY float64
	scale        float64
}

// NewHeadless wraps p for headless stepping.
func NewHeadless(p *Page, cfg config.HeadlessConfig) *Headless {
	w, h := p.screen.Width, p.screen.Height
	return &Headless{
		page:   p,
		canvas: renderer.NewRecorder(w, h),
		freqX:  cfg.PathFreqX,
		freqY:  cfg.PathFreqY,
		scale:  cfg.PathScale,
	}
}

// PointerAt returns the synthetic pointer position for a frame.
func (h *Headless) PointerAt(frame int64) (x, y float32) {
	w := float64(h.page.screen.Width)
	ht := float64(h.page.screen.Height)
	t := float64(frame)
	x = float32(w/2 + math.Sin(t*h.freqX)*w/2*h.scale)
	y = float32(ht/2 + math.Sin(t*h.freqY)*ht/2*h.scale)
	return x, y
}

// Step runs one frame.
func (h *Headless) Step() {
	x, y := h.PointerAt(h.page.frame)
	h.page.Update(Input{
		PointerX:        x,
		PointerY:        y,
		PointerMoved:    true,
		PointerOnScreen: true,
	})

	h.canvas.Reset()
	h.canvas.Resize(h.page.screen.Width, h.page.screen.Height)
	h.page.Frame(h.canvas, h.canvas)
}

// Resize changes the simulated window size.
func (h *Headless) Resize(width, height float32) {
	h.page.Update(Input{Width: width, Height: height, PixelRatio: h.page.screen.PixelRatio})
}

// Canvas returns the recorder holding the last frame's drawing calls.
func (h *Headless) Canvas() *renderer.Recorder {
	return h.canvas
}

// Page returns the driven page.
func (h *Headless) Page() *Page {
	return h.page
}
