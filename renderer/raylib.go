package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/particlefx/viewport"
)

// RaylibCanvas draws into the region of the raylib window described by a
// viewport. Must only be used between rl.BeginDrawing and rl.EndDrawing.
type RaylibCanvas struct {
	vp *viewport.Viewport
}

// NewRaylibCanvas creates a canvas over the given viewport.
func NewRaylibCanvas(vp *viewport.Viewport) *RaylibCanvas {
	return &RaylibCanvas{vp: vp}
}

// Begin clips drawing to the viewport.
func (c *RaylibCanvas) Begin() {
	rl.BeginScissorMode(int32(c.vp.X), int32(c.vp.Y), int32(c.vp.Width), int32(c.vp.Height))
}

// End removes the clip.
func (c *RaylibCanvas) End() {
	rl.EndScissorMode()
}

// Size implements Canvas.
func (c *RaylibCanvas) Size() (float32, float32) {
	return c.vp.Width, c.vp.Height
}

// Clear implements Canvas.
func (c *RaylibCanvas) Clear(bg color.RGBA) {
	rl.DrawRectangleV(rl.NewVector2(c.vp.X, c.vp.Y), rl.NewVector2(c.vp.Width, c.vp.Height), bg)
}

// FillCircle implements Canvas.
func (c *RaylibCanvas) FillCircle(x, y, r float32, col color.RGBA) {
	sx, sy := c.vp.ToScreen(x, y)
	rl.DrawCircleV(rl.NewVector2(sx, sy), r, col)
}

// FillRadial implements Canvas.
func (c *RaylibCanvas) FillRadial(x, y, r float32, inner, outer color.RGBA) {
	sx, sy := c.vp.ToScreen(x, y)
	rl.DrawCircleGradient(int32(sx), int32(sy), r, inner, outer)
}

// StrokeLine implements Canvas.
func (c *RaylibCanvas) StrokeLine(x1, y1, x2, y2, width float32, col color.RGBA) {
	sx1, sy1 := c.vp.ToScreen(x1, y1)
	sx2, sy2 := c.vp.ToScreen(x2, y2)
	rl.DrawLineEx(rl.NewVector2(sx1, sy1), rl.NewVector2(sx2, sy2), width, col)
}
