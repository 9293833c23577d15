package renderer

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TermCanvas draws onto a tcell screen. Each cell covers CellW x CellH
// logical pixels; colours are alpha-blended against the last cleared
// background since terminals have no transparency.
type TermCanvas struct {
	screen       tcell.Screen
	cellW, cellH float32
	bg           color.RGBA
}

// NewTermCanvas creates a canvas over a tcell screen.
func NewTermCanvas(screen tcell.Screen, cellW, cellH float32) *TermCanvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &TermCanvas{screen: screen, cellW: cellW, cellH: cellH}
}

// CellToLocal converts a terminal cell into the logical coordinates of its centre.
func (c *TermCanvas) CellToLocal(col, row int) (x, y float32) {
	return (float32(col) + 0.5) * c.cellW, (float32(row) + 0.5) * c.cellH
}

// Size implements Canvas.
func (c *TermCanvas) Size() (float32, float32) {
	cols, rows := c.screen.Size()
	return float32(cols) * c.cellW, float32(rows) * c.cellH
}

// Clear implements Canvas.
func (c *TermCanvas) Clear(bg color.RGBA) {
	c.bg = bg
	c.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(bg)))
}

// FillCircle implements Canvas.
func (c *TermCanvas) FillCircle(x, y, r float32, col color.RGBA) {
	c.set(x, y, '•', col)
}

// FillRadial implements Canvas. The glyph weight follows the centre opacity.
func (c *TermCanvas) FillRadial(x, y, r float32, inner, outer color.RGBA) {
	glyph := '·'
	switch {
	case inner.A > 160:
		glyph = '●'
	case inner.A > 80:
		glyph = '•'
	}
	c.set(x, y, glyph, inner)
}

// StrokeLine implements Canvas using Bresenham over cells.
func (c *TermCanvas) StrokeLine(x1, y1, x2, y2, width float32, col color.RGBA) {
	c0, r0 := c.cell(x1, y1)
	c1, r1 := c.cell(x2, y2)

	dx := absInt(c1 - c0)
	dy := -absInt(r1 - r0)
	sx, sy := 1, 1
	if c0 > c1 {
		sx = -1
	}
	if r0 > r1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.setCell(c0, r0, '·', col)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c0 += sx
		}
		if e2 <= dx {
			err += dx
			r0 += sy
		}
	}
}

func (c *TermCanvas) cell(x, y float32) (col, row int) {
	return int(math.Floor(float64(x / c.cellW))), int(math.Floor(float64(y / c.cellH)))
}

func (c *TermCanvas) set(x, y float32, glyph rune, col color.RGBA) {
	cx, cy := c.cell(x, y)
	c.setCell(cx, cy, glyph, col)
}

func (c *TermCanvas) setCell(col, row int, glyph rune, fg color.RGBA) {
	cols, rows := c.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	style := tcell.StyleDefault.
		Foreground(toTcell(blend(fg, c.bg))).
		Background(toTcell(c.bg))
	c.screen.SetContent(col, row, glyph, nil, style)
}

// blend composites fg over an opaque bg using fg's alpha.
func blend(fg, bg color.RGBA) color.RGBA {
	a := float32(fg.A) / 255
	mix := func(f, b uint8) uint8 {
		return uint8(float32(f)*a + float32(b)*(1-a))
	}
	return color.RGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 255}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
