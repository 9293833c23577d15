// Package renderer draws particle fields onto a Canvas.
package renderer

import "image/color"

// Canvas is a 2D drawing surface in logical coordinates.
type Canvas interface {
	// Size returns the logical drawing area. Zero means nothing is drawn.
	Size() (w, h float32)
	Clear(bg color.RGBA)
	FillCircle(x, y, r float32, c color.RGBA)
	// FillRadial fills a disc whose colour fades from inner at the centre
	// to outer at radius r.
	FillRadial(x, y, r float32, inner, outer color.RGBA)
	StrokeLine(x1, y1, x2, y2, width float32, c color.RGBA)
}

func drawable(c Canvas) bool {
	w, h := c.Size()
	return w > 0 && h > 0
}
