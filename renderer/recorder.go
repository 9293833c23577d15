package renderer

import "image/color"

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpCircle
	OpRadial
	OpLine
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	X, Y   float32
	X2, Y2 float32 // line end
	R      float32 // circle radius
	Width  float32 // line width
	Color  color.RGBA
	Outer  color.RGBA // radial edge colour
}

// Recorder is a Canvas that records calls instead of drawing. Used by
// headless runs and tests.
type Recorder struct {
	W, H float32
	Ops  []Op
}

// NewRecorder creates a recorder with the given logical size.
func NewRecorder(w, h float32) *Recorder {
	return &Recorder{W: w, H: h}
}

// Reset drops all recorded operations, keeping capacity.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Resize changes the reported size.
func (r *Recorder) Resize(w, h float32) {
	r.W = w
	r.H = h
}

// Count returns how many operations of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for i := range r.Ops {
		if r.Ops[i].Kind == kind {
			n++
		}
	}
	return n
}

// Size implements Canvas.
func (r *Recorder) Size() (float32, float32) { return r.W, r.H }

// Clear implements Canvas.
func (r *Recorder) Clear(bg color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: bg})
}

// FillCircle implements Canvas.
func (r *Recorder) FillCircle(x, y, rad float32, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, R: rad, Color: c})
}

// FillRadial implements Canvas.
func (r *Recorder) FillRadial(x, y, rad float32, inner, outer color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRadial, X: x, Y: y, R: rad, Color: inner, Outer: outer})
}

// StrokeLine implements Canvas.
func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float32, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width, Color: c})
}
