package systems

// PointerState is a field's cached notion of the cursor. An inactive pointer
// has no meaningful coordinates.
type PointerState struct {
	X, Y   float32
	Active bool
}

// Set records an active pointer position.
func (p *PointerState) Set(x, y float32) {
	p.X = x
	p.Y = y
	p.Active = true
}

// Clear marks the pointer as outside the tracked surface.
func (p *PointerState) Clear() {
	*p = PointerState{}
}
