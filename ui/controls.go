package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsPanel renders the toggle buttons and the density slider.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// ControlsResult reports what the user changed this frame.
type ControlsResult struct {
	Toggled   []ToggleID
	BaseCount int // slider value; equal to the input when untouched
}

// Draw renders the panel and applies button clicks to toggles. minBase and
// maxBase bound the density slider.
func (c *ControlsPanel) Draw(toggles *ToggleRegistry, baseCount, minBase, maxBase int) ControlsResult {
	res := ControlsResult{BaseCount: baseCount}

	r := c.renderer
	padding := r.Style.Padding
	lineHeight := r.Style.LineHeight
	buttonH := r.Style.ButtonHeight

	categories := toggles.Categories()
	rows := int32(0)
	for _, cat := range categories {
		rows += int32(len(toggles.ByCategory(cat)))
	}
	panelHeight := rows*(buttonH+4) + int32(len(categories))*lineHeight + lineHeight*3 + padding*3

	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	y := c.y + padding
	rl.DrawText("Controls", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	inner := float32(c.width - padding*2)
	for _, category := range categories {
		y = r.DrawSectionHeader(c.x+padding, y, categoryLabel(category))
		for _, desc := range toggles.ByCategory(category) {
			bounds := rl.Rectangle{X: float32(c.x + padding), Y: float32(y), Width: inner, Height: float32(buttonH)}
			if gui.Button(bounds, toggleLabel(desc, toggles.IsEnabled(desc.ID))) {
				toggles.Toggle(desc.ID)
				res.Toggled = append(res.Toggled, desc.ID)
			}
			y += buttonH + 4
		}
	}

	rl.DrawText("Density", c.x+padding, y, r.Style.FontSize, r.Style.LabelColor)
	y += lineHeight
	bounds := rl.Rectangle{X: float32(c.x + padding + 20), Y: float32(y), Width: inner - 60, Height: 16}
	v := gui.SliderBar(bounds, fmt.Sprint(minBase), fmt.Sprint(maxBase), float32(baseCount), float32(minBase), float32(maxBase))
	if n := int(v + 0.5); n != baseCount {
		res.BaseCount = n
	}

	return res
}

func toggleLabel(desc ToggleDescriptor, on bool) string {
	state := "off"
	if on {
		state = "on"
	}
	if desc.KeyLabel == "" {
		return fmt.Sprintf("%s: %s", desc.Name, state)
	}
	return fmt.Sprintf("[%s] %s: %s", desc.KeyLabel, desc.Name, state)
}

func categoryLabel(cat string) string {
	switch cat {
	case "effects":
		return "Effects"
	case "view":
		return "View"
	default:
		return cat
	}
}
