package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Style Style
}

// NewRenderer creates a renderer with the default style.
func NewRenderer() *Renderer {
	return &Renderer{Style: DefaultStyle()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Style.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Style.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Style.HeaderFontSize, r.Style.SectionHeader)
	return y + r.Style.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Style.FontSize, r.Style.LabelColor)
	rl.DrawText(value, x+r.Style.LabelWidth, y, r.Style.FontSize, r.Style.ValueColor)
	return y + r.Style.LineHeight
}

// DrawBar draws a fill gauge for value/max and returns the new Y position.
func (r *Renderer) DrawBar(x, y int32, label string, value, max float32, width int32) int32 {
	ratio := float32(0)
	if max > 0 {
		ratio = value / max
	}
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	barX := x + r.Style.LabelWidth
	barWidth := width - r.Style.LabelWidth - 50

	rl.DrawText(label+":", x, y, r.Style.FontSize, r.Style.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Style.BarHeight, r.Style.BarBg)
	rl.DrawRectangle(barX, y+2, int32(float32(barWidth)*ratio), r.Style.BarHeight, r.Style.BarFill)
	rl.DrawText(fmt.Sprintf("%.0f", value), barX+barWidth+5, y, r.Style.FontSize, r.Style.ValueColor)

	return y + r.Style.LineHeight + 2
}
