package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds the values shown on the heads-up display.
type HUDData struct {
	Title        string
	Theme        string
	FPS          int32
	Frame        int64
	TrailCount   int
	TrailMax     int
	NetworkCount int
	Connections  int
	Repel        bool
	TrailOn      bool
	NetworkOn    bool
}

// HUD renders the heads-up display in the top right corner.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a HUD of the given width.
func NewHUD(width int32) *HUD {
	return &HUD{renderer: NewRenderer(), width: width}
}

// Draw renders the HUD against the right edge of a screen screenWidth wide.
func (h *HUD) Draw(screenWidth int32, data HUDData) {
	r := h.renderer
	padding := r.Style.Padding
	x := screenWidth - h.width - padding
	y := padding

	r.DrawPanel(x, y, h.width, r.Style.LineHeight*8+padding*2)
	x += padding
	y += padding

	y = r.DrawSectionHeader(x, y, data.Title)
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))
	y = r.DrawLabelValue(x, y, "Frame", fmt.Sprintf("%d", data.Frame))
	y = r.DrawLabelValue(x, y, "Theme", data.Theme)
	if data.TrailOn {
		y = r.DrawBar(x, y, "Trail", float32(data.TrailCount), float32(data.TrailMax), h.width-padding*2)
	} else {
		y = r.DrawLabelValue(x, y, "Trail", "off")
	}
	y = r.DrawLabelValue(x, y, "Network", fmt.Sprintf("%d (%s)", data.NetworkCount, onOff(data.NetworkOn, "running", "paused")))
	y = r.DrawLabelValue(x, y, "Edges", fmt.Sprintf("%d", data.Connections))
	r.DrawLabelValue(x, y, "Pointer", onOff(data.Repel, "repel", "attract"))
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

func onOff(v bool, on, off string) string {
	if v {
		return on
	}
	return off
}
