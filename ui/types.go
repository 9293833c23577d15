// Package ui draws the on-screen controls and HUD for the desktop host and
// maps key presses to named toggles.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Style holds UI styling constants.
type Style struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	KeyColor       rl.Color
	OnColor        rl.Color
	OffColor       rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	ButtonHeight   int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultStyle returns the default UI style.
func DefaultStyle() Style {
	return Style{
		PanelBg:        rl.Color{R: 10, G: 14, B: 26, A: 230},
		PanelBorder:    rl.Color{R: 43, G: 88, B: 118, A: 255},
		SectionHeader:  rl.Color{R: 0, G: 212, B: 255, A: 255},
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		KeyColor:       rl.Color{R: 150, G: 150, B: 150, A: 255},
		OnColor:        rl.Color{R: 100, G: 200, B: 100, A: 255},
		OffColor:       rl.Color{R: 80, G: 80, B: 80, A: 255},
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:        rl.Color{R: 0, G: 212, B: 255, A: 255},
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     90,
		BarHeight:      12,
		ButtonHeight:   22,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
