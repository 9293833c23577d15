package page

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/particlefx/renderer"
	"github.com/pthm-cable/particlefx/theme"
	"github.com/pthm-cable/particlefx/ui"
)

const controlsLegend = "[T] theme  [R] repel  [C] trail  [P] pause  [H] hud  [F1] controls  [F11] fullscreen  [S] snapshot"

// Desktop hosts a page in a raylib window. The window must already be open.
type Desktop struct {
	page *Page

	screenCanvas *renderer.RaylibCanvas
	heroCanvas   *renderer.RaylibCanvas

	toggles  *ui.ToggleRegistry
	controls *ui.ControlsPanel
	hud      *ui.HUD
}

// NewDesktop wraps p for the current raylib window.
func NewDesktop(p *Page) *Desktop {
	d := &Desktop{
		page:         p,
		screenCanvas: renderer.NewRaylibCanvas(p.screen),
		heroCanvas:   renderer.NewRaylibCanvas(p.hero),
		toggles:      ui.NewToggleRegistry(),
		controls:     ui.NewControlsPanel(10, 10, 220),
		hud:          ui.NewHUD(220),
	}

	d.toggles.SetEnabled(ui.ToggleLightTheme, p.Theme() == theme.Light)
	d.toggles.SetEnabled(ui.ToggleRepel, p.network.Repel())
	d.toggles.SetEnabled(ui.ToggleTrail, p.trailWanted)
	d.toggles.SetEnabled(ui.TogglePause, !p.networkLoop.Running())
	d.toggles.SetEnabled(ui.ToggleHUD, true)

	// Keep the toggle in step when the theme changes from elsewhere.
	p.SubscribeTheme(theme.SubscriberFunc(func(t theme.Theme) {
		d.toggles.SetEnabled(ui.ToggleLightTheme, t == theme.Light)
	}))
	return d
}

// Update reads window input and applies it to the page.
func (d *Desktop) Update() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		if path, err := d.page.SaveSnapshot(); err != nil {
			slog.Error("failed to save snapshot", "error", err)
		} else if path != "" {
			slog.Info("snapshot saved", "path", path)
		}
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if id, on, ok := d.toggles.HandleKeyPress(key); ok {
			d.apply(id, on)
		}
	}

	mouse := rl.GetMousePosition()
	delta := rl.GetMouseDelta()

	in := Input{
		PointerX:        mouse.X,
		PointerY:        mouse.Y,
		PointerMoved:    delta.X != 0 || delta.Y != 0,
		PointerOnScreen: rl.IsCursorOnScreen(),
		Hidden:          rl.IsWindowMinimized() || rl.IsWindowHidden(),
	}
	if rl.IsWindowResized() || d.page.frame == 0 {
		scale := rl.GetWindowScaleDPI()
		in.Width = float32(rl.GetScreenWidth())
		in.Height = float32(rl.GetScreenHeight())
		in.PixelRatio = scale.X
	}
	d.page.Update(in)
}

// apply routes a toggle change to the page.
func (d *Desktop) apply(id ui.ToggleID, on bool) {
	switch id {
	case ui.ToggleLightTheme:
		if on {
			d.page.SetTheme(theme.Light)
		} else {
			d.page.SetTheme(theme.Dark)
		}
	case ui.ToggleRepel:
		d.page.SetRepel(on)
	case ui.ToggleTrail:
		d.page.SetTrailEnabled(on)
	case ui.TogglePause:
		d.page.SetNetworkPaused(on)
	}
}

// Draw renders one frame.
func (d *Desktop) Draw() {
	p := d.page
	p.perfCollector.RecordPresent()

	rl.BeginDrawing()

	d.screenCanvas.Begin()
	p.Frame(d.screenCanvas, d.heroCanvas)
	d.screenCanvas.End()

	if d.toggles.IsEnabled(ui.ToggleHUD) {
		d.hud.Draw(int32(rl.GetScreenWidth()), ui.HUDData{
			Title:        "particlefx",
			Theme:        p.Theme().String(),
			FPS:          rl.GetFPS(),
			Frame:        p.frame,
			TrailCount:   p.trail.Count(),
			TrailMax:     p.trail.Params().MaxParticles,
			NetworkCount: p.network.Count(),
			Connections:  len(p.edges),
			Repel:        p.network.Repel(),
			TrailOn:      p.trailLoop.Running(),
			NetworkOn:    p.networkLoop.Running(),
		})
	}

	if d.toggles.IsEnabled(ui.TogglePanel) {
		res := d.controls.Draw(d.toggles, p.BaseCount(), 10, 200)
		for _, id := range res.Toggled {
			d.apply(id, d.toggles.IsEnabled(id))
		}
		if res.BaseCount != p.BaseCount() {
			p.SetBaseCount(res.BaseCount)
		}
		d.hud.DrawControls(int32(rl.GetScreenHeight()), controlsLegend)
	}

	rl.EndDrawing()
}
