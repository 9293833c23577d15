package page

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/particlefx/theme"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(160, 50)

	cfg := testConfig()
	p := newTestPage(t, cfg, Options{
		Seed:   21,
		Width:  float32(160 * cfg.Terminal.CellWidth),
		Height: float32(50 * cfg.Terminal.CellHeight),
	})
	return NewTerminal(p, screen, cfg.Terminal), screen
}

func TestTerminalKeys(t *testing.T) {
	term, _ := newSimTerminal(t)
	p := term.page

	tests := []struct {
		r     rune
		check func() bool
		desc  string
	}{
		{'t', func() bool { return p.Theme() == theme.Light }, "theme toggled to light"},
		{'r', func() bool { return p.Network().Repel() }, "repel enabled"},
		{'p', func() bool { return !p.NetworkLoop().Running() }, "network paused"},
		{'c', func() bool { return !p.TrailLoop().Running() }, "trail disabled"},
	}
	for _, tt := range tests {
		if quit := term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone)); quit {
			t.Fatalf("%q should not quit", tt.r)
		}
		if !tt.check() {
			t.Errorf("after %q: want %s", tt.r, tt.desc)
		}
	}

	if !term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if !term.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}

func TestTerminalMouseDrivesTrail(t *testing.T) {
	term, screen := newSimTerminal(t)
	p := term.page

	term.Step()
	term.HandleEvent(tcell.NewEventMouse(40, 10, tcell.ButtonNone, tcell.ModNone))
	term.Step()

	if got := p.Trail().Count(); got == 0 {
		t.Fatal("mouse motion should spawn trail particles")
	}
	if !p.Network().Pointer().Active {
		t.Error("network should see the pointer")
	}

	// Something was drawn onto the screen.
	cells, w, h := screen.GetContents()
	if w != 160 || h != 50 {
		t.Fatalf("screen size = %dx%d", w, h)
	}
	drawn := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			drawn++
		}
	}
	if drawn == 0 {
		t.Error("no glyphs drawn")
	}
}

func TestTerminalResize(t *testing.T) {
	term, screen := newSimTerminal(t)
	p := term.page
	term.Step()

	screen.SetSize(100, 40)
	term.HandleEvent(tcell.NewEventResize(100, 40))
	term.Step()

	w, h := p.Network().Bounds()
	if w != 100*float32(p.cfg.Terminal.CellWidth) || h != 40*float32(p.cfg.Terminal.CellHeight) {
		t.Errorf("bounds = %vx%v after resize", w, h)
	}
}
