package page

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/particlefx/config"
	"github.com/pthm-cable/particlefx/renderer"
)

// Terminal hosts a page on a tcell screen. The screen must be initialised;
// the caller owns Fini.
type Terminal struct {
	page   *Page
	screen tcell.Screen
	canvas *renderer.TermCanvas
	frame  time.Duration

	pointerX, pointerY float32
	pointerMoved       bool
	pointerOn          bool
	resized            bool
}

// NewTerminal wraps p for the given screen.
func NewTerminal(p *Page, screen tcell.Screen, cfg config.TerminalConfig) *Terminal {
	frameMS := cfg.FrameMS
	if frameMS <= 0 {
		frameMS = 16
	}
	return &Terminal{
		page:    p,
		screen:  screen,
		canvas:  renderer.NewTermCanvas(screen, float32(cfg.CellWidth), float32(cfg.CellHeight)),
		frame:   time.Duration(frameMS) * time.Millisecond,
		resized: true,
	}
}

// Run polls input and draws frames until the user quits or maxTicks frames
// have run (0 = no limit).
func (t *Terminal) Run(maxTicks int64) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// Screen finalised
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(t.frame)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if t.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.Step()
			if maxTicks > 0 && t.page.Frames() >= maxTicks {
				return
			}
		}
	}
}

// HandleEvent applies one tcell event. Returns true when the user asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return t.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		t.resized = true
		t.screen.Sync()
	case *tcell.EventMouse:
		col, row := ev.Position()
		t.pointerX, t.pointerY = t.canvas.CellToLocal(col, row)
		t.pointerMoved = true
		t.pointerOn = true
	case *tcell.EventFocus:
		if !ev.Focused {
			t.pointerOn = false
		}
	}
	return false
}

func (t *Terminal) handleRune(r rune) bool {
	p := t.page
	switch r {
	case 'q':
		return true
	case 't':
		p.ToggleTheme()
	case 'r':
		p.SetRepel(!p.network.Repel())
	case 'p':
		p.SetNetworkPaused(p.networkLoop.Running())
	case 'c':
		p.SetTrailEnabled(!p.trailWanted)
	}
	return false
}

// Step runs one frame and shows it.
func (t *Terminal) Step() {
	in := Input{
		PointerX:        t.pointerX,
		PointerY:        t.pointerY,
		PointerMoved:    t.pointerMoved,
		PointerOnScreen: t.pointerOn,
	}
	if t.resized {
		in.Width, in.Height = t.canvas.Size()
		in.PixelRatio = 1
		t.resized = false
	}
	t.pointerMoved = false

	t.page.Update(in)
	t.page.perfCollector.RecordPresent()
	t.page.Frame(t.canvas, t.canvas)
	t.screen.Show()
}
