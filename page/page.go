// Package page hosts the two particle effects the way the landing page does:
// a cursor trail over the whole window and a particle network behind the hero
// section, each driven by its own render loop.
package page

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/particlefx/config"
	"github.com/pthm-cable/particlefx/loop"
	"github.com/pthm-cable/particlefx/renderer"
	"github.com/pthm-cable/particlefx/systems"
	"github.com/pthm-cable/particlefx/telemetry"
	"github.com/pthm-cable/particlefx/theme"
	"github.com/pthm-cable/particlefx/viewport"
)

// Loop names, as they appear in logs and telemetry.
const (
	TrailLoopName   = "trail"
	NetworkLoopName = "network"
)

// Options configures a Page.
type Options struct {
	Seed           int64
	Theme          theme.Theme
	Width, Height  float32 // initial surface size; 0 = config screen size
	PixelRatio     float32
	LogStats       bool
	StatsWindowSec float64 // 0 = config value
	OutputDir      string
	Snapshot       *telemetry.Snapshot // restores the network on the first resize
	StatsCallback  func(telemetry.WindowStats)
}

// Input is what the host observed since the previous frame.
type Input struct {
	// Window size in logical pixels and its pixel ratio
	Width, Height, PixelRatio float32

	// Pointer in screen coordinates. Moved is false when the pointer
	// did not move; OnScreen is false once it left the window.
	PointerX, PointerY float32
	PointerMoved       bool
	PointerOnScreen    bool

	// Hidden is true while the window is minimised or otherwise not shown.
	Hidden bool
}

// Page owns both effects, their loops and the shared theme.
type Page struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	// screen covers the whole window (trail); hero is the network's section.
	screen *viewport.Viewport
	hero   *viewport.Viewport

	trail   *systems.TrailSystem
	network *systems.NetworkSystem

	trailLoop   *loop.Loop
	networkLoop *loop.Loop

	trailRenderer   *renderer.TrailRenderer
	networkRenderer *renderer.NetworkRenderer

	palettes   theme.Palettes
	themes     *theme.Broadcaster
	background theme.Palette

	edges []systems.Connection

	// Canvases for the current frame, set by Frame before the loops tick.
	screenCanvas renderer.Canvas
	heroCanvas   renderer.Canvas

	// trailWanted is the user's choice; trailAllowed the motion/width gate.
	trailWanted  bool
	trailAllowed bool
	narrow       bool
	snapshot     *telemetry.Snapshot

	// Network density above and below the narrow-viewport width
	baseCount      int
	smallBaseCount int

	frame int64

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// New creates a page. Both loops are started; the network is seeded on the
// first frame.
func New(cfg *config.Config, opts Options) (*Page, error) {
	palettes, err := theme.NewPalettes(cfg.Theme.DarkColor, cfg.Theme.LightColor, cfg.Theme.DarkBG, cfg.Theme.LightBG)
	if err != nil {
		return nil, fmt.Errorf("building palettes: %w", err)
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = cfg.Derived.ScreenW32, cfg.Derived.ScreenH32
	}
	dpr := opts.PixelRatio
	if dpr <= 0 {
		dpr = float32(cfg.Screen.PixelRatio)
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	fps := cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	p := &Page{
		cfg:             cfg,
		rng:             rng,
		seed:            opts.Seed,
		screen:          viewport.New(0, 0, width, height, dpr),
		hero:            viewport.New(0, 0, width, height, dpr),
		trail:           systems.NewTrailSystem(systems.TrailParamsFromConfig(cfg.Trail), rng),
		network:         systems.NewNetworkSystem(systems.NetworkParamsFromConfig(cfg.Network), rng),
		trailRenderer:   renderer.NewTrailRenderer(palettes.Dark.Particle),
		networkRenderer: renderer.NewNetworkRenderer(palettes.Dark, float32(cfg.Network.LineWidth)),
		palettes:        palettes,
		themes:          theme.NewBroadcaster(opts.Theme),
		trailWanted:     cfg.Trail.Enabled,
		baseCount:       cfg.Network.BaseCount,
		smallBaseCount:  cfg.Network.SmallBaseCount,
		snapshot:        opts.Snapshot,
		collector:       telemetry.NewCollector(statsWindow, 1/float64(fps)),
		perfCollector:   telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		outputManager:   output,
		logStats:        opts.LogStats,
		statsCallback:   opts.StatsCallback,
	}

	p.trailLoop = loop.New(TrailLoopName, p.tickTrail, loop.WithRelease(p.trail.Clear))
	p.networkLoop = loop.New(NetworkLoopName, p.tickNetwork)

	// Subscribers receive the initial theme immediately.
	p.themes.Subscribe(theme.SubscriberFunc(p.applyTheme))

	p.applyGate(width)
	if cfg.Network.Enabled {
		p.networkLoop.Start()
	}

	slog.Info("page created",
		"seed", opts.Seed,
		"width", width,
		"height", height,
		"theme", opts.Theme.String(),
		"trail", p.trailLoop.Running(),
		"network", p.networkLoop.Running(),
	)
	return p, nil
}

// applyTheme swaps both renderers' colours in place.
func (p *Page) applyTheme(t theme.Theme) {
	pal := p.palettes.For(t)
	p.background = pal
	p.trailRenderer.SetColor(pal.Particle)
	p.networkRenderer.SetPalette(pal)
}

// applyGate enables the trail only on wide enough viewports without reduced
// motion and picks the network density for the width.
func (p *Page) applyGate(width float32) {
	p.narrow = width < float32(p.cfg.Trail.MinViewportWidth)
	p.trailAllowed = !p.cfg.ReducedMotion && !p.narrow

	p.network.SetBaseCount(p.BaseCount())

	p.syncTrailLoop()
}

func (p *Page) syncTrailLoop() {
	if p.trailWanted && p.trailAllowed {
		if !p.trailLoop.Running() {
			p.trailLoop.Start()
			p.collector.Record(telemetry.NewResumeEvent(p.frame, TrailLoopName))
		}
		return
	}
	if p.trailLoop.Running() {
		p.trailLoop.Stop()
		p.trail.Clear()
		p.collector.Record(telemetry.NewPauseEvent(p.frame, TrailLoopName))
	}
}

// Update applies one frame's worth of host input.
func (p *Page) Update(in Input) {
	if in.Width > 0 || in.Height > 0 {
		p.screen.Resize(in.Width, in.Height, in.PixelRatio)
		p.hero.Resize(in.Width, in.Height, in.PixelRatio)
	}

	p.trailLoop.SetVisible(!in.Hidden)
	p.networkLoop.SetVisible(!in.Hidden)

	if in.PointerMoved {
		sx, sy := p.screen.ToLocal(in.PointerX, in.PointerY)
		p.trail.OnPointerMove(sx, sy)
	}

	lx, ly := p.hero.ToLocal(in.PointerX, in.PointerY)
	if in.PointerOnScreen && p.hero.Contains(lx, ly) {
		if in.PointerMoved || !p.network.Pointer().Active {
			p.network.OnPointerMove(lx, ly)
		}
	} else {
		p.network.OnPointerLeave()
	}
}

// applyResize reseeds the network once per burst of resizes.
func (p *Page) applyResize() {
	p.screen.TakeResize()
	if !p.hero.TakeResize() {
		return
	}

	p.applyGate(p.hero.Width)

	if p.snapshot != nil {
		if err := p.snapshot.Apply(p.network, p.hero.Width, p.hero.Height); err != nil {
			slog.Warn("snapshot ignored", "error", err)
			p.network.Resize(p.hero.Width, p.hero.Height)
		}
		p.snapshot = nil
	} else {
		p.network.Resize(p.hero.Width, p.hero.Height)
	}
	// A paused or hidden network is redrawn frozen from these edges, so they
	// must index the new population.
	p.edges = p.network.Connections(p.edges[:0])

	p.collector.Record(telemetry.NewResizeEvent(p.frame))
	slog.Debug("viewport resized",
		"width", p.hero.Width,
		"height", p.hero.Height,
		"pixel_ratio", p.hero.PixelRatio,
		"particles", p.network.Count(),
	)
}

// Frame runs both loops once. screen receives the trail and the background,
// hero the network. Paused effects are redrawn frozen.
func (p *Page) Frame(screen, hero renderer.Canvas) {
	p.perfCollector.StartFrame()
	p.applyResize()

	p.screenCanvas = screen
	p.heroCanvas = hero

	screen.Clear(p.background.Background)

	failed := p.networkLoop.Failed()
	if !p.networkLoop.Frame() && !p.networkLoop.Destroyed() && p.cfg.Network.Enabled {
		p.perfCollector.StartPhase(telemetry.PhaseRender)
		p.networkRenderer.Draw(hero, p.network.Particles(), p.edges)
	}
	if p.networkLoop.Failed() > failed {
		p.collector.Record(telemetry.NewFrameErrorEvent(p.frame, NetworkLoopName))
	}

	failed = p.trailLoop.Failed()
	p.trailLoop.Frame()
	if p.trailLoop.Failed() > failed {
		p.collector.Record(telemetry.NewFrameErrorEvent(p.frame, TrailLoopName))
	}

	p.perfCollector.EndFrame()
	p.frame++
	p.collector.ObserveTrail(p.trail.Count())
	p.flushTelemetry()
}

func (p *Page) tickNetwork() {
	p.perfCollector.StartPhase(telemetry.PhaseNetwork)
	p.network.Update()

	p.perfCollector.StartPhase(telemetry.PhaseConnections)
	p.edges = p.network.Connections(p.edges[:0])

	p.perfCollector.StartPhase(telemetry.PhaseRender)
	p.networkRenderer.Draw(p.heroCanvas, p.network.Particles(), p.edges)
}

func (p *Page) tickTrail() {
	p.perfCollector.StartPhase(telemetry.PhaseTrail)
	before := p.trail.Spawned()
	p.trail.Update()
	if n := p.trail.Spawned() - before; n > 0 {
		p.collector.Record(telemetry.NewTrailSpawnEvent(p.frame, n))
	}

	p.perfCollector.StartPhase(telemetry.PhaseRender)
	p.trailRenderer.Draw(p.screenCanvas, p.trail.Particles())
}

// SetTheme switches both effects to t's palette.
func (p *Page) SetTheme(t theme.Theme) {
	if t == p.themes.Current() {
		return
	}
	p.themes.Set(t)
	p.collector.Record(telemetry.NewThemeChangeEvent(p.frame))
}

// ToggleTheme flips the theme and returns the new one.
func (p *Page) ToggleTheme() theme.Theme {
	p.SetTheme(p.themes.Current().Toggle())
	return p.themes.Current()
}

// Theme returns the active theme.
func (p *Page) Theme() theme.Theme {
	return p.themes.Current()
}

// SubscribeTheme registers s for theme changes.
func (p *Page) SubscribeTheme(s theme.Subscriber) {
	p.themes.Subscribe(s)
}

// SetRepel switches the network's pointer force direction.
func (p *Page) SetRepel(repel bool) {
	p.network.SetRepel(repel)
}

// SetNetworkPaused stops or resumes the network loop. A paused network keeps
// its particles and is drawn frozen.
func (p *Page) SetNetworkPaused(paused bool) {
	if !p.cfg.Network.Enabled || paused == !p.networkLoop.Running() {
		return
	}
	if paused {
		p.networkLoop.Stop()
		p.collector.Record(telemetry.NewPauseEvent(p.frame, NetworkLoopName))
		return
	}
	p.networkLoop.Start()
	p.collector.Record(telemetry.NewResumeEvent(p.frame, NetworkLoopName))
}

// SetTrailEnabled turns the cursor trail on or off. It stays off while the
// viewport is too narrow or reduced motion is requested.
func (p *Page) SetTrailEnabled(enabled bool) {
	p.trailWanted = enabled
	p.syncTrailLoop()
}

// SetBaseCount changes the density for the current width class and reseeds
// the network on the next frame.
func (p *Page) SetBaseCount(n int) {
	if n < 1 {
		n = 1
	}
	if p.narrow {
		p.smallBaseCount = n
	} else {
		p.baseCount = n
	}
	p.hero.Invalidate()
}

// BaseCount returns the density currently in effect.
func (p *Page) BaseCount() int {
	if p.narrow {
		return p.smallBaseCount
	}
	return p.baseCount
}

// Close destroys both loops and flushes output.
func (p *Page) Close() error {
	p.trailLoop.Destroy()
	p.networkLoop.Destroy()
	return p.outputManager.Close()
}

// Trail returns the cursor trail.
func (p *Page) Trail() *systems.TrailSystem { return p.trail }

// Network returns the particle network.
func (p *Page) Network() *systems.NetworkSystem { return p.network }

// Edges returns the connections computed by the last network tick.
func (p *Page) Edges() []systems.Connection { return p.edges }

// TrailLoop returns the cursor trail's loop.
func (p *Page) TrailLoop() *loop.Loop { return p.trailLoop }

// NetworkLoop returns the network's loop.
func (p *Page) NetworkLoop() *loop.Loop { return p.networkLoop }

// Hero returns the network's viewport.
func (p *Page) Hero() *viewport.Viewport { return p.hero }

// Screen returns the whole-window viewport.
func (p *Page) Screen() *viewport.Viewport { return p.screen }

// Frames returns the number of frames run.
func (p *Page) Frames() int64 { return p.frame }

// Seed returns the RNG seed.
func (p *Page) Seed() int64 { return p.seed }

// Perf returns the frame timing collector.
func (p *Page) Perf() *telemetry.PerfCollector { return p.perfCollector }

// Output returns the output manager, nil when output is disabled.
func (p *Page) Output() *telemetry.OutputManager { return p.outputManager }
