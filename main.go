package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/particlefx/config"
	"github.com/pthm-cable/particlefx/page"
	"github.com/pthm-cable/particlefx/telemetry"
	"github.com/pthm-cable/particlefx/theme"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, driving the pointer along a synthetic path")
	terminal := flag.Bool("terminal", false, "Render into the terminal instead of a window")
	themeName := flag.String("theme", "", "Initial theme: dark or light (empty = use config)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config and snapshots")
	snapshotPath := flag.String("snapshot", "", "Restore the network from a snapshot file")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// JSON logs to stdout, except in the terminal where they would
	// overwrite the screen.
	var logOut io.Writer = os.Stdout
	if *terminal {
		logOut = io.Discard
		if *outputDir != "" {
			if err := os.MkdirAll(*outputDir, 0755); err == nil {
				if f, err := os.Create(filepath.Join(*outputDir, "run.log")); err == nil {
					defer f.Close()
					logOut = f
				}
			}
		}
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	name := cfg.Theme.Initial
	if *themeName != "" {
		name = *themeName
	}
	initialTheme, err := theme.Parse(name)
	if err != nil {
		slog.Error("invalid theme", "error", err)
		os.Exit(1)
	}

	opts := page.Options{
		Seed:           rngSeed,
		Theme:          initialTheme,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
	}

	if *snapshotPath != "" {
		snap, err := telemetry.LoadSnapshot(*snapshotPath)
		if err != nil {
			slog.Error("failed to load snapshot", "error", err)
			os.Exit(1)
		}
		opts.Snapshot = snap
	}

	switch {
	case *headless:
		runHeadless(cfg, opts, *maxTicks)
	case *terminal:
		runTerminal(cfg, opts, *maxTicks)
	default:
		runWindow(cfg, opts, *maxTicks)
	}
}

func runHeadless(cfg *config.Config, opts page.Options, maxTicks int64) {
	p, err := page.New(cfg, opts)
	if err != nil {
		slog.Error("failed to create page", "error", err)
		os.Exit(1)
	}
	defer p.Close()

	h := page.NewHeadless(p, cfg.Headless)

	slog.Info("starting headless run",
		"seed", opts.Seed,
		"stats_window", opts.StatsWindowSec,
		"max_ticks", maxTicks,
	)

	for maxTicks <= 0 || p.Frames() < maxTicks {
		h.Step()
	}
	slog.Info("max ticks reached", "frame", p.Frames())

	if path, err := p.SaveSnapshot(); err != nil {
		slog.Error("failed to save snapshot", "error", err)
	} else if path != "" {
		slog.Info("snapshot saved", "path", path)
	}
}

func runTerminal(cfg *config.Config, opts page.Options, maxTicks int64) {
	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("failed to create screen", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		slog.Error("failed to init screen", "error", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	cols, rows := screen.Size()
	opts.Width = float32(cols) * float32(cfg.Terminal.CellWidth)
	opts.Height = float32(rows) * float32(cfg.Terminal.CellHeight)
	opts.PixelRatio = 1

	p, err := page.New(cfg, opts)
	if err != nil {
		screen.Fini()
		slog.Error("failed to create page", "error", err)
		os.Exit(1)
	}
	defer p.Close()

	page.NewTerminal(p, screen, cfg.Terminal).Run(maxTicks)
}

func runWindow(cfg *config.Config, opts page.Options, maxTicks int64) {
	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "particlefx")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	opts.Width = float32(rl.GetScreenWidth())
	opts.Height = float32(rl.GetScreenHeight())
	opts.PixelRatio = float32(cfg.Screen.PixelRatio)
	if opts.PixelRatio <= 0 {
		opts.PixelRatio = rl.GetWindowScaleDPI().X
	}

	p, err := page.New(cfg, opts)
	if err != nil {
		slog.Error("failed to create page", "error", err)
		return
	}
	defer p.Close()

	d := page.NewDesktop(p)
	for !rl.WindowShouldClose() {
		d.Update()
		d.Draw()

		if maxTicks > 0 && p.Frames() >= maxTicks {
			break
		}
	}
}
