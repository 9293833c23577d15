// Package config provides configuration loading and access for the effects host.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all effect configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Theme     ThemeConfig     `yaml:"theme"`
	Trail     TrailConfig     `yaml:"trail"`
	Network   NetworkConfig   `yaml:"network"`
	Headless  HeadlessConfig  `yaml:"headless"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// ReducedMotion disables the cursor trail entirely.
	ReducedMotion bool `yaml:"reduced_motion"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	TargetFPS  int     `yaml:"target_fps"`
	PixelRatio float64 `yaml:"pixel_ratio"` // 0 = ask the window system
	Resizable  bool    `yaml:"resizable"`
}

// ThemeConfig holds the startup theme and palettes.
type ThemeConfig struct {
	Initial    string `yaml:"initial"` // "dark" or "light"
	DarkColor  string `yaml:"dark_color"`
	LightColor string `yaml:"light_color"`
	DarkBG     string `yaml:"dark_background"`
	LightBG    string `yaml:"light_background"`
}

// TrailConfig holds cursor trail parameters.
type TrailConfig struct {
	Enabled          bool    `yaml:"enabled"`
	MaxParticles     int     `yaml:"max_particles"`
	Lifespan         int     `yaml:"lifespan"`          // ticks
	Size             float64 `yaml:"size"`              // max radius before lifetime scaling
	SpawnRate        int     `yaml:"spawn_rate"`        // particles per qualifying tick
	SpawnThreshold   float64 `yaml:"spawn_threshold"`   // min pointer displacement to spawn
	Jitter           float64 `yaml:"jitter"`            // positional spread per axis
	InitialSpeed     float64 `yaml:"initial_speed"`     // velocity spread per axis
	Gravity          float64 `yaml:"gravity"`           // added to vy every tick
	MinViewportWidth int     `yaml:"min_viewport_width"` // trail disabled below this width
}

// NetworkConfig holds background network parameters.
type NetworkConfig struct {
	Enabled            bool    `yaml:"enabled"`
	BaseCount          int     `yaml:"base_count"`       // particles per AreaUnit
	SmallBaseCount     int     `yaml:"small_base_count"` // used below trail.min_viewport_width
	AreaUnit           float64 `yaml:"area_unit"`
	Speed              float64 `yaml:"speed"`
	ConnectionDistance float64 `yaml:"connection_distance"`
	ParticleSize       float64 `yaml:"particle_size"`
	LineWidth          float64 `yaml:"line_width"`
	PointerRadius      float64 `yaml:"pointer_radius"`
	Repel              bool    `yaml:"repel"`
	AttractStrength    float64 `yaml:"attract_strength"`
	RepelStrength      float64 `yaml:"repel_strength"`
	Damping            float64 `yaml:"damping"`
	MinSpeed           float64 `yaml:"min_speed"`
	SpatialIndex       bool    `yaml:"spatial_index"` // bucket the connection pass
}

// HeadlessConfig holds the synthetic pointer path used without a window.
type HeadlessConfig struct {
	PathFreqX float64 `yaml:"path_freq_x"`
	PathFreqY float64 `yaml:"path_freq_y"`
	PathScale float64 `yaml:"path_scale"` // fraction of the viewport covered
}

// TerminalConfig holds settings for the tcell surface.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // logical pixels per column
	CellHeight float64 `yaml:"cell_height"` // logical pixels per row
	FrameMS    int     `yaml:"frame_ms"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32      float32 // Screen.Width as float32
	ScreenH32      float32 // Screen.Height as float32
	StatsWindowTks int     // Telemetry.StatsWindow in ticks at TargetFPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Sanitize()
	cfg.computeDerived()

	return cfg, nil
}

// Sanitize clamps values that would produce a non-positive population,
// radius, distance or lifetime to 1. It never fails.
func (c *Config) Sanitize() {
	atLeastInt := func(v *int, min int) {
		if *v < min {
			*v = min
		}
	}
	atLeast := func(v *float64, min float64) {
		if *v < min {
			*v = min
		}
	}

	atLeastInt(&c.Screen.Width, 1)
	atLeastInt(&c.Screen.Height, 1)
	atLeastInt(&c.Screen.TargetFPS, 1)
	if c.Screen.PixelRatio < 0 {
		c.Screen.PixelRatio = 0
	}

	atLeastInt(&c.Trail.MaxParticles, 1)
	atLeastInt(&c.Trail.Lifespan, 1)
	atLeastInt(&c.Trail.SpawnRate, 1)
	atLeast(&c.Trail.Size, 1)
	if c.Trail.SpawnThreshold < 0 {
		c.Trail.SpawnThreshold = 0
	}

	atLeastInt(&c.Network.BaseCount, 1)
	atLeastInt(&c.Network.SmallBaseCount, 1)
	atLeast(&c.Network.AreaUnit, 1)
	atLeast(&c.Network.ConnectionDistance, 1)
	atLeast(&c.Network.ParticleSize, 1)
	atLeast(&c.Network.LineWidth, 1)
	atLeast(&c.Network.PointerRadius, 1)
	if c.Network.Speed <= 0 {
		c.Network.Speed = 1
	}
	if c.Network.Damping <= 0 || c.Network.Damping > 1 {
		c.Network.Damping = 0.99
	}

	atLeast(&c.Terminal.CellWidth, 1)
	atLeast(&c.Terminal.CellHeight, 1)
	atLeastInt(&c.Terminal.FrameMS, 1)
	atLeastInt(&c.Telemetry.PerfCollectorWindow, 1)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	ticks := int(c.Telemetry.StatsWindow * float64(c.Screen.TargetFPS))
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.StatsWindowTks = ticks
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
