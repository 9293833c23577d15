package telemetry

import "math"

// Sample is the field state observed at the end of a window.
type Sample struct {
	Theme        string
	TrailCount   int
	NetworkCount int
	EdgeAlphas   []float64
	Speeds       []float64
}

// Collector accumulates events within frame windows and produces WindowStats.
type Collector struct {
	windowDurationFrames int64
	dt                   float64

	windowStartFrame int64

	trailPeak    int
	trailSpawned int
	resizes      int
	themeChanges int
	pauses       int
	frameErrors  int
}

// NewCollector creates a collector.
// windowDurationSec is the window length in seconds, dt the seconds per frame.
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	if dt <= 0 {
		dt = 1.0 / 60
	}
	frames := int64(math.Round(windowDurationSec / dt))
	if frames < 1 {
		frames = 1
	}
	return &Collector{
		windowDurationFrames: frames,
		dt:                   dt,
	}
}

// Record counts an event in the current window.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventTrailSpawn:
		c.trailSpawned += e.Count
	case EventResize:
		c.resizes++
	case EventThemeChange:
		c.themeChanges++
	case EventPause:
		c.pauses++
	case EventFrameError:
		c.frameErrors++
	}
}

// ObserveTrail tracks the largest trail population seen in the window.
func (c *Collector) ObserveTrail(count int) {
	if count > c.trailPeak {
		c.trailPeak = count
	}
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(frame int64) bool {
	return frame-c.windowStartFrame >= c.windowDurationFrames
}

// Flush produces the window's stats and resets counters for the next window.
func (c *Collector) Flush(frame int64, s Sample) WindowStats {
	alpha := Summarize(s.EdgeAlphas)
	speed := Summarize(s.Speeds)

	var perParticle float64
	if s.NetworkCount > 0 {
		perParticle = float64(len(s.EdgeAlphas)) / float64(s.NetworkCount)
	}

	peak := c.trailPeak
	if s.TrailCount > peak {
		peak = s.TrailCount
	}

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   frame,
		ElapsedSec:       float64(frame) * c.dt,
		Theme:            s.Theme,

		TrailCount:   s.TrailCount,
		TrailPeak:    peak,
		TrailSpawned: c.trailSpawned,

		NetworkCount:     s.NetworkCount,
		Connections:      len(s.EdgeAlphas),
		EdgesPerParticle: perParticle,

		EdgeAlphaMean: alpha.Mean,
		EdgeAlphaP50:  alpha.P50,
		EdgeAlphaP90:  alpha.P90,

		SpeedMean: speed.Mean,
		SpeedStd:  speed.Std,
		SpeedP10:  speed.P10,
		SpeedP90:  speed.P90,

		Resizes:      c.resizes,
		ThemeChanges: c.themeChanges,
		Pauses:       c.pauses,
		FrameErrors:  c.frameErrors,
	}

	c.windowStartFrame = frame
	c.trailPeak = 0
	c.trailSpawned = 0
	c.resizes = 0
	c.themeChanges = 0
	c.pauses = 0
	c.frameErrors = 0

	return stats
}

// WindowDurationFrames returns the number of frames per window.
func (c *Collector) WindowDurationFrames() int64 {
	return c.windowDurationFrames
}
