package page

import (
	"log/slog"

	"github.com/pthm-cable/particlefx/telemetry"
)

// flushTelemetry emits a stats window when one is complete.
func (p *Page) flushTelemetry() {
	if !p.collector.ShouldFlush(p.frame) {
		return
	}

	stats := p.collector.Flush(p.frame, p.sample())
	perfStats := p.perfCollector.Stats()

	if p.statsCallback != nil {
		p.statsCallback(stats)
	}

	if p.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if p.outputManager != nil {
		if err := p.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := p.outputManager.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sample collects the end-of-window field state.
func (p *Page) sample() telemetry.Sample {
	particles := p.network.Particles()
	speeds := make([]float64, len(particles))
	for i := range particles {
		speeds[i] = telemetry.Speed(particles[i].VX, particles[i].VY)
	}

	alphas := make([]float64, len(p.edges))
	for i := range p.edges {
		alphas[i] = float64(p.edges[i].Alpha)
	}

	return telemetry.Sample{
		Theme:        p.themes.Current().String(),
		TrailCount:   p.trail.Count(),
		NetworkCount: len(particles),
		EdgeAlphas:   alphas,
		Speeds:       speeds,
	}
}

// SaveSnapshot writes the network state into the output directory.
// Returns an empty path when output is disabled.
func (p *Page) SaveSnapshot() (string, error) {
	snap := telemetry.CaptureNetwork(p.network, p.seed, p.frame, p.themes.Current().String())
	return p.outputManager.WriteSnapshot(snap)
}
