package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one window of frames.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	ElapsedSec       float64 `csv:"elapsed"`
	Theme            string  `csv:"theme"`

	// Cursor trail
	TrailCount   int `csv:"trail"`
	TrailPeak    int `csv:"trail_peak"`
	TrailSpawned int `csv:"trail_spawned"`

	// Network at window end
	NetworkCount     int     `csv:"network"`
	Connections      int     `csv:"connections"`
	EdgesPerParticle float64 `csv:"edges_per_particle"`

	EdgeAlphaMean float64 `csv:"edge_alpha_mean"`
	EdgeAlphaP50  float64 `csv:"edge_alpha_p50"`
	EdgeAlphaP90  float64 `csv:"edge_alpha_p90"`

	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Page events during the window
	Resizes      int `csv:"resizes"`
	ThemeChanges int `csv:"theme_changes"`
	Pauses       int `csv:"pauses"`
	FrameErrors  int `csv:"frame_errors"`
}

// Distribution summarises a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Summarize computes mean, standard deviation and empirical quantiles.
// An empty sample yields zeros.
func Summarize(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var d Distribution
	if n > 1 {
		d.Mean, d.Std = stat.MeanStdDev(sorted, nil)
	} else {
		d.Mean = sorted[0]
	}
	d.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	d.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	d.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return d
}

// Speed returns the magnitude of a velocity.
func Speed(vx, vy float32) float64 {
	return math.Hypot(float64(vx), float64(vy))
}

// LogValue implements slog.LogValuer.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartFrame),
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("elapsed", s.ElapsedSec),
		slog.String("theme", s.Theme),
		slog.Int("trail", s.TrailCount),
		slog.Int("trail_peak", s.TrailPeak),
		slog.Int("trail_spawned", s.TrailSpawned),
		slog.Int("network", s.NetworkCount),
		slog.Int("connections", s.Connections),
		slog.Float64("edges_per_particle", s.EdgesPerParticle),
		slog.Float64("edge_alpha_mean", s.EdgeAlphaMean),
		slog.Float64("edge_alpha_p50", s.EdgeAlphaP50),
		slog.Float64("edge_alpha_p90", s.EdgeAlphaP90),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Int("resizes", s.Resizes),
		slog.Int("theme_changes", s.ThemeChanges),
		slog.Int("pauses", s.Pauses),
		slog.Int("frame_errors", s.FrameErrors),
	)
}

// LogStats logs the window using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"elapsed", s.ElapsedSec,
		"theme", s.Theme,
		"trail", s.TrailCount,
		"trail_peak", s.TrailPeak,
		"trail_spawned", s.TrailSpawned,
		"network", s.NetworkCount,
		"connections", s.Connections,
		"edges_per_particle", s.EdgesPerParticle,
		"edge_alpha_mean", s.EdgeAlphaMean,
		"speed_mean", s.SpeedMean,
		"speed_p90", s.SpeedP90,
		"resizes", s.Resizes,
		"theme_changes", s.ThemeChanges,
		"frame_errors", s.FrameErrors,
	)
}
