package main

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/particlefx/config"
	"github.com/pthm-cable/particlefx/page"
	"github.com/pthm-cable/particlefx/telemetry"
)

// Targets are the mesh statistics a tuned network should settle at.
type Targets struct {
	EdgesPerParticle float64
	SpeedMean        float64
	EdgeAlphaP50     float64
}

// Score component weights.
const (
	weightEdges     = 0.45
	weightSpeed     = 0.30
	weightAlpha     = 0.15
	weightStability = 0.10

	warmupWindows = 1 // skip the first window while the pointer settles
)

// FitnessEvaluator runs headless pages and scores their window stats.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int64
	seeds       []int64
	baseConfig  *config.Config
	targets     Targets
	statsWindow float64

	mu        sync.Mutex
	lastStats Summary // from the most recent Evaluate call
}

// Summary averages the scored windows of one evaluation.
type Summary struct {
	EdgesPerParticle float64
	SpeedMean        float64
	EdgeAlphaP50     float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []int64, baseCfg *config.Config, targets Targets) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		targets:     targets,
		statsWindow: 2.0,
	}
}

// LastSummary returns the averaged stats from the most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() Summary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastStats
}

type seedResult struct {
	fitness float64
	summary Summary
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Seeds run in parallel, at most one per CPU; each gets its own page.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]seedResult, len(fe.seeds))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, seed := range fe.seeds {
		g.Go(func() error {
			windows, err := fe.run(x, seed)
			if err != nil {
				return err
			}
			results[i] = seedResult{
				fitness: fe.score(windows),
				summary: summarize(windows),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// A page that cannot be built scores worst.
		slog.Warn("evaluation failed", "error", err)
		fe.mu.Lock()
		fe.lastStats = Summary{}
		fe.mu.Unlock()
		return 1
	}

	var total float64
	var avg Summary
	for _, r := range results {
		total += r.fitness
		avg.EdgesPerParticle += r.summary.EdgesPerParticle
		avg.SpeedMean += r.summary.SpeedMean
		avg.EdgeAlphaP50 += r.summary.EdgeAlphaP50
	}
	n := float64(len(results))
	avg.EdgesPerParticle /= n
	avg.SpeedMean /= n
	avg.EdgeAlphaP50 /= n

	fe.mu.Lock()
	fe.lastStats = avg
	fe.mu.Unlock()

	return total / n
}

// run executes one headless page and returns its window stats.
func (fe *FitnessEvaluator) run(x []float64, seed int64) ([]telemetry.WindowStats, error) {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	cfg.Trail.Enabled = false

	var windows []telemetry.WindowStats
	p, err := page.New(cfg, page.Options{
		Seed:           seed,
		StatsWindowSec: fe.statsWindow,
		StatsCallback: func(s telemetry.WindowStats) {
			windows = append(windows, s)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("seed %d: %w", seed, err)
	}
	defer p.Close()

	h := page.NewHeadless(p, cfg.Headless)
	for p.Frames() < fe.maxTicks {
		h.Step()
	}
	return windows, nil
}

// copyConfig returns an independent copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// score turns window stats into a scalar error in [0, 1].
func (fe *FitnessEvaluator) score(windows []telemetry.WindowStats) float64 {
	if len(windows) <= warmupWindows {
		return 1
	}
	valid := windows[warmupWindows:]

	var edgeErr, speedErr, alphaErr float64
	perParticle := make([]float64, 0, len(valid))
	for _, w := range valid {
		if w.NetworkCount == 0 {
			return 1
		}
		perParticle = append(perParticle, w.EdgesPerParticle)

		edgeErr += logError(w.EdgesPerParticle, fe.targets.EdgesPerParticle)
		speedErr += logError(w.SpeedMean, fe.targets.SpeedMean)
		d := (w.EdgeAlphaP50 - fe.targets.EdgeAlphaP50) / 0.25
		alphaErr += 1 - math.Exp(-d*d)
	}
	n := float64(len(valid))

	// Coefficient of variation of the edge density across windows
	stability := 0.0
	if len(perParticle) >= 2 {
		mean, std := stat.MeanStdDev(perParticle, nil)
		if mean > 0 {
			cv := std / mean
			stability = 1 - math.Exp(-cv*cv)
		}
	}

	return weightEdges*edgeErr/n +
		weightSpeed*speedErr/n +
		weightAlpha*alphaErr/n +
		weightStability*stability
}

// logError maps the log ratio of got to want into [0, 1); 0 on target.
func logError(got, want float64) float64 {
	if got <= 0 || want <= 0 {
		return 1
	}
	l := math.Log(got / want)
	return 1 - math.Exp(-l*l)
}

func summarize(windows []telemetry.WindowStats) Summary {
	if len(windows) <= warmupWindows {
		return Summary{}
	}
	valid := windows[warmupWindows:]
	edges := make([]float64, len(valid))
	speeds := make([]float64, len(valid))
	alphas := make([]float64, len(valid))
	for i, w := range valid {
		edges[i] = w.EdgesPerParticle
		speeds[i] = w.SpeedMean
		alphas[i] = w.EdgeAlphaP50
	}
	return Summary{
		EdgesPerParticle: stat.Mean(edges, nil),
		SpeedMean:        stat.Mean(speeds, nil),
		EdgeAlphaP50:     stat.Mean(alphas, nil),
	}
}
