package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/particlefx/config"
	"github.com/pthm-cable/particlefx/telemetry"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()

	raw := pv.ExtractFromConfig(cfg)
	if len(raw) != pv.Dim() {
		t.Fatalf("extracted %d values, want %d", len(raw), pv.Dim())
	}
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v != %v", pv.Specs[i].Name, back[i], raw[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()

	values := []float64{1000, -1, 100, 100, 0.5, 0.5, 2, 0.05}
	pv.ApplyToConfig(cfg, values)

	if cfg.Network.BaseCount != 160 {
		t.Errorf("base_count = %d, want 160", cfg.Network.BaseCount)
	}
	if cfg.Network.Speed != 0.05 {
		t.Errorf("speed = %v, want 0.05", cfg.Network.Speed)
	}
	if cfg.Network.Damping != 1.0 {
		t.Errorf("damping = %v, want 1.0", cfg.Network.Damping)
	}
}

func TestScore(t *testing.T) {
	targets := Targets{EdgesPerParticle: 3, SpeedMean: 0.25, EdgeAlphaP50: 0.35}
	fe := NewFitnessEvaluator(NewParamVector(), 0, nil, config.Defaults(), targets)

	onTarget := telemetry.WindowStats{NetworkCount: 50, EdgesPerParticle: 3, SpeedMean: 0.25, EdgeAlphaP50: 0.35}
	windows := []telemetry.WindowStats{{}, onTarget, onTarget, onTarget}
	if got := fe.score(windows); math.Abs(got) > 1e-12 {
		t.Errorf("on-target score = %v, want 0", got)
	}

	off := onTarget
	off.EdgesPerParticle = 9
	if got := fe.score([]telemetry.WindowStats{{}, off, off}); got <= 0 {
		t.Errorf("off-target score = %v, want > 0", got)
	}

	if got := fe.score([]telemetry.WindowStats{{}}); got != 1 {
		t.Errorf("warmup-only score = %v, want 1", got)
	}

	empty := onTarget
	empty.NetworkCount = 0
	if got := fe.score([]telemetry.WindowStats{{}, empty}); got != 1 {
		t.Errorf("empty network score = %v, want 1", got)
	}
}

func TestLogError(t *testing.T) {
	if logError(2, 2) != 0 {
		t.Error("logError on target should be 0")
	}
	if logError(0, 2) != 1 || logError(2, 0) != 1 {
		t.Error("logError with non-positive input should be 1")
	}
	// Symmetric in the ratio
	if math.Abs(logError(4, 2)-logError(1, 2)) > 1e-12 {
		t.Error("logError should be symmetric in log space")
	}
}

func TestEvaluateFailedPageScoresWorst(t *testing.T) {
	cfg := config.Defaults()
	cfg.Theme.DarkColor = "not-a-colour"
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 1, []int64{1, 2}, cfg, Targets{EdgesPerParticle: 3, SpeedMean: 0.25, EdgeAlphaP50: 0.35})

	if _, err := fe.run(pv.DefaultVector(), 1); err == nil {
		t.Fatal("run should report the page construction error")
	}
	if got := fe.Evaluate(pv.DefaultVector()); got != 1 {
		t.Errorf("Evaluate = %v, want worst score 1", got)
	}
	if s := fe.LastSummary(); s != (Summary{}) {
		t.Errorf("LastSummary = %+v, want zero after a failed evaluation", s)
	}
}
