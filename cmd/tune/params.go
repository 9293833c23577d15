// Package main tunes particle network parameters with CMA-ES against target
// mesh statistics measured in headless runs.
package main

import (
	"math"

	"github.com/pthm-cable/particlefx/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable network parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "base_count", Path: "network.base_count", Min: 20, Max: 160, Default: 80},
			{Name: "speed", Path: "network.speed", Min: 0.05, Max: 1.5, Default: 0.3},
			{Name: "connection_distance", Path: "network.connection_distance", Min: 60, Max: 250, Default: 150},
			{Name: "pointer_radius", Path: "network.pointer_radius", Min: 50, Max: 400, Default: 200},
			{Name: "attract_strength", Path: "network.attract_strength", Min: 0.02, Max: 1.0, Default: 0.2},
			{Name: "repel_strength", Path: "network.repel_strength", Min: 0.05, Max: 1.5, Default: 0.5},
			{Name: "damping", Path: "network.damping", Min: 0.95, Max: 1.0, Default: 0.99},
			{Name: "min_speed", Path: "network.min_speed", Min: 0.0, Max: 0.3, Default: 0.1},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = math.Max(spec.Min, math.Min(spec.Max, v[i]))
	}
	return clamped
}

// ApplyToConfig writes parameter values into cfg. Order must match Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	n := &cfg.Network
	n.BaseCount = int(math.Round(clamped[0]))
	n.Speed = clamped[1]
	n.ConnectionDistance = clamped[2]
	n.PointerRadius = clamped[3]
	n.AttractStrength = clamped[4]
	n.RepelStrength = clamped[5]
	n.Damping = clamped[6]
	n.MinSpeed = clamped[7]

	cfg.Sanitize()
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	n := cfg.Network
	return []float64{
		float64(n.BaseCount),
		n.Speed,
		n.ConnectionDistance,
		n.PointerRadius,
		n.AttractStrength,
		n.RepelStrength,
		n.Damping,
		n.MinSpeed,
	}
}
