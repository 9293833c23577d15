package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pthm-cable/particlefx/systems"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the network state needed to resume a headless run.
type Snapshot struct {
	Version int   `json:"version"`
	RNGSeed int64 `json:"rng_seed"`
	Frame   int64 `json:"frame"`

	Width  float32 `json:"width"`
	Height float32 `json:"height"`
	Theme  string  `json:"theme"`
	Repel  bool    `json:"repel"`

	Particles []ParticleState `json:"particles"`
}

// ParticleState is one network particle.
type ParticleState struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	VelX   float32 `json:"vel_x"`
	VelY   float32 `json:"vel_y"`
	Radius float32 `json:"radius"`
}

// CaptureNetwork builds a snapshot of ns.
func CaptureNetwork(ns *systems.NetworkSystem, seed, frame int64, theme string) *Snapshot {
	w, h := ns.Bounds()
	src := ns.Particles()
	particles := make([]ParticleState, len(src))
	for i, p := range src {
		particles[i] = ParticleState{X: p.X, Y: p.Y, VelX: p.VX, VelY: p.VY, Radius: p.Radius}
	}
	return &Snapshot{
		Version:   SnapshotVersion,
		RNGSeed:   seed,
		Frame:     frame,
		Width:     w,
		Height:    h,
		Theme:     theme,
		Repel:     ns.Repel(),
		Particles: particles,
	}
}

// Apply restores the snapshot into ns within the current width x height
// bounds. Particles saved outside them are clamped to the edge.
func (s *Snapshot) Apply(ns *systems.NetworkSystem, width, height float32) error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("snapshot version %d, want %d", s.Version, SnapshotVersion)
	}
	particles := make([]systems.NetworkParticle, len(s.Particles))
	for i, p := range s.Particles {
		particles[i] = systems.NetworkParticle{X: p.X, Y: p.Y, VX: p.VelX, VY: p.VelY, Radius: p.Radius}
	}
	ns.Restore(width, height, particles)
	ns.SetRepel(s.Repel)
	return nil
}

// SaveSnapshot writes a snapshot to dir and returns its path.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("snapshot_%d.json", snapshot.Frame))

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}
