package telemetry

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/particlefx/systems"
)

func testNetwork(seed int64) *systems.NetworkSystem {
	return systems.NewNetworkSystem(systems.NetworkParams{
		BaseCount:          80,
		AreaUnit:           15000,
		Speed:              0.3,
		ConnectionDistance: 150,
		ParticleSize:       2,
		PointerRadius:      200,
		AttractStrength:    0.2,
		RepelStrength:      0.5,
		Damping:            0.99,
		MinSpeed:           0.1,
	}, rand.New(rand.NewSource(seed)))
}

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	ns := testNetwork(42)
	ns.Resize(400, 300)
	ns.SetRepel(true)
	for i := 0; i < 10; i++ {
		ns.Update()
	}

	snap := CaptureNetwork(ns, 42, 10, "light")
	if len(snap.Particles) != ns.Count() {
		t.Fatalf("captured %d particles, want %d", len(snap.Particles), ns.Count())
	}

	path, err := SaveSnapshot(snap, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if filepath.Base(path) != "snapshot_10.json" {
		t.Errorf("unexpected filename: %s", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if loaded.RNGSeed != 42 || loaded.Theme != "light" || !loaded.Repel {
		t.Errorf("header mismatch: %+v", loaded)
	}

	restored := testNetwork(7)
	if err := loaded.Apply(restored, 400, 300); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !restored.Repel() {
		t.Error("repel flag not restored")
	}
	w, h := restored.Bounds()
	if w != 400 || h != 300 {
		t.Errorf("bounds = %vx%v, want 400x300", w, h)
	}

	orig := ns.Particles()
	got := restored.Particles()
	if len(got) != len(orig) {
		t.Fatalf("restored %d particles, want %d", len(got), len(orig))
	}
	for i := range orig {
		if got[i] != orig[i] {
			t.Fatalf("particle %d = %+v, want %+v", i, got[i], orig[i])
		}
	}
}

func TestSnapshotVersionMismatch(t *testing.T) {
	snap := &Snapshot{Version: SnapshotVersion + 1}
	if err := snap.Apply(testNetwork(1), 100, 100); err == nil {
		t.Error("expected error for unknown snapshot version")
	}
}

func TestLoadSnapshotMissing(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSnapshotApplyUsesCurrentBounds(t *testing.T) {
	snap := &Snapshot{
		Version: SnapshotVersion,
		Width:   400,
		Height:  300,
		Particles: []ParticleState{
			{X: 50, Y: 40, VelX: 0.2, VelY: 0.1, Radius: 2},
			{X: 380, Y: 290, VelX: -0.2, VelY: 0.3, Radius: 2},
		},
	}

	ns := testNetwork(3)
	if err := snap.Apply(ns, 200, 100); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if w, h := ns.Bounds(); w != 200 || h != 100 {
		t.Errorf("bounds = %vx%v, want the current 200x100", w, h)
	}
	for i, p := range ns.Particles() {
		if p.X < 0 || p.X > 200 || p.Y < 0 || p.Y > 100 {
			t.Errorf("particle %d at (%v, %v) outside current bounds", i, p.X, p.Y)
		}
	}
	if p := ns.Particles()[0]; p.X != 50 || p.Y != 40 {
		t.Errorf("in-bounds particle moved to (%v, %v)", p.X, p.Y)
	}
}
