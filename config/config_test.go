package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Trail.MaxParticles != 30 {
		t.Errorf("trail.max_particles = %d, want 30", cfg.Trail.MaxParticles)
	}
	if cfg.Network.AreaUnit != 15000 {
		t.Errorf("network.area_unit = %v, want 15000", cfg.Network.AreaUnit)
	}
	if cfg.Network.ConnectionDistance != 150 {
		t.Errorf("network.connection_distance = %v, want 150", cfg.Network.ConnectionDistance)
	}
	if cfg.Derived.StatsWindowTks != 300 {
		t.Errorf("derived stats window = %d ticks, want 300", cfg.Derived.StatsWindowTks)
	}
}

func TestLoadOverlayOnlyOverridesPresentKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.yaml")
	data := []byte("trail:\n  spawn_rate: 7\nnetwork:\n  repel: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Trail.SpawnRate != 7 {
		t.Errorf("spawn_rate = %d, want 7", cfg.Trail.SpawnRate)
	}
	if !cfg.Network.Repel {
		t.Error("expected repel to be overridden to true")
	}
	// Untouched keys keep their defaults
	if cfg.Trail.Lifespan != 60 {
		t.Errorf("lifespan = %d, want default 60", cfg.Trail.Lifespan)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSanitizeClampsNonPositive(t *testing.T) {
	cfg := Defaults()
	cfg.Trail.MaxParticles = 0
	cfg.Trail.Lifespan = -5
	cfg.Network.BaseCount = -1
	cfg.Network.ConnectionDistance = 0
	cfg.Network.PointerRadius = -20
	cfg.Network.ParticleSize = 0
	cfg.Network.Damping = 3

	cfg.Sanitize()

	if cfg.Trail.MaxParticles != 1 {
		t.Errorf("max_particles = %d, want 1", cfg.Trail.MaxParticles)
	}
	if cfg.Trail.Lifespan != 1 {
		t.Errorf("lifespan = %d, want 1", cfg.Trail.Lifespan)
	}
	if cfg.Network.BaseCount != 1 {
		t.Errorf("base_count = %d, want 1", cfg.Network.BaseCount)
	}
	if cfg.Network.ConnectionDistance != 1 {
		t.Errorf("connection_distance = %v, want 1", cfg.Network.ConnectionDistance)
	}
	if cfg.Network.PointerRadius != 1 {
		t.Errorf("pointer_radius = %v, want 1", cfg.Network.PointerRadius)
	}
	if cfg.Network.ParticleSize != 1 {
		t.Errorf("particle_size = %v, want 1", cfg.Network.ParticleSize)
	}
	if cfg.Network.Damping != 0.99 {
		t.Errorf("damping = %v, want 0.99", cfg.Network.Damping)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Defaults()
	cfg.Network.BaseCount = 55

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot error: %v", err)
	}
	if loaded.Network.BaseCount != 55 {
		t.Errorf("base_count = %d, want 55", loaded.Network.BaseCount)
	}
}

func TestInitSetsGlobal(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Cfg().Network.AreaUnit != 15000 {
		t.Errorf("Cfg().Network.AreaUnit = %v, want 15000", Cfg().Network.AreaUnit)
	}
	if err := Init(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Init with a missing file should fail")
	}
}
