package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestToggleRegistryDefaults(t *testing.T) {
	reg := NewToggleRegistry()

	for _, id := range []ToggleID{ToggleLightTheme, ToggleRepel, ToggleTrail, TogglePause, ToggleHUD, TogglePanel} {
		if _, ok := reg.Get(id); !ok {
			t.Errorf("toggle %q not registered", id)
		}
		if reg.IsEnabled(id) {
			t.Errorf("toggle %q should start off", id)
		}
	}

	cats := reg.Categories()
	if len(cats) != 2 || cats[0] != "effects" || cats[1] != "view" {
		t.Errorf("categories = %v", cats)
	}
	if n := len(reg.ByCategory("effects")); n != 4 {
		t.Errorf("effects toggles = %d, want 4", n)
	}
}

func TestToggleRegistryKeys(t *testing.T) {
	reg := NewToggleRegistry()

	tests := []struct {
		key  int32
		want ToggleID
	}{
		{rl.KeyT, ToggleLightTheme},
		{rl.KeyR, ToggleRepel},
		{rl.KeyC, ToggleTrail},
		{rl.KeyP, TogglePause},
		{rl.KeyH, ToggleHUD},
		{rl.KeyF1, TogglePanel},
	}
	for _, tt := range tests {
		id, on, ok := reg.HandleKeyPress(tt.key)
		if !ok || id != tt.want || !on {
			t.Errorf("key %d: got (%q, %v, %v), want (%q, true, true)", tt.key, id, on, ok, tt.want)
		}
	}

	// Second press turns it back off.
	if _, on, _ := reg.HandleKeyPress(rl.KeyR); on {
		t.Error("second R press should disable repel")
	}

	if _, _, ok := reg.HandleKeyPress(rl.KeyZ); ok {
		t.Error("unbound key should not match")
	}
}

func TestToggleRegistryUnknown(t *testing.T) {
	reg := NewToggleRegistry()

	if reg.Toggle("nope") {
		t.Error("unknown toggle should stay off")
	}
	reg.SetEnabled("nope", true)
	if reg.IsEnabled("nope") {
		t.Error("SetEnabled must ignore unknown toggles")
	}

	reg.SetEnabled(ToggleHUD, true)
	if !reg.IsEnabled(ToggleHUD) {
		t.Error("SetEnabled(HUD, true) had no effect")
	}
}

func TestToggleLabel(t *testing.T) {
	desc, _ := NewToggleRegistry().Get(ToggleRepel)
	if got := toggleLabel(desc, true); got != "[R] Repel: on" {
		t.Errorf("label = %q", got)
	}
	if got := toggleLabel(ToggleDescriptor{Name: "X"}, false); got != "X: off" {
		t.Errorf("label = %q", got)
	}
}
