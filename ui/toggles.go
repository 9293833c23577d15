package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// ToggleID uniquely identifies a toggle.
type ToggleID string

// Standard toggle IDs.
const (
	ToggleLightTheme ToggleID = "light_theme"
	ToggleRepel      ToggleID = "repel"
	ToggleTrail      ToggleID = "trail"
	TogglePause      ToggleID = "pause"
	ToggleHUD        ToggleID = "hud"
	TogglePanel      ToggleID = "panel"
)

// ToggleDescriptor defines a boolean control with an optional key binding.
type ToggleDescriptor struct {
	ID          ToggleID
	Name        string
	Description string
	Key         int32 // 0 = no key
	KeyLabel    string
	Category    string // "effects" or "view"
}

// ToggleRegistry manages toggle state and metadata.
type ToggleRegistry struct {
	descriptors []ToggleDescriptor
	byID        map[ToggleID]ToggleDescriptor
	enabled     map[ToggleID]bool
}

// NewToggleRegistry creates a registry with the standard toggles, all off.
func NewToggleRegistry() *ToggleRegistry {
	reg := &ToggleRegistry{
		byID:    make(map[ToggleID]ToggleDescriptor),
		enabled: make(map[ToggleID]bool),
	}
	reg.registerDefaults()
	return reg
}

func (r *ToggleRegistry) registerDefaults() {
	r.Register(ToggleDescriptor{
		ID:          ToggleLightTheme,
		Name:        "Light Theme",
		Description: "Switch between dark and light palettes",
		Key:         rl.KeyT,
		KeyLabel:    "T",
		Category:    "effects",
	})
	r.Register(ToggleDescriptor{
		ID:          ToggleRepel,
		Name:        "Repel",
		Description: "Push network particles away from the pointer",
		Key:         rl.KeyR,
		KeyLabel:    "R",
		Category:    "effects",
	})
	r.Register(ToggleDescriptor{
		ID:          ToggleTrail,
		Name:        "Cursor Trail",
		Description: "Emit particles behind the pointer",
		Key:         rl.KeyC,
		KeyLabel:    "C",
		Category:    "effects",
	})
	r.Register(ToggleDescriptor{
		ID:          TogglePause,
		Name:        "Pause Network",
		Description: "Freeze the background network",
		Key:         rl.KeyP,
		KeyLabel:    "P",
		Category:    "effects",
	})
	r.Register(ToggleDescriptor{
		ID:          ToggleHUD,
		Name:        "HUD",
		Description: "Show frame rate and particle counts",
		Key:         rl.KeyH,
		KeyLabel:    "H",
		Category:    "view",
	})
	r.Register(ToggleDescriptor{
		ID:          TogglePanel,
		Name:        "Controls",
		Description: "Show this panel",
		Key:         rl.KeyF1,
		KeyLabel:    "F1",
		Category:    "view",
	})
}

// Register adds a toggle to the registry.
func (r *ToggleRegistry) Register(desc ToggleDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = false
}

// Toggle flips a toggle and returns its new state.
func (r *ToggleRegistry) Toggle(id ToggleID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets a toggle's state.
func (r *ToggleRegistry) SetEnabled(id ToggleID, enabled bool) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	r.enabled[id] = enabled
}

// IsEnabled returns whether a toggle is on.
func (r *ToggleRegistry) IsEnabled(id ToggleID) bool {
	return r.enabled[id]
}

// Get returns a toggle descriptor by ID.
func (r *ToggleRegistry) Get(id ToggleID) (ToggleDescriptor, bool) {
	desc, ok := r.byID[id]
	return desc, ok
}

// All returns all toggles in registration order.
func (r *ToggleRegistry) All() []ToggleDescriptor {
	return r.descriptors
}

// ByCategory returns toggles filtered by category.
func (r *ToggleRegistry) ByCategory(category string) []ToggleDescriptor {
	var result []ToggleDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *ToggleRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress flips the toggle bound to key.
// Returns the toggle ID, its new state and whether a toggle matched.
func (r *ToggleRegistry) HandleKeyPress(key int32) (ToggleID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}
