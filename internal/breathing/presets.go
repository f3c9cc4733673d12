package breathing

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/umeed/internal/models"
)

// DefaultPresets returns the built-in exercises in display order.
func DefaultPresets() []models.ExercisePreset {
	return []models.ExercisePreset{
		{
			ID:          "478",
			Name:        "4-7-8 Breathing",
			Description: "Inhale for 4, hold for 7, exhale for 8. Great for anxiety and sleep.",
			Pattern:     models.BreathingPattern{Inhale: 4, Hold: 7, Exhale: 8, Pause: 0},
			Cycles:      4,
		},
		{
			ID:          "box",
			Name:        "Box Breathing",
			Description: "Equal counts for all phases. Perfect for focus and stress relief.",
			Pattern:     models.BreathingPattern{Inhale: 4, Hold: 4, Exhale: 4, Pause: 4},
			Cycles:      6,
		},
		{
			ID:          "calm",
			Name:        "Calming Breath",
			Description: "Longer exhale for relaxation. Ideal for winding down.",
			Pattern:     models.BreathingPattern{Inhale: 4, Hold: 2, Exhale: 6, Pause: 2},
			Cycles:      8,
		},
	}
}

// ValidatePattern checks that no duration is negative and at least one is positive.
func ValidatePattern(p models.BreathingPattern) error {
	if p.Inhale < 0 || p.Hold < 0 || p.Exhale < 0 || p.Pause < 0 {
		return ErrInvalidPattern
	}
	if p.CycleLength() == 0 {
		return ErrInvalidPattern
	}
	return nil
}

// ValidatePreset checks id, pattern and cycle count.
func ValidatePreset(p models.ExercisePreset) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("preset %q: empty id", p.Name)
	}
	if err := ValidatePattern(p.Pattern); err != nil {
		return fmt.Errorf("preset %s: %w", p.ID, err)
	}
	if p.Cycles <= 0 {
		return fmt.Errorf("preset %s: %w", p.ID, ErrInvalidCycles)
	}
	return nil
}

// Registry is an ordered, read-only set of presets.
type Registry struct {
	presets []models.ExercisePreset
	byID    map[string]int
}

// NewRegistry validates presets and indexes them by id.
func NewRegistry(presets ...models.ExercisePreset) (*Registry, error) {
	r := &Registry{byID: make(map[string]int, len(presets))}
	for _, p := range presets {
		if err := ValidatePreset(p); err != nil {
			return nil, err
		}
		if _, ok := r.byID[p.ID]; ok {
			return nil, fmt.Errorf("preset %s: %w", p.ID, ErrDuplicatePreset)
		}
		r.byID[p.ID] = len(r.presets)
		r.presets = append(r.presets, p)
	}
	return r, nil
}

// DefaultRegistry holds the built-in presets.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultPresets()...)
	if err != nil {
		panic(err)
	}
	return r
}

// With returns a new registry holding r's presets followed by extra.
func (r *Registry) With(extra ...models.ExercisePreset) (*Registry, error) {
	all := append(r.Presets(), extra...)
	return NewRegistry(all...)
}

// Lookup finds a preset by id.
func (r *Registry) Lookup(id string) (models.ExercisePreset, bool) {
	if r == nil {
		return models.ExercisePreset{}, false
	}
	i, ok := r.byID[id]
	if !ok {
		return models.ExercisePreset{}, false
	}
	return r.presets[i], true
}

// Index returns the display position of id, or -1.
func (r *Registry) Index(id string) int {
	if i, ok := r.byID[id]; ok {
		return i
	}
	return -1
}

// At returns the preset at display position i.
func (r *Registry) At(i int) (models.ExercisePreset, bool) {
	if r == nil || i < 0 || i >= len(r.presets) {
		return models.ExercisePreset{}, false
	}
	return r.presets[i], true
}

// Len is the number of presets.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.presets)
}

// Presets returns a copy of the presets in display order.
func (r *Registry) Presets() []models.ExercisePreset {
	if r == nil {
		return nil
	}
	out := make([]models.ExercisePreset, len(r.presets))
	copy(out, r.presets)
	return out
}
