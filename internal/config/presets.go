package config

import (
	"fmt"
	"os"

	"github.com/akyairhashvil/umeed/internal/models"
	"gopkg.in/yaml.v3"
)

// PresetFile is the on-disk shape of a custom preset list.
type PresetFile struct {
	Presets []models.ExercisePreset `yaml:"presets"`
}

// LoadPresets reads extra breathing presets from a YAML file.
// Validation is left to the registry that consumes them.
func LoadPresets(path string) ([]models.ExercisePreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets decodes a preset list from YAML bytes.
func ParsePresets(data []byte) ([]models.ExercisePreset, error) {
	var f PresetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	return f.Presets, nil
}
