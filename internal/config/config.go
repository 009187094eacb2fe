// Package config loads positioning settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tkalab/tka/internal/model"
)

// Settings holds the externally-supplied selections that feed the
// positioning core: which grid governs the lookup tables, which prop type
// scales offsets, and optional per-prop-type magnitude overrides.
type Settings struct {
	GridMode        string             `yaml:"grid_mode"` // "diamond" or "box"
	PropType        string             `yaml:"prop_type"` // e.g. "staff", "hand"
	OffsetOverrides map[string]float64 `yaml:"offset_overrides,omitempty"`
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	return &Settings{
		GridMode: string(model.GridDiamond),
		PropType: string(model.PropStaff),
	}
}

// Load reads a YAML file and returns validated settings with defaults
// applied.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if s.GridMode == "" {
		s.GridMode = string(model.GridDiamond)
	}
	if s.PropType == "" {
		s.PropType = string(model.PropStaff)
	}

	if !model.ValidGridModes[model.GridMode(s.GridMode)] {
		return nil, fmt.Errorf("grid_mode must be diamond or box, got %q", s.GridMode)
	}
	if !model.ValidPropTypes[model.PropType(s.PropType)] {
		return nil, fmt.Errorf("unknown prop_type %q", s.PropType)
	}
	for name, mag := range s.OffsetOverrides {
		if !model.ValidPropTypes[model.PropType(name)] {
			return nil, fmt.Errorf("offset_overrides: unknown prop_type %q", name)
		}
		if mag <= 0 {
			return nil, fmt.Errorf("offset_overrides.%s must be > 0, got %.2f", name, mag)
		}
	}

	return &s, nil
}

// Overrides converts the override map to model prop types.
func (s *Settings) Overrides() map[model.PropType]float64 {
	if len(s.OffsetOverrides) == 0 {
		return nil
	}
	out := make(map[model.PropType]float64, len(s.OffsetOverrides))
	for name, mag := range s.OffsetOverrides {
		out[model.PropType(name)] = mag
	}
	return out
}
