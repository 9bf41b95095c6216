package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlicer loads Slicer configuration.
// Search order: customPath -> ~/.arcade/configs/slicer.yaml -> ./configs/slicer.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadSlicer(customPath string) (SlicerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSlicerConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeSlicer(data)
		if err != nil {
			return DefaultSlicerConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("slicer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeSlicer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "slicer.yaml")); err == nil {
		if cfg, err := decodeSlicer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeSlicer(defaultSlicerYAML)
	if err != nil {
		return DefaultSlicerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeSlicer parses YAML over the hard-coded defaults and validates the result.
func decodeSlicer(data []byte) (SlicerConfig, error) {
	cfg := DefaultSlicerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySlicerPreset modifies the config based on a difficulty preset.
func ApplySlicerPreset(cfg *SlicerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives += 2
		cfg.Scoring.ComboWindow += cfg.Scoring.ComboWindow / 2
	case DifficultyHard:
		if cfg.Gameplay.Lives > 1 {
			cfg.Gameplay.Lives--
		}
		cfg.Spawn.HazardChanceBase = min(cfg.Spawn.HazardChanceBase*1.5, cfg.Spawn.HazardChanceMax)
	}
}
