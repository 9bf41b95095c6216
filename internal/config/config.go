// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// SlicerConfig contains all configuration for the Slicer game.
// It is treated as immutable once handed to a simulation.
type SlicerConfig struct {
	Physics    SlicerPhysics    `yaml:"physics"`
	Spawn      SlicerSpawn      `yaml:"spawn"`
	Entities   SlicerEntities   `yaml:"entities"`
	Trail      SlicerTrail      `yaml:"trail"`
	Scoring    SlicerScoring    `yaml:"scoring"`
	Effects    SlicerEffects    `yaml:"effects"`
	Gameplay   SlicerGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SlicerPhysics defines kinematic parameters.
type SlicerPhysics struct {
	Gravity          float64 `yaml:"gravity"`           // Downward acceleration per tick
	LaunchSpeed      float64 `yaml:"launch_speed"`      // Upward launch speed at reference height
	ReferenceHeight  float64 `yaml:"reference_height"`  // Viewport height the launch speed is tuned for
	CenterPull       float64 `yaml:"center_pull"`       // 1.0 = arrive at the horizontal center at apex
	HorizontalJitter float64 `yaml:"horizontal_jitter"` // Max random horizontal velocity added
	MaxRotationRate  float64 `yaml:"max_rotation_rate"` // Radians per tick
}

// SlicerSpawn defines spawn cadence and kind/subtype selection.
type SlicerSpawn struct {
	BaseInterval      int     `yaml:"base_interval"`       // Ticks between spawns at score 0
	MinInterval       int     `yaml:"min_interval"`        // Floor for the spawn interval
	IntervalScoreStep int     `yaml:"interval_score_step"` // Points per one-tick interval reduction
	HazardChanceBase  float64 `yaml:"hazard_chance_base"`
	HazardChanceMax   float64 `yaml:"hazard_chance_max"` // Must stay below 1
	GoldenWeight      float64 `yaml:"golden_weight"`     // Probability of the golden subtype
	FrostWeight       float64 `yaml:"frost_weight"`      // Probability of the frost subtype
}

// SlicerEntities defines entity sizes.
type SlicerEntities struct {
	ProjectileRadius float64 `yaml:"projectile_radius"`
	HazardRadius     float64 `yaml:"hazard_radius"`
}

// SlicerTrail defines gesture trail behaviour.
type SlicerTrail struct {
	Life          int  `yaml:"life"`           // Ticks a sample stays alive
	MaxPoints     int  `yaml:"max_points"`     // Buffer cap, oldest dropped first
	SweepSegments int  `yaml:"sweep_segments"` // Most recent segments tested per entity
	TapSlices     bool `yaml:"tap_slices"`     // Whether a lone sample can slice
}

// SlicerScoring defines points and the combo window.
type SlicerScoring struct {
	BaseScore      int `yaml:"base_score"`
	ComboWindow    int `yaml:"combo_window"`     // Max tick gap between consecutive hits
	ComboBonusStep int `yaml:"combo_bonus_step"` // Bonus per combo level above 1
	GoldenBonus    int `yaml:"golden_bonus"`
}

// SlicerEffects defines the freeze effect and cosmetic lifetimes.
type SlicerEffects struct {
	FreezeDuration  int     `yaml:"freeze_duration"`   // Ticks
	FreezeTimeScale float64 `yaml:"freeze_time_scale"` // In (0, 1)
	DebrisLife      int     `yaml:"debris_life"`
	DebrisSpread    float64 `yaml:"debris_spread"` // Lateral speed given to each half
	ParticleCount   int     `yaml:"particle_count"`
	ParticleLife    int     `yaml:"particle_life"`
	ParticleSpeed   float64 `yaml:"particle_speed"`
	ParticleDrag    float64 `yaml:"particle_drag"` // Velocity multiplier per tick, 1.0 = no drag
	TextLife        int     `yaml:"text_life"`
}

// SlicerGameplay defines round parameters.
type SlicerGameplay struct {
	Lives int `yaml:"lives"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fraction added to launch speed at max difficulty
	HazardIncrease  float64 `yaml:"hazard_increase"`  // Hazard chance added at max difficulty
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid slicer config")

// Validate checks that the configuration describes a playable game.
func (c SlicerConfig) Validate() error {
	switch {
	case c.Entities.ProjectileRadius <= 0 || c.Entities.HazardRadius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	case c.Effects.FreezeTimeScale <= 0 || c.Effects.FreezeTimeScale >= 1:
		return fmt.Errorf("%w: freeze_time_scale must be in (0, 1), got %g", ErrInvalidConfig, c.Effects.FreezeTimeScale)
	case c.Effects.FreezeDuration < 0:
		return fmt.Errorf("%w: freeze_duration must not be negative", ErrInvalidConfig)
	case c.Spawn.HazardChanceMax >= 1 || c.Spawn.HazardChanceBase < 0:
		return fmt.Errorf("%w: hazard chance must be in [0, 1)", ErrInvalidConfig)
	case c.Spawn.GoldenWeight < 0 || c.Spawn.FrostWeight < 0 || c.Spawn.GoldenWeight+c.Spawn.FrostWeight >= 1:
		return fmt.Errorf("%w: rare subtype weights must be non-negative and sum below 1", ErrInvalidConfig)
	case c.Spawn.MinInterval < 1 || c.Spawn.BaseInterval < c.Spawn.MinInterval:
		return fmt.Errorf("%w: spawn intervals must satisfy 1 <= min_interval <= base_interval", ErrInvalidConfig)
	case c.Scoring.ComboWindow < 0:
		return fmt.Errorf("%w: combo_window must not be negative", ErrInvalidConfig)
	case c.Trail.Life < 1 || c.Trail.SweepSegments < 1:
		return fmt.Errorf("%w: trail life and sweep_segments must be at least 1", ErrInvalidConfig)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalidConfig)
	case c.Physics.Gravity <= 0 || c.Physics.LaunchSpeed <= 0:
		return fmt.Errorf("%w: gravity and launch_speed must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
