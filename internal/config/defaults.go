package config

import (
	_ "embed"
)

//go:embed defaults/slicer.yaml
var defaultSlicerYAML []byte

// DefaultSlicerConfig returns the default Slicer configuration.
// It mirrors defaults/slicer.yaml and is used when the embedded file cannot be parsed.
func DefaultSlicerConfig() SlicerConfig {
	return SlicerConfig{
		Physics: SlicerPhysics{
			Gravity:          0.025,
			LaunchSpeed:      1.45,
			ReferenceHeight:  48,
			CenterPull:       0.7,
			HorizontalJitter: 0.2,
			MaxRotationRate:  0.15,
		},
		Spawn: SlicerSpawn{
			BaseInterval:      60,
			MinInterval:       18,
			IntervalScoreStep: 25,
			HazardChanceBase:  0.10,
			HazardChanceMax:   0.45,
			GoldenWeight:      0.03,
			FrostWeight:       0.05,
		},
		Entities: SlicerEntities{
			ProjectileRadius: 3.0,
			HazardRadius:     2.6,
		},
		Trail: SlicerTrail{
			Life:          8,
			MaxPoints:     64,
			SweepSegments: 5,
		},
		Scoring: SlicerScoring{
			BaseScore:      10,
			ComboWindow:    30,
			ComboBonusStep: 5,
			GoldenBonus:    50,
		},
		Effects: SlicerEffects{
			FreezeDuration:  180,
			FreezeTimeScale: 0.35,
			DebrisLife:      60,
			DebrisSpread:    0.6,
			ParticleCount:   8,
			ParticleLife:    30,
			ParticleSpeed:   0.8,
			ParticleDrag:    0.92,
			TextLife:        45,
		},
		Gameplay: SlicerGameplay{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.1,
				HazardIncrease:  0.15,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "slicer":
		return defaultSlicerYAML
	default:
		return nil
	}
}
