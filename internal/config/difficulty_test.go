package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0}, // clamped
	}

	for _, tc := range tests {
		got := d.Level(tc.score, 0)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyLevelMonotonic(t *testing.T) {
	d := NewDifficultyManager(DefaultSlicerConfig().Difficulty)
	prev := -1.0
	for score := 0; score <= 3000; score += 10 {
		level := d.Level(score, 0)
		if level < prev {
			t.Fatalf("Level decreased at score %d: %f < %f", score, level, prev)
		}
		if level < 0 || level > 1 {
			t.Fatalf("Level out of range at score %d: %f", score, level)
		}
		prev = level
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("disabled manager should report disabled")
	}
	if d.Level(1000, 1000) != 0.4 {
		t.Errorf("disabled manager should stay at initial level, got %f", d.Level(1000, 1000))
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := d.Level(0, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at half time = %f, expected 0.5", got)
	}
}

func TestDifficultySpeedAndHazard(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled: true,
		Scaling: ScalingConfig{SpeedMultiplier: 0.5, HazardIncrease: 0.2},
	})

	if got := d.Speed(2.0, 1.0); got != 3.0 {
		t.Errorf("Speed at max level = %f, expected 3.0", got)
	}
	if got := d.Speed(2.0, 0.0); got != 2.0 {
		t.Errorf("Speed at level 0 = %f, expected 2.0", got)
	}
	if got := d.HazardChance(0.1, 0.25, 1.0); got != 0.25 {
		t.Errorf("HazardChance should clamp to ceiling, got %f", got)
	}
	if got := d.HazardChance(0.1, 0.9, 0.5); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("HazardChance at half level = %f, expected 0.2", got)
	}
}
