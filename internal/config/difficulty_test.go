package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := d.Level(99999, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at half time = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabledStaysAtInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1, SpawnMultiplier: 1},
	})

	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Speed(2.0, 1000, 1000); got != 2.0 {
		t.Errorf("Speed() = %v, expected unscaled 2.0", got)
	}
	if got := d.SpawnChance(1.0/60.0, 1000, 1000); got != 1.0/60.0 {
		t.Errorf("SpawnChance() = %v, expected unscaled", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5, SpawnMultiplier: 1.0},
	})

	if got := d.Speed(2.0, 100, 0); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("Speed() at max = %v, expected 3.0", got)
	}
	if got := d.SpawnChance(0.1, 100, 0); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("SpawnChance() at max = %v, expected 0.2", got)
	}
	if got := d.SpawnChance(0.9, 100, 0); got != 1.0 {
		t.Errorf("SpawnChance() should cap at 1, got %v", got)
	}
}

func TestDifficultySetters(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Progression: ProgressionConfig{Type: "score", MaxAt: 10}})
	d.SetInitialLevel(2.0)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("SetInitialLevel should clamp to 1, got %v", got)
	}
	d.SetEnabled(true)
	if !d.IsEnabled() {
		t.Error("SetEnabled(true) should enable progression")
	}
}
