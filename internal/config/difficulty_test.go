package config

import (
	"math"
	"testing"
	"time"
)

func TestDifficultyLevelByDistance(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "distance", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		distance float64
		want     float64
	}{
		{0, 0},
		{500, 0.5},
		{1000, 1},
		{5000, 1},
	}
	for _, tc := range tests {
		if got := d.Level(tc.distance, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%v) = %v, expected %v", tc.distance, got, tc.want)
		}
	}

	if got := d.Speed(20, 500, 0); math.Abs(got-30) > 1e-9 {
		t.Errorf("Speed at half difficulty = %v, expected 30", got)
	}
}

func TestDifficultyLevelByTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
	})

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("initial level = %v, expected 0.5", got)
	}
	if got := d.Level(0, 5*time.Second); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("level after 5s = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "distance", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Level(1e6, time.Hour); got != 0.3 {
		t.Errorf("disabled level = %v, expected fixed 0.3", got)
	}
}

func TestDifficultyZeroMaxAt(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "distance", MaxAt: 0},
	})
	if got := d.Level(5, 0); got != 1 {
		t.Errorf("zero max_at should saturate, got %v", got)
	}
}
