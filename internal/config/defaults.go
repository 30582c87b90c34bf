package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration.
// It mirrors defaults/runner.yaml and backs it up if the embed fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:      50,
			JumpForce:    16,
			LaneWidth:    2.2,
			LaneLerp:     15,
			PlayerHeight: 1.8,
			PlayerWidth:  0.8,
			PlayerDepth:  0.8,
		},
		Timers: TimersConfig{
			InvincibilityMS: 1500,
			ShieldMS:        5000,
			BlinkMS:         50,
		},
		Track: TrackConfig{
			BaseSpeed:       22.5,
			LevelSpeedBonus: 0.2,
			MaxLevel:        3,
			LanesPerLevel:   []int{3, 5, 7},
			SpawnDistance:   120,
			RemoveDistance:  20,
		},
		Spawn: SpawnConfig{
			Spacing:        14,
			ShopEvery:      1800,
			AlienMinLevel:  2,
			AlienFireRange: 60,
			MissileSpeed:   30,
			Weights: SpawnWeights{
				Obstacle: 45,
				Gem:      35,
				Alien:    10,
				Letter:   10,
			},
		},
		Scoring: ScoringConfig{
			GemPoints:    50,
			LetterPoints: 250,
		},
		Player: PlayerConfig{
			BaseLives:             3,
			KeepUpgradesOnRestart: true,
		},
		Shop: ShopConfig{
			OfferCount: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
