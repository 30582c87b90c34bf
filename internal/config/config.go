// Package config provides YAML-based tuning for the runner and difficulty
// management on top of it.
package config

import "time"

// RunnerConfig contains every tunable of the simulation.
type RunnerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Timers     TimersConfig     `yaml:"timers"`
	Track      TrackConfig      `yaml:"track"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Player     PlayerConfig     `yaml:"player"`
	Shop       ShopConfig       `yaml:"shop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the player's kinematics. Units are track units and seconds.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpForce    float64 `yaml:"jump_force"`
	LaneWidth    float64 `yaml:"lane_width"`
	LaneLerp     float64 `yaml:"lane_lerp"` // Render approach rate toward the target lane, per second
	PlayerHeight float64 `yaml:"player_height"`
	PlayerWidth  float64 `yaml:"player_width"`
	PlayerDepth  float64 `yaml:"player_depth"`
}

// TimersConfig defines the fixed-duration timers.
type TimersConfig struct {
	InvincibilityMS int `yaml:"invincibility_ms"` // Post-hit grace window
	ShieldMS        int `yaml:"shield_ms"`        // Firewall duration
	BlinkMS         int `yaml:"blink_ms"`         // Blink half-period while in grace
}

// Invincibility returns the post-hit grace window.
func (t TimersConfig) Invincibility() time.Duration {
	return time.Duration(t.InvincibilityMS) * time.Millisecond
}

// Shield returns the firewall duration.
func (t TimersConfig) Shield() time.Duration {
	return time.Duration(t.ShieldMS) * time.Millisecond
}

// Blink returns the blink half-period.
func (t TimersConfig) Blink() time.Duration {
	return time.Duration(t.BlinkMS) * time.Millisecond
}

// TrackConfig defines the track geometry and level structure.
type TrackConfig struct {
	BaseSpeed       float64 `yaml:"base_speed"`
	LevelSpeedBonus float64 `yaml:"level_speed_bonus"` // Fraction of base speed added per level
	MaxLevel        int     `yaml:"max_level"`
	LanesPerLevel   []int   `yaml:"lanes_per_level"`
	SpawnDistance   float64 `yaml:"spawn_distance"`  // Objects appear this far ahead
	RemoveDistance  float64 `yaml:"remove_distance"` // Objects vanish this far behind
}

// LaneCount returns the lane count for a 1-based level, clamped to the table.
func (t TrackConfig) LaneCount(level int) int {
	if len(t.LanesPerLevel) == 0 {
		return 3
	}
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(t.LanesPerLevel) {
		idx = len(t.LanesPerLevel) - 1
	}
	return t.LanesPerLevel[idx]
}

// SpawnConfig defines how track objects are generated.
type SpawnConfig struct {
	Spacing        float64      `yaml:"spacing"`          // Distance between spawn rows
	ShopEvery      float64      `yaml:"shop_every"`       // Distance between shop portals
	AlienMinLevel  int          `yaml:"alien_min_level"`  // First level with aliens
	AlienFireRange float64      `yaml:"alien_fire_range"` // Aliens fire once closer than this
	MissileSpeed   float64      `yaml:"missile_speed"`    // Added to track speed
	Weights        SpawnWeights `yaml:"weights"`
}

// SpawnWeights are relative odds of each object kind in a spawn row.
type SpawnWeights struct {
	Obstacle int `yaml:"obstacle"`
	Gem      int `yaml:"gem"`
	Alien    int `yaml:"alien"`
	Letter   int `yaml:"letter"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	GemPoints    int `yaml:"gem_points"`
	LetterPoints int `yaml:"letter_points"`
}

// PlayerConfig defines the starting loadout.
type PlayerConfig struct {
	BaseLives             int  `yaml:"base_lives"`
	KeepUpgradesOnRestart bool `yaml:"keep_upgrades_on_restart"`
}

// ShopConfig defines the shop visit.
type ShopConfig struct {
	OfferCount int `yaml:"offer_count"`
}

// DifficultyConfig defines the in-level speed progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases within a level.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "distance", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Distance units or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fraction added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset keeps the file's settings.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.BaseLives = 5
	case DifficultyHard:
		cfg.Player.BaseLives = 2
	}
}
