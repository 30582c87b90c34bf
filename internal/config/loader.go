package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "runner.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.gensyn/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other locations
// are skipped silently when missing or invalid.
func Load(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and parses a single config file.
func LoadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so partial files only override
// what they mention, then validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a config back to YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gensyn", "configs", FileName)
}

// Validate checks the invariants the simulation relies on.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if c.Physics.JumpForce <= 0 {
		errs = append(errs, errors.New("physics.jump_force must be positive"))
	}
	if c.Physics.LaneWidth <= 0 {
		errs = append(errs, errors.New("physics.lane_width must be positive"))
	}
	if c.Track.BaseSpeed <= 0 {
		errs = append(errs, errors.New("track.base_speed must be positive"))
	}
	if c.Track.MaxLevel < 1 {
		errs = append(errs, errors.New("track.max_level must be at least 1"))
	}
	if len(c.Track.LanesPerLevel) < c.Track.MaxLevel {
		errs = append(errs, fmt.Errorf("track.lanes_per_level needs %d entries, has %d",
			c.Track.MaxLevel, len(c.Track.LanesPerLevel)))
	}
	for i, lanes := range c.Track.LanesPerLevel {
		if lanes < 3 || lanes%2 == 0 {
			errs = append(errs, fmt.Errorf("track.lanes_per_level[%d] = %d: must be odd and at least 3", i, lanes))
		}
	}
	if c.Track.SpawnDistance <= 0 || c.Track.RemoveDistance <= 0 {
		errs = append(errs, errors.New("track spawn/remove distances must be positive"))
	}
	if c.Spawn.Spacing <= 0 {
		errs = append(errs, errors.New("spawn.spacing must be positive"))
	}
	w := c.Spawn.Weights
	if w.Obstacle < 0 || w.Gem < 0 || w.Alien < 0 || w.Letter < 0 {
		errs = append(errs, errors.New("spawn.weights must not be negative"))
	} else if w.Letter == 0 {
		errs = append(errs, errors.New("spawn.weights.letter must be positive"))
	}
	if c.Player.BaseLives < 1 {
		errs = append(errs, errors.New("player.base_lives must be at least 1"))
	}
	if c.Shop.OfferCount < 1 {
		errs = append(errs, errors.New("shop.offer_count must be at least 1"))
	}
	if c.Timers.InvincibilityMS < 0 || c.Timers.ShieldMS < 0 || c.Timers.BlinkMS < 0 {
		errs = append(errs, errors.New("timers must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
