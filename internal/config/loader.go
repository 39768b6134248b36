package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDefender loads Space Defender configuration.
// Search order: customPath -> ~/.arcade/configs/defender.yaml -> ./configs/defender.yaml -> embedded default
func LoadDefender(customPath string) (DefenderConfig, error) {
	// Files only override the keys they mention
	cfg := DefaultDefenderConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("defender.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/defender.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDefenderYAML, &cfg); err != nil {
		return DefaultDefenderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c DefenderConfig) Validate() error {
	var errs []error
	if c.Player.MaxSpeed < 0 || c.Player.Acceleration < 0 || c.Player.Deceleration < 0 {
		errs = append(errs, errors.New("player speeds must not be negative"))
	}
	if c.Lasers.Lifetime <= 0 {
		errs = append(errs, errors.New("lasers.lifetime must be positive"))
	}
	if c.Enemy.FireRoll <= 0 {
		errs = append(errs, errors.New("enemy.fire_roll must be positive"))
	}
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, errors.New("arena size must be positive"))
	}
	if c.Arena.SpriteScale <= 0 {
		errs = append(errs, errors.New("arena.sprite_scale must be positive"))
	}
	if c.Spawn.Interval <= 0 || c.Spawn.MinInterval <= 0 {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyDefenderPreset modifies the config based on a difficulty preset.
func ApplyDefenderPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.FireThreshold = cfg.Enemy.FireRoll - 3 // 2%
		cfg.Spawn.MaxEnemies = 5
	case DifficultyHard:
		cfg.Enemy.FireThreshold = cfg.Enemy.FireRoll - 9 // 8%
		cfg.Enemy.Speed += cfg.Enemy.Speed / 2
		cfg.Spawn.MaxEnemies = 12
	}
}
