// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "fmt"

// DefenderConfig contains all configuration for Space Defender.
type DefenderConfig struct {
	Player     DefenderPlayer   `yaml:"player"`
	Lasers     DefenderLasers   `yaml:"lasers"`
	Enemy      DefenderEnemy    `yaml:"enemy"`
	Arena      DefenderArena    `yaml:"arena"`
	Spawn      DefenderSpawn    `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DefenderPlayer defines the player's ship handling.
type DefenderPlayer struct {
	MaxSpeed     int     `yaml:"max_speed"`    // world units per tick
	Acceleration int     `yaml:"acceleration"` // per tick while thrusting
	Deceleration int     `yaml:"deceleration"` // per tick while coasting
	Agility      float64 `yaml:"agility"`      // degrees per tick, halved under thrust
}

// DefenderLasers defines projectile parameters.
type DefenderLasers struct {
	PlayerSpeed int `yaml:"player_speed"`
	EnemySpeed  int `yaml:"enemy_speed"`
	Lifetime    int `yaml:"lifetime"` // ticks
}

// DefenderEnemy defines enemy behavior.
type DefenderEnemy struct {
	Speed          int     `yaml:"speed"`
	StoppingRadius float64 `yaml:"stopping_radius"`
	FireRoll       int     `yaml:"fire_roll"`      // dice size
	FireThreshold  int     `yaml:"fire_threshold"` // fire when roll > threshold
}

// DefenderArena defines the world-to-screen mapping.
type DefenderArena struct {
	Width       int `yaml:"width"`        // world units mapped onto the terminal width
	Height      int `yaml:"height"`       // world units mapped onto the terminal height
	SpriteScale int `yaml:"sprite_scale"` // hitbox = scale * 16 units
}

// DefenderSpawn defines how enemy waves appear.
type DefenderSpawn struct {
	Initial     int `yaml:"initial"`      // enemies at start
	Interval    int `yaml:"interval"`     // ticks between spawns at lowest difficulty
	MinInterval int `yaml:"min_interval"` // floor at highest difficulty
	MaxEnemies  int `yaml:"max_enemies"`
	Radius      int `yaml:"radius"` // distance from the player where enemies appear
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name from the command line.
// The empty string selects no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}
