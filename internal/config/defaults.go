package config

import (
	_ "embed"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the default Space Defender configuration.
// It mirrors defaults/defender.yaml and is used if the embedded file is unreadable.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		Player: DefenderPlayer{
			MaxSpeed:     20,
			Acceleration: 2,
			Deceleration: 1,
			Agility:      6,
		},
		Lasers: DefenderLasers{
			PlayerSpeed: 60,
			EnemySpeed:  30,
			Lifetime:    40,
		},
		Enemy: DefenderEnemy{
			Speed:          10,
			StoppingRadius: 200,
			FireRoll:       100,
			FireThreshold:  95,
		},
		Arena: DefenderArena{
			Width:       1920,
			Height:      1080,
			SpriteScale: 4,
		},
		Spawn: DefenderSpawn{
			Initial:     3,
			Interval:    160,
			MinInterval: 40,
			MaxEnemies:  8,
			Radius:      900,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "defender":
		return defaultDefenderYAML
	default:
		return nil
	}
}
