package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in Dodge configuration.
// Difficulty progression is off so spawn cadence and speed stay fixed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: DodgeField{
			Width:  400,
			Height: 600,
		},
		Player: DodgePlayer{
			Width:        30,
			Height:       30,
			Step:         5,
			BottomOffset: 50,
		},
		Obstacles: DodgeObstacles{
			Width:           20,
			Height:          20,
			SpawnY:          -20,
			SpawnIntervalMS: 1000,
			MinSpeed:        3,
			MaxSpeed:        5,
		},
		Activation: DodgeActivation{
			Code: "GAME",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 500,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dodge":
		return defaultDodgeYAML
	default:
		return nil
	}
}
