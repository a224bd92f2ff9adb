// Package config provides YAML-based game configuration, difficulty
// progression and environment settings for termfolio.
package config

// DodgeConfig contains all tuning for the Dodge mini-game.
// Lengths are in logical play-field units, not terminal cells.
type DodgeConfig struct {
	Field      DodgeField       `yaml:"field"`
	Player     DodgePlayer      `yaml:"player"`
	Obstacles  DodgeObstacles   `yaml:"obstacles"`
	Activation DodgeActivation  `yaml:"activation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DodgeField defines the logical play-field resolution.
type DodgeField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DodgePlayer defines the player rectangle and its movement.
type DodgePlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Step         float64 `yaml:"step"`          // Horizontal distance per tick while a key is held
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the field bottom to the player top
}

// DodgeObstacles defines falling obstacle spawning.
type DodgeObstacles struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SpawnY          float64 `yaml:"spawn_y"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"` // Exclusive
}

// DodgeActivation defines the secret code that reveals the game.
type DodgeActivation struct {
	Code string `yaml:"code"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to the speed factor at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction (ms) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Unknown values yield "".
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
