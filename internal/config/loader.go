package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive the game.
var ErrInvalidConfig = errors.New("invalid config")

// LoadDodge loads the Dodge configuration.
// Search order: customPath -> ~/.termfolio/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func LoadDodge(customPath string) (DodgeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDodge(data)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("dodge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDodge(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		if cfg, err := parseDodge(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseDodge(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parseDodge decodes YAML on top of the hardcoded defaults, so partial files
// only override what they mention.
func parseDodge(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DodgeConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable field.
func (c DodgeConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have positive size", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > c.Field.Width:
		return fmt.Errorf("%w: player must fit inside the field", ErrInvalidConfig)
	case c.Player.Step < 0:
		return fmt.Errorf("%w: player step must not be negative", ErrInvalidConfig)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 || c.Obstacles.Width > c.Field.Width:
		return fmt.Errorf("%w: obstacles must fit inside the field", ErrInvalidConfig)
	case c.Obstacles.SpawnIntervalMS < 0:
		return fmt.Errorf("%w: spawn interval must not be negative", ErrInvalidConfig)
	case c.Obstacles.MinSpeed <= 0 || c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed:
		return fmt.Errorf("%w: speed range must be positive and ordered", ErrInvalidConfig)
	case utf8.RuneCountInString(c.Activation.Code) == 0:
		return fmt.Errorf("%w: activation code must not be empty", ErrInvalidConfig)
	}
	return nil
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termfolio", "configs", filename)
}
