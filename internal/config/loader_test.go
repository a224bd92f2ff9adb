package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDodgeMatchesDefaults(t *testing.T) {
	cfg, err := parseDodge(GetDefaultYAML("dodge"))
	if err != nil {
		t.Fatalf("embedded dodge.yaml does not parse: %v", err)
	}
	if cfg != DefaultDodgeConfig() {
		t.Errorf("embedded YAML and DefaultDodgeConfig() disagree:\n%+v\n%+v", cfg, DefaultDodgeConfig())
	}
}

func TestLoadDodgeCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	data := []byte("obstacles:\n  spawn_interval_ms: 600\nactivation:\n  code: play\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}
	if cfg.Obstacles.SpawnIntervalMS != 600 {
		t.Errorf("SpawnIntervalMS = %d, expected 600", cfg.Obstacles.SpawnIntervalMS)
	}
	if cfg.Activation.Code != "play" {
		t.Errorf("Code = %q, expected %q", cfg.Activation.Code, "play")
	}
	// Untouched fields keep their defaults
	if cfg.Field.Width != 400 || cfg.Player.Step != 5 {
		t.Errorf("partial file should keep defaults, got field=%v step=%v", cfg.Field.Width, cfg.Player.Step)
	}
}

func TestLoadDodgeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDodge(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDodge(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  min_speed: 6\n  max_speed: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadDodge(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestDodgeValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgeConfig)
	}{
		{"zero field", func(c *DodgeConfig) { c.Field.Width = 0 }},
		{"player wider than field", func(c *DodgeConfig) { c.Player.Width = 500 }},
		{"negative step", func(c *DodgeConfig) { c.Player.Step = -1 }},
		{"zero obstacle", func(c *DodgeConfig) { c.Obstacles.Height = 0 }},
		{"negative interval", func(c *DodgeConfig) { c.Obstacles.SpawnIntervalMS = -5 }},
		{"zero speed", func(c *DodgeConfig) { c.Obstacles.MinSpeed = 0 }},
		{"empty code", func(c *DodgeConfig) { c.Activation.Code = "" }},
	}

	if err := DefaultDodgeConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyDodgePreset(t *testing.T) {
	cfg := DefaultDodgeConfig()
	ApplyDodgePreset(&cfg, "")
	if cfg.Difficulty.Enabled {
		t.Error("empty preset should leave progression disabled")
	}

	ApplyDodgePreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyDodgePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("normal") != DifficultyNormal {
		t.Error("normal should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestLoadEnv(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	data := []byte("TERMFOLIO_HTTP_ADDR=:9999\nTERMFOLIO_ADMIN_USER=root\nTERMFOLIO_SESSION_TTL=30m\n")
	if err := os.WriteFile(dotenv, data, 0o600); err != nil {
		t.Fatal(err)
	}
	// Existing variables win over the dotenv file
	t.Setenv("TERMFOLIO_ADMIN_USER", "owner")
	t.Setenv("TERMFOLIO_HTTP_ADDR", "")
	os.Unsetenv("TERMFOLIO_HTTP_ADDR")

	env := LoadEnv(dotenv)
	if env.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q, expected :9999", env.HTTPAddr)
	}
	if env.AdminUser != "owner" {
		t.Errorf("AdminUser = %q, expected owner", env.AdminUser)
	}
	if env.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, expected 30m", env.SessionTTL)
	}
}
