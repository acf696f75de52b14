package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/colormatch/internal/game"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultGameConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.CorrectDelay() != 800*time.Millisecond {
		t.Errorf("CorrectDelay() = %v, expected 800ms", cfg.CorrectDelay())
	}
	if cfg.GameOverDelay() != time.Second {
		t.Errorf("GameOverDelay() = %v, expected 1s", cfg.GameOverDelay())
	}
	if cfg.StartDifficulty() != game.Medium {
		t.Errorf("StartDifficulty() = %v, expected medium", cfg.StartDifficulty())
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".colormatch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("difficulty: easy\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.StartDifficulty() != game.Easy {
		t.Errorf("StartDifficulty() = %v, expected easy", cfg.StartDifficulty())
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeFile(t, "cm.yaml", "difficulty: hard\ndelays:\n  correct_ms: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.StartDifficulty() != game.Hard {
		t.Errorf("StartDifficulty() = %v, expected hard", cfg.StartDifficulty())
	}
	if cfg.CorrectDelay() != 0 {
		t.Errorf("CorrectDelay() = %v, expected 0", cfg.CorrectDelay())
	}
	// Unset keys keep their defaults.
	if cfg.GameOverDelay() != time.Second {
		t.Errorf("GameOverDelay() = %v, expected default 1s", cfg.GameOverDelay())
	}
	if !cfg.Hint.Enabled {
		t.Error("hint should stay enabled by default")
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := writeFile(t, "bad.yaml", "delays: [not, a, map]\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}

	path = writeFile(t, "neg.yaml", "delays:\n  game_over_ms: -5\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		valid  bool
	}{
		{"defaults", func(*GameConfig) {}, true},
		{"unknown difficulty", func(c *GameConfig) { c.Difficulty = "insane" }, false},
		{"negative correct delay", func(c *GameConfig) { c.Delays.CorrectMS = -1 }, false},
		{"zero swatch width", func(c *GameConfig) { c.Display.SwatchWidth = 0 }, false},
		{"zero target height", func(c *GameConfig) { c.Display.TargetHeight = 0 }, false},
		{"zero delays allowed", func(c *GameConfig) { c.Delays = DelayConfig{} }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyDifficultyPreset(t *testing.T) {
	cfg := DefaultGameConfig()

	if err := ApplyDifficultyPreset(&cfg, ""); err != nil {
		t.Fatalf("empty preset failed: %v", err)
	}
	if cfg.StartDifficulty() != game.Medium {
		t.Errorf("empty preset changed difficulty to %v", cfg.StartDifficulty())
	}

	if err := ApplyDifficultyPreset(&cfg, DifficultyHard); err != nil {
		t.Fatalf("ApplyDifficultyPreset() failed: %v", err)
	}
	if cfg.StartDifficulty() != game.Hard {
		t.Errorf("StartDifficulty() = %v, expected hard", cfg.StartDifficulty())
	}

	if err := ApplyDifficultyPreset(&cfg, "extreme"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestLoadEnv(t *testing.T) {
	const key = "COLORMATCH_TEST_ONLY_KEY"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := writeFile(t, ".env", key+"=from-file\n")
	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if got := Env(key, "default"); got != "from-file" {
		t.Errorf("Env() = %q, expected from-file", got)
	}

	if err := LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestEnvDefault(t *testing.T) {
	t.Setenv(EnvDifficulty, "")
	if got := Env(EnvDifficulty, "easy"); got != "easy" {
		t.Errorf("Env() = %q, expected default", got)
	}
	t.Setenv(EnvDifficulty, "hard")
	if got := Env(EnvDifficulty, "easy"); got != "hard" {
		t.Errorf("Env() = %q, expected hard", got)
	}
}
